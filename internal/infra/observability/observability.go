// Package observability exposes Prometheus metrics for the challenge engine
// and the garden economy. Metrics are package-level and registered on the
// default registry; the API server serves them at /metrics when enabled.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Challenge Metrics ──────────────────────────────────────────────────────

// ChallengesCreated tracks total challenges planted.
var ChallengesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "challenge",
	Name:      "created_total",
	Help:      "Total challenges created.",
})

// ChallengesConfirmed tracks confirmations by final status.
var ChallengesConfirmed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "challenge",
	Name:      "confirmed_total",
	Help:      "Total challenge confirmations by final status.",
}, []string{"status"})

// RefreshCycles tracks lifecycle refresh cycles by outcome.
var RefreshCycles = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "challenge",
	Name:      "refresh_cycles_total",
	Help:      "Total refresh cycles by outcome (ok, fetch_error, write_error).",
}, []string{"outcome"})

// StatusTransitions tracks persisted status changes by new status.
var StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "challenge",
	Name:      "status_transitions_total",
	Help:      "Total persisted status transitions by new status.",
}, []string{"status"})

// ─── Garden Metrics ─────────────────────────────────────────────────────────

// SeedsDelta tracks seed credits and debits applied to the garden.
var SeedsDelta = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "garden",
	Name:      "seeds_delta_total",
	Help:      "Total seeds credited and debited.",
}, []string{"direction"})

// FruitsDelta tracks fruit credits and debits applied to the garden.
var FruitsDelta = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sprout",
	Subsystem: "garden",
	Name:      "fruits_delta_total",
	Help:      "Total fruits credited and debited.",
}, []string{"direction"})

// SeedBalance tracks the current seed balance.
var SeedBalance = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "sprout",
	Subsystem: "garden",
	Name:      "seed_balance",
	Help:      "Current seed balance.",
})

// FruitBalance tracks the current fruit balance.
var FruitBalance = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "sprout",
	Subsystem: "garden",
	Name:      "fruit_balance",
	Help:      "Current fruit balance.",
})

// ObserveDelta records an applied garden delta and the resulting balances.
func ObserveDelta(seeds, fruits, newSeeds, newFruits int64) {
	countDelta(SeedsDelta, seeds)
	countDelta(FruitsDelta, fruits)
	SeedBalance.Set(float64(newSeeds))
	FruitBalance.Set(float64(newFruits))
}

func countDelta(vec *prometheus.CounterVec, delta int64) {
	switch {
	case delta > 0:
		vec.WithLabelValues("credit").Add(float64(delta))
	case delta < 0:
		vec.WithLabelValues("debit").Add(float64(-delta))
	}
}
