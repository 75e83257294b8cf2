// Package api provides the HTTP server for Sprout. It exposes the garden
// balance, challenge lifecycle operations, and transaction recording to
// the mobile client.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sprout-app/sprout/internal/app/challenge"
	"github.com/sprout-app/sprout/internal/app/garden"
	"github.com/sprout-app/sprout/internal/app/ledger"
	"github.com/sprout-app/sprout/internal/domain"
)

// Server is the Sprout HTTP API server.
type Server struct {
	factory        *challenge.Factory
	engine         *challenge.Engine
	confirmer      *challenge.Confirmer
	economy        *garden.Economy
	ledger         *ledger.Service
	challenges     domain.ChallengeStore
	categories     domain.CategoryStore
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(
	factory *challenge.Factory,
	engine *challenge.Engine,
	confirmer *challenge.Confirmer,
	economy *garden.Economy,
	ledgerSvc *ledger.Service,
	challenges domain.ChallengeStore,
	categories domain.CategoryStore,
) *Server {
	return &Server{
		factory:    factory,
		engine:     engine,
		confirmer:  confirmer,
		economy:    economy,
		ledger:     ledgerSvc,
		challenges: challenges,
		categories: categories,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/garden", s.handleGarden)

		r.Route("/challenges", func(r chi.Router) {
			r.Get("/", s.handleListChallenges)
			r.Post("/", s.handleCreateChallenge)
			r.Post("/{id}/confirm", s.handleConfirmChallenge)
			r.Delete("/{id}", s.handleDeleteChallenge)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.Post("/", s.handleRecordTransaction)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Put("/", s.handleUpsertCategory)
		})
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// statusForError maps domain errors onto HTTP status codes. Validation
// rejections are client errors; anything unrecognized is a server fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrChallengeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateChallenge),
		errors.Is(err, domain.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrInsufficientSeeds),
		errors.Is(err, domain.ErrChallengeUnfinished),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidKind):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// writeDomainError maps err to a status and writes it.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}
