// Package domain contains pure business types with no infrastructure imports.
package domain

import (
	"time"
)

// ─── Duration ───────────────────────────────────────────────────────────────

// Duration is a challenge's period class. It fixes both the calendar span
// and the seed cost per target fruit.
type Duration string

const (
	DurationWeek  Duration = "WEEK"
	DurationMonth Duration = "MONTH"
)

// Days returns the calendar length of the period.
func (d Duration) Days() int {
	switch d {
	case DurationWeek:
		return 7
	case DurationMonth:
		return 30
	default:
		return 0
	}
}

// SeedsPerFruit returns the seed cost of one target fruit for this period.
// Shorter periods cost more per fruit.
func (d Duration) SeedsPerFruit() int {
	switch d {
	case DurationWeek:
		return 5
	case DurationMonth:
		return 3
	default:
		return 0
	}
}

// Valid reports whether d is a known duration code.
func (d Duration) Valid() bool {
	return d == DurationWeek || d == DurationMonth
}

// ─── Status ─────────────────────────────────────────────────────────────────

// Status classifies a challenge's current outcome. It is fully recomputed
// from live spending each evaluation cycle, never incrementally patched.
type Status string

const (
	StatusProgress Status = "PROGRESS"
	StatusSuccess  Status = "SUCCESS"
	StatusFailure  Status = "FAILURE"
)

// Finished reports whether the status is a terminal outcome awaiting
// user confirmation.
func (s Status) Finished() bool {
	return s == StatusSuccess || s == StatusFailure
}

// ─── Challenge ──────────────────────────────────────────────────────────────

// Challenge is a user commitment to stay under a spending limit, in one
// category, for a fixed period.
type Challenge struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id"`
	StartDate     time.Time `json:"start_date"` // normalized to calendar day
	EndDate       time.Time `json:"end_date"`   // inclusive, StartDate + Days - 1
	Duration      Duration  `json:"duration"`
	SpendingLimit int64     `json:"spending_limit"`
	TargetFruits  int       `json:"target_fruits"`
	RequiredSeeds int       `json:"required_seeds"`
	Status        Status    `json:"status"`
	IsCompleted   bool      `json:"is_completed"`

	// CurrentSpending is transient: recomputed every refresh from the
	// transaction ledger, never persisted.
	CurrentSpending int64 `json:"current_spending"`
}

// Active reports whether the challenge still participates in refresh cycles.
func (c Challenge) Active() bool {
	return !c.IsCompleted
}

// SameWindow reports whether two challenges target the same category over
// the same calendar-day window. Used for the duplicate-activity guard.
func (c Challenge) SameWindow(other Challenge) bool {
	return c.CategoryID == other.CategoryID &&
		SameDay(c.StartDate, other.StartDate) &&
		SameDay(c.EndDate, other.EndDate)
}

// ─── Status Reducer ─────────────────────────────────────────────────────────

// EvaluateStatus derives a challenge's status from its live spending total
// and today's date. Pure function: same inputs, same output.
//
// Decision order (first match wins):
//  1. Period elapsed: Success if spent <= limit, else Failure.
//  2. Over the limit: Failure, even mid-period.
//  3. Otherwise: Progress.
//
// The status is recomputed from current data each cycle, so an early
// Failure reverts to Progress if transactions are edited below the limit
// before the period ends.
func EvaluateStatus(c Challenge, spent int64, today time.Time) Status {
	elapsed := DaysBetween(c.StartDate, today)
	if elapsed >= c.Duration.Days() {
		if spent <= c.SpendingLimit {
			return StatusSuccess
		}
		return StatusFailure
	}
	if spent > c.SpendingLimit {
		return StatusFailure
	}
	return StatusProgress
}

// ConfirmOutcome applies the one-time confirmation of a finished challenge.
// It returns the completed copy plus the fruit delta to credit (zero on
// Failure: seeds were spent at creation and are not refunded).
func ConfirmOutcome(c Challenge) (Challenge, int, error) {
	if c.IsCompleted {
		return c, 0, ErrAlreadyCompleted
	}
	if !c.Status.Finished() {
		return c, 0, ErrChallengeUnfinished
	}
	out := c
	out.IsCompleted = true
	if c.Status == StatusSuccess {
		return out, c.TargetFruits, nil
	}
	return out, 0, nil
}

// ─── Calendar Helpers ───────────────────────────────────────────────────────

// DateOnly truncates t to its calendar day in UTC. All challenge date
// comparisons happen at this granularity.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// DaysBetween returns the number of whole days from a to b, negative if b
// precedes a. Both are normalized to calendar days first.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / (24 * time.Hour))
}
