package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Validation errors are user-correctable rejections, not system faults;
// storage failures are wrapped and propagated by the infra layer instead.

var (
	// Challenge validation errors
	ErrDuplicateChallenge  = errors.New("an active challenge already exists for this category and period")
	ErrInvalidDateRange    = errors.New("challenge date range is invalid")
	ErrInvalidTarget       = errors.New("target fruit count must be positive")
	ErrInvalidLimit        = errors.New("spending limit must be non-negative")
	ErrInsufficientSeeds   = errors.New("not enough seeds to plant this challenge")
	ErrAlreadyCompleted    = errors.New("challenge is already completed")
	ErrChallengeUnfinished = errors.New("challenge has not finished yet")

	// Lookup errors
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrCategoryNotFound  = errors.New("category not found")

	// Transaction validation errors
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	ErrInvalidKind   = errors.New("unknown transaction kind")
)
