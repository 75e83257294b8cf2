// Package challenge implements the savings-challenge lifecycle: planting
// (factory), status evaluation (engine), and confirmation of finished
// challenges. Persistence and spending data come in through the domain
// interfaces; the garden economy is the only path to seed/fruit balances.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sprout-app/sprout/internal/app/garden"
	"github.com/sprout-app/sprout/internal/domain"
	"github.com/sprout-app/sprout/internal/infra/observability"
)

// Factory validates and plants new challenges. Creation debits the seed
// cost from the garden; the duplicate-active rule and the affordability
// check both run before anything is written.
type Factory struct {
	mu      sync.Mutex // closes the duplicate check-then-create race
	store   domain.ChallengeStore
	economy *garden.Economy
	now     func() time.Time
}

// NewFactory creates a challenge factory.
func NewFactory(store domain.ChallengeStore, economy *garden.Economy) *Factory {
	return &Factory{store: store, economy: economy, now: time.Now}
}

// Create validates the request, plants the challenge starting today, and
// debits requiredSeeds = targetFruits × duration.SeedsPerFruit().
//
// Rejections (no write performed): unknown duration, non-positive fruit
// target, negative limit, duplicate active challenge for the same category
// and calendar window, insufficient seed balance.
//
// The challenge row and the seed debit are a two-step sequence. If the
// debit fails after the row is written, the factory compensates by deleting
// the row again so a failed creation never leaves a challenge behind.
func (f *Factory) Create(ctx context.Context, categoryID string, d domain.Duration, spendingLimit int64, targetFruits int) (domain.Challenge, error) {
	if !d.Valid() {
		return domain.Challenge{}, domain.ErrInvalidDateRange
	}
	if targetFruits <= 0 {
		return domain.Challenge{}, domain.ErrInvalidTarget
	}
	if spendingLimit < 0 {
		return domain.Challenge{}, domain.ErrInvalidLimit
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	start := domain.DateOnly(f.now())
	c := domain.Challenge{
		ID:            uuid.NewString(),
		CategoryID:    categoryID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, d.Days()-1),
		Duration:      d,
		SpendingLimit: spendingLimit,
		TargetFruits:  targetFruits,
		RequiredSeeds: targetFruits * d.SeedsPerFruit(),
		Status:        domain.StatusProgress,
	}

	active, err := f.store.ListActive(ctx)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("list active challenges: %w", err)
	}
	for _, existing := range active {
		if c.SameWindow(existing) {
			return domain.Challenge{}, domain.ErrDuplicateChallenge
		}
	}

	balance, err := f.economy.Balance(ctx)
	if err != nil {
		return domain.Challenge{}, err
	}
	if !balance.CanAfford(c.RequiredSeeds) {
		return domain.Challenge{}, domain.ErrInsufficientSeeds
	}

	if err := f.store.Create(ctx, c); err != nil {
		return domain.Challenge{}, fmt.Errorf("create challenge: %w", err)
	}

	if _, err := f.economy.ApplyDelta(ctx, -int64(c.RequiredSeeds), 0); err != nil {
		// Compensate: take the challenge back out so the failed debit
		// does not leave a planted challenge that was never paid for.
		if delErr := f.store.Delete(ctx, c.ID); delErr != nil {
			return domain.Challenge{}, errors.Join(
				fmt.Errorf("debit seeds: %w", err),
				fmt.Errorf("compensating delete: %w", delErr),
			)
		}
		return domain.Challenge{}, fmt.Errorf("debit seeds: %w", err)
	}

	observability.ChallengesCreated.Inc()
	return c, nil
}
