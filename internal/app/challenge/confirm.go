package challenge

import (
	"context"
	"fmt"

	"github.com/sprout-app/sprout/internal/app/garden"
	"github.com/sprout-app/sprout/internal/domain"
	"github.com/sprout-app/sprout/internal/infra/observability"
)

// Confirmer processes the one-time user acknowledgment of a finished
// challenge: fruits are granted on success, nothing is refunded on failure,
// and the challenge is marked completed either way.
type Confirmer struct {
	store   domain.ChallengeStore
	economy *garden.Economy
}

// NewConfirmer creates a confirmation handler.
func NewConfirmer(store domain.ChallengeStore, economy *garden.Economy) *Confirmer {
	return &Confirmer{store: store, economy: economy}
}

// Confirm finalizes the challenge with the given id. Valid only while the
// stored status is Success or Failure and the challenge is not yet
// completed; a second call gets ErrAlreadyCompleted and grants nothing.
//
// The stored record is re-read first so confirmation always acts on the
// persisted state, not on whatever snapshot the caller holds.
func (h *Confirmer) Confirm(ctx context.Context, id string) (domain.Challenge, error) {
	current, err := h.store.Get(ctx, id)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("load challenge: %w", err)
	}

	confirmed, fruits, err := domain.ConfirmOutcome(current)
	if err != nil {
		return domain.Challenge{}, err
	}

	if fruits > 0 {
		if _, err := h.economy.ApplyDelta(ctx, 0, int64(fruits)); err != nil {
			return domain.Challenge{}, err
		}
	}

	if err := h.store.Update(ctx, confirmed); err != nil {
		return domain.Challenge{}, fmt.Errorf("persist confirmation: %w", err)
	}

	observability.ChallengesConfirmed.WithLabelValues(string(confirmed.Status)).Inc()
	return confirmed, nil
}
