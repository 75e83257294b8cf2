// Package ledger records transactions and applies the seed-earning rule:
// each recorded expense credits seeds to the garden, which is how users
// earn the currency that plants challenges.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sprout-app/sprout/internal/app/garden"
	"github.com/sprout-app/sprout/internal/domain"
)

// Service persists transactions and credits seeds for recorded expenses.
type Service struct {
	store     domain.TransactionStore
	economy   *garden.Economy
	seedAward int64
	now       func() time.Time
}

// NewService creates a transaction recording service. seedAward is the
// number of seeds credited per recorded expense (0 disables the rule).
func NewService(store domain.TransactionStore, economy *garden.Economy, seedAward int64) *Service {
	return &Service{store: store, economy: economy, seedAward: seedAward, now: time.Now}
}

// Record validates and persists a transaction, then credits the seed award
// for expenses. The transaction date defaults to today when zero.
func (s *Service) Record(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	if !tx.Kind.Valid() {
		return domain.Transaction{}, domain.ErrInvalidKind
	}
	if tx.Amount <= 0 {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date.IsZero() {
		tx.Date = s.now()
	}
	tx.Date = domain.DateOnly(tx.Date)

	if err := s.store.Insert(ctx, tx); err != nil {
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	if tx.Kind == domain.KindExpense && s.seedAward > 0 {
		if _, err := s.economy.ApplyDelta(ctx, s.seedAward, 0); err != nil {
			return domain.Transaction{}, fmt.Errorf("award seeds: %w", err)
		}
	}
	return tx, nil
}

// List returns transactions, optionally filtered by category.
func (s *Service) List(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	txs, err := s.store.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
