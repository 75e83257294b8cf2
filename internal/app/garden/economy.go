// Package garden mediates the seed/fruit resource economy.
//
// Every balance mutation in the app flows through Economy.ApplyDelta: it is
// the single read-modify-write path to the garden record, serialized with a
// mutex so a challenge creation debiting seeds cannot race a confirmation
// crediting fruits.
package garden

import (
	"context"
	"fmt"
	"sync"

	"github.com/sprout-app/sprout/internal/domain"
	"github.com/sprout-app/sprout/internal/infra/observability"
)

// Economy applies signed deltas to the single garden record.
type Economy struct {
	mu    sync.Mutex
	store domain.GardenStore
}

// NewEconomy creates the economy over the given store.
func NewEconomy(store domain.GardenStore) *Economy {
	return &Economy{store: store}
}

// ApplyDelta adds the signed seed and fruit deltas to the current balances
// and persists the result. Balances clamp at zero: an excess negative delta
// is absorbed silently, never an error. The updated record is returned.
func (e *Economy) ApplyDelta(ctx context.Context, seeds, fruits int64) (domain.GardenRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.store.Read(ctx)
	if err != nil {
		return domain.GardenRecord{}, fmt.Errorf("read garden: %w", err)
	}

	updated := current.Apply(seeds, fruits)
	if err := e.store.Write(ctx, updated); err != nil {
		return domain.GardenRecord{}, fmt.Errorf("write garden: %w", err)
	}

	observability.ObserveDelta(seeds, fruits, updated.TotalSeeds, updated.TotalFruits)
	return updated, nil
}

// Balance returns the current garden record, zeroed if none exists yet.
func (e *Economy) Balance(ctx context.Context) (domain.GardenRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.store.Read(ctx)
	if err != nil {
		return domain.GardenRecord{}, fmt.Errorf("read garden: %w", err)
	}
	return g, nil
}
