package challenge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sprout-app/sprout/internal/domain"
	"github.com/sprout-app/sprout/internal/infra/observability"
)

// Engine recomputes challenge statuses from live spending data.
//
// Refresh fans out one ledger query per active challenge, waits for all of
// them, derives each status with the pure reducer, and writes back only the
// challenges whose status actually changed.
type Engine struct {
	ledger domain.TransactionLedger
	store  domain.ChallengeStore
	now    func() time.Time
}

// NewEngine creates a lifecycle engine.
func NewEngine(ledger domain.TransactionLedger, store domain.ChallengeStore) *Engine {
	return &Engine{ledger: ledger, store: store, now: time.Now}
}

// Refresh evaluates the given challenges and returns the same set with
// CurrentSpending and Status updated. Completed challenges pass through
// untouched.
//
// Spending fetches run in parallel; if any fetch fails the whole cycle
// fails and no statuses are computed from incomplete data. Write-backs of
// changed statuses also run in parallel, best effort: writes that succeed
// stay, failures are joined into the returned error, and re-running
// Refresh is safe because statuses are recomputed from the same inputs.
func (e *Engine) Refresh(ctx context.Context, challenges []domain.Challenge) ([]domain.Challenge, error) {
	out := make([]domain.Challenge, len(challenges))
	copy(out, challenges)

	// Fan-out: one spending fetch per active challenge.
	type fetch struct {
		idx   int
		spent int64
		err   error
	}
	results := make(chan fetch)
	var pending int
	for i, c := range out {
		if c.IsCompleted {
			continue
		}
		pending++
		go func(idx int, c domain.Challenge) {
			spent, err := e.ledger.TotalAmount(ctx, c.CategoryID, c.StartDate, c.EndDate)
			results <- fetch{idx: idx, spent: spent, err: err}
		}(i, c)
	}

	// Fan-in: wait for every fetch before touching any status.
	spending := make(map[int]int64, pending)
	var fetchErrs []error
	for ; pending > 0; pending-- {
		r := <-results
		if r.err != nil {
			fetchErrs = append(fetchErrs, fmt.Errorf("fetch spending for %s: %w", out[r.idx].ID, r.err))
			continue
		}
		spending[r.idx] = r.spent
	}
	if len(fetchErrs) > 0 {
		observability.RefreshCycles.WithLabelValues("fetch_error").Inc()
		return nil, errors.Join(fetchErrs...)
	}

	// Reduce, collecting only the challenges whose status changed.
	today := e.now()
	var changed []int
	for idx, spent := range spending {
		out[idx].CurrentSpending = spent
		next := domain.EvaluateStatus(out[idx], spent, today)
		if next != out[idx].Status {
			out[idx].Status = next
			changed = append(changed, idx)
		}
	}

	// Persist the write-back batch concurrently. No rollback on partial
	// failure: surviving writes are correct and a retry recomputes the
	// same statuses.
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		writeErrs []error
	)
	for _, idx := range changed {
		wg.Add(1)
		go func(c domain.Challenge) {
			defer wg.Done()
			if err := e.store.Update(ctx, c); err != nil {
				mu.Lock()
				writeErrs = append(writeErrs, fmt.Errorf("persist status of %s: %w", c.ID, err))
				mu.Unlock()
				return
			}
			observability.StatusTransitions.WithLabelValues(string(c.Status)).Inc()
		}(out[idx])
	}
	wg.Wait()

	if len(writeErrs) > 0 {
		observability.RefreshCycles.WithLabelValues("write_error").Inc()
		return out, errors.Join(writeErrs...)
	}
	observability.RefreshCycles.WithLabelValues("ok").Inc()
	return out, nil
}

// RefreshAll loads every stored challenge and refreshes it.
func (e *Engine) RefreshAll(ctx context.Context) ([]domain.Challenge, error) {
	challenges, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	return e.Refresh(ctx, challenges)
}
