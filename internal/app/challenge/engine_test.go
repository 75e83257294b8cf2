package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sprout-app/sprout/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// weekOf builds a 7-day challenge starting on the given day.
func weekOf(id, category, start string, limit int64) domain.Challenge {
	return domain.Challenge{
		ID:            id,
		CategoryID:    category,
		StartDate:     day(start),
		EndDate:       day(start).AddDate(0, 0, 6),
		Duration:      domain.DurationWeek,
		SpendingLimit: limit,
		TargetFruits:  2,
		RequiredSeeds: 10,
		Status:        domain.StatusProgress,
	}
}

func newTestEngine(ledger *fakeLedger, store *fakeChallengeStore, today string) *Engine {
	e := NewEngine(ledger, store)
	e.now = func() time.Time { return day(today) }
	return e
}

// After the 7 days, spending under the limit: Success.
func TestEngine_Refresh_SuccessAfterPeriod(t *testing.T) {
	c := weekOf("c1", "food", "2026-03-02", 100000)
	store := newFakeChallengeStore(c)
	ledger := &fakeLedger{totals: map[string]int64{"food": 90000}}
	e := newTestEngine(ledger, store, "2026-03-09")

	out, err := e.Refresh(context.Background(), []domain.Challenge{c})
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if out[0].Status != domain.StatusSuccess {
		t.Errorf("Status = %s, want SUCCESS", out[0].Status)
	}
	if out[0].CurrentSpending != 90000 {
		t.Errorf("CurrentSpending = %d, want 90000", out[0].CurrentSpending)
	}

	stored, _ := store.Get(context.Background(), "c1")
	if stored.Status != domain.StatusSuccess {
		t.Errorf("persisted Status = %s, want SUCCESS", stored.Status)
	}
}

// Day 3 of 7 but already over the limit: early Failure.
func TestEngine_Refresh_EarlyFailure(t *testing.T) {
	c := weekOf("c1", "food", "2026-03-02", 100000)
	store := newFakeChallengeStore(c)
	ledger := &fakeLedger{totals: map[string]int64{"food": 150000}}
	e := newTestEngine(ledger, store, "2026-03-04")

	out, err := e.Refresh(context.Background(), []domain.Challenge{c})
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if out[0].Status != domain.StatusFailure {
		t.Errorf("Status = %s, want FAILURE mid-period", out[0].Status)
	}
}

func TestEngine_Refresh_CompletedPassThrough(t *testing.T) {
	c := weekOf("c1", "food", "2026-03-02", 100000)
	c.Status = domain.StatusSuccess
	c.IsCompleted = true
	store := newFakeChallengeStore(c)
	ledger := &fakeLedger{totals: map[string]int64{"food": 999999}}
	e := newTestEngine(ledger, store, "2026-03-09")

	out, err := e.Refresh(context.Background(), []domain.Challenge{c})
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if out[0].Status != domain.StatusSuccess || !out[0].IsCompleted {
		t.Errorf("completed challenge changed: %+v", out[0])
	}
	if ledger.calls != 0 {
		t.Errorf("ledger queried %d times for a completed challenge, want 0", ledger.calls)
	}
	if store.updateCount() != 0 {
		t.Errorf("completed challenge written back %d times, want 0", store.updateCount())
	}
}

// Only challenges whose status changed are written back.
func TestEngine_Refresh_WritesOnlyChanged(t *testing.T) {
	unchanged := weekOf("c1", "food", "2026-03-02", 100000) // stays PROGRESS
	flipping := weekOf("c2", "travel", "2026-03-02", 50000) // goes FAILURE
	store := newFakeChallengeStore(unchanged, flipping)
	ledger := &fakeLedger{totals: map[string]int64{"food": 10000, "travel": 70000}}
	e := newTestEngine(ledger, store, "2026-03-04")

	out, err := e.Refresh(context.Background(), []domain.Challenge{unchanged, flipping})
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if out[0].Status != domain.StatusProgress {
		t.Errorf("c1 Status = %s, want PROGRESS", out[0].Status)
	}
	if out[1].Status != domain.StatusFailure {
		t.Errorf("c2 Status = %s, want FAILURE", out[1].Status)
	}
	if store.updateCount() != 1 {
		t.Errorf("updates = %d, want 1 (changed challenge only)", store.updateCount())
	}
	if len(store.updates) == 1 && store.updates[0] != "c2" {
		t.Errorf("updated %s, want c2", store.updates[0])
	}
}

// CurrentSpending reflects the ledger at call time even when nothing changes.
func TestEngine_Refresh_TransientSpendingAlwaysFresh(t *testing.T) {
	c := weekOf("c1", "food", "2026-03-02", 100000)
	store := newFakeChallengeStore(c)
	ledger := &fakeLedger{totals: map[string]int64{"food": 12345}}
	e := newTestEngine(ledger, store, "2026-03-03")

	out, err := e.Refresh(context.Background(), []domain.Challenge{c})
	if err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	if out[0].CurrentSpending != 12345 {
		t.Errorf("CurrentSpending = %d, want 12345", out[0].CurrentSpending)
	}
	if store.updateCount() != 0 {
		t.Error("unchanged status must not be written back")
	}
}

// A failed spending fetch fails the whole cycle: no partial status updates.
func TestEngine_Refresh_FetchFailureFailsCycle(t *testing.T) {
	a := weekOf("c1", "food", "2026-03-02", 100000)
	b := weekOf("c2", "travel", "2026-03-02", 50000)
	store := newFakeChallengeStore(a, b)
	ledger := &fakeLedger{
		totals: map[string]int64{"food": 200000}, // would flip to FAILURE
		errs:   map[string]error{"travel": errors.New("ledger offline")},
	}
	e := newTestEngine(ledger, store, "2026-03-04")

	out, err := e.Refresh(context.Background(), []domain.Challenge{a, b})
	if err == nil {
		t.Fatal("expected error when a fetch fails")
	}
	if out != nil {
		t.Errorf("partial results returned: %v", out)
	}
	if store.updateCount() != 0 {
		t.Errorf("statuses written despite failed cycle: %d", store.updateCount())
	}
}

// Write-backs are best effort: a failed write surfaces but does not undo
// the ones that succeeded, and retrying converges.
func TestEngine_Refresh_PartialWriteFailure(t *testing.T) {
	a := weekOf("c1", "food", "2026-03-02", 100000)
	b := weekOf("c2", "travel", "2026-03-02", 50000)
	store := newFakeChallengeStore(a, b)
	store.updateFail = map[string]error{"c2": errors.New("db locked")}
	ledger := &fakeLedger{totals: map[string]int64{"food": 150000, "travel": 70000}}
	e := newTestEngine(ledger, store, "2026-03-04")

	out, err := e.Refresh(context.Background(), []domain.Challenge{a, b})
	if err == nil {
		t.Fatal("expected error from failed write-back")
	}
	if out == nil {
		t.Fatal("best-effort results should still be returned")
	}

	stored, _ := store.Get(context.Background(), "c1")
	if stored.Status != domain.StatusFailure {
		t.Errorf("surviving write rolled back: %s", stored.Status)
	}

	// Retry from the stored state with the store healthy again: the same
	// inputs recompute the same statuses and the missed write lands.
	store.updateFail = nil
	out2, err := e.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("retry RefreshAll() error: %v", err)
	}
	stored2, _ := store.Get(context.Background(), "c2")
	if stored2.Status != domain.StatusFailure {
		t.Errorf("retry did not converge: %s", stored2.Status)
	}
	for i := range out2 {
		if out2[i].Status != domain.StatusFailure {
			t.Errorf("%s Status = %s, want FAILURE", out2[i].ID, out2[i].Status)
		}
	}
}

func TestEngine_Refresh_Empty(t *testing.T) {
	e := newTestEngine(&fakeLedger{}, newFakeChallengeStore(), "2026-03-04")
	out, err := e.Refresh(context.Background(), nil)
	if err != nil {
		t.Fatalf("Refresh(nil) error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0", len(out))
	}
}

func TestEngine_RefreshAll(t *testing.T) {
	c := weekOf("c1", "food", "2026-03-02", 100000)
	store := newFakeChallengeStore(c)
	ledger := &fakeLedger{totals: map[string]int64{"food": 90000}}
	e := newTestEngine(ledger, store, "2026-03-09")

	out, err := e.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("RefreshAll() error: %v", err)
	}
	if len(out) != 1 || out[0].Status != domain.StatusSuccess {
		t.Errorf("RefreshAll() = %+v, want one SUCCESS challenge", out)
	}
}
