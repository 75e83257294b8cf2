package challenge

import (
	"context"
	"sync"
	"time"

	"github.com/sprout-app/sprout/internal/domain"
)

// ─── In-Memory Fakes ────────────────────────────────────────────────────────

// fakeChallengeStore is an in-memory ChallengeStore with injectable failures.
type fakeChallengeStore struct {
	mu         sync.Mutex
	byID       map[string]domain.Challenge
	updates    []string // IDs passed to Update, in call order
	deletes    []string
	listErr    error
	createErr  error
	updateErr  error
	updateFail map[string]error // per-ID Update failures
}

func newFakeChallengeStore(cs ...domain.Challenge) *fakeChallengeStore {
	s := &fakeChallengeStore{byID: make(map[string]domain.Challenge)}
	for _, c := range cs {
		s.byID[c.ID] = c
	}
	return s
}

func (s *fakeChallengeStore) Create(ctx context.Context, c domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.byID[c.ID] = c
	return nil
}

func (s *fakeChallengeStore) Get(ctx context.Context, id string) (domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	return c, nil
}

func (s *fakeChallengeStore) Update(ctx context.Context, c domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	if err, ok := s.updateFail[c.ID]; ok {
		return err
	}
	if _, ok := s.byID[c.ID]; !ok {
		return domain.ErrChallengeNotFound
	}
	s.byID[c.ID] = c
	s.updates = append(s.updates, c.ID)
	return nil
}

func (s *fakeChallengeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	s.deletes = append(s.deletes, id)
	return nil
}

func (s *fakeChallengeStore) ListActive(ctx context.Context) ([]domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.Challenge
	for _, c := range s.byID {
		if !c.IsCompleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakeChallengeStore) List(ctx context.Context) ([]domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Challenge, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeChallengeStore) updateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.updates)
}

// fakeLedger is an in-memory TransactionLedger: fixed totals per category.
type fakeLedger struct {
	mu     sync.Mutex
	totals map[string]int64
	errs   map[string]error
	calls  int
}

func (l *fakeLedger) TotalAmount(ctx context.Context, categoryID string, start, end time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if err, ok := l.errs[categoryID]; ok {
		return 0, err
	}
	return l.totals[categoryID], nil
}

// fakeGardenStore is an in-memory GardenStore with injectable failures.
type fakeGardenStore struct {
	mu       sync.Mutex
	record   domain.GardenRecord
	writeErr error
}

func (f *fakeGardenStore) Read(ctx context.Context) (domain.GardenRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record, nil
}

func (f *fakeGardenStore) Write(ctx context.Context, g domain.GardenRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.record = g
	return nil
}

func (f *fakeGardenStore) balance() domain.GardenRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}
