package domain

import (
	"context"
	"time"
)

// ─── Collaborator Interfaces ────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; application layer depends on them.

// ChallengeStore abstracts persistent challenge storage.
type ChallengeStore interface {
	Create(ctx context.Context, c Challenge) error
	Get(ctx context.Context, id string) (Challenge, error)
	Update(ctx context.Context, c Challenge) error
	Delete(ctx context.Context, id string) error

	// ListActive returns challenges with IsCompleted == false.
	ListActive(ctx context.Context) ([]Challenge, error)
	List(ctx context.Context) ([]Challenge, error)
}

// GardenStore abstracts persistence of the single garden record.
// Read returns a zeroed record when none exists yet (lazy creation).
type GardenStore interface {
	Read(ctx context.Context) (GardenRecord, error)
	Write(ctx context.Context, g GardenRecord) error
}

// TransactionLedger aggregates recorded spending. TotalAmount sums
// expense-kind transactions for a category within [start, end], both
// bounds inclusive at calendar-day granularity.
type TransactionLedger interface {
	TotalAmount(ctx context.Context, categoryID string, start, end time.Time) (int64, error)
}

// TransactionStore abstracts persistent transaction storage.
type TransactionStore interface {
	Insert(ctx context.Context, tx Transaction) error

	// ListByCategory returns transactions for a category, newest first.
	// An empty categoryID returns all transactions.
	ListByCategory(ctx context.Context, categoryID string) ([]Transaction, error)
}

// CategoryStore abstracts persistent category storage. The method name
// stays distinct from ChallengeStore.List so one store type can implement
// both interfaces.
type CategoryStore interface {
	Upsert(ctx context.Context, c Category) error
	ListCategories(ctx context.Context) ([]Category, error)
}
