package domain

import "time"

// ─── Ledger Types ───────────────────────────────────────────────────────────
// Categories and transactions are owned by the bookkeeping side of the app;
// the challenge engine only reads aggregated expense totals from them.

// TransactionKind separates money leaving from money arriving. Challenge
// spending totals count expenses only.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Category is a spending category. Challenges reference categories by ID
// (lookup key, not ownership).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Transaction is a single recorded amount in a category on a calendar day.
// Amounts are integer currency minor units.
type Transaction struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Kind       TransactionKind `json:"kind"`
	Amount     int64           `json:"amount"`
	Date       time.Time       `json:"date"` // calendar day granularity
	Memo       string          `json:"memo,omitempty"`
}
