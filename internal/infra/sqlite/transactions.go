package sqlite

import (
	"context"
	"time"

	"github.com/sprout-app/sprout/internal/domain"
)

// ─── Transaction Ledger & Store ─────────────────────────────────────────────

// TotalAmount sums expense-kind transaction amounts for a category within
// [start, end], both bounds inclusive at calendar-day granularity.
func (d *DB) TotalAmount(ctx context.Context, categoryID string, start, end time.Time) (int64, error) {
	var total int64
	err := d.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE category_id = ? AND kind = ? AND tx_date BETWEEN ? AND ?
	`, categoryID, string(domain.KindExpense), dateText(start), dateText(end)).Scan(&total)
	return total, err
}

// Insert stores a transaction.
func (d *DB) Insert(ctx context.Context, tx domain.Transaction) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO transactions (id, category_id, kind, amount, tx_date, memo)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tx.ID, tx.CategoryID, string(tx.Kind), tx.Amount, dateText(tx.Date), tx.Memo)
	return err
}

// ListByCategory returns transactions for a category, newest first.
// An empty categoryID returns all transactions.
func (d *DB) ListByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	query := `
		SELECT id, category_id, kind, amount, tx_date, memo FROM transactions
		WHERE (? = '' OR category_id = ?) ORDER BY tx_date DESC, id
	`
	rows, err := d.db.QueryContext(ctx, query, categoryID, categoryID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Transaction
	for rows.Next() {
		var (
			tx   domain.Transaction
			kind string
			date string
		)
		if err := rows.Scan(&tx.ID, &tx.CategoryID, &kind, &tx.Amount, &date, &tx.Memo); err != nil {
			return nil, err
		}
		tx.Kind = domain.TransactionKind(kind)
		if tx.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}

// ─── Category Store ─────────────────────────────────────────────────────────

// Upsert inserts or renames a category.
func (d *DB) Upsert(ctx context.Context, c domain.Category) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO categories (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name
	`, c.ID, c.Name)
	return err
}

// ListCategories returns all categories ordered by name.
func (d *DB) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
