package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sprout-app/sprout/internal/domain"
)

// ─── Challenge Store ────────────────────────────────────────────────────────
// Dates are stored as 'YYYY-MM-DD' text; status as its enum code;
// completed as 0/1. CurrentSpending is transient and never persisted.

// Create inserts a new challenge row.
func (d *DB) Create(ctx context.Context, c domain.Challenge) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO challenges (id, category_id, start_date, end_date, duration,
			spending_limit, target_fruits, required_seeds, status, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.CategoryID, dateText(c.StartDate), dateText(c.EndDate), string(c.Duration),
		c.SpendingLimit, c.TargetFruits, c.RequiredSeeds, string(c.Status), boolInt(c.IsCompleted))
	return err
}

// Get retrieves a challenge by id.
func (d *DB) Get(ctx context.Context, id string) (domain.Challenge, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT id, category_id, start_date, end_date, duration,
			spending_limit, target_fruits, required_seeds, status, completed
		FROM challenges WHERE id = ?
	`, id)
	c, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Challenge{}, domain.ErrChallengeNotFound
	}
	return c, err
}

// Update rewrites a challenge's mutable fields (status and completion).
func (d *DB) Update(ctx context.Context, c domain.Challenge) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE challenges SET status = ?, completed = ? WHERE id = ?
	`, string(c.Status), boolInt(c.IsCompleted), c.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrChallengeNotFound
	}
	return nil
}

// Delete removes a challenge by id.
func (d *DB) Delete(ctx context.Context, id string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM challenges WHERE id = ?`, id)
	return err
}

// ListActive returns non-completed challenges, oldest first.
func (d *DB) ListActive(ctx context.Context) ([]domain.Challenge, error) {
	return d.listChallenges(ctx, `
		SELECT id, category_id, start_date, end_date, duration,
			spending_limit, target_fruits, required_seeds, status, completed
		FROM challenges WHERE completed = 0 ORDER BY start_date, id
	`)
}

// List returns all challenges, oldest first.
func (d *DB) List(ctx context.Context) ([]domain.Challenge, error) {
	return d.listChallenges(ctx, `
		SELECT id, category_id, start_date, end_date, duration,
			spending_limit, target_fruits, required_seeds, status, completed
		FROM challenges ORDER BY start_date, id
	`)
}

func (d *DB) listChallenges(ctx context.Context, query string) ([]domain.Challenge, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row rowScanner) (domain.Challenge, error) {
	var (
		c          domain.Challenge
		start, end string
		duration   string
		status     string
		completed  int
	)
	err := row.Scan(&c.ID, &c.CategoryID, &start, &end, &duration,
		&c.SpendingLimit, &c.TargetFruits, &c.RequiredSeeds, &status, &completed)
	if err != nil {
		return domain.Challenge{}, err
	}
	if c.StartDate, err = parseDate(start); err != nil {
		return domain.Challenge{}, err
	}
	if c.EndDate, err = parseDate(end); err != nil {
		return domain.Challenge{}, err
	}
	c.Duration = domain.Duration(duration)
	c.Status = domain.Status(status)
	c.IsCompleted = completed == 1
	return c, nil
}

func dateText(t time.Time) string {
	return domain.DateOnly(t).Format(time.DateOnly)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored date %q: %w", s, err)
	}
	return t, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
