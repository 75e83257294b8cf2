package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sprout-app/sprout/internal/domain"
)

// ─── Garden Store ───────────────────────────────────────────────────────────
// The garden table holds exactly one row (id = 1). Read returns a zeroed
// record until the first Write creates it.

// Read returns the current garden balances.
func (d *DB) Read(ctx context.Context) (domain.GardenRecord, error) {
	var g domain.GardenRecord
	err := d.db.QueryRowContext(ctx, `
		SELECT total_seeds, total_fruits FROM garden WHERE id = 1
	`).Scan(&g.TotalSeeds, &g.TotalFruits)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GardenRecord{}, nil
	}
	return g, err
}

// Write upserts the garden balances.
func (d *DB) Write(ctx context.Context, g domain.GardenRecord) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO garden (id, total_seeds, total_fruits, updated_at)
		VALUES (1, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			total_seeds  = excluded.total_seeds,
			total_fruits = excluded.total_fruits,
			updated_at   = datetime('now')
	`, g.TotalSeeds, g.TotalFruits)
	return err
}
