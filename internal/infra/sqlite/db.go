// Package sqlite implements the challenge store, garden store, and
// transaction ledger on a single SQLite file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB wraps the SQLite handle. One DB serves all stores.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and applies the
// schema migrations.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Migrations returns the schema migration statements.
// Each string is a single SQL statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		// Spending categories
		`CREATE TABLE IF NOT EXISTS categories (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,

		// Recorded transactions (amounts in currency minor units)
		`CREATE TABLE IF NOT EXISTS transactions (
			id          TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			kind        TEXT NOT NULL,
			amount      INTEGER NOT NULL,
			tx_date     TEXT NOT NULL,
			memo        TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tx_category_date ON transactions(category_id, tx_date)`,

		// Savings challenges
		`CREATE TABLE IF NOT EXISTS challenges (
			id             TEXT PRIMARY KEY,
			category_id    TEXT NOT NULL,
			start_date     TEXT NOT NULL,
			end_date       TEXT NOT NULL,
			duration       TEXT NOT NULL,
			spending_limit INTEGER NOT NULL,
			target_fruits  INTEGER NOT NULL,
			required_seeds INTEGER NOT NULL,
			status         TEXT NOT NULL DEFAULT 'PROGRESS',
			completed      INTEGER NOT NULL DEFAULT 0,
			created_at     TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_challenge_active ON challenges(completed)`,

		// Single-row garden balances
		`CREATE TABLE IF NOT EXISTS garden (
			id           INTEGER PRIMARY KEY CHECK (id = 1),
			total_seeds  INTEGER NOT NULL DEFAULT 0,
			total_fruits INTEGER NOT NULL DEFAULT 0,
			updated_at   TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}
