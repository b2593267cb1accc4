package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate brings the schema up to date. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is re-run on every start.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyStatuses(db); err != nil {
		return fmt.Errorf("normalizing performance statuses: %w", err)
	}
	if err := migrateDedupePerformance(db); err != nil {
		return fmt.Errorf("deduplicating performance days: %w", err)
	}
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_performance_employee_date ON performance(employee_id, date)`); err != nil {
		return fmt.Errorf("creating performance day index: %w", err)
	}
	if err := seedTherapies(db); err != nil {
		return fmt.Errorf("seeding therapies: %w", err)
	}
	return nil
}

// SeedTherapyNames are inserted into an empty therapy catalog, one per
// counted modality.
var SeedTherapyNames = []string{
	"kg", "mt", "mld", "mld_45", "mld_60", "ma", "fango", "ultraschal", "hb",
}

const (
	seedTherapyCost   = 50.0
	seedTherapyIncome = 100.0
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		name         TEXT NOT NULL,
		join_date    TEXT NOT NULL,
		monthly_rate REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS performance (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id    INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		hours_worked   REAL,
		status         TEXT,
		income         REAL,
		kg_num         INTEGER,
		mt_num         INTEGER,
		mld_num        INTEGER,
		fango_num      INTEGER,
		ultraschal_num INTEGER,
		hb_num         INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_performance_employee ON performance(employee_id)`,

	`CREATE TABLE IF NOT EXISTS therapy (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		therapy_name TEXT UNIQUE NOT NULL,
		cost         REAL,
		income       REAL
	)`,

	// Daily average hours, shown in the directory and used as the editor default.
	`ALTER TABLE employees ADD COLUMN avg_hours REAL NOT NULL DEFAULT 0`,

	// Modalities counted after the first release.
	`ALTER TABLE performance ADD COLUMN mld_45_num INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE performance ADD COLUMN mld_60_num INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE performance ADD COLUMN ma_num INTEGER NOT NULL DEFAULT 0`,
}

// migrateLegacyStatuses rewrites the German status labels written by early
// versions to their canonical English values.
func migrateLegacyStatuses(db *sql.DB) error {
	renames := map[string]string{
		"Krank":    "Sick",
		"Urlaub":   "Vacation",
		"Feiertag": "Holiday",
		"Sonstige": "Other",
	}
	for from, to := range renames {
		if _, err := db.Exec(`UPDATE performance SET status = ? WHERE status = ?`, to, from); err != nil {
			return fmt.Errorf("renaming %s: %w", from, err)
		}
	}
	return nil
}

// migrateDedupePerformance keeps only the newest record for each
// (employee, date) pair so the unique day index can be created on
// databases written before it existed. No-op once the index exists.
func migrateDedupePerformance(db *sql.DB) error {
	var exists int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_performance_employee_date'`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking day index: %w", err)
	}
	if exists > 0 {
		return nil
	}
	_, err = db.Exec(`DELETE FROM performance
		WHERE id NOT IN (SELECT MAX(id) FROM performance GROUP BY employee_id, date)`)
	return err
}

// seedTherapies fills an empty catalog. A catalog the user has edited,
// even down to a single row, is left alone.
func seedTherapies(db *sql.DB) error {
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM therapy`).Scan(&count); err != nil {
		return fmt.Errorf("counting therapies: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, name := range SeedTherapyNames {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO therapy (therapy_name, cost, income) VALUES (?, ?, ?)`,
			name, seedTherapyCost, seedTherapyIncome,
		); err != nil {
			return fmt.Errorf("inserting %s: %w", name, err)
		}
	}
	return tx.Commit()
}
