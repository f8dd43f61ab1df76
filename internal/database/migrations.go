package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are embedded in the binary and applied in version order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_optimization_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS optimization_runs (
				id TEXT PRIMARY KEY,
				route_name TEXT NOT NULL,
				requested_level TEXT NOT NULL,
				applied_level TEXT NOT NULL,
				original_points INTEGER NOT NULL,
				optimized_points INTEGER NOT NULL,
				original_distance_m REAL NOT NULL,
				optimized_distance_m REAL NOT NULL,
				segments_removed INTEGER NOT NULL,
				efficiency_score REAL NOT NULL,
				path_json TEXT NOT NULL,
				created_at TEXT NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "index_optimization_runs_created_at",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_optimization_runs_created_at
			ON optimization_runs(created_at)
		`,
	},
}

// Migrate applies all pending migrations.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
