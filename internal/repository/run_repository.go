package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vialtrack/route-optimizer-go/internal/models"
)

// RunRepository handles database operations for optimization runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

const runColumns = `id, route_name, requested_level, applied_level, original_points,
	optimized_points, original_distance_m, optimized_distance_m, segments_removed,
	efficiency_score, path_json, created_at`

// Create persists an optimization run. CreatedAt is set here if unset.
func (r *RunRepository) Create(run *models.OptimizationRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO optimization_runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		run.ID, run.RouteName, run.RequestedLevel, run.AppliedLevel,
		run.OriginalPoints, run.OptimizedPoints,
		run.OriginalDistanceM, run.OptimizedDistanceM,
		run.SegmentsRemoved, run.EfficiencyScore,
		run.PathJSON, run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert optimization run: %w", err)
	}

	return nil
}

// GetByID retrieves a single optimization run, or nil when not found.
func (r *RunRepository) GetByID(id string) (*models.OptimizationRun, error) {
	query := `SELECT ` + runColumns + ` FROM optimization_runs WHERE id = ?`

	run, err := scanRun(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get optimization run: %w", err)
	}

	return run, nil
}

// List retrieves the most recent optimization runs, newest first.
func (r *RunRepository) List(limit int) ([]models.OptimizationRun, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	query := `SELECT ` + runColumns + ` FROM optimization_runs
		ORDER BY created_at DESC LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query optimization runs: %w", err)
	}
	defer rows.Close()

	var runs []models.OptimizationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan optimization run: %w", err)
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*models.OptimizationRun, error) {
	var run models.OptimizationRun
	var createdAt string

	err := row.Scan(
		&run.ID, &run.RouteName, &run.RequestedLevel, &run.AppliedLevel,
		&run.OriginalPoints, &run.OptimizedPoints,
		&run.OriginalDistanceM, &run.OptimizedDistanceM,
		&run.SegmentsRemoved, &run.EfficiencyScore,
		&run.PathJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		run.CreatedAt = t
	}

	return &run, nil
}
