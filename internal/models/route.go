package models

import (
	"time"

	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// OptimizeRequest is the payload for POST /api/v1/routes/optimize.
// Tracks are appended in request order; typically one element per uploaded
// GPS log file.
type OptimizeRequest struct {
	Name   string            `json:"name"`
	Level  string            `json:"level" binding:"required"`
	Tracks [][]spatial.Point `json:"tracks" binding:"required"`
}

// ValidateRequest is the payload for POST /api/v1/routes/validate.
type ValidateRequest struct {
	Original  []spatial.Point `json:"original" binding:"required"`
	Optimized []spatial.Point `json:"optimized" binding:"required"`
}

// OptimizeResponse carries one optimization outcome back to the caller.
// AppliedLevel may be coarser than the requested level when the service had
// to fall back, and Skipped marks a pass-through of the original points.
type OptimizeResponse struct {
	RunID           string           `json:"run_id,omitempty"`
	RequestedLevel  string           `json:"requested_level"`
	AppliedLevel    string           `json:"applied_level"`
	Skipped         bool             `json:"skipped"`
	Points          []spatial.Point  `json:"points"`
	DistanceMeters  float64          `json:"distance_m"`
	SegmentsRemoved int              `json:"segments_removed"`
	Report          optimizer.Report `json:"report"`
}

// OptimizationRun is a persisted record of one optimization, including the
// optimized path so the map artifact can be re-rendered later.
type OptimizationRun struct {
	ID                 string    `json:"id" db:"id"`
	RouteName          string    `json:"route_name" db:"route_name"`
	RequestedLevel     string    `json:"requested_level" db:"requested_level"`
	AppliedLevel       string    `json:"applied_level" db:"applied_level"`
	OriginalPoints     int       `json:"original_points" db:"original_points"`
	OptimizedPoints    int       `json:"optimized_points" db:"optimized_points"`
	OriginalDistanceM  float64   `json:"original_distance_m" db:"original_distance_m"`
	OptimizedDistanceM float64   `json:"optimized_distance_m" db:"optimized_distance_m"`
	SegmentsRemoved    int       `json:"segments_removed" db:"segments_removed"`
	EfficiencyScore    float64   `json:"efficiency_score" db:"efficiency_score"`
	PathJSON           string    `json:"-" db:"path_json"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
