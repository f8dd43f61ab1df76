package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/vialtrack/route-optimizer-go/internal/models"
	"github.com/vialtrack/route-optimizer-go/internal/optimizer"
	"github.com/vialtrack/route-optimizer-go/internal/render"
	"github.com/vialtrack/route-optimizer-go/internal/spatial"
)

// ErrRunNotFound is returned when a run ID has no stored record. Handlers
// map it to 404; any other lookup failure is an internal error.
var ErrRunNotFound = errors.New("optimization run not found")

// RunStore is the persistence surface the service needs.
type RunStore interface {
	Create(run *models.OptimizationRun) error
	GetByID(id string) (*models.OptimizationRun, error)
	List(limit int) ([]models.OptimizationRun, error)
}

// RouteService orchestrates the optimization engine: level parsing, the
// caller-side fallback ladder, metrics validation and run persistence.
type RouteService struct {
	runs     RunStore
	pipeline *optimizer.Pipeline
}

// NewRouteService creates a new route service
func NewRouteService(runs RunStore, pipeline *optimizer.Pipeline) *RouteService {
	if pipeline == nil {
		pipeline = optimizer.NewPipeline()
	}
	return &RouteService{
		runs:     runs,
		pipeline: pipeline,
	}
}

// fallbackChain lists the levels to try, requested first, coarser after.
func fallbackChain(level optimizer.Level) []optimizer.Level {
	switch level {
	case optimizer.LevelAdvanced:
		return []optimizer.Level{optimizer.LevelAdvanced, optimizer.LevelMedium, optimizer.LevelBasic}
	case optimizer.LevelMedium:
		return []optimizer.Level{optimizer.LevelMedium, optimizer.LevelBasic}
	default:
		return []optimizer.Level{optimizer.LevelBasic}
	}
}

// OptimizeRoute runs the pipeline over the supplied tracks. An unknown level
// or an empty input fails immediately. Fewer than two points skips
// optimization and passes the input through. Any other stage failure walks
// the fallback ladder: coarser levels first, then pass-through, so the
// caller always gets a usable path when one exists.
func (s *RouteService) OptimizeRoute(name string, rawTracks [][]spatial.Point, levelStr string) (*models.OptimizeResponse, error) {
	level, err := optimizer.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	tracks := make([]optimizer.Track, 0, len(rawTracks))
	original := optimizer.Track{}
	for _, t := range rawTracks {
		tracks = append(tracks, optimizer.Track(t))
		original = append(original, t...)
	}

	if len(original) == 0 {
		return nil, optimizer.ErrEmptyInput
	}
	if len(original) < 2 {
		return s.passThrough(name, original, level, true)
	}

	var result *optimizer.Result
	for _, l := range fallbackChain(level) {
		result, err = s.pipeline.Optimize(tracks, l)
		if err == nil {
			break
		}
		log.Printf("Optimization at level %s failed for %q: %v", l, name, err)
	}
	if result == nil {
		// Every level failed: pass the original through untouched.
		return s.passThrough(name, original, level, false)
	}

	report := optimizer.Validate(original, result.Track)

	resp := &models.OptimizeResponse{
		RequestedLevel:  string(level),
		AppliedLevel:    string(result.Level),
		Points:          result.Track,
		DistanceMeters:  result.DistanceMeters,
		SegmentsRemoved: result.SegmentsRemoved,
		Report:          report,
	}

	if err := s.saveRun(name, resp, original.TotalDistance()); err != nil {
		return nil, err
	}

	return resp, nil
}

// passThrough returns the original points unmodified. skipped marks inputs
// too small to optimize, as opposed to inputs whose optimization failed.
func (s *RouteService) passThrough(name string, original optimizer.Track, level optimizer.Level, skipped bool) (*models.OptimizeResponse, error) {
	if skipped {
		log.Printf("Skipping optimization for %q: %v", name, optimizer.ErrInsufficientPoints)
	}

	resp := &models.OptimizeResponse{
		RequestedLevel: string(level),
		AppliedLevel:   "none",
		Skipped:        skipped,
		Points:         original,
		DistanceMeters: original.TotalDistance(),
		Report:         optimizer.Validate(original, original),
	}

	if err := s.saveRun(name, resp, resp.DistanceMeters); err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *RouteService) saveRun(name string, resp *models.OptimizeResponse, originalDistanceM float64) error {
	pathJSON, err := json.Marshal(resp.Points)
	if err != nil {
		return fmt.Errorf("failed to encode optimized path: %w", err)
	}

	run := &models.OptimizationRun{
		ID:                 uuid.NewString(),
		RouteName:          name,
		RequestedLevel:     resp.RequestedLevel,
		AppliedLevel:       resp.AppliedLevel,
		OriginalPoints:     resp.Report.OriginalPoints,
		OptimizedPoints:    resp.Report.OptimizedPoints,
		OriginalDistanceM:  originalDistanceM,
		OptimizedDistanceM: resp.DistanceMeters,
		SegmentsRemoved:    resp.SegmentsRemoved,
		EfficiencyScore:    resp.Report.EfficiencyScore,
		PathJSON:           string(pathJSON),
	}

	if err := s.runs.Create(run); err != nil {
		return fmt.Errorf("failed to persist optimization run: %w", err)
	}

	resp.RunID = run.ID
	return nil
}

// ValidateTracks compares two point sequences and returns the metrics report.
func (s *RouteService) ValidateTracks(original, optimized []spatial.Point) optimizer.Report {
	return optimizer.Validate(optimizer.Track(original), optimizer.Track(optimized))
}

// GetRun retrieves a stored optimization run.
func (s *RouteService) GetRun(id string) (*models.OptimizationRun, error) {
	run, err := s.runs.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// ListRuns retrieves recent optimization runs.
func (s *RouteService) ListRuns(limit int) ([]models.OptimizationRun, error) {
	runs, err := s.runs.List(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// RenderRunMap re-renders the stored optimized path of a run as an HTML map.
func (s *RouteService) RenderRunMap(id string) ([]byte, error) {
	run, err := s.GetRun(id)
	if err != nil {
		return nil, err
	}

	var points optimizer.Track
	if err := json.Unmarshal([]byte(run.PathJSON), &points); err != nil {
		return nil, fmt.Errorf("failed to decode stored path: %w", err)
	}

	name := run.RouteName
	if name == "" {
		name = "Optimized route"
	}

	return render.Render(points, name)
}
