package optimizer

import "fmt"

// Level selects how aggressively the curve simplifier prunes points.
// A finer tolerance retains more detail, so advanced keeps the most points
// and basic the fewest.
type Level string

const (
	LevelBasic    Level = "basic"
	LevelMedium   Level = "medium"
	LevelAdvanced Level = "advanced"
)

// Douglas-Peucker tolerances in meters per level. Derived from the legacy
// degree-based tolerances (0.0005 / 0.0002 / 0.0001) at ~111.32 km per
// degree, after moving all deviation checks to meters.
const (
	epsilonBasic    = 55.0
	epsilonMedium   = 22.0
	epsilonAdvanced = 11.0
)

// ParseLevel converts a string into a Level, failing fast on anything
// unrecognized instead of silently defaulting.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelBasic, LevelMedium, LevelAdvanced:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Valid reports whether the level is one of the three known values.
func (l Level) Valid() bool {
	switch l {
	case LevelBasic, LevelMedium, LevelAdvanced:
		return true
	}
	return false
}

// Epsilon returns the simplification tolerance in meters for the level.
// Unknown levels get the medium tolerance; Optimize rejects them before
// this is ever consulted.
func (l Level) Epsilon() float64 {
	switch l {
	case LevelAdvanced:
		return epsilonAdvanced
	case LevelBasic:
		return epsilonBasic
	default:
		return epsilonMedium
	}
}
