package optimizer

import "errors"

// Sentinel errors. All are recoverable from the caller's perspective: the
// documented policy is to fall back to a coarser level, then to the
// unmodified input, before surfacing failure to the end user. That ladder
// lives in the service layer, never inside the engine.
var (
	// ErrEmptyInput is returned when an optimization run receives no points.
	ErrEmptyInput = errors.New("no track points supplied")

	// ErrInsufficientPoints signals that an operation needs more points than
	// it was given. Callers treat it as "skip optimization", not a failure.
	ErrInsufficientPoints = errors.New("not enough track points")

	// ErrInvalidLevel is returned for an unrecognized optimization level.
	ErrInvalidLevel = errors.New("unknown optimization level")
)
