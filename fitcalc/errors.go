package fitcalc

import "errors"

var (
	// ErrInvalidMeasurement is returned for a physical quantity that is zero,
	// negative, NaN or infinite.
	ErrInvalidMeasurement = errors.New("invalid measurement")
	// ErrInvalidMetrics is returned when UserMetrics cannot feed a BMR formula.
	ErrInvalidMetrics = errors.New("invalid metrics")
	// ErrUnknownExercise is returned when a catalog lookup misses. Callers are
	// expected to fall back to a manually entered calorie value.
	ErrUnknownExercise = errors.New("unknown exercise")
)
