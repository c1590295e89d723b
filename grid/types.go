// Package grid defines the Grid value type and sentinel errors
// for the grid subpackage of oscrom.
package grid

import (
	"errors"
	"fmt"
)

// MinPoints is the smallest admissible grid size. The 5-point central
// stencil in package operator needs at least five samples.
const MinPoints = 5

// Sentinel errors for grid construction and access.
var (
	// ErrInvalidArgument is the common ancestor of all bad-parameter errors.
	// errors.Is(err, ErrInvalidArgument) matches every construction failure.
	ErrInvalidArgument = errors.New("grid: invalid argument")

	// ErrTooFewPoints indicates n < MinPoints.
	ErrTooFewPoints = fmt.Errorf("grid: need at least 5 points: %w", ErrInvalidArgument)

	// ErrNonPositiveDomain indicates xMax <= 0 (or non-finite).
	ErrNonPositiveDomain = fmt.Errorf("grid: xMax must be > 0: %w", ErrInvalidArgument)

	// ErrIndexOutOfRange indicates a point index outside [0, N).
	ErrIndexOutOfRange = errors.New("grid: point index out of range")
)

// Grid is a uniform sample grid on [−xMax, xMax]. Immutable once built.
// The zero value is not usable; construct via Build.
type Grid struct {
	xMax   float64   // half-width of the domain
	n      int       // number of sample points, n >= MinPoints
	dx     float64   // spacing, 2*xMax/(n-1)
	points []float64 // precomputed coordinates, length n
}
