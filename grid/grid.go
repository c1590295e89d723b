package grid

import (
	"math"
)

// Build constructs a uniform grid of n points on [−xMax, xMax].
//
// Stage 1 (Validate): xMax must be finite and > 0; n must be >= MinPoints.
// Stage 2 (Prepare): compute Δx = 2·xMax/(n−1) and precompute coordinates.
// Stage 3 (Finalize): return the immutable Grid value.
//
// The last point is pinned to +xMax exactly rather than accumulated, so the
// endpoints are symmetric to the bit regardless of n.
//
// Errors: ErrNonPositiveDomain, ErrTooFewPoints (both wrap ErrInvalidArgument).
// Complexity: O(n) time and memory.
func Build(xMax float64, n int) (Grid, error) {
	// Validate the domain half-width.
	if math.IsNaN(xMax) || math.IsInf(xMax, 0) || xMax <= 0 {
		return Grid{}, ErrNonPositiveDomain
	}
	// Validate the point count against the stencil minimum.
	if n < MinPoints {
		return Grid{}, ErrTooFewPoints
	}

	// Precompute coordinates once; every later access reads this slice.
	dx := 2 * xMax / float64(n-1)
	points := make([]float64, n)
	for i := 0; i < n; i++ {
		points[i] = -xMax + float64(i)*dx
	}
	points[n-1] = xMax // pin the right endpoint exactly

	return Grid{xMax: xMax, n: n, dx: dx, points: points}, nil
}

// N returns the number of sample points.
// Complexity: O(1).
func (g Grid) N() int { return g.n }

// XMax returns the half-width of the domain.
// Complexity: O(1).
func (g Grid) XMax() float64 { return g.xMax }

// Dx returns the uniform spacing Δx = 2·xMax/(n−1).
// Complexity: O(1).
func (g Grid) Dx() float64 { return g.dx }

// Point returns the coordinate of sample i.
// Returns ErrIndexOutOfRange when i is outside [0, N).
// Complexity: O(1).
func (g Grid) Point(i int) (float64, error) {
	if i < 0 || i >= g.n {
		return 0, ErrIndexOutOfRange
	}

	return g.points[i], nil
}

// Points returns a fresh copy of all coordinates in ascending order.
// Callers may mutate the returned slice freely; the Grid stays immutable.
// Complexity: O(n) time and memory.
func (g Grid) Points() []float64 {
	out := make([]float64, g.n)
	copy(out, g.points)

	return out
}
