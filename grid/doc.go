// Package grid provides the immutable uniform 1-D sample grid that every
// operator and solve in oscrom is built on.
//
// A Grid covers the symmetric interval [−xMax, xMax] with n equally spaced
// points, so the spacing is Δx = 2·xMax/(n−1). The grid is constructed once
// per run via Build and never mutated afterward; operators derive from it
// deterministically.
//
// The minimum size is MinPoints (5): the second-derivative stencil in
// package operator reaches two neighbors to each side, and anything smaller
// cannot host a single full stencil row.
//
// ⚙️ Usage:
//
//	g, err := grid.Build(10.0, 150)
//	if err != nil {
//	  // handle ErrTooFewPoints / ErrNonPositiveDomain
//	}
//	dx := g.Dx()       // uniform spacing
//	xs := g.Points()   // fresh copy of all coordinates
//
// All failure modes wrap ErrInvalidArgument, so a single errors.Is catches
// every bad-parameter case.
package grid
