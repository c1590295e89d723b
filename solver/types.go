// Package solver defines the result types and sentinel errors for the
// dense Hamiltonian eigensolver.
package solver

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrNonConvergence indicates the underlying symmetric
	// eigendecomposition failed to converge. Surfaced, never retried.
	ErrNonConvergence = errors.New("solver: eigendecomposition failed to converge")
)

// Eigenpair is a named (eigenvalue, eigenvector) result. The vector has
// unit 2-norm; its overall sign is whatever the decomposition produced.
// A named struct avoids the positional-field ambiguity of returning a
// bare pair.
type Eigenpair struct {
	// Value is the eigenvalue (ground-state energy for GroundState).
	Value float64
	// Vector is the associated eigenvector sampled on the grid, length N.
	Vector []float64
}
