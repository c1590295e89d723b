// SPDX-License-Identifier: MIT

package operator

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"oscrom/grid"
)

// Potential builds the diagonal N×N harmonic potential operator with
// entries x_i² on the diagonal.
//
// Errors: ErrGridTooSmall.
// Complexity: O(n) time and memory.
func Potential(g grid.Grid) (*mat.DiagDense, error) {
	return PotentialFunc(g, func(x float64) float64 { return x * x })
}

// PotentialFunc builds the diagonal N×N potential operator with entries
// V(x_i) on the diagonal, for an arbitrary finite-valued V.
//
// Stage 1 (Validate): g must hold at least grid.MinPoints samples and V
// must be non-nil.
// Stage 2 (Assemble): evaluate V at every coordinate in ascending order,
// rejecting NaN/±Inf eagerly so a bad potential fails at build time, not
// deep inside an eigensolve.
//
// Errors: ErrGridTooSmall, ErrNilPotential, ErrNonFinite.
// Determinism: fixed i-ascending evaluation order.
// Complexity: O(n) time and memory.
func PotentialFunc(g grid.Grid, v func(x float64) float64) (*mat.DiagDense, error) {
	if err := validateGrid(g); err != nil {
		return nil, operatorErrorf(opPotential, err)
	}
	if v == nil {
		return nil, operatorErrorf(opPotential, ErrNilPotential)
	}

	xs := g.Points()
	diag := make([]float64, len(xs))
	for i, x := range xs {
		val := v(x)
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, operatorErrorf(opPotential, ErrNonFinite)
		}
		diag[i] = val
	}

	return mat.NewDiagDense(len(diag), diag), nil
}
