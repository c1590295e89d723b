// SPDX-License-Identifier: MIT

package operator

import (
	"gonum.org/v1/gonum/mat"

	"oscrom/grid"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opSecondDerivative = "SecondDerivative"
	opPotential        = "Potential"
	opHamiltonian      = "Hamiltonian"
)

// Fourth-order central stencil weights for d²/dx², before the 1/Δx² scale.
// Offsets ±2, ±1, 0 carry (−1/12, 4/3, −5/2, 4/3, −1/12).
const (
	stencilCenter = -5.0 / 2.0
	stencilNear   = 4.0 / 3.0
	stencilFar    = -1.0 / 12.0
)

// SecondDerivative builds the dense symmetric N×N finite-difference
// approximation of d²/dx² on g.
//
// Stage 1 (Validate): g must hold at least grid.MinPoints samples.
// Stage 2 (Assemble): write the upper band (offsets 0, +1, +2) row by row;
// SetSym mirrors each entry, so the result is symmetric by construction.
//
// Boundary rows: entries at offsets that fall outside [0, N) are simply not
// written (plain truncation). See the package doc for why this stays as-is.
//
// Errors: ErrGridTooSmall.
// Determinism: fixed i-ascending fill order.
// Complexity: O(n²) allocation (dense container), O(n) writes.
func SecondDerivative(g grid.Grid) (*mat.SymDense, error) {
	if err := validateGrid(g); err != nil {
		return nil, operatorErrorf(opSecondDerivative, err)
	}

	n := g.N()
	invDx2 := 1.0 / (g.Dx() * g.Dx())
	d2 := mat.NewSymDense(n, nil)

	for i := 0; i < n; i++ {
		d2.SetSym(i, i, stencilCenter*invDx2)
		if i+1 < n {
			d2.SetSym(i, i+1, stencilNear*invDx2)
		}
		if i+2 < n {
			d2.SetSym(i, i+2, stencilFar*invDx2)
		}
	}

	return d2, nil
}
