// SPDX-License-Identifier: MIT

package operator

import (
	"gonum.org/v1/gonum/mat"
)

// Hamiltonian assembles H = −D2 + α·V into a fresh symmetric matrix.
//
// Stage 1 (Validate): α positive and finite; D2 and V non-nil with equal
// order.
// Stage 2 (Assemble): negate the upper triangle of D2 and add α·V(i,i) on
// the diagonal. V is diagonal, so off-diagonal terms come from D2 alone;
// the result is symmetric by construction.
//
// Inputs are never mutated; identical inputs yield identical outputs.
//
// Errors: ErrNonPositiveAlpha, ErrNilOperator, ErrDimensionMismatch.
// Determinism: fixed i→j (upper triangle) fill order.
// Complexity: O(n²) time and memory.
func Hamiltonian(alpha float64, d2 *mat.SymDense, v *mat.DiagDense) (*mat.SymDense, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, operatorErrorf(opHamiltonian, err)
	}
	if err := validateOperands(d2, v); err != nil {
		return nil, operatorErrorf(opHamiltonian, err)
	}

	n, _ := d2.Dims()
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, -d2.At(i, i)+alpha*v.At(i, i))
		for j := i + 1; j < n; j++ {
			h.SetSym(i, j, -d2.At(i, j))
		}
	}

	return h, nil
}
