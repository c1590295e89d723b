// SPDX-License-Identifier: MIT
// Package: operator
//
// Purpose:
//  - Provide a single, canonical source of truth for the validation checks
//    shared by the operator builders.
//  - Keep builders minimal by delegating grid/nil/shape checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap
//    uniformly with operatorErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package operator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"oscrom/grid"
)

// operatorErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only with err != nil.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateGrid ensures g can host at least one full stencil row.
// The zero-value Grid has N()==0 and is rejected here.
// Complexity: O(1).
func validateGrid(g grid.Grid) error {
	if g.N() < grid.MinPoints {
		return ErrGridTooSmall
	}

	return nil
}

// validateOperands ensures D2 and V are non-nil and have equal order.
// Complexity: O(1).
func validateOperands(d2 *mat.SymDense, v *mat.DiagDense) error {
	if d2 == nil || v == nil {
		return ErrNilOperator
	}
	d2n, _ := d2.Dims()
	vn, _ := v.Dims()
	if d2n != vn {
		return ErrDimensionMismatch
	}

	return nil
}

// validateAlpha ensures the stiffness coefficient is positive and finite.
// Complexity: O(1).
func validateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || alpha <= 0 {
		return ErrNonPositiveAlpha
	}

	return nil
}
