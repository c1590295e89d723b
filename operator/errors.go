// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// operator package. All builders MUST return these sentinels and tests MUST
// check them via errors.Is. No builder panics on user-triggered conditions.

package operator

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "operator: ..." for consistency and easy
// grepping across logs. Sentinels are returned wrapped with an operation
// tag via operatorErrorf at the facade; callers match with errors.Is.

var (
	// ErrGridTooSmall indicates a grid with fewer than grid.MinPoints
	// samples (including the unusable zero-value Grid).
	ErrGridTooSmall = errors.New("operator: grid too small for the 5-point stencil")

	// ErrNilOperator indicates a nil D2 or V matrix was passed to an
	// assembly function.
	ErrNilOperator = errors.New("operator: nil operator matrix")

	// ErrNilPotential indicates a nil potential function.
	ErrNilPotential = errors.New("operator: nil potential function")

	// ErrDimensionMismatch indicates D2 and V have different orders.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")

	// ErrNonPositiveAlpha indicates the stiffness coefficient is <= 0,
	// NaN, or ±Inf. The oscillator model requires a positive finite α.
	ErrNonPositiveAlpha = errors.New("operator: alpha must be positive and finite")

	// ErrNonFinite indicates a potential evaluation produced NaN or ±Inf
	// where finite values are required.
	ErrNonFinite = errors.New("operator: potential value is NaN or Inf")
)
