// SPDX-License-Identifier: MIT
// Package rom: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the rom
// package. All constructors and solves MUST return these sentinels (or
// propagate operator/solver sentinels) and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in option
// constructors.

package rom

import "errors"

var (
	// ErrEmptyTrainingSet indicates Snapshots was called with no training
	// stiffnesses.
	ErrEmptyTrainingSet = errors.New("rom: empty training set")

	// ErrNilSnapshots indicates a nil snapshot matrix was passed to
	// NewBasis.
	ErrNilSnapshots = errors.New("rom: nil snapshot matrix")

	// ErrRankTooLarge indicates WithRank requested more modes than the
	// snapshot matrix can supply (k > min(N, m)).
	ErrRankTooLarge = errors.New("rom: requested rank exceeds snapshot rank")

	// ErrBasisFactorization indicates the SVD of the snapshot matrix
	// failed to converge.
	ErrBasisFactorization = errors.New("rom: snapshot factorization failed")

	// ErrNilBasis indicates a nil Basis was passed to NewEmulator.
	ErrNilBasis = errors.New("rom: nil basis")

	// ErrDimensionMismatch indicates the operators passed to Solve do not
	// match the grid size the basis was trained on.
	ErrDimensionMismatch = errors.New("rom: operator order does not match basis grid size")
)
