// SPDX-License-Identifier: MIT

package rom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"oscrom/solver"
)

// Operation name constants for unified error wrapping.
const (
	opSnapshots = "Snapshots"
	opNewBasis  = "NewBasis"
	opSolve     = "Emulator.Solve"
)

// romErrorf wraps err with an operation tag, preserving the original error
// via %w. Call only with err != nil.
func romErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Snapshots runs one high-fidelity ground-state solve per training
// stiffness and stacks the resulting wavefunctions as columns of an N×m
// matrix (m = len(alphas)).
//
// Stage 1 (Validate): the training set must be non-empty; per-α validation
// (positivity, shapes) happens inside the solver and propagates.
// Stage 2 (Collect): solve in the given order; column j holds the ground
// state for alphas[j]. Order is preserved so callers can correlate columns
// with training points.
//
// Errors: ErrEmptyTrainingSet, plus anything solver.GroundState returns.
// Complexity: Time O(m·n³), Space O(n·m).
func Snapshots(alphas []float64, d2 *mat.SymDense, v *mat.DiagDense) (*mat.Dense, error) {
	if len(alphas) == 0 {
		return nil, romErrorf(opSnapshots, ErrEmptyTrainingSet)
	}

	var snaps *mat.Dense
	for j, alpha := range alphas {
		pair, err := solver.GroundState(alpha, d2, v)
		if err != nil {
			return nil, romErrorf(opSnapshots, fmt.Errorf("alpha=%g: %w", alpha, err))
		}
		if snaps == nil {
			snaps = mat.NewDense(len(pair.Vector), len(alphas), nil)
		}
		snaps.SetCol(j, pair.Vector)
	}

	return snaps, nil
}
