// SPDX-License-Identifier: MIT

package rom

import (
	"gonum.org/v1/gonum/mat"
)

// Basis is a truncated POD (principal-component) basis extracted from a
// snapshot matrix. Columns are orthonormal left singular vectors of the
// snapshots; immutable once built.
type Basis struct {
	vectors  *mat.Dense // N×k, orthonormal columns
	singular []float64  // all min(N,m) singular values, descending
	gridSize int        // N, the fine-grid dimension
}

// NewBasis factorizes the snapshot matrix with a thin SVD and truncates
// the left singular vectors into a reduced basis.
//
// Stage 1 (Validate): snapshots non-nil; resolve options.
// Stage 2 (Factorize): thin SVD; singular values arrive descending per the
// SVD contract. Failure to converge surfaces as ErrBasisFactorization.
// Stage 3 (Truncate): energy tolerance first (smallest k with retained
// energy >= 1−tol), then the hard rank cap. WithRank beyond min(N, m) is
// ErrRankTooLarge.
//
// Errors: ErrNilSnapshots, ErrRankTooLarge, ErrBasisFactorization.
// Complexity: Time O(N·m²) for the thin SVD, Space O(N·m).
func NewBasis(snapshots *mat.Dense, opts ...Option) (*Basis, error) {
	if snapshots == nil {
		return nil, romErrorf(opNewBasis, ErrNilSnapshots)
	}
	o := gatherOptions(opts...)

	n, m := snapshots.Dims()
	maxRank := min(n, m)
	if o.rank > maxRank {
		return nil, romErrorf(opNewBasis, ErrRankTooLarge)
	}

	var svd mat.SVD
	if ok := svd.Factorize(snapshots, mat.SVDThin); !ok {
		return nil, romErrorf(opNewBasis, ErrBasisFactorization)
	}
	sigma := svd.Values(nil) // descending

	k := truncationRank(sigma, o)
	var u mat.Dense
	svd.UTo(&u)

	// Materialize the kept columns into an independent N×k matrix so the
	// Basis does not alias SVD workspace.
	vectors := mat.NewDense(n, k, nil)
	vectors.Copy(u.Slice(0, n, 0, k))

	return &Basis{vectors: vectors, singular: sigma, gridSize: n}, nil
}

// truncationRank resolves the kept mode count from the singular values and
// the effective options. Deterministic: fixed ascending scan.
func truncationRank(sigma []float64, o options) int {
	k := len(sigma)

	// Energy criterion: smallest k with cumulative energy >= (1-tol)*total.
	if o.energyTol > 0 {
		total := 0.0
		for _, s := range sigma {
			total += s * s
		}
		cum := 0.0
		for i, s := range sigma {
			cum += s * s
			if cum >= (1-o.energyTol)*total {
				k = i + 1

				break
			}
		}
	}

	// Hard cap wins if tighter. rank==0 means no cap.
	if o.rank > 0 && o.rank < k {
		k = o.rank
	}

	return k
}

// Rank returns the number of retained modes k.
// Complexity: O(1).
func (b *Basis) Rank() int {
	_, k := b.vectors.Dims()

	return k
}

// GridSize returns the fine-grid dimension N the basis was trained on.
// Complexity: O(1).
func (b *Basis) GridSize() int { return b.gridSize }

// Vectors returns a deep copy of the N×k basis matrix. Callers may mutate
// the copy freely; the Basis stays immutable.
// Complexity: O(N·k).
func (b *Basis) Vectors() *mat.Dense {
	n, k := b.vectors.Dims()
	out := mat.NewDense(n, k, nil)
	out.Copy(b.vectors)

	return out
}

// SingularValues returns a copy of all snapshot singular values in
// descending order (not just the retained ones), useful for diagnosing how
// much energy a tighter truncation would discard.
// Complexity: O(min(N,m)).
func (b *Basis) SingularValues() []float64 {
	out := make([]float64, len(b.singular))
	copy(out, b.singular)

	return out
}
