// SPDX-License-Identifier: MIT

package rom

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"oscrom/operator"
	"oscrom/solver"
)

// Emulator solves the oscillator ground-state problem in the reduced space
// spanned by a POD basis. Stateless after construction: Solve is a pure
// function of (α, D2, V), safe for concurrent use from multiple goroutines.
type Emulator struct {
	basis *Basis
}

// NewEmulator wraps a basis into a reusable reduced-order solver.
// Errors: ErrNilBasis.
// Complexity: O(1).
func NewEmulator(b *Basis) (*Emulator, error) {
	if b == nil {
		return nil, ErrNilBasis
	}

	return &Emulator{basis: b}, nil
}

// Rank returns the reduced dimension k of the underlying basis.
// Complexity: O(1).
func (e *Emulator) Rank() int { return e.basis.Rank() }

// Solve computes the reduced-order ground-state approximation for α.
//
// Stage 1 (Assemble): build H = −D2 + α·V on the fine grid; operator
// sentinels propagate. The operator order must match the basis grid size.
// Stage 2 (Project): Hr = Bᵀ·H·B, a k×k matrix. H is symmetric and B has
// orthonormal columns, so Hr is symmetric up to rounding; the upper
// triangle is averaged with the lower while packing into the symmetric
// container to keep the reduced solve exactly symmetric.
// Stage 3 (Reduce): dense symmetric eigendecomposition of Hr; the lowest
// eigenvalue approximates the ground energy.
// Stage 4 (Lift): φ = B·y for the lowest reduced eigenvector y, then
// renormalize to unit 2-norm on the fine grid.
//
// Errors: operator.ErrNonPositiveAlpha, operator.ErrNilOperator,
// operator.ErrDimensionMismatch, ErrDimensionMismatch (basis/operator
// order), solver.ErrNonConvergence.
// Complexity: Time O(n²·k + k³), Space O(n·k).
func (e *Emulator) Solve(alpha float64, d2 *mat.SymDense, v *mat.DiagDense) (solver.Eigenpair, error) {
	h, err := operator.Hamiltonian(alpha, d2, v)
	if err != nil {
		return solver.Eigenpair{}, romErrorf(opSolve, err)
	}
	n, _ := h.Dims()
	if n != e.basis.GridSize() {
		return solver.Eigenpair{}, romErrorf(opSolve, ErrDimensionMismatch)
	}
	k := e.basis.Rank()

	// Project: Hr = Bᵀ (H B).
	var hb mat.Dense
	hb.Mul(h, e.basis.vectors) // N×k
	var hrRaw mat.Dense
	hrRaw.Mul(e.basis.vectors.T(), &hb) // k×k

	// Pack into a symmetric container, averaging away rounding skew.
	hr := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		hr.SetSym(i, i, hrRaw.At(i, i))
		for j := i + 1; j < k; j++ {
			hr.SetSym(i, j, (hrRaw.At(i, j)+hrRaw.At(j, i))/2)
		}
	}

	// Reduce: tiny dense symmetric eigenproblem, eigenvalues ascending.
	var es mat.EigenSym
	if ok := es.Factorize(hr, true); !ok {
		return solver.Eigenpair{}, romErrorf(opSolve, solver.ErrNonConvergence)
	}
	var redVecs mat.Dense
	es.VectorsTo(&redVecs)

	y := make([]float64, k)
	mat.Col(y, 0, &redVecs)

	// Lift back to the fine grid and renormalize.
	var phi mat.VecDense
	phi.MulVec(e.basis.vectors, mat.NewVecDense(k, y))
	ground := make([]float64, n)
	copy(ground, phi.RawVector().Data)
	if norm := floats.Norm(ground, 2); norm > 0 {
		floats.Scale(1/norm, ground)
	}

	return solver.Eigenpair{Value: es.Values(nil)[0], Vector: ground}, nil
}
