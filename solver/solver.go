package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"oscrom/operator"
)

// Operation name constants for unified error wrapping.
const (
	opGroundState = "GroundState"
	opSpectrum    = "Spectrum"
)

// solverErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// GroundState assembles H = −D2 + α·V and returns its lowest eigenpair.
//
// Stage 1 (Assemble): operator.Hamiltonian validates α, nil operands and
// shapes; its sentinels propagate unchanged through errors.Is.
// Stage 2 (Decompose): full symmetric eigendecomposition with
// eigenvectors; eigenvalues are sorted ascending by contract, so index 0
// is the ground state.
// Stage 3 (Extract): copy out eigenvector column 0. It arrives with unit
// 2-norm and an arbitrary overall sign; both are passed through as-is.
//
// Side effects: none; pure function of its inputs.
//
// Errors: operator.ErrNonPositiveAlpha, operator.ErrNilOperator,
// operator.ErrDimensionMismatch, ErrNonConvergence.
// Complexity: Time O(n³), Space O(n²).
func GroundState(alpha float64, d2 *mat.SymDense, v *mat.DiagDense) (Eigenpair, error) {
	h, err := operator.Hamiltonian(alpha, d2, v)
	if err != nil {
		return Eigenpair{}, solverErrorf(opGroundState, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return Eigenpair{}, solverErrorf(opGroundState, ErrNonConvergence)
	}

	n, _ := h.Dims()
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	ground := make([]float64, n)
	mat.Col(ground, 0, &vecs)

	return Eigenpair{Value: es.Values(nil)[0], Vector: ground}, nil
}

// Spectrum assembles H = −D2 + α·V and returns the full eigendecomposition:
// all eigenvalues sorted ascending and the matrix whose column j is the
// eigenvector of eigenvalue j.
//
// Used by tests (brute-force minimum check) and by rom snapshotting; the
// contract otherwise matches GroundState.
//
// Errors: operator.ErrNonPositiveAlpha, operator.ErrNilOperator,
// operator.ErrDimensionMismatch, ErrNonConvergence.
// Complexity: Time O(n³), Space O(n²).
func Spectrum(alpha float64, d2 *mat.SymDense, v *mat.DiagDense) ([]float64, *mat.Dense, error) {
	h, err := operator.Hamiltonian(alpha, d2, v)
	if err != nil {
		return nil, nil, solverErrorf(opSpectrum, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, nil, solverErrorf(opSpectrum, ErrNonConvergence)
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return es.Values(nil), &vecs, nil
}
