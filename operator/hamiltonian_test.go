package operator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oscrom/grid"
	"oscrom/operator"
)

// TestHamiltonian_Assembly verifies H = −D2 + α·V entry by entry.
func TestHamiltonian_Assembly(t *testing.T) {
	g, err := grid.Build(3.0, 7)
	require.NoError(t, err)
	d2, err := operator.SecondDerivative(g)
	require.NoError(t, err)
	v, err := operator.Potential(g)
	require.NoError(t, err)

	const alpha = 2.5
	h, err := operator.Hamiltonian(alpha, d2, v)
	require.NoError(t, err)

	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := -d2.At(i, j)
			if i == j {
				want += alpha * v.At(i, i)
			}
			assert.InDelta(t, want, h.At(i, j), 1e-12, "entry (%d,%d)", i, j)
		}
	}
}

// TestHamiltonian_Symmetry verifies the assembled H is symmetric.
func TestHamiltonian_Symmetry(t *testing.T) {
	g, err := grid.Build(5.0, 12)
	require.NoError(t, err)
	d2, err := operator.SecondDerivative(g)
	require.NoError(t, err)
	v, err := operator.Potential(g)
	require.NoError(t, err)

	h, err := operator.Hamiltonian(1.0, d2, v)
	require.NoError(t, err)

	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, h.At(j, i), h.At(i, j), "asymmetry at (%d,%d)", i, j)
		}
	}
}

// TestHamiltonian_DimensionMismatch verifies operators of different orders
// are rejected.
func TestHamiltonian_DimensionMismatch(t *testing.T) {
	gA, err := grid.Build(5.0, 8)
	require.NoError(t, err)
	gB, err := grid.Build(5.0, 9)
	require.NoError(t, err)

	d2, err := operator.SecondDerivative(gA)
	require.NoError(t, err)
	v, err := operator.Potential(gB)
	require.NoError(t, err)

	_, err = operator.Hamiltonian(1.0, d2, v)
	assert.ErrorIs(t, err, operator.ErrDimensionMismatch)
}

// TestHamiltonian_NilOperands verifies nil D2 or V is rejected.
func TestHamiltonian_NilOperands(t *testing.T) {
	g, err := grid.Build(5.0, 8)
	require.NoError(t, err)
	d2, err := operator.SecondDerivative(g)
	require.NoError(t, err)
	v, err := operator.Potential(g)
	require.NoError(t, err)

	_, err = operator.Hamiltonian(1.0, nil, v)
	assert.ErrorIs(t, err, operator.ErrNilOperator)
	_, err = operator.Hamiltonian(1.0, d2, nil)
	assert.ErrorIs(t, err, operator.ErrNilOperator)
}

// TestHamiltonian_BadAlpha verifies non-positive and non-finite stiffness
// values are rejected.
func TestHamiltonian_BadAlpha(t *testing.T) {
	g, err := grid.Build(5.0, 8)
	require.NoError(t, err)
	d2, err := operator.SecondDerivative(g)
	require.NoError(t, err)
	v, err := operator.Potential(g)
	require.NoError(t, err)

	for _, alpha := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = operator.Hamiltonian(alpha, d2, v)
		assert.ErrorIs(t, err, operator.ErrNonPositiveAlpha, "alpha=%v", alpha)
	}
}
