package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"oscrom/grid"
	"oscrom/operator"
	"oscrom/solver"
)

// benchmarkGroundState runs the full-grid solve on an n-point grid.
// It resets the timer after operator assembly so only the solve is measured.
func benchmarkGroundState(b *testing.B, n int) {
	g, err := grid.Build(10.0, n)
	require.NoError(b, err)
	d2, err := operator.SecondDerivative(g)
	require.NoError(b, err)
	var v *mat.DiagDense
	v, err = operator.Potential(g)
	require.NoError(b, err)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = solver.GroundState(2.0, d2, v); err != nil {
			b.Fatalf("GroundState failed: %v", err)
		}
	}
}

// BenchmarkGroundState_Small benchmarks a 50-point grid.
func BenchmarkGroundState_Small(b *testing.B) { benchmarkGroundState(b, 50) }

// BenchmarkGroundState_Medium benchmarks a 150-point grid (the standard
// scenario size).
func BenchmarkGroundState_Medium(b *testing.B) { benchmarkGroundState(b, 150) }

// BenchmarkGroundState_Large benchmarks a 400-point grid, where the O(n³)
// decomposition dominates and the reduced model pays off.
func BenchmarkGroundState_Large(b *testing.B) { benchmarkGroundState(b, 400) }
