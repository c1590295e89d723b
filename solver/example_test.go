package solver_test

import (
	"fmt"

	"oscrom/grid"
	"oscrom/operator"
	"oscrom/solver"
)

// ExampleGroundState demonstrates the full high-fidelity path: grid →
// operators → lowest eigenpair, for the standard α=2 oscillator. The
// continuum ground energy is √2 ≈ 1.4142.
func ExampleGroundState() {
	g, err := grid.Build(10.0, 150)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d2, err := operator.SecondDerivative(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, err := operator.Potential(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pair, err := solver.GroundState(2.0, d2, v)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("ground energy ≈ %.3f\n", pair.Value)
	fmt.Printf("vector length = %d\n", len(pair.Vector))
	// Output:
	// ground energy ≈ 1.414
	// vector length = 150
}
