// Package operator builds the discretized pieces of the 1-D Hamiltonian
// H = −D2 + α·V on a uniform grid.
//
// 🚀 What lives here?
//
//   - SecondDerivative — dense symmetric N×N approximation of d²/dx² via
//     the 5-point central stencil (−1/12, 4/3, −5/2, 4/3, −1/12)/Δx² on
//     diagonals −2..+2. Banded, symmetric, bandwidth 2.
//   - Potential / PotentialFunc — diagonal N×N operator with V(x_i) on the
//     diagonal; Potential uses the harmonic V(x) = x².
//   - Hamiltonian — assembles H = −D2 + α·V for a stiffness α > 0;
//     symmetric by construction since D2 is symmetric and V is diagonal.
//
// Boundary policy (intentional, do not "fix"):
//
//	The first and last two rows of the stencil are plainly truncated —
//	coefficients that would reach outside the grid are dropped, with no
//	reflective or periodic closure. This matches the reduced-order
//	boundary policy of the original model and under-orders accuracy near
//	the edges. For the oscillator the eigenfunctions decay to ~0 well
//	inside the domain, so the truncation error is negligible when xMax is
//	chosen large enough.
//
// All builders are pure: they validate fail-fast, allocate a fresh gonum
// container, fill it with explicit indexed loops in a fixed order, and
// never mutate their inputs.
package operator
