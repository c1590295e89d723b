// Package solver computes eigenpairs of the discretized oscillator
// Hamiltonian H = −D2 + α·V via a one-shot dense symmetric
// eigendecomposition. This is the high-fidelity ("truth") model that the
// reduced-order emulator in package rom is measured against.
//
// 🚀 What is a ground state?
//
//	The eigenvector of H associated with its smallest eigenvalue — the
//	lowest-energy wavefunction of the oscillator. For the continuum
//	H = −d²/dx² + α·x² the spectrum is √α·(2k+1), so the ground energy
//	is √α; on a fine enough grid GroundState reproduces it up to
//	discretization error.
//
// ✨ Contract:
//   - Eigenvalues come back sorted ascending (the standard symmetric
//     eigensolver contract); GroundState takes index 0.
//   - The eigenvector has unit 2-norm with the sign the decomposition
//     produced. The overall sign is arbitrary — do not compare it raw.
//   - Non-convergence of the underlying decomposition is surfaced as
//     ErrNonConvergence, never swallowed. It is rare for dense symmetric
//     problems but it is part of the error surface.
//   - Solves are pure: no hidden state, identical inputs give identical
//     outputs.
//
// ⚙️ Usage:
//
//	pair, err := solver.GroundState(2.0, d2, v)
//	if err != nil { ... }
//	fmt.Println(pair.Value) // ≈ √2 ≈ 1.414 for α=2 on a fine grid
package solver
