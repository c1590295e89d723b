// Package rom implements the reduced-order model: a reduced-basis emulator
// for the oscillator ground-state problem.
//
// 🚀 The pipeline:
//
//  1. Snapshots — solve the full-grid problem for a handful of training
//     stiffnesses α; stack the ground states as columns of an N×m matrix.
//  2. Basis — thin SVD of the snapshot matrix; keep the leading k left
//     singular vectors (principal components). Truncation is controlled by
//     WithRank and/or WithEnergyTolerance.
//  3. Emulator — for a new α, project H = −D2 + α·V onto the basis:
//     Hr = Bᵀ·H·B is a tiny k×k symmetric matrix. Solve its eigenproblem,
//     lift the lowest eigenvector back to the grid as B·y, renormalize.
//
// Because the POD basis is orthonormal (columns of U from the SVD), the
// reduced problem is a standard symmetric eigenproblem — no mass matrix,
// no generalized solve.
//
// ✨ Why bother?
//
//	The full solve is O(N³) per α. The reduced solve is O(N²·k) for the
//	projection plus O(k³) for the eigenproblem, with k typically in the
//	single digits. Across a parameter sweep the savings compound; see
//	package sweep for the accuracy/runtime comparison.
//
// ⚙️ Usage:
//
//	snaps, _ := rom.Snapshots([]float64{0.5, 1, 2, 4}, d2, v)
//	basis, _ := rom.NewBasis(snaps, rom.WithRank(4))
//	em, _ := rom.NewEmulator(basis)
//	pair, _ := em.Solve(3.3, d2, v) // α between training points
package rom
