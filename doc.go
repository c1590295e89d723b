// Package oscrom is a reduced-order-model (RBM-style) emulator toolkit for
// the 1-D quantum harmonic oscillator eigenproblem.
//
// 🚀 What is oscrom?
//
//	A small, deterministic library that takes the time-independent
//	Schrödinger equation on a fine grid and makes it cheap to sweep:
//		• High-fidelity solves: finite-difference Hamiltonian + dense
//		  symmetric eigendecomposition (the "truth" model)
//		• Snapshots: ground states collected over a training set of
//		  oscillator stiffnesses α
//		• POD basis: truncated SVD of the snapshot matrix
//		• Galerkin projection: the N×N operator collapsed to a k×k
//		  reduced eigenproblem (k ≪ N)
//		• Sweeps: accuracy/runtime comparison of reduced vs. full
//		  solves across a parameter range, run in parallel
//
// ✨ Why choose oscrom?
//
//   - Explicit numerics – stencil coefficients and boundary policy are
//     spelled out in code, not hidden behind convenience calls
//   - Rock-solid error surface – sentinel errors, errors.Is everywhere,
//     no panics on user input
//   - Honest results – non-convergence is reported, never swallowed
//
// Everything is organized under five subpackages:
//
//	grid/     — immutable uniform 1-D grid on [−xMax, xMax]
//	operator/ — 5-point second-derivative stencil, potential, Hamiltonian
//	solver/   — dense symmetric eigensolver (ground state & spectrum)
//	rom/      — snapshots, POD basis, projected reduced eigenproblem
//	sweep/    — parallel accuracy/timing comparison, result table
//
// Quick sketch of the pipeline:
//
//	grid ──▶ operator ──▶ solver ──▶ rom.Snapshots ──▶ rom.Basis
//	                         │                            │
//	                         └────────── sweep ◀──────────┘
//
// Dive into the package docs and example tests for full walkthroughs.
package oscrom
