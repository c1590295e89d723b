// SPDX-License-Identifier: MIT

// Package rom: functional configuration for basis truncation.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package rom

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultRank keeps every mode the snapshots can supply. A value of 0
	// means "no hard cap"; truncation is then driven by the energy
	// tolerance alone.
	DefaultRank = 0

	// DefaultEnergyTolerance keeps all singular-value energy. Retained
	// energy must reach at least 1−tol, so tol=0 disables energy-based
	// truncation.
	DefaultEnergyTolerance = 0.0
)

// Internal panic messages (no magic strings).
const (
	panicRankInvalid      = "rom: WithRank: k must be >= 1"
	panicEnergyTolInvalid = "rom: WithEnergyTolerance: tol must be finite in [0, 1)"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error);
// data-dependent failures (k > min(N, m)) surface as sentinel errors from
// NewBasis instead.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	rank      int     // 0 = no hard cap; otherwise >= 1
	energyTol float64 // in [0, 1); 0 disables energy truncation
}

// WithRank caps the basis at k modes.
//
// k must be >= 1 (panic otherwise — that is a programmer error). Whether k
// exceeds what the snapshots can supply depends on the data, so that case
// is reported by NewBasis as ErrRankTooLarge rather than a panic.
// Complexity: O(1).
func WithRank(k int) Option {
	if k < 1 {
		panic(panicRankInvalid)
	}

	return func(o *options) { o.rank = k }
}

// WithEnergyTolerance truncates the basis to the smallest k whose retained
// singular-value energy Σᵢ<ₖ σᵢ² / Σ σᵢ² is at least 1−tol.
//
// tol must be finite in [0, 1) (panic otherwise). tol=0 keeps everything;
// a typical working value is 1e-8..1e-12 for double-precision snapshots.
// Complexity: O(1).
func WithEnergyTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicEnergyTolInvalid)
	}

	return func(o *options) { o.energyTol = tol }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. Last-writer-wins semantics; deterministic for a given sequence.
func gatherOptions(user ...Option) options {
	o := options{
		rank:      DefaultRank,
		energyTol: DefaultEnergyTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
