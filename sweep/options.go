// SPDX-License-Identifier: MIT

// Package sweep: functional configuration for the sweep runner.
// Defaults are documented constants; WithX constructors panic only on
// nonsensical values (programmer error); gatherOptions resolves the
// effective configuration deterministically.

package sweep

import (
	"go.uber.org/zap"

	"oscrom/rom"
)

// DefaultWorkers bounds sweep concurrency. Zero means "one worker per
// available CPU" (resolved at run time via GOMAXPROCS).
const DefaultWorkers = 0

// Internal panic messages (no magic strings).
const (
	panicWorkersInvalid = "sweep: WithWorkers: k must be >= 1"
	panicLoggerNil      = "sweep: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers int         // 0 = GOMAXPROCS; otherwise >= 1
	log     *zap.Logger // never nil after gatherOptions
	romOpts []rom.Option
}

// WithWorkers caps the number of concurrently evaluated cases.
// k must be >= 1 (panic otherwise). Complexity: O(1).
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = k }
}

// WithLogger routes sweep progress through the given zap logger.
// The logger must be non-nil (panic otherwise); use zap.NewNop() to
// silence explicitly. Complexity: O(1).
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.log = log }
}

// WithROMOptions forwards basis-truncation options (rom.WithRank,
// rom.WithEnergyTolerance) to the training stage. Complexity: O(1).
func WithROMOptions(opts ...rom.Option) Option {
	return func(o *options) { o.romOpts = append(o.romOpts, opts...) }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; deterministic for a given sequence.
func gatherOptions(user ...Option) options {
	o := options{
		workers: DefaultWorkers,
		log:     zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
