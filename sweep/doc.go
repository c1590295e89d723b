// Package sweep compares the reduced-order emulator against the full-grid
// solver across a range of oscillator stiffnesses, measuring both accuracy
// and runtime.
//
// 🚀 How it works:
//
//  1. Build the grid and the D2/V operators once.
//  2. Train the emulator on Plan.Train (snapshots → POD basis → projection).
//  3. Evaluate every α in Plan.Eval twice — full solve and reduced solve —
//     timing each, and collect one Case per α.
//
// Each evaluation is an independent, side-effect-free computation: the
// operators and the trained emulator are only ever read, so the sweep runs
// the cases concurrently with no locking, joined by an errgroup whose
// limit is set via WithWorkers. Results land in an immutable table sorted
// by α, with max/mean error aggregates.
//
// Cancellation: pass a context; pending cases stop once it is done, and
// Run returns the context error. There are no retries — a failed case
// fails the sweep.
//
// Progress is reported through a zap logger (WithLogger); the default is
// zap.NewNop(), so the package is silent unless asked not to be.
//
// ⚙️ Usage:
//
//	res, err := sweep.Run(ctx, sweep.Plan{
//	  XMax:  10,
//	  N:     150,
//	  Train: []float64{0.5, 1, 2, 4},
//	  Eval:  sweep.Span(0.6, 3.8, 30),
//	}, sweep.WithWorkers(4))
package sweep
