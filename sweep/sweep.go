// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"oscrom/grid"
	"oscrom/operator"
	"oscrom/rom"
	"oscrom/solver"
)

// Operation name constant for unified error wrapping.
const opRun = "Run"

// sweepErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func sweepErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Span returns n linearly spaced stiffnesses from lo to hi inclusive.
// A convenience for building Plan.Train/Plan.Eval; n must be >= 1
// (panic otherwise — programmer error). n==1 yields just lo.
// Complexity: O(n).
func Span(lo, hi float64, n int) []float64 {
	if n < 1 {
		panic("sweep: Span: n must be >= 1")
	}
	if n == 1 {
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}

// Run executes one accuracy/timing sweep described by the plan.
//
// Stage 1 (Validate): both parameter sets non-empty; grid parameters are
// validated by grid.Build and its sentinels propagate.
// Stage 2 (Train): build D2 and V once, collect snapshots over p.Train,
// extract the basis and wrap it into an emulator; the whole stage is timed
// as Result.TrainTime.
// Stage 3 (Evaluate): every α in p.Eval is an independent task — full
// solve, reduced solve, both timed — run concurrently under an errgroup
// bounded by the worker option. Tasks share only read-only state (the
// operators and the trained emulator), so no locking is needed; each task
// writes its own table slot. A done context stops pending tasks.
// Stage 4 (Aggregate): sort cases by α and fold max/mean absolute error.
//
// Errors: ErrNoTrainPoints, ErrNoEvalPoints, grid.ErrInvalidArgument (via
// grid.Build), plus anything the training stage or a case returns,
// including ctx.Err() on cancellation. No partial results on failure.
// Complexity: Time O(m·n³) training + O(e·n³) evaluation for e cases,
// divided across workers; Space O(n·m + e).
func Run(ctx context.Context, p Plan, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if len(p.Train) == 0 {
		return Result{}, sweepErrorf(opRun, ErrNoTrainPoints)
	}
	if len(p.Eval) == 0 {
		return Result{}, sweepErrorf(opRun, ErrNoEvalPoints)
	}

	g, err := grid.Build(p.XMax, p.N)
	if err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}
	d2, err := operator.SecondDerivative(g)
	if err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}
	v, err := operator.Potential(g)
	if err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}

	// Training stage: snapshots → basis → emulator, timed as one unit.
	trainStart := time.Now()
	snaps, err := rom.Snapshots(p.Train, d2, v)
	if err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}
	basis, err := rom.NewBasis(snaps, o.romOpts...)
	if err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}
	em, err := rom.NewEmulator(basis)
	if err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}
	trainTime := time.Since(trainStart)
	o.log.Info("emulator trained",
		zap.Int("grid", p.N),
		zap.Int("snapshots", len(p.Train)),
		zap.Int("modes", em.Rank()),
		zap.Duration("took", trainTime))

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Evaluation stage: one slot per case, written by exactly one task.
	cases := make([]Case, len(p.Eval))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, alpha := range p.Eval {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			full, err := solver.GroundState(alpha, d2, v)
			if err != nil {
				return fmt.Errorf("full solve alpha=%g: %w", alpha, err)
			}
			fullTime := time.Since(start)

			start = time.Now()
			red, err := em.Solve(alpha, d2, v)
			if err != nil {
				return fmt.Errorf("reduced solve alpha=%g: %w", alpha, err)
			}
			reducedTime := time.Since(start)

			cases[i] = Case{
				Alpha:        alpha,
				FullValue:    full.Value,
				ReducedValue: red.Value,
				AbsError:     math.Abs(red.Value - full.Value),
				FullTime:     fullTime,
				ReducedTime:  reducedTime,
			}
			o.log.Debug("case evaluated",
				zap.Float64("alpha", alpha),
				zap.Float64("abs_error", cases[i].AbsError),
				zap.Duration("full", fullTime),
				zap.Duration("reduced", reducedTime))

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, sweepErrorf(opRun, err)
	}

	// Aggregate into the immutable table.
	sort.Slice(cases, func(i, j int) bool { return cases[i].Alpha < cases[j].Alpha })
	var maxErr, sumErr float64
	for _, c := range cases {
		if c.AbsError > maxErr {
			maxErr = c.AbsError
		}
		sumErr += c.AbsError
	}

	return Result{
		Cases:        cases,
		Modes:        em.Rank(),
		TrainTime:    trainTime,
		MaxAbsError:  maxErr,
		MeanAbsError: sumErr / float64(len(cases)),
	}, nil
}
