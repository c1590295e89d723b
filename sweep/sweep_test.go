package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"oscrom/grid"
	"oscrom/rom"
	"oscrom/sweep"
)

// TestMain verifies no goroutine escapes the concurrent sweep machinery.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// smallPlan returns a sweep plan sized for fast tests.
func smallPlan() sweep.Plan {
	return sweep.Plan{
		XMax:  8.0,
		N:     40,
		Train: []float64{0.5, 1, 2, 4},
		Eval:  sweep.Span(0.8, 3.5, 6),
	}
}

// TestRun_EmptyParameterSets verifies plan validation fires before any work.
func TestRun_EmptyParameterSets(t *testing.T) {
	p := smallPlan()
	p.Train = nil
	_, err := sweep.Run(context.Background(), p)
	assert.ErrorIs(t, err, sweep.ErrNoTrainPoints)

	p = smallPlan()
	p.Eval = nil
	_, err = sweep.Run(context.Background(), p)
	assert.ErrorIs(t, err, sweep.ErrNoEvalPoints)
}

// TestRun_BadGridPropagates verifies grid sentinels surface through Run.
func TestRun_BadGridPropagates(t *testing.T) {
	p := smallPlan()
	p.N = 4
	_, err := sweep.Run(context.Background(), p)
	assert.ErrorIs(t, err, grid.ErrInvalidArgument)
}

// TestRun_TableShape verifies one case per evaluation point, sorted by α,
// with sensible aggregates.
func TestRun_TableShape(t *testing.T) {
	res, err := sweep.Run(context.Background(), smallPlan(), sweep.WithWorkers(2))
	require.NoError(t, err)

	require.Len(t, res.Cases, 6)
	assert.Equal(t, 4, res.Modes)
	assert.Positive(t, res.TrainTime)

	for i, c := range res.Cases {
		if i > 0 {
			assert.Greater(t, c.Alpha, res.Cases[i-1].Alpha, "cases must be sorted by alpha")
		}
		assert.Positive(t, c.FullTime, "full solve must be timed")
		assert.Positive(t, c.ReducedTime, "reduced solve must be timed")
		assert.GreaterOrEqual(t, res.MaxAbsError, c.AbsError, "max aggregate must dominate")
	}
	assert.LessOrEqual(t, res.MeanAbsError, res.MaxAbsError)
}

// TestRun_ReducedTracksFull verifies the emulator stays close to the full
// solver across the evaluated range when trained on a bracketing set.
func TestRun_ReducedTracksFull(t *testing.T) {
	res, err := sweep.Run(context.Background(), smallPlan())
	require.NoError(t, err)

	assert.Less(t, res.MaxAbsError, 1e-3, "reduced model must track the full solver")
	for _, c := range res.Cases {
		assert.GreaterOrEqual(t, c.ReducedValue, c.FullValue-1e-10,
			"variational bound at alpha=%g", c.Alpha)
	}
}

// TestRun_DeterministicAcrossWorkerCounts verifies the result table does
// not depend on concurrency: same values with 1 and 4 workers.
func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	serial, err := sweep.Run(context.Background(), smallPlan(), sweep.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := sweep.Run(context.Background(), smallPlan(), sweep.WithWorkers(4))
	require.NoError(t, err)

	require.Len(t, parallel.Cases, len(serial.Cases))
	for i := range serial.Cases {
		assert.Equal(t, serial.Cases[i].Alpha, parallel.Cases[i].Alpha)
		assert.Equal(t, serial.Cases[i].FullValue, parallel.Cases[i].FullValue)
		assert.Equal(t, serial.Cases[i].ReducedValue, parallel.Cases[i].ReducedValue)
	}
}

// TestRun_Cancellation verifies a done context aborts the sweep with the
// context error and no partial result.
func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before any case starts

	res, err := sweep.Run(ctx, smallPlan())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Cases, "no partial results on failure")
}

// TestRun_ROMOptionsForwarded verifies rank truncation reaches the
// training stage.
func TestRun_ROMOptionsForwarded(t *testing.T) {
	res, err := sweep.Run(context.Background(), smallPlan(),
		sweep.WithROMOptions(rom.WithRank(2)))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Modes)
}

// TestRun_WithLogger verifies a real logger is accepted (smoke test; the
// sweep must not depend on logging side effects).
func TestRun_WithLogger(t *testing.T) {
	res, err := sweep.Run(context.Background(), smallPlan(),
		sweep.WithLogger(zap.NewNop()), sweep.WithWorkers(2))
	require.NoError(t, err)
	assert.Len(t, res.Cases, 6)
}

// TestOptions_PanicOnNonsense verifies option constructors reject
// programmer errors loudly.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { sweep.WithWorkers(0) })
	assert.Panics(t, func() { sweep.WithLogger(nil) })
	assert.Panics(t, func() { sweep.Span(1, 2, 0) })
}

// TestSpan_Endpoints verifies the linear helper hits both endpoints and
// the degenerate n=1 case.
func TestSpan_Endpoints(t *testing.T) {
	xs := sweep.Span(0.5, 4.0, 8)
	require.Len(t, xs, 8)
	assert.Equal(t, 0.5, xs[0])
	assert.Equal(t, 4.0, xs[7])

	assert.Equal(t, []float64{2.5}, sweep.Span(2.5, 9.0, 1))
}
