// Package sweep defines the plan/result types and sentinel errors for the
// accuracy/timing comparison.
package sweep

import (
	"errors"
	"time"
)

// Sentinel errors for sweep validation.
var (
	// ErrNoTrainPoints indicates the plan has no training stiffnesses.
	ErrNoTrainPoints = errors.New("sweep: plan has no training points")
	// ErrNoEvalPoints indicates the plan has no evaluation stiffnesses.
	ErrNoEvalPoints = errors.New("sweep: plan has no evaluation points")
)

// Plan describes one sweep: the discretization and the two parameter sets.
type Plan struct {
	// XMax is the half-width of the grid domain [−XMax, XMax].
	XMax float64
	// N is the number of grid points.
	N int
	// Train holds the stiffnesses used to build the snapshot basis.
	Train []float64
	// Eval holds the stiffnesses compared between full and reduced solves.
	Eval []float64
}

// Case is the outcome of one evaluation stiffness: both ground energies,
// their absolute difference, and the wall time of each solve.
type Case struct {
	Alpha        float64
	FullValue    float64
	ReducedValue float64
	AbsError     float64
	FullTime     time.Duration
	ReducedTime  time.Duration
}

// Result is the immutable outcome of a sweep. Cases are sorted by Alpha
// ascending regardless of evaluation order.
type Result struct {
	// Cases holds one entry per evaluation stiffness.
	Cases []Case
	// Modes is the reduced dimension the emulator was trained to.
	Modes int
	// TrainTime is the wall time of the whole training stage
	// (snapshots + SVD + projection setup).
	TrainTime time.Duration
	// MaxAbsError and MeanAbsError aggregate Case.AbsError.
	MaxAbsError  float64
	MeanAbsError float64
}
