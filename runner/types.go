package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/explorer"
	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/solver"
)

// Sentinel errors for runs.
var (
	// ErrNilRobot is returned when New receives a nil robot.
	ErrNilRobot = errors.New("runner: robot is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("runner: invalid option supplied")
)

// Robot is everything a run needs from the machine.
type Robot interface {
	explorer.Driver
	solver.Executor
}

// Phase names a stage of a run.
type Phase string

const (
	PhaseMap     Phase = "map"
	PhaseSolve   Phase = "solve"
	PhaseExecute Phase = "execute"
)

// Option configures a Runner.
type Option func(*Options)

// Options holds run parameters and hooks.
type Options struct {
	// DryRun ends Run after the solve phase; the robot stays where mapping
	// left it and Report.Executed is zero.
	DryRun bool

	// Logger receives phase lines, each tagged with the run ID.
	Logger zerolog.Logger

	// OnPhase is called before each phase starts, after the context check.
	// If it returns an error, Run stops there and returns it wrapped with
	// the phase name; the Report so far is returned alongside.
	OnPhase func(ctx context.Context, p Phase) error

	// NewID produces the run ID. Defaults to uuid.New.
	NewID func() uuid.UUID

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{
		Logger:  zerolog.Nop(),
		OnPhase: func(context.Context, Phase) error { return nil },
		NewID:   uuid.New,
	}
}

// WithDryRun stops the run after solving; no commands are executed.
func WithDryRun() Option {
	return func(o *Options) { o.DryRun = true }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnPhase registers a hook run before each phase starts. An error
// from the hook aborts the run.
func WithOnPhase(fn func(ctx context.Context, p Phase) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithIDGenerator replaces the run ID source.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil ID generator", ErrOptionViolation)
			return
		}
		o.NewID = fn
	}
}

// Report describes a finished run.
type Report struct {
	RunID uuid.UUID
	// Maze is the mapped grid.
	Maze *grid.Grid
	// Start is the start cell after lateral alignment.
	Start grid.Cell
	// Visits is the number of cells entered while mapping.
	Visits int
	// Path runs from Start to the centre.
	Path     []grid.Cell
	Commands []solver.Command
	// Executed reports whether the commands were driven.
	Executed bool
}
