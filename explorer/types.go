package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/grid"
)

// Sentinel errors for exploration.
var (
	// ErrGridNil is returned when New receives a nil maze.
	ErrGridNil = errors.New("explorer: grid is nil")
	// ErrNilDriver is returned when New receives a nil driver.
	ErrNilDriver = errors.New("explorer: driver is nil")
	// ErrStartOutOfBounds indicates a start cell outside the maze.
	ErrStartOutOfBounds = errors.New("explorer: start cell out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explorer: invalid option supplied")
)

// DefaultSpeed is the exploration speed in percent.
const DefaultSpeed = 70

// Driver moves the robot between cell centres.
type Driver interface {
	Heading() float64
	TurnTo(ctx context.Context, target float64, speed int) error
	DriveToNextSquareCenter(ctx context.Context, speed int) error
}

// Option configures an Explorer.
type Option func(*Options)

// Options holds exploration parameters and hooks.
type Options struct {
	// Speed is the percent used for cell-to-cell drives, forward and on
	// backtrack. Must be in (0, 100].
	Speed int

	// TurnSpeed is the percent used for heading turns. Must be in (0, 100].
	TurnSpeed int

	// Logger receives one debug line per visited cell.
	Logger zerolog.Logger

	// OnVisit is called on entering each cell, after it is marked visited
	// and open and before sensing. If it returns an error, Explore stops the
	// walk and returns that error wrapped with the cell.
	OnVisit func(c grid.Cell) error

	// OnAlign is called at most once, when the first lateral opening
	// settles the starting column. Receives the corrected x of the cell.
	OnAlign func(x int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{
		Speed:     DefaultSpeed,
		TurnSpeed: DefaultSpeed,
		Logger:    zerolog.Nop(),
		OnVisit:   func(grid.Cell) error { return nil },
		OnAlign:   func(int) {},
	}
}

func checkPct(name string, pct int) error {
	if pct <= 0 || pct > 100 {
		return fmt.Errorf("%w: %s must be in (0, 100] (%d)", ErrOptionViolation, name, pct)
	}

	return nil
}

// WithSpeed sets the driving speed in percent.
func WithSpeed(pct int) Option {
	return func(o *Options) {
		if err := checkPct("speed", pct); err != nil {
			o.err = err
			return
		}
		o.Speed = pct
	}
}

// WithTurnSpeed sets the turning speed in percent.
func WithTurnSpeed(pct int) Option {
	return func(o *Options) {
		if err := checkPct("turn speed", pct); err != nil {
			o.err = err
			return
		}
		o.TurnSpeed = pct
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnVisit registers a hook run on entering each cell.
func WithOnVisit(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnAlign registers a hook run when lateral alignment happens.
func WithOnAlign(fn func(x int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAlign = fn
		}
	}
}

// Result is the outcome of one exploration.
type Result struct {
	// Maze is the mapped grid; it is the grid passed to New, filled in place.
	Maze *grid.Grid
	// Visited marks every entered cell with 1.
	Visited *grid.Grid
	// Start is the start cell after lateral alignment.
	Start grid.Cell
	// Aligned reports whether a lateral opening was ever seen.
	Aligned bool
	// Visits is the number of cells entered.
	Visits int
}
