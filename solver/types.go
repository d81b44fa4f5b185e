package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/node"
)

// Sentinel errors for solving.
var (
	// ErrGridNil is returned when New receives a nil maze.
	ErrGridNil = errors.New("solver: grid is nil")
	// ErrStartOutOfBounds indicates a start cell outside the maze.
	ErrStartOutOfBounds = errors.New("solver: start cell out of bounds")
	// ErrNoPath indicates the centre cannot be reached from the start.
	ErrNoPath = errors.New("solver: no path to the maze centre")
	// ErrPathTooShort indicates a path without a single move.
	ErrPathTooShort = errors.New("solver: path needs at least two cells")
	// ErrUnknownOp indicates a command with an unsupported operation.
	ErrUnknownOp = errors.New("solver: unknown command operation")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// DefaultSpeed is the speed used for solving runs, in percent.
const DefaultSpeed = 100

// Op is a command operation.
type Op int

const (
	ResetHeadingOffset Op = iota
	DriveToWallDistance
	TurnToHeading
)

func (o Op) String() string {
	switch o {
	case ResetHeadingOffset:
		return "reset_heading_offset"
	case DriveToWallDistance:
		return "drive_to_wall_distance"
	case TurnToHeading:
		return "turn_to_heading"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Command is one step of a solving run. Heading is used by
// ResetHeadingOffset and TurnToHeading, Distance by DriveToWallDistance.
type Command struct {
	Op       Op
	Heading  float64
	Distance float64
	Speed    int
}

func (c Command) String() string {
	switch c.Op {
	case ResetHeadingOffset:
		return fmt.Sprintf("%s(%g)", c.Op, c.Heading)
	case DriveToWallDistance:
		return fmt.Sprintf("%s(%g, %d)", c.Op, c.Distance, c.Speed)
	default:
		return fmt.Sprintf("%s(%g, %d)", c.Op, c.Heading, c.Speed)
	}
}

// Executor carries out commands on a robot.
type Executor interface {
	ResetHeadingOffset(angle float64)
	DriveToWallDistance(ctx context.Context, target float64, speed int, brake bool) error
	TurnTo(ctx context.Context, target float64, speed int) error
}

// Option configures a Solver.
type Option func(*Options)

// Options holds solving parameters and hooks.
type Options struct {
	// Speed is the percent stamped on every emitted command. Must be in
	// (0, 100].
	Speed int

	// Logger receives the search summary.
	Logger zerolog.Logger

	// OnVisit is called as each node is dequeued, with its distance from
	// the start in cells. It cannot abort the search.
	OnVisit func(c grid.Cell, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{
		Speed:   DefaultSpeed,
		Logger:  zerolog.Nop(),
		OnVisit: func(grid.Cell, int) {},
	}
}

// WithSpeed sets the speed stamped on drive and turn commands.
func WithSpeed(pct int) Option {
	return func(o *Options) {
		if pct <= 0 || pct > 100 {
			o.err = fmt.Errorf("%w: speed must be in (0, 100] (%d)", ErrOptionViolation, pct)
			return
		}
		o.Speed = pct
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnVisit registers a hook run as each node is dequeued.
func WithOnVisit(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is a solved search.
type Result struct {
	// Tree holds every discovered node.
	Tree *node.Tree
	// Terminal is the index in Tree of the middle square reached.
	Terminal int
	// Depth is the number of moves from the start to Terminal.
	Depth int
}

// Path returns the cells from the start to the terminal node.
func (r *Result) Path() []grid.Cell { return r.Tree.Path(r.Terminal) }
