package explorer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

const visitedMark = 1

// Explorer maps a maze with a single robot. One Explorer runs one
// exploration at a time.
type Explorer struct {
	maze    *grid.Grid
	driver  Driver
	sensors hardware.Sensors
	opts    Options
	log     zerolog.Logger

	visited *grid.Grid
	aligned bool
	start   grid.Cell
	visits  int
}

// candidate is one of the three forward-looking moves from a cell.
type candidate struct {
	open    bool
	heading int
}

// New returns an explorer that fills maze in place.
func New(maze *grid.Grid, driver Driver, sensors hardware.Sensors, opts ...Option) (*Explorer, error) {
	if maze == nil {
		return nil, ErrGridNil
	}
	if driver == nil {
		return nil, ErrNilDriver
	}
	if err := sensors.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Explorer{
		maze:    maze,
		driver:  driver,
		sensors: sensors,
		opts:    o,
		log:     o.Logger.With().Str("component", "explorer").Logger(),
	}, nil
}

// Explore maps everything reachable from (x, y). The robot must stand at
// that cell's centre facing along a corridor.
func (e *Explorer) Explore(ctx context.Context, x, y int) (*Result, error) {
	if !e.maze.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, x, y)
	}
	e.visited = e.maze.CloneShape(grid.Closed)
	e.aligned = false
	e.start = grid.Cell{X: x, Y: y}
	e.visits = 0

	e.log.Info().Int("x", x).Int("y", y).Msg("exploration started")
	if err := e.visit(ctx, x, y); err != nil {
		return nil, err
	}
	e.log.Info().
		Int("visits", e.visits).
		Int("open", e.maze.Count(grid.Open)).
		Bool("aligned", e.aligned).
		Msg("exploration finished")

	return &Result{
		Maze:    e.maze,
		Visited: e.visited,
		Start:   e.start,
		Aligned: e.aligned,
		Visits:  e.visits,
	}, nil
}

// visit explores from (x, y) and returns with the robot back at (x, y)
// facing the way it arrived.
func (e *Explorer) visit(ctx context.Context, x, y int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.visited.Set(x, y, visitedMark)
	e.maze.Set(x, y, grid.Open)
	e.visits++
	if err := e.opts.OnVisit(grid.Cell{X: x, Y: y}); err != nil {
		return fmt.Errorf("explorer: OnVisit error at (%d,%d): %w", x, y, err)
	}

	dirs := locomotion.FeasibleDirections(e.sensors, e.maze.SideLength)
	heading := locomotion.Quantize(e.driver.Heading())
	e.log.Debug().
		Int("x", x).Int("y", y).
		Int("heading", heading).
		Bool("left", dirs.Left).Bool("straight", dirs.Straight).Bool("right", dirs.Right).
		Msg("visit")

	if !e.aligned && dirs.Lateral() {
		e.aligned = true
		if dirs.Left {
			x = e.shiftToRightEdge(y)
		}
		e.opts.OnAlign(x)
	}

	for _, c := range [3]candidate{
		{dirs.Left, locomotion.TurnLeft(heading)},
		{dirs.Straight, heading},
		{dirs.Right, locomotion.TurnRight(heading)},
	} {
		if !c.open {
			continue
		}
		if err := e.descend(ctx, x, y, heading, c.heading); err != nil {
			return err
		}
	}

	return nil
}

// descend records the neighbour in direction target and, if it has not
// been entered yet, explores it and comes back.
func (e *Explorer) descend(ctx context.Context, x, y, heading, target int) error {
	nx, ny := locomotion.RelativeCell(x, y, target)
	if !e.maze.InBounds(nx, ny) {
		e.log.Warn().
			Int("x", x).Int("y", y).
			Int("nx", nx).Int("ny", ny).
			Msg("open neighbour outside the map, skipped")
		return nil
	}
	e.maze.Set(nx, ny, grid.Open)
	if e.visited.Get(nx, ny) == visitedMark {
		return nil
	}

	turn := target != heading
	if turn {
		if err := e.driver.TurnTo(ctx, float64(target), e.opts.TurnSpeed); err != nil {
			return fmt.Errorf("explorer: turn to %d at (%d,%d): %w", target, x, y, err)
		}
	}
	if err := e.driver.DriveToNextSquareCenter(ctx, e.opts.Speed); err != nil {
		return fmt.Errorf("explorer: drive (%d,%d) -> (%d,%d): %w", x, y, nx, ny, err)
	}
	if err := e.visit(ctx, nx, ny); err != nil {
		return err
	}
	if err := e.driver.DriveToNextSquareCenter(ctx, -e.opts.Speed); err != nil {
		return fmt.Errorf("explorer: drive back (%d,%d) -> (%d,%d): %w", nx, ny, x, y, err)
	}
	if turn {
		if err := e.driver.TurnTo(ctx, float64(heading), e.opts.TurnSpeed); err != nil {
			return fmt.Errorf("explorer: turn back to %d at (%d,%d): %w", heading, x, y, err)
		}
	}

	return nil
}

// shiftToRightEdge moves the column walked so far from 0 to Width-1 for
// rows y..Height-1 and returns the new column.
func (e *Explorer) shiftToRightEdge(y int) int {
	right := e.maze.Width - 1
	for ty := y; ty < e.maze.Height; ty++ {
		e.visited.Set(0, ty, grid.Closed)
		e.maze.Set(0, ty, grid.Closed)
		e.visited.Set(right, ty, visitedMark)
		e.maze.Set(right, ty, grid.Open)
	}
	e.start.X = right
	e.log.Info().Int("y", y).Int("x", right).Msg("started on the right edge, map shifted")

	return right
}
