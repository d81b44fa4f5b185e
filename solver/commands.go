package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/locomotion"
)

// Commands builds the command list that drives path, which runs from the
// start cell to the goal.
func (s *Solver) Commands(path []grid.Cell) ([]Command, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPathTooShort, len(path))
	}
	cur, err := locomotion.HeadingBetween(path[0], path[1])
	if err != nil {
		return nil, err
	}

	cmds := []Command{{Op: ResetHeadingOffset, Heading: float64(cur)}}
	for i := 1; i < len(path)-1; i++ {
		next, err := locomotion.HeadingBetween(path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		if next == cur {
			continue
		}
		cmds = append(cmds,
			Command{Op: DriveToWallDistance, Distance: s.WallDistance(path[i], cur), Speed: s.opts.Speed},
			Command{Op: TurnToHeading, Heading: float64(next), Speed: s.opts.Speed},
		)
		cur = next
	}
	last := path[len(path)-1]
	cmds = append(cmds, Command{Op: DriveToWallDistance, Distance: s.WallDistance(last, cur), Speed: s.opts.Speed})
	s.log.Debug().Int("cells", len(path)).Int("commands", len(cmds)).Msg("commands built")

	return cmds, nil
}

// WallDistance is the front reading expected at the centre of c facing
// heading, according to the map.
func (s *Solver) WallDistance(c grid.Cell, heading int) float64 {
	n := 0
	x, y := locomotion.RelativeCell(c.X, c.Y, heading)
	for s.maze.IsOpen(x, y) {
		n++
		x, y = locomotion.RelativeCell(x, y, heading)
	}

	return float64(n)*s.maze.SideLength + s.maze.SideLength/2
}

// Execute runs cmds in order, stopping at the first failure. Drives
// always brake.
func Execute(ctx context.Context, cmds []Command, exec Executor) error {
	for i, c := range cmds {
		var err error
		switch c.Op {
		case ResetHeadingOffset:
			exec.ResetHeadingOffset(c.Heading)
		case DriveToWallDistance:
			err = exec.DriveToWallDistance(ctx, c.Distance, c.Speed, true)
		case TurnToHeading:
			err = exec.TurnTo(ctx, c.Heading, c.Speed)
		default:
			err = ErrUnknownOp
		}
		if err != nil {
			return fmt.Errorf("solver: command %d %s: %w", i, c, err)
		}
	}

	return nil
}
