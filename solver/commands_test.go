package solver_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/locomotion"
	"github.com/katalvlaran/mazebot/sim"
	"github.com/katalvlaran/mazebot/solver"
)

//----------------------------------------------------------------------------//
// Commands
//----------------------------------------------------------------------------//

func TestCommands_FourByFour(t *testing.T) {
	s := mustSolver(t, "....", "....", "....", "....")

	cmds, err := s.Solve(0, 3)
	require.NoError(t, err)
	require.Equal(t, []solver.Command{
		{Op: solver.ResetHeadingOffset, Heading: 0},
		{Op: solver.DriveToWallDistance, Distance: 45, Speed: 100},
		{Op: solver.TurnToHeading, Heading: 90, Speed: 100},
		{Op: solver.DriveToWallDistance, Distance: 45, Speed: 100},
	}, cmds)
	require.Equal(t, "reset_heading_offset(0)", cmds[0].String())
	require.Equal(t, "drive_to_wall_distance(45, 100)", cmds[1].String())
	require.Equal(t, "turn_to_heading(90, 100)", cmds[2].String())
}

// TestCommands_StraightPath: no bend, no turn.
func TestCommands_StraightPath(t *testing.T) {
	g := mustGrid(t, "...", "#.#", "#.#", "#.#")
	s, err := solver.New(g, solver.WithSpeed(80))
	require.NoError(t, err)

	cmds, err := s.Commands([]grid.Cell{{X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1}})
	require.NoError(t, err)
	require.Equal(t, []solver.Command{
		{Op: solver.ResetHeadingOffset, Heading: 0},
		{Op: solver.DriveToWallDistance, Distance: 27, Speed: 80},
	}, cmds)
}

func TestCommands_Errors(t *testing.T) {
	s := mustSolver(t, "...", "...")

	_, err := s.Commands(nil)
	require.ErrorIs(t, err, solver.ErrPathTooShort)
	_, err = s.Commands([]grid.Cell{{X: 0, Y: 0}})
	require.ErrorIs(t, err, solver.ErrPathTooShort)
	_, err = s.Commands([]grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}})
	require.ErrorIs(t, err, locomotion.ErrNotAdjacent)
}

func TestWallDistance(t *testing.T) {
	s := mustSolver(t, "....", ".#..", "....")
	require.Equal(t, 9.0, s.WallDistance(grid.Cell{X: 1, Y: 2}, locomotion.North))
	require.Equal(t, 45.0, s.WallDistance(grid.Cell{X: 1, Y: 2}, locomotion.East))
	require.Equal(t, 27.0, s.WallDistance(grid.Cell{X: 1, Y: 2}, locomotion.West))
	require.Equal(t, 9.0, s.WallDistance(grid.Cell{X: 1, Y: 2}, locomotion.South))
}

// TestCommands_Shape checks the command list invariants on random mazes
// and replays each list on a simulated robot that must end on the goal.
func TestCommands_Shape(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	solved := 0
	for trial := 0; trial < 300; trial++ {
		w, h := 3+rng.Intn(4), 3+rng.Intn(4)
		g := randomMaze(rng, w, h, 0.7)
		g.Set(0, h-1, grid.Open)

		s, err := solver.New(g)
		require.NoError(t, err)
		res, err := s.FindPath(0, h-1)
		if errors.Is(err, solver.ErrNoPath) {
			continue
		}
		require.NoError(t, err)
		path := res.Path()
		if len(path) < 2 {
			continue
		}
		cmds, err := s.Commands(path)
		require.NoError(t, err)
		solved++

		// Exactly one reset, first; the list closes with a drive.
		require.Equal(t, solver.ResetHeadingOffset, cmds[0].Op)
		require.Equal(t, solver.DriveToWallDistance, cmds[len(cmds)-1].Op)
		bends := 0
		for i := 1; i < len(path)-1; i++ {
			a, _ := locomotion.HeadingBetween(path[i-1], path[i])
			b, _ := locomotion.HeadingBetween(path[i], path[i+1])
			if a != b {
				bends++
			}
		}
		turns := 0
		for i, c := range cmds[1:] {
			require.NotEqual(t, solver.ResetHeadingOffset, c.Op)
			if c.Op == solver.TurnToHeading {
				turns++
				require.Equal(t, solver.DriveToWallDistance, cmds[i].Op, "every turn follows a drive")
			}
		}
		require.Equal(t, bends, turns, "trial %d:\n%s", trial, g)
		require.Len(t, cmds, 2+2*bends)

		// Replay on the same layout, facing the first move.
		first, _ := locomotion.HeadingBetween(path[0], path[1])
		world, err := sim.New(g, sim.Pose{X: path[0].X, Y: path[0].Y, Heading: first})
		require.NoError(t, err)
		require.NoError(t, solver.Execute(ctx, cmds, world), "trial %d:\n%s", trial, g)
		goal := path[len(path)-1]
		require.Equal(t, goal, world.Pose().Cell(), "trial %d:\n%s", trial, g)
		require.Equal(t, len(path)-1, world.Moves)
	}
	require.Greater(t, solved, 30)
}

//----------------------------------------------------------------------------//
// Execute
//----------------------------------------------------------------------------//

type recorder struct {
	calls []string
	fail  error
}

func (r *recorder) ResetHeadingOffset(float64) { r.calls = append(r.calls, "reset") }

func (r *recorder) DriveToWallDistance(_ context.Context, _ float64, _ int, brake bool) error {
	if !brake {
		r.calls = append(r.calls, "drive-nobrake")
	} else {
		r.calls = append(r.calls, "drive")
	}
	return r.fail
}

func (r *recorder) TurnTo(context.Context, float64, int) error {
	r.calls = append(r.calls, "turn")
	return nil
}

func TestExecute(t *testing.T) {
	cmds := []solver.Command{
		{Op: solver.ResetHeadingOffset},
		{Op: solver.DriveToWallDistance, Distance: 9, Speed: 100},
		{Op: solver.TurnToHeading, Heading: 90, Speed: 100},
		{Op: solver.DriveToWallDistance, Distance: 9, Speed: 100},
	}
	r := &recorder{}
	require.NoError(t, solver.Execute(context.Background(), cmds, r))
	require.Equal(t, []string{"reset", "drive", "turn", "drive"}, r.calls)

	boom := errors.New("stalled")
	r = &recorder{fail: boom}
	err := solver.Execute(context.Background(), cmds, r)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"reset", "drive"}, r.calls)

	err = solver.Execute(context.Background(), []solver.Command{{Op: solver.Op(9)}}, &recorder{})
	require.ErrorIs(t, err, solver.ErrUnknownOp)
}
