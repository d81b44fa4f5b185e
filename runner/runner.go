package runner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/config"
	"github.com/katalvlaran/mazebot/explorer"
	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/solver"
)

// Runner runs a maze with one robot.
type Runner struct {
	cfg     config.Config
	robot   Robot
	sensors hardware.Sensors
	opts    Options
}

// New validates cfg and the robot's capabilities.
func New(cfg config.Config, robot Robot, sensors hardware.Sensors, opts ...Option) (*Runner, error) {
	if robot == nil {
		return nil, ErrNilRobot
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

	return &Runner{cfg: cfg, robot: robot, sensors: sensors, opts: o}, nil
}

// Run maps, solves and, unless dry-running, executes. The robot must stand
// at the configured start cell facing into the maze.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := &Report{RunID: r.opts.NewID()}
	log := r.opts.Logger.With().Str("run_id", rep.RunID.String()).Logger()
	m := r.cfg.Maze
	log.Info().Int("width", m.Width).Int("height", m.Height).Bool("dry_run", r.opts.DryRun).Msg("run started")

	if err := r.enter(ctx, PhaseMap); err != nil {
		return rep, err
	}
	if err := r.mapMaze(ctx, log, rep); err != nil {
		return rep, fmt.Errorf("runner: %s: %w", PhaseMap, err)
	}

	if err := r.enter(ctx, PhaseSolve); err != nil {
		return rep, err
	}
	if err := r.solve(log, rep); err != nil {
		return rep, fmt.Errorf("runner: %s: %w", PhaseSolve, err)
	}
	if r.opts.DryRun {
		log.Info().Int("commands", len(rep.Commands)).Msg("dry run, skipping execution")
		return rep, nil
	}

	if err := r.enter(ctx, PhaseExecute); err != nil {
		return rep, err
	}
	if err := r.execute(ctx, rep); err != nil {
		return rep, fmt.Errorf("runner: %s: %w", PhaseExecute, err)
	}
	rep.Executed = true
	log.Info().Int("moves", len(rep.Path)-1).Msg("run finished")

	return rep, nil
}

func (r *Runner) enter(ctx context.Context, p Phase) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("runner: stopped before %s: %w", p, err)
	}
	if err := r.opts.OnPhase(ctx, p); err != nil {
		return fmt.Errorf("runner: stopped before %s: %w", p, err)
	}

	return nil
}

func (r *Runner) mapMaze(ctx context.Context, log zerolog.Logger, rep *Report) error {
	m := r.cfg.Maze
	maze, err := grid.New(m.Width, m.Height, m.SideLengthCM, grid.Closed)
	if err != nil {
		return err
	}
	ex, err := explorer.New(maze, r.robot, r.sensors,
		explorer.WithSpeed(r.cfg.Drive.ExploreSpeed),
		explorer.WithTurnSpeed(r.cfg.Drive.TurnSpeed),
		explorer.WithLogger(log),
	)
	if err != nil {
		return err
	}
	r.robot.ResetHeadingOffset(0)
	res, err := ex.Explore(ctx, m.StartX, m.StartY)
	if err != nil {
		return err
	}
	rep.Maze, rep.Start, rep.Visits = res.Maze, res.Start, res.Visits

	return nil
}

func (r *Runner) solve(log zerolog.Logger, rep *Report) error {
	s, err := solver.New(rep.Maze, solver.WithSpeed(r.cfg.Drive.SolveSpeed), solver.WithLogger(log))
	if err != nil {
		return err
	}
	res, err := s.FindPath(rep.Start.X, rep.Start.Y)
	if err != nil {
		return err
	}
	rep.Path = res.Path()
	rep.Commands, err = s.Commands(rep.Path)

	return err
}

// execute faces the first move in the mapping frame, where the first
// command's heading matches the robot's, then drives the commands.
func (r *Runner) execute(ctx context.Context, rep *Report) error {
	first := rep.Commands[0]
	if err := r.robot.TurnTo(ctx, first.Heading, r.cfg.Drive.TurnSpeed); err != nil {
		return err
	}

	return solver.Execute(ctx, rep.Commands, r.robot)
}
