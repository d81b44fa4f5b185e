// Command mazebot runs the maze robot against a simulated maze: it maps
// the maze, solves it and drives the solution, then prints the map and the
// command list.
//
// Usage:
//
//	mazebot -layout configs/corridor.yaml [-config configs/mazebot.yaml] [-dry-run] [-kinematic]
//	mazebot -generate 9x9 [-seed 7] [...]
//
// -generate replaces the layout file with a random perfect maze of WxH
// passages (both odd) built from -seed. The map takes its shape from the
// layout and assumes the robot starts in the bottom-left cell. By default the robot moves cell by cell; with
// -kinematic a continuous body is driven by the closed-loop drive
// controller instead. Settings come from the YAML config, a .env file in
// the working directory and MAZEBOT_* environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/mazebot/config"
	"github.com/katalvlaran/mazebot/drive"
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/runner"
	"github.com/katalvlaran/mazebot/sim"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "mazebot:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("mazebot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to the YAML configuration file")
	layoutPath := flags.String("layout", "", "path to the YAML maze layout")
	dryRun := flags.Bool("dry-run", false, "map and solve without driving the solution")
	kinematic := flags.Bool("kinematic", false, "drive a continuous body through the drive controller")
	generate := flags.String("generate", "", "generate a random WxH maze instead of loading -layout")
	seed := flags.Int64("seed", 1, "random seed for -generate")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if (*layoutPath == "") == (*generate == "") {
		flags.Usage()
		return errors.New("exactly one of -layout and -generate is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log := config.NewLogger(cfg.Log, stderr)

	var layout *sim.Layout
	if *generate != "" {
		w, h, err := parseSize(*generate)
		if err != nil {
			return err
		}
		layout, err = sim.Generate(w, h, cfg.Maze.SideLengthCM, rand.New(rand.NewSource(*seed)))
		if err != nil {
			return err
		}
		log.Info().Int("width", w).Int("height", h).Int64("seed", *seed).Msg("maze generated")
	} else if layout, err = sim.LoadLayoutFile(*layoutPath); err != nil {
		return err
	}
	truth, err := layout.Grid()
	if err != nil {
		return err
	}
	cfg.Maze.Width, cfg.Maze.Height = truth.Width, truth.Height
	cfg.Maze.SideLengthCM = truth.SideLength
	cfg.Maze.StartX, cfg.Maze.StartY = 0, truth.Height-1

	var (
		robot   runner.Robot
		sensors hardware.Sensors
		where   func() string
	)
	if *kinematic {
		body, err := layout.Body()
		if err != nil {
			return err
		}
		hw := body.Robot()
		hw.Sensors = hardware.SampleSensors(hw.Sensors, cfg.Sensors.Samples)
		ctrl, err := drive.New(hw, truth.SideLength, cfg.DriveOptions(log)...)
		if err != nil {
			return err
		}
		robot, sensors = ctrl, hw.Sensors
		where = func() string {
			x, y := body.Position()
			return fmt.Sprintf("%v (%.1f, %.1f cm) after %d ticks", body.Cell(), x, y, body.Ticks)
		}
	} else {
		world, err := layout.World()
		if err != nil {
			return err
		}
		robot, sensors = world, hardware.SampleSensors(world.Sensors(), cfg.Sensors.Samples)
		where = func() string {
			return fmt.Sprintf("%v after %d moves", world.Pose().Cell(), world.Moves)
		}
	}

	opts := []runner.Option{runner.WithLogger(log)}
	if *dryRun {
		opts = append(opts, runner.WithDryRun())
	}
	r, err := runner.New(cfg, robot, sensors, opts...)
	if err != nil {
		return err
	}
	rep, err := r.Run(ctx)
	if rep != nil && rep.Maze != nil {
		fmt.Fprintf(stdout, "run %s\n\nmap:\n%s\n", rep.RunID, rep.Maze)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "path: %v\n\ncommands:\n", rep.Path)
	for _, c := range rep.Commands {
		fmt.Fprintf(stdout, "  %s\n", c)
	}
	if rep.Executed {
		fmt.Fprintf(stdout, "\nfinished at %s\n", where())
	}

	return nil
}

// parseSize reads a WxH maze size.
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		if w, err = strconv.Atoi(ws); err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("-generate wants WxH, got %q", s)
	}

	return w, h, nil
}
