package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazebot/drive"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MAZEBOT_"

// Config is the complete run configuration.
type Config struct {
	Maze    MazeConfig   `yaml:"maze"`
	Drive   DriveConfig  `yaml:"drive"`
	Sensors SensorConfig `yaml:"sensors"`
	Log     LogConfig    `yaml:"log"`
}

// MazeConfig describes the maze and where the robot is placed.
type MazeConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	SideLengthCM float64 `yaml:"side_length_cm"`
	StartX       int     `yaml:"start_x"`
	StartY       int     `yaml:"start_y"`
}

// DriveConfig holds speeds (percent) and controller tuning.
type DriveConfig struct {
	ExploreSpeed        int     `yaml:"explore_speed"`
	SolveSpeed          int     `yaml:"solve_speed"`
	TurnSpeed           int     `yaml:"turn_speed"`
	BrakingMarginCM     float64 `yaml:"braking_margin_cm"`
	TurnToleranceCM     float64 `yaml:"turn_tolerance_cm"`
	WallFollowing       bool    `yaml:"wall_following"`
	WallFollowGain      float64 `yaml:"wall_follow_gain"`
	MaxPolls            int     `yaml:"max_polls"`
	Resamples           int     `yaml:"resamples"`
	HeadingToleranceDeg float64 `yaml:"heading_tolerance_deg"`
}

// SensorConfig controls distance sampling.
type SensorConfig struct {
	// Samples is the burst size for median filtering.
	Samples int `yaml:"samples"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the settings for a 16×16 maze with 18 cm cells, the
// robot in the bottom-left cell.
func Default() Config {
	return Config{
		Maze: MazeConfig{Width: 16, Height: 16, SideLengthCM: 18, StartX: 0, StartY: 15},
		Drive: DriveConfig{
			ExploreSpeed:    70,
			SolveSpeed:      100,
			TurnSpeed:       70,
			BrakingMarginCM: drive.DefaultBrakingMargin,
			TurnToleranceCM: drive.DefaultTurnTolerance,
			WallFollowGain:  drive.DefaultWallFollowGain,
			MaxPolls:        drive.DefaultMaxPolls,
			Resamples:       drive.DefaultResamples,
		},
		Sensors: SensorConfig{Samples: 5},
		Log:     LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty), the given .env files (".env" when none) and the environment.
// Unknown YAML keys are rejected.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	dotenv, err := godotenv.Read(envFiles...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: failed to read env file: %w", err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"MAZE_WIDTH":          &c.Maze.Width,
		"MAZE_HEIGHT":         &c.Maze.Height,
		"MAZE_START_X":        &c.Maze.StartX,
		"MAZE_START_Y":        &c.Maze.StartY,
		"DRIVE_EXPLORE_SPEED": &c.Drive.ExploreSpeed,
		"DRIVE_SOLVE_SPEED":   &c.Drive.SolveSpeed,
		"DRIVE_TURN_SPEED":    &c.Drive.TurnSpeed,
		"SENSORS_SAMPLES":     &c.Sensors.Samples,
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
			}
			*dst = n
		}
	}
	if v, ok := lookup(EnvPrefix + "MAZE_SIDE_LENGTH_CM"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %sMAZE_SIDE_LENGTH_CM must be a number: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Maze.SideLengthCM = f
	}
	bools := map[string]*bool{
		"DRIVE_WALL_FOLLOWING": &c.Drive.WallFollowing,
		"LOG_PRETTY":           &c.Log.Pretty,
	}
	for key, dst := range bools {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s must be a boolean: %v", ErrInvalidConfig, EnvPrefix, key, err)
			}
			*dst = b
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	return nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}
	m, d := c.Maze, c.Drive
	check(m.Width > 0 && m.Height > 0, "maze size must be positive, got %dx%d", m.Width, m.Height)
	check(m.SideLengthCM > 0, "side length must be positive, got %v", m.SideLengthCM)
	check(m.StartX >= 0 && m.StartX < m.Width && m.StartY >= 0 && m.StartY < m.Height,
		"start (%d,%d) outside %dx%d maze", m.StartX, m.StartY, m.Width, m.Height)
	for name, pct := range map[string]int{"explore": d.ExploreSpeed, "solve": d.SolveSpeed, "turn": d.TurnSpeed} {
		check(pct > 0 && pct <= 100, "%s speed must be in (0, 100], got %d", name, pct)
	}
	check(d.BrakingMarginCM >= 0, "braking margin cannot be negative")
	check(d.TurnToleranceCM >= 0, "turn tolerance cannot be negative")
	check(!d.WallFollowing || d.WallFollowGain > 0, "wall following needs a positive gain")
	check(d.MaxPolls >= 0, "max polls cannot be negative")
	check(d.Resamples >= 0, "resamples cannot be negative")
	check(d.HeadingToleranceDeg >= 0 && d.HeadingToleranceDeg < 90, "heading tolerance must be in [0, 90)")
	check(c.Sensors.Samples > 0, "sensor samples must be positive, got %d", c.Sensors.Samples)
	_, err := zerolog.ParseLevel(c.Log.Level)
	check(err == nil, "unknown log level %q", c.Log.Level)

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}

// DriveOptions translates the drive settings into controller options.
func (c Config) DriveOptions(log zerolog.Logger) []drive.Option {
	opts := []drive.Option{
		drive.WithLogger(log),
		drive.WithBrakingMargin(c.Drive.BrakingMarginCM),
		drive.WithTurnTolerance(c.Drive.TurnToleranceCM),
		drive.WithMaxPolls(c.Drive.MaxPolls),
		drive.WithResamples(c.Drive.Resamples),
		drive.WithHeadingTolerance(c.Drive.HeadingToleranceDeg),
	}
	if c.Drive.WallFollowing {
		opts = append(opts, drive.WithWallFollowing(c.Drive.WallFollowGain))
	}

	return opts
}
