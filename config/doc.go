// Package config loads the robot and maze settings for a run and builds
// the logger.
//
// Sources, later ones winning:
//
//  1. Default() values for a standard 16×16 micromouse maze with 18 cm cells.
//  2. A YAML file (optional, see configs/mazebot.yaml).
//  3. Variables from .env files (missing files are ignored).
//  4. MAZEBOT_* process environment variables.
//
// Environment keys:
//
//	MAZEBOT_MAZE_WIDTH, MAZEBOT_MAZE_HEIGHT, MAZEBOT_MAZE_SIDE_LENGTH_CM,
//	MAZEBOT_MAZE_START_X, MAZEBOT_MAZE_START_Y,
//	MAZEBOT_DRIVE_EXPLORE_SPEED, MAZEBOT_DRIVE_SOLVE_SPEED,
//	MAZEBOT_DRIVE_TURN_SPEED, MAZEBOT_DRIVE_WALL_FOLLOWING,
//	MAZEBOT_SENSORS_SAMPLES, MAZEBOT_LOG_LEVEL, MAZEBOT_LOG_PRETTY.
//
// Every loaded Config is validated; problems are reported together,
// wrapped in ErrInvalidConfig.
package config
