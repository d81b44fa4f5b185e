// Package mazebot is the control core of a two-wheeled maze robot: it maps
// an unknown square-cell maze by driving through it, finds the shortest
// route to the centre and drives that route back as a short command list.
//
// What is in the module?
//
//	grid/       the maze map: a W×H matrix of Open/Closed cells
//	hardware/   capability interfaces for motors, compass and distance
//	            sensors, plus median sampling and a software heading offset
//	locomotion/ heading arithmetic, wall feasibility and comparison kinds
//	drive/      closed-loop manoeuvres: turn to a heading, drive to a wall
//	            distance, drive one cell with optional wall following
//	node/       arena-backed search nodes with parent links
//	explorer/   depth-first mapping with one-time lateral self-alignment
//	solver/     breadth-first search to the centre and command building
//	sim/        simulated robots (discrete world, continuous body) and
//	            random maze generation
//	config/     YAML, .env and environment configuration plus logging
//	runner/     one run: map, solve, execute
//	cmd/mazebot the command-line entry point over a simulated maze
//
// A run, end to end:
//
//	        ┌──────────┐  maze   ┌────────┐ commands ┌─────────┐
//	robot ─►│ explorer │───────► │ solver │────────► │ Execute │─► robot
//	        └──────────┘         └────────┘          └─────────┘
//
// Everything runs on one goroutine. Blocking manoeuvres poll their sensors
// and take a context.Context, and a run can be stopped between phases.
//
//	go run ./cmd/mazebot -layout configs/spiral.yaml
package mazebot
