// Package sim is a discrete grid-world stand-in for the physical robot.
//
// A World knows the true maze layout and the robot's pose (cell and
// quantized heading). It answers distance queries the way an ideal
// ultrasonic sensor would, turns in exact quarter steps and moves one cell
// at a time, failing with ErrCollision instead of hitting a wall. It
// satisfies the sensor, heading and driving interfaces consumed by the
// explorer, the solver's command executor and the runner, so whole maze
// runs can be replayed without hardware.
//
// Distance model:
//
//	reading = open cells ahead × side + side/2
//
// measured from the centre of the current cell. Readings beyond
// hardware.MaxValidCM come back as hardware.NoReading.
//
// Body is the continuous counterpart. It has a float position and
// heading, is driven tick by tick through its motors and reports distances
// by casting rays through the same layout, so the closed-loop drive
// controller can run against it.
//
// Layouts are YAML documents:
//
//	side_length: 18
//	start: {x: 3, y: 3, heading: 0}
//	rows:
//	  - "...."
//	  - "#.#."
//
// Generate produces layouts instead of reading them: a random perfect maze
// built with Wilson's algorithm, each passage and each carved wall taking
// one block of the grid.
package sim
