// Package locomotion holds the pure arithmetic shared by the drive
// controller, the explorer and the solver: which directions are open,
// how raw headings map to grid directions, and which way to rotate.
//
// Headings:
//
//   - Raw headings are float64 degrees; quantized headings are ints in
//     {0, 90, 180, 270}.
//   - 0 faces north (y-1), 90 east (x+1), 180 south (y+1), 270 west (x-1).
//   - Every function reduces its input modulo 360 first, so negative and
//     oversized headings are accepted.
//
// Quantize rounds half up: 45 -> 90, 135 -> 180, 225 -> 270, 315 -> 0.
//
// Feasibility:
//
//	FeasibleDirections reports a direction as open iff its sensor reads a
//	valid distance of at least one cell side. NoReading is never open: a
//	missing echo cannot confirm an open cell.
//
// Rotation:
//
//	ShortestRotation compares the clockwise distance Normalize(target-current)
//	with its counter-clockwise complement and picks the smaller one. Ties,
//	including the 180 degree case, go clockwise.
package locomotion
