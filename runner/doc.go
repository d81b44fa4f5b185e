// Package runner performs one complete maze run: map the maze, solve it,
// then drive the solution.
//
// The three phases run back to back on the calling goroutine. The context
// is checked before each phase, which is where an external stop request
// takes effect. Every log line of a run carries its run_id.
//
// Errors:
//
//   - ErrNilRobot:        New received a nil Robot.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - Errors from the explorer, solver and robot are wrapped with the phase
//     they occurred in.
package runner
