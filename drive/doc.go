// Package drive turns grid-level intentions ("face east", "advance one
// cell") into closed-loop motor commands.
//
// What:
//
//   - TurnTo rotates in place toward a target heading, picking the shorter
//     rotation and polling the heading sensor until the accumulated
//     rotation reaches the planned amount.
//   - TurnFixed90 rotates a quarter turn using only distance sensors: the
//     side sensor reading taken before the turn is what the front sensor
//     should see once the turn is done. A full rotation without that
//     reading ends in ErrNoOpening.
//   - DriveToWallDistance, DriveDistance and DriveWithWallFollowing drive
//     straight until the front reading crosses a target, optionally
//     re-centring between the side walls on every tick.
//   - DriveToNextSquareCenter derives that target from the current front
//     reading and the cell side length.
//
// Readings:
//
//	A distance of hardware.NoReading (or anything outside the trusted
//	range) never satisfies a stop test and never drives a correction.
//	When a manoeuvre needs a starting reading, the controller resamples
//	up to Resamples extra times before giving up with ErrNoReading.
//
// Polling:
//
//	Every loop is single-threaded busy polling. Each iteration checks the
//	context and the MaxPolls guard, so a sensor that never reports the
//	expected value ends in ErrPollLimit or ctx.Err() rather than a hang.
//	Motors are stopped whenever a manoeuvre returns an error.
//
// Options:
//
//   - WithLogger(l)            zerolog logger, default disabled.
//   - WithBrakingMargin(cm)    look-ahead stop distance, default 1 cm.
//   - WithTurnTolerance(cm)    noise allowance for TurnFixed90, default 3 cm.
//   - WithWallFollowing(gain)  enable side-wall correction in
//     DriveToNextSquareCenter with the given proportional gain.
//   - WithMaxPolls(n)          per-manoeuvre iteration cap, 0 disables it.
//   - WithResamples(n)         extra reads for a required starting reading.
//   - WithHeadingTolerance(d)  stop a heading turn d degrees early.
//
// Errors:
//
//   - ErrNilCapability, ErrInvalidSideLength, ErrOptionViolation from New.
//   - ErrZeroSpeed, ErrNoReading, ErrPollLimit, ErrNoOpening and ctx.Err()
//     from manoeuvres.
package drive
