// Package explorer maps an unknown maze by driving it depth-first.
//
// What:
//
//	Explore(ctx, x, y) walks the reachable region from (x, y), probing the
//	left, front and right distance sensors at every cell centre. Open
//	neighbours are recorded in the maze grid whether or not they have been
//	entered before; unvisited ones are entered, explored recursively and
//	left again with an equal and opposite move and turn, so the robot is
//	back where it was before the next candidate is tried.
//
// Lateral alignment:
//
//	The robot is placed flush against a side wall but does not know which.
//	Mapping assumes column 0. On the first cell where a lateral move is
//	open, exactly once per run: if the left side is open the robot must be
//	on the right edge, so column 0 is cleared and column Width-1 is marked
//	visited and open for every row from the current one to the bottom
//	edge. Result.Start reports the corrected start cell.
//
// Ordering:
//
//	Candidates are tried left, straight, right. Mapping does not stop at
//	the maze centre; it covers everything reachable.
//
// Options:
//
//   - WithSpeed(pct)      driving speed, default 70.
//   - WithTurnSpeed(pct)  turning speed, default 70.
//   - WithLogger(l)       zerolog logger, default disabled.
//   - WithOnVisit(fn)     called on entering each cell; an error aborts.
//   - WithOnAlign(fn)     called once, when alignment settles the column.
//
// Errors:
//
//   - ErrGridNil, ErrNilDriver, ErrOptionViolation, hardware.ErrNilCapability
//     from New.
//   - ErrStartOutOfBounds, driver errors, hook errors and ctx.Err() from
//     Explore.
//
// Complexity:
//
//	Every reachable cell is entered once, so O(W×H) sensor reads, moves
//	and recursion depth.
package explorer
