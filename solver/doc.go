// Package solver finds the shortest route from the start cell to the
// centre of a mapped maze and turns it into a list of drive commands.
//
// What:
//
//   - FindPath runs breadth-first search over the Open cells of the maze,
//     stopping at the first node that lands on a middle square.
//   - Commands converts the start-to-centre path into an ordered command
//     list: one heading reset, then a drive-to-wall/turn pair at every
//     bend, and a closing drive.
//   - Execute feeds a command list to an Executor in order.
//
// Middle squares:
//
//	For each axis of length n the centre set is {n/2} when n is odd and
//	{n/2-1, n/2} when n is even. A cell qualifies when both coordinates
//	are in their axis' centre set: four cells for 16x16, one for 15x15.
//
// Search:
//
//	The search tree is an arena (node.Tree) that doubles as the FIFO
//	queue: nodes are appended in discovery order and a head index walks
//	them, so expansion is strictly level by level. Neighbours are taken in
//	N, E, S, W order; which of several equally short paths is returned
//	depends on that order only.
//
// Commands:
//
//	A drive target is a front-sensor reading: the number of Open cells
//	straight ahead of the cell where the drive ends, times the side
//	length, plus half a side. The first command resets the heading
//	reference to the first move's heading; the robot must be physically
//	facing that way when execution starts.
//
// Errors:
//
//   - ErrGridNil, ErrOptionViolation from New.
//   - ErrStartOutOfBounds, ErrNoPath from FindPath and Solve.
//   - ErrPathTooShort, locomotion.ErrNotAdjacent from Commands.
//   - ErrUnknownOp and executor errors from Execute.
//
// Complexity:
//
//	FindPath is O(W×H) time and memory. Commands is O(len(path) × max(W, H)).
package solver
