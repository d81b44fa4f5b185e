// Package grid models a rectangular maze as a matrix of cell values,
// the shared map that the explorer fills in and the solver searches.
//
// What:
//
//   - Grid holds Width×Height integer cells addressed as cells[y][x],
//     plus the physical SideLength of one square cell in centimetres.
//   - A value of Open (1) marks a passable cell, Closed (0) an unknown or
//     blocked one. Mapping starts from an all-Closed grid.
//   - CloneShape stamps a fresh grid of the same shape with a chosen fill,
//     which is how visited overlays are created.
//
// Coordinates:
//
//   - x grows toward the east edge, y grows toward the start edge (south).
//   - Dimensions are fixed at construction; only cell values mutate.
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive width, height or side length.
//   - ErrEmptyGrid:         input rows slice is empty.
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrOutOfBounds:       wrapped in the panic value of Get/Set when the
//     coordinates fall outside the grid. Reaching it means the caller has an
//     algorithmic bug, so it is not returned as an error.
//
// Complexity:
//
//   - New, From2D, CloneShape, Clone, Equal, Count: O(W×H).
//   - Get, Set, InBounds, IsOpen, OpenNeighbors:   O(1).
package grid
