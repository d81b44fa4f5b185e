package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width, height or side length.
	ErrInvalidDimensions = errors.New("grid: width, height and side length must be positive")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds is carried by the panic raised on out-of-range access.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Cell values.
const (
	// Closed marks a cell as blocked or not yet known to be passable.
	Closed = 0
	// Open marks a passable cell.
	Open = 1
)

// Cell is an (X, Y) grid coordinate.
type Cell struct {
	X, Y int
}

// Grid is a fixed-size matrix of cell values with a physical cell size.
// Width and Height never change after construction.
type Grid struct {
	Width, Height int
	// SideLength is the length of one cell side in centimetres.
	SideLength float64

	cells [][]int
}

// neighborOffsets lists the orthogonal neighbors in N, E, S, W order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
