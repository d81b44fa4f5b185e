package grid

import (
	"fmt"
	"strings"
)

// New builds a width×height grid with every cell set to fill.
// Returns ErrInvalidDimensions for non-positive sizes.
func New(width, height int, sideLength float64, fill int) (*Grid, error) {
	if width <= 0 || height <= 0 || sideLength <= 0 {
		return nil, fmt.Errorf("%w: %dx%d, side %.1f", ErrInvalidDimensions, width, height, sideLength)
	}

	return newFilled(width, height, sideLength, fill), nil
}

// From2D builds a grid from a non-empty, rectangular [y][x] slice.
// The input is deep-copied so later changes to values do not leak in.
func From2D(values [][]int, sideLength float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if sideLength <= 0 {
		return nil, fmt.Errorf("%w: side %.1f", ErrInvalidDimensions, sideLength)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := newFilled(w, h, sideLength, Closed)
	for y := 0; y < h; y++ {
		copy(g.cells[y], values[y])
	}

	return g, nil
}

func newFilled(width, height int, sideLength float64, fill int) *Grid {
	cells := make([][]int, height)
	for y := range cells {
		row := make([]int, width)
		if fill != 0 {
			for x := range row {
				row[x] = fill
			}
		}
		cells[y] = row
	}

	return &Grid{Width: width, Height: height, SideLength: sideLength, cells: cells}
}

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the value at (x,y). It panics on out-of-range coordinates.
func (g *Grid) Get(x, y int) int {
	g.mustBeInBounds(x, y)

	return g.cells[y][x]
}

// Set stores v at (x,y). It panics on out-of-range coordinates.
func (g *Grid) Set(x, y, v int) {
	g.mustBeInBounds(x, y)
	g.cells[y][x] = v
}

func (g *Grid) mustBeInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height))
	}
}

// IsOpen reports whether (x,y) is inside the grid and marked Open.
func (g *Grid) IsOpen(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] == Open
}

// OpenNeighbors returns the Open orthogonal neighbors of (x,y) in N, E, S, W order.
func (g *Grid) OpenNeighbors(x, y int) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.IsOpen(nx, ny) {
			out = append(out, Cell{X: nx, Y: ny})
		}
	}

	return out
}

// CloneShape returns a new grid with the same width, height and side length
// and every cell set to fill. The receiver's contents are not copied.
func (g *Grid) CloneShape(fill int) *Grid {
	return newFilled(g.Width, g.Height, g.SideLength, fill)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := newFilled(g.Width, g.Height, g.SideLength, Closed)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}

	return c
}

// Equal reports whether both grids hold the same cell values.
// Side length is not compared.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}

	return true
}

// Count returns how many cells hold v.
func (g *Grid) Count(v int) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == v {
				n++
			}
		}
	}

	return n
}

// Rows returns a copy of the cell matrix in [y][x] order.
func (g *Grid) Rows() [][]int {
	return g.Clone().cells
}

// String renders the grid one row per line, '.' for Open and '#' otherwise.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for _, row := range g.cells {
		for _, c := range row {
			if c == Open {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Parse builds a grid from rows rendered like String: '.' is Open,
// '#' is Closed. Any other character is rejected.
func Parse(rows []string, sideLength float64) (*Grid, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x, ch := range []byte(row) {
			switch ch {
			case '.':
				values[y][x] = Open
			case '#':
				values[y][x] = Closed
			default:
				return nil, fmt.Errorf("grid: unexpected %q at (%d,%d)", ch, x, y)
			}
		}
	}

	return From2D(values, sideLength)
}
