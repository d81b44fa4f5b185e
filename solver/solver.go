package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/node"
)

// Solver searches a mapped maze.
type Solver struct {
	maze *grid.Grid
	opts Options
	log  zerolog.Logger
}

// New returns a solver over maze. The maze is read, never modified.
func New(maze *grid.Grid, opts ...Option) (*Solver, error) {
	if maze == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{
		maze: maze,
		opts: o,
		log:  o.Logger.With().Str("component", "solver").Logger(),
	}, nil
}

// IsMiddleSquare reports whether (x, y) is a centre cell of a w×h maze.
func IsMiddleSquare(x, y, w, h int) bool {
	return inMiddle(x, w) && inMiddle(y, h)
}

func inMiddle(v, n int) bool {
	return v == n/2 || (n%2 == 0 && v == n/2-1)
}

// MiddleSquares lists the centre cells of a w×h maze, row by row.
func MiddleSquares(w, h int) []grid.Cell {
	var out []grid.Cell
	for y := h/2 - 1; y <= h/2; y++ {
		for x := w/2 - 1; x <= w/2; x++ {
			if x >= 0 && y >= 0 && IsMiddleSquare(x, y, w, h) {
				out = append(out, grid.Cell{X: x, Y: y})
			}
		}
	}

	return out
}

// FindPath runs breadth-first search from (startX, startY) to the nearest
// middle square.
func (s *Solver) FindPath(startX, startY int) (*Result, error) {
	w, h := s.maze.Width, s.maze.Height
	if !s.maze.InBounds(startX, startY) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, startX, startY)
	}

	visited := s.maze.CloneShape(grid.Closed)
	visited.Set(startX, startY, grid.Open)
	tree := node.NewTree(w * h)
	depth := make([]int, 0, w*h)
	tree.Add(startX, startY, node.NoParent)
	depth = append(depth, 0)

	for head := 0; head < tree.Len(); head++ {
		n := tree.Node(head)
		s.opts.OnVisit(n.Cell(), depth[head])
		if IsMiddleSquare(n.X, n.Y, w, h) {
			s.log.Info().
				Int("x", n.X).Int("y", n.Y).
				Int("depth", depth[head]).
				Int("expanded", head+1).
				Msg("centre reached")
			return &Result{Tree: tree, Terminal: head, Depth: depth[head]}, nil
		}
		for _, nb := range s.maze.OpenNeighbors(n.X, n.Y) {
			if visited.Get(nb.X, nb.Y) != grid.Closed {
				continue
			}
			visited.Set(nb.X, nb.Y, grid.Open)
			tree.Add(nb.X, nb.Y, head)
			depth = append(depth, depth[head]+1)
		}
	}
	s.log.Warn().Int("x", startX).Int("y", startY).Int("expanded", tree.Len()).Msg("centre unreachable")

	return nil, fmt.Errorf("%w: from (%d,%d)", ErrNoPath, startX, startY)
}

// Solve finds the shortest path from the start and returns its commands.
func (s *Solver) Solve(startX, startY int) ([]Command, error) {
	res, err := s.FindPath(startX, startY)
	if err != nil {
		return nil, err
	}

	return s.Commands(res.Path())
}
