package node

import "github.com/katalvlaran/mazebot/grid"

// NoParent marks the root of a Tree.
const NoParent = -1

// Node is a grid coordinate with the arena index of the node it was
// reached from.
type Node struct {
	X, Y   int
	Parent int
}

// Cell returns the node's coordinate.
func (n Node) Cell() grid.Cell { return grid.Cell{X: n.X, Y: n.Y} }

// Equal compares coordinates only; parents are ignored.
func (n Node) Equal(o Node) bool { return n.X == o.X && n.Y == o.Y }

// Tree is an append-only arena of nodes.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty tree with room for capacity nodes.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: make([]Node, 0, capacity)}
}

// Add appends a node and returns its index. parent must be NoParent or an
// index already in the tree.
func (t *Tree) Add(x, y, parent int) int {
	if parent != NoParent && (parent < 0 || parent >= len(t.nodes)) {
		panic("node: parent index out of range")
	}
	t.nodes = append(t.nodes, Node{X: x, Y: y, Parent: parent})

	return len(t.nodes) - 1
}

// Node returns the node at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Chain walks from node i back to the root and returns the coordinates in
// that order, terminal first.
func (t *Tree) Chain(i int) []grid.Cell {
	var out []grid.Cell
	for i != NoParent {
		n := t.nodes[i]
		out = append(out, n.Cell())
		i = n.Parent
	}

	return out
}

// Path returns the coordinates from the root to node i.
func (t *Tree) Path(i int) []grid.Cell {
	return Reverse(t.Chain(i))
}

// Reverse returns a new slice holding cells in reverse order.
func Reverse(cells []grid.Cell) []grid.Cell {
	out := make([]grid.Cell, len(cells))
	for i, c := range cells {
		out[len(cells)-1-i] = c
	}

	return out
}
