package locomotion

import "errors"

// ErrNotAdjacent is returned by HeadingBetween for cells that are not one
// axis-aligned step apart.
var ErrNotAdjacent = errors.New("locomotion: cells are not orthogonally adjacent")

// Quantized headings.
const (
	North = 0
	East  = 90
	South = 180
	West  = 270
)

// Directions reports which moves relative to the robot's body are open.
type Directions struct {
	Left, Straight, Right bool
}

// Lateral reports whether a left or right move is open.
func (d Directions) Lateral() bool { return d.Left || d.Right }

// Any reports whether any move is open.
func (d Directions) Any() bool { return d.Left || d.Straight || d.Right }

// Rotation is a turning direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

func (r Rotation) String() string {
	if r == CounterClockwise {
		return "counter-clockwise"
	}

	return "clockwise"
}

// Side selects the direction of a fixed 90 degree turn.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// Comparison is the stop test of a polling loop: the loop keeps going
// while Holds(live, threshold) is true.
type Comparison int

const (
	LessThan Comparison = iota
	GreaterThan
	AtMost
	AtLeast
)

// Holds evaluates a <op> b.
func (c Comparison) Holds(a, b float64) bool {
	switch c {
	case LessThan:
		return a < b
	case GreaterThan:
		return a > b
	case AtMost:
		return a <= b
	case AtLeast:
		return a >= b
	default:
		panic("locomotion: unknown comparison")
	}
}

func (c Comparison) String() string {
	switch c {
	case LessThan:
		return "<"
	case GreaterThan:
		return ">"
	case AtMost:
		return "<="
	case AtLeast:
		return ">="
	default:
		return "?"
	}
}
