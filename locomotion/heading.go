package locomotion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazebot/grid"
)

// Normalize reduces deg into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}

	return d
}

// normalizeInt reduces a quantized heading into [0, 360).
func normalizeInt(h int) int {
	return ((h % 360) + 360) % 360
}

// Quantize returns the multiple of 90 nearest to raw, rounding half up.
func Quantize(raw float64) int {
	q := int(math.Floor(Normalize(raw)/90+0.5)) * 90

	return normalizeInt(q)
}

// TurnLeft returns the quantized heading 90 degrees counter-clockwise of h.
func TurnLeft(h int) int { return normalizeInt(h - 90) }

// TurnRight returns the quantized heading 90 degrees clockwise of h.
func TurnRight(h int) int { return normalizeInt(h + 90) }

// Reverse returns the opposite quantized heading.
func Reverse(h int) int { return normalizeInt(h + 180) }

// RelativeCell returns the neighbor of (x,y) in the direction of heading.
func RelativeCell(x, y, heading int) (int, int) {
	switch normalizeInt(heading) / 90 {
	case 0:
		return x, y - 1
	case 1:
		return x + 1, y
	case 2:
		return x, y + 1
	default:
		return x - 1, y
	}
}

// HeadingBetween is the inverse of RelativeCell: it returns the heading
// that moves from one cell to the other. The horizontal delta is checked
// first.
func HeadingBetween(from, to grid.Cell) (int, error) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 1 && dy == 0:
		return East, nil
	case dx == -1 && dy == 0:
		return West, nil
	case dx == 0 && dy == 1:
		return South, nil
	case dx == 0 && dy == -1:
		return North, nil
	}

	return 0, fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrNotAdjacent, from.X, from.Y, to.X, to.Y)
}

// SignedDelta returns the rotation from one heading to another in
// (-180, 180]. Positive values are clockwise.
func SignedDelta(from, to float64) float64 {
	d := Normalize(to - from)
	if d > 180 {
		d -= 360
	}

	return d
}

// ShortestRotation picks the turning direction that reaches target with
// the fewest degrees and returns that amount.
func ShortestRotation(current, target float64) (Rotation, float64) {
	right := Normalize(target - current)
	left := 360 - right
	if right <= left {
		return Clockwise, right
	}

	return CounterClockwise, left
}
