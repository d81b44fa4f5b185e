package locomotion

import "github.com/katalvlaran/mazebot/hardware"

// Open reports whether a single distance reading confirms an open
// neighboring cell.
func Open(reading, sideLength float64) bool {
	return hardware.Valid(reading) && reading >= sideLength
}

// FeasibleDirections reads all three sensors once.
func FeasibleDirections(s hardware.Sensors, sideLength float64) Directions {
	return Directions{
		Left:     Open(s.Left.MeasureDistance(), sideLength),
		Straight: Open(s.Front.MeasureDistance(), sideLength),
		Right:    Open(s.Right.MeasureDistance(), sideLength),
	}
}
