package sim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

// Default body rates, per percent of speed per tick.
const (
	DefaultMoveRate = 0.01 // cm
	DefaultTurnRate = 0.01 // degrees
)

// Body is a continuous differential robot inside a known maze. Unlike
// World it has no manoeuvres of its own: it is driven through its motors
// and read through its raw compass and distance sensors, the way the drive
// controller drives real hardware.
//
// Each completed speed command (left, then right) is one tick. Positions
// are in cm from the north-west corner of the maze, x east and y south.
// A tick that would enter a closed cell is refused and recorded; see Err.
type Body struct {
	truth   *grid.Grid
	x, y    float64
	heading float64

	left, right int
	moveRate    float64
	turnRate    float64

	// Ticks counts speed commands with at least one motor running.
	Ticks int
	err   error
}

// NewBody places a body at the centre of start's cell.
func NewBody(truth *grid.Grid, start Pose) (*Body, error) {
	w, err := New(truth, start)
	if err != nil {
		return nil, err
	}
	p, side := w.Pose(), truth.SideLength

	return &Body{
		truth:    truth,
		x:        (float64(p.X) + 0.5) * side,
		y:        (float64(p.Y) + 0.5) * side,
		heading:  float64(p.Heading),
		moveRate: DefaultMoveRate,
		turnRate: DefaultTurnRate,
	}, nil
}

// SetLeftSpeed implements hardware.Actuator.
func (b *Body) SetLeftSpeed(pct int) { b.left = hardware.ClampSpeed(pct) }

// SetRightSpeed implements hardware.Actuator and advances one tick.
func (b *Body) SetRightSpeed(pct int) {
	b.right = hardware.ClampSpeed(pct)
	if b.left == 0 && b.right == 0 || b.err != nil {
		return
	}
	b.Ticks++
	b.heading = locomotion.Normalize(b.heading + float64(b.left-b.right)/2*b.turnRate)
	step := float64(b.left+b.right) / 2 * b.moveRate
	rad := b.heading * math.Pi / 180
	x, y := b.x+step*math.Sin(rad), b.y-step*math.Cos(rad)
	if c := b.cellAt(x, y); !b.truth.IsOpen(c.X, c.Y) {
		b.err = fmt.Errorf("%w: (%.1f,%.1f) -> (%.1f,%.1f)", ErrCollision, b.x, b.y, x, y)
		return
	}
	b.x, b.y = x, y
}

// RawHeading implements hardware.RawCompass.
func (b *Body) RawHeading() float64 { return b.heading }

// Sensors returns distance sensors mounted at the body's centre.
func (b *Body) Sensors() hardware.Sensors {
	return hardware.Sensors{
		Left:  beam{b: b, rel: -90},
		Front: beam{b: b, rel: 0},
		Right: beam{b: b, rel: 90},
	}
}

// Robot bundles the body's capabilities behind a software-zeroed compass.
func (b *Body) Robot() hardware.Robot {
	return hardware.Robot{
		Motors:  b,
		Compass: hardware.NewOffsetCompass(b),
		Sensors: b.Sensors(),
	}
}

// Position returns the body's centre in cm.
func (b *Body) Position() (x, y float64) { return b.x, b.y }

// Cell returns the cell the body's centre is in.
func (b *Body) Cell() grid.Cell { return b.cellAt(b.x, b.y) }

// Err returns the first refused move, if any.
func (b *Body) Err() error { return b.err }

func (b *Body) cellAt(x, y float64) grid.Cell {
	side := b.truth.SideLength
	return grid.Cell{X: int(math.Floor(x / side)), Y: int(math.Floor(y / side))}
}

// beam is a distance sensor facing rel degrees off the body's heading.
type beam struct {
	b   *Body
	rel float64
}

func (s beam) MeasureDistance() float64 {
	d := s.b.cast(s.b.heading + s.rel)
	if d > hardware.MaxValidCM {
		return hardware.NoReading
	}

	return d
}

// cast walks the grid cell by cell along a ray from the body's centre and
// returns the distance to the first closed or out-of-grid cell.
func (b *Body) cast(heading float64) float64 {
	side := b.truth.SideLength
	rad := heading * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	c := b.Cell()

	stepX, nextX, deltaX := axis(b.x, dx, c.X, side)
	stepY, nextY, deltaY := axis(b.y, dy, c.Y, side)
	for {
		var t float64
		if nextX < nextY {
			t = nextX
			c.X += stepX
			nextX += deltaX
		} else {
			t = nextY
			c.Y += stepY
			nextY += deltaY
		}
		if !b.truth.IsOpen(c.X, c.Y) || t > hardware.MaxValidCM {
			return t
		}
	}
}

// axis returns the cell step along one axis, the ray length to the first
// cell boundary on it and the ray length between boundaries.
func axis(pos, dir float64, cell int, side float64) (int, float64, float64) {
	switch {
	case dir > 1e-9:
		return 1, (float64(cell+1)*side - pos) / dir, side / dir
	case dir < -1e-9:
		return -1, (float64(cell)*side - pos) / dir, side / -dir
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}
