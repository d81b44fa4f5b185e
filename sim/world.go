package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

// World is a simulated robot inside a known maze. It is not safe for
// concurrent use.
type World struct {
	truth   *grid.Grid
	pose    Pose
	offset  float64
	visited map[grid.Cell]int

	// Moves counts single-cell moves, Turns counts heading changes.
	Moves, Turns int
}

// New places a robot at start inside truth.
func New(truth *grid.Grid, start Pose) (*World, error) {
	if truth == nil {
		return nil, ErrGridNil
	}
	if start.Heading%90 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadHeading, start.Heading)
	}
	if !truth.IsOpen(start.X, start.Y) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartBlocked, start.X, start.Y)
	}
	start.Heading = locomotion.Quantize(float64(start.Heading))

	return &World{
		truth:   truth,
		pose:    start,
		visited: map[grid.Cell]int{start.Cell(): 1},
	}, nil
}

// Pose returns the robot's true pose.
func (w *World) Pose() Pose { return w.pose }

// Truth returns the layout the world was built from.
func (w *World) Truth() *grid.Grid { return w.truth }

// VisitCount returns how many times the robot has entered c.
func (w *World) VisitCount(c grid.Cell) int { return w.visited[c] }

// Sensors returns the three distance sensors mounted on the robot.
func (w *World) Sensors() hardware.Sensors {
	return hardware.Sensors{
		Left:  ray{w: w, rel: -90},
		Front: ray{w: w, rel: 0},
		Right: ray{w: w, rel: 90},
	}
}

// ray is a distance sensor facing rel degrees off the robot's heading.
type ray struct {
	w   *World
	rel int
}

func (r ray) MeasureDistance() float64 {
	return r.w.distance(r.w.pose.Heading + r.rel)
}

// openAhead counts open cells in a straight line from the robot.
func (w *World) openAhead(heading int) int {
	n := 0
	x, y := locomotion.RelativeCell(w.pose.X, w.pose.Y, heading)
	for w.truth.IsOpen(x, y) {
		n++
		x, y = locomotion.RelativeCell(x, y, heading)
	}

	return n
}

func (w *World) distance(heading int) float64 {
	d := float64(w.openAhead(heading))*w.truth.SideLength + w.truth.SideLength/2
	if d > hardware.MaxValidCM {
		return hardware.NoReading
	}

	return d
}

// Heading implements hardware.HeadingSensor.
func (w *World) Heading() float64 {
	return locomotion.Normalize(float64(w.pose.Heading) - w.offset)
}

// ResetOffset implements hardware.HeadingSensor.
func (w *World) ResetOffset(angle float64) {
	w.offset = float64(w.pose.Heading) - angle
}

// ResetHeadingOffset is ResetOffset under the executor's name.
func (w *World) ResetHeadingOffset(angle float64) { w.ResetOffset(angle) }

// TurnTo rotates to the quarter heading nearest target in the robot's
// current heading frame.
func (w *World) TurnTo(ctx context.Context, target float64, speed int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if speed == 0 {
		return ErrZeroSpeed
	}
	h := locomotion.Quantize(target + w.offset)
	if h != w.pose.Heading {
		w.Turns++
		w.pose.Heading = h
	}

	return nil
}

// DriveToNextSquareCenter moves one cell forward (speed > 0) or back.
func (w *World) DriveToNextSquareCenter(ctx context.Context, speed int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if speed == 0 {
		return ErrZeroSpeed
	}
	dir := w.pose.Heading
	if speed < 0 {
		dir = locomotion.Reverse(dir)
	}

	return w.step(dir)
}

// DriveToWallDistance moves along the current heading until the front
// reading would equal target, rounded to whole cells.
func (w *World) DriveToWallDistance(ctx context.Context, target float64, speed int, _ bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if speed == 0 {
		return ErrZeroSpeed
	}
	side := w.truth.SideLength
	current := float64(w.openAhead(w.pose.Heading))*side + side/2
	cells := int(math.Round((current - target) / side))
	dir := w.pose.Heading
	if cells < 0 {
		cells = -cells
		dir = locomotion.Reverse(dir)
	}
	if (cells > 0) && (speed > 0) != (dir == w.pose.Heading) {
		return fmt.Errorf("sim: target %.1f cm needs the opposite speed sign", target)
	}
	for i := 0; i < cells; i++ {
		if err := w.step(dir); err != nil {
			return err
		}
	}

	return nil
}

func (w *World) step(dir int) error {
	x, y := locomotion.RelativeCell(w.pose.X, w.pose.Y, dir)
	if !w.truth.IsOpen(x, y) {
		return fmt.Errorf("%w: (%d,%d) -> (%d,%d)", ErrCollision, w.pose.X, w.pose.Y, x, y)
	}
	w.pose.X, w.pose.Y = x, y
	w.visited[grid.Cell{X: x, Y: y}]++
	w.Moves++

	return nil
}
