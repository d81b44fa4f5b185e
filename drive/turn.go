package drive

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

// TurnTo rotates in place to target degrees at |speed| percent.
//
// The shorter rotation is chosen up front. Progress is the sum of
// SignedDelta between consecutive readings, so crossing 0/360 does not
// disturb the stop test. Motors are zeroed on return.
func (c *Controller) TurnTo(ctx context.Context, target float64, speed int) error {
	speed, err := checkSpeed(speed)
	if err != nil {
		return err
	}
	speed = abs(speed)
	defer c.Stop()

	start := c.compass.Heading()
	rot, deg := locomotion.ShortestRotation(start, target)
	deg -= c.opts.HeadingTolerance
	if deg <= 0 {
		return nil
	}

	left, right := speed, -speed
	cmp, limit := locomotion.LessThan, deg
	if rot == locomotion.CounterClockwise {
		left, right = -speed, speed
		cmp, limit = locomotion.GreaterThan, -deg
	}
	c.log.Debug().
		Float64("from", start).
		Float64("to", target).
		Stringer("rotation", rot).
		Float64("degrees", deg).
		Msg("turn")

	prev, progress := start, 0.0
	for polls := 0; ; polls++ {
		cur := c.compass.Heading()
		progress += locomotion.SignedDelta(prev, cur)
		prev = cur
		if !cmp.Holds(progress, limit) {
			return nil
		}
		if err := c.guard(ctx, polls, "turn"); err != nil {
			return err
		}
		c.setSpeeds(left, right)
	}
}

// TurnFixed90 rotates a quarter turn toward side using the distance
// sensors only.
//
// The side sensor is read before turning and the turn ends at the first
// valid front reading at or above that value minus the turn tolerance,
// including one taken before any rotation. The cell being turned into is
// assumed open. The compass only bounds the search: a full rotation
// without such a reading fails with ErrNoOpening.
func (c *Controller) TurnFixed90(ctx context.Context, side locomotion.Side, speed int) (err error) {
	speed, err = checkSpeed(speed)
	if err != nil {
		return err
	}
	speed = abs(speed)
	defer c.Stop()

	sensor, left, right := c.sensors.Right, speed, -speed
	if side == locomotion.Left {
		sensor, left, right = c.sensors.Left, -speed, speed
	}
	before, err := c.requireReading(sensor, side.String())
	if err != nil {
		return err
	}
	threshold := before - c.opts.TurnTolerance
	c.log.Debug().Stringer("side", side).Float64("threshold", threshold).Msg("fixed turn")

	prev, progress := c.compass.Heading(), 0.0
	for polls := 0; ; polls++ {
		front := c.sensors.Front.MeasureDistance()
		if hardware.Valid(front) && locomotion.AtLeast.Holds(front, threshold) {
			return nil
		}
		cur := c.compass.Heading()
		progress += locomotion.SignedDelta(prev, cur)
		prev = cur
		if math.Abs(progress) >= 360 {
			return fmt.Errorf("%w: %s turn, threshold %.1f cm", ErrNoOpening, side, threshold)
		}
		if err := c.guard(ctx, polls, "fixed turn"); err != nil {
			return err
		}
		c.setSpeeds(left, right)
	}
}
