package drive

import (
	"context"
	"math"

	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

// DriveToWallDistance drives straight until the front sensor reads target
// cm. A positive speed approaches the wall, a negative one backs away.
// The stop test fires BrakingMargin early. With brake set the motors are
// zeroed at the end; otherwise they keep running for the next command.
func (c *Controller) DriveToWallDistance(ctx context.Context, target float64, speed int, brake bool) error {
	return c.driveUntil(ctx, target, speed, brake, false)
}

// DriveDistance drives distance cm forward (speed > 0) or backward
// (speed < 0), measured against the wall in front.
func (c *Controller) DriveDistance(ctx context.Context, distance float64, speed int, brake bool) error {
	target, err := c.distanceTarget(distance, speed)
	if err != nil {
		return err
	}

	return c.driveUntil(ctx, target, speed, brake, false)
}

// DriveWithWallFollowing is DriveDistance with side-wall correction on
// every tick. It always brakes.
func (c *Controller) DriveWithWallFollowing(ctx context.Context, distance float64, speed int) error {
	target, err := c.distanceTarget(distance, speed)
	if err != nil {
		return err
	}

	return c.driveUntil(ctx, target, speed, true, true)
}

// DriveToNextSquareCenter moves to the centre of the next cell ahead
// (speed > 0) or behind (speed < 0), judged from the front reading.
func (c *Controller) DriveToNextSquareCenter(ctx context.Context, speed int) error {
	if speed == 0 {
		return ErrZeroSpeed
	}
	front, err := c.requireReading(c.sensors.Front, "front")
	if err != nil {
		return err
	}
	target := NextCenterTarget(front, c.side, speed > 0)
	c.log.Debug().Float64("front", front).Float64("target", target).Int("speed", speed).Msg("next square")

	return c.driveUntil(ctx, target, speed, true, c.opts.WallFollowing)
}

// NextCenterTarget returns the front reading at which the robot stands in
// the centre of the adjacent cell. front is rounded to the nearest cell
// centre first, so small drift does not skip a cell.
func NextCenterTarget(front, side float64, forward bool) float64 {
	n := math.Round((front - side/2) / side)
	if n < 0 {
		n = 0
	}
	if forward {
		if n >= 1 {
			return (n-1)*side + side/2
		}

		return side / 2
	}

	return (n+1)*side + side/2
}

func (c *Controller) distanceTarget(distance float64, speed int) (float64, error) {
	if speed == 0 {
		return 0, ErrZeroSpeed
	}
	start, err := c.requireReading(c.sensors.Front, "front")
	if err != nil {
		return 0, err
	}
	if speed > 0 {
		return start - distance, nil
	}

	return start + distance, nil
}

// driveUntil is the straight-line polling loop shared by every drive.
func (c *Controller) driveUntil(ctx context.Context, target float64, speed int, brake, follow bool) (err error) {
	speed, err = checkSpeed(speed)
	if err != nil {
		return err
	}
	defer c.stopOnError(&err)

	cmp, limit := locomotion.GreaterThan, target+c.opts.BrakingMargin
	if speed < 0 {
		cmp, limit = locomotion.LessThan, target-c.opts.BrakingMargin
	}

	for polls := 0; ; polls++ {
		front := c.sensors.Front.MeasureDistance()
		if hardware.Valid(front) && !cmp.Holds(front, limit) {
			break
		}
		if err = c.guard(ctx, polls, "drive"); err != nil {
			return err
		}
		if follow {
			c.setSpeeds(c.followSpeeds(speed))
		} else {
			c.setSpeeds(speed, speed)
		}
	}
	if brake {
		c.Stop()
	}

	return nil
}

// followSpeeds biases one motor so the robot drifts back toward the
// middle of the corridor. Each side's offset is its reading modulo the
// cell side; the motor on the side with the larger offset is slowed by
// ceil(|diff| * gain), in the direction of travel. Results are clamped.
func (c *Controller) followSpeeds(speed int) (int, int) {
	l := c.sensors.Left.MeasureDistance()
	r := c.sensors.Right.MeasureDistance()
	if !hardware.Valid(l) || !hardware.Valid(r) {
		return speed, speed
	}
	diff := math.Mod(l, c.side) - math.Mod(r, c.side)
	if diff == 0 {
		return speed, speed
	}
	corr := int(math.Ceil(math.Abs(diff) * c.opts.WallFollowGain))
	sign := 1
	if speed < 0 {
		sign = -1
	}
	left, right := speed, speed
	if diff > 0 {
		left -= sign * corr
	} else {
		right -= sign * corr
	}

	return hardware.ClampSpeed(left), hardware.ClampSpeed(right)
}
