package drive

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mazebot/hardware"
)

// Controller drives a differential robot using its heading and distance
// sensors. It holds no state beyond the capabilities it wraps.
type Controller struct {
	motors  hardware.Actuator
	compass hardware.HeadingSensor
	sensors hardware.Sensors
	side    float64
	opts    Options
	log     zerolog.Logger
}

// New validates robot and returns a controller for cells of sideLength cm.
func New(robot hardware.Robot, sideLength float64, opts ...Option) (*Controller, error) {
	if err := robot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNilCapability, err)
	}
	if sideLength <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSideLength, sideLength)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Controller{
		motors:  robot.Motors,
		compass: robot.Compass,
		sensors: robot.Sensors,
		side:    sideLength,
		opts:    o,
		log:     o.Logger.With().Str("component", "drive").Logger(),
	}, nil
}

// SideLength returns the cell side length in cm.
func (c *Controller) SideLength() float64 { return c.side }

// Heading returns the current heading in degrees.
func (c *Controller) Heading() float64 { return c.compass.Heading() }

// ResetHeadingOffset makes the current orientation read as angle.
func (c *Controller) ResetHeadingOffset(angle float64) {
	c.compass.ResetOffset(angle)
	c.log.Debug().Float64("angle", angle).Msg("heading offset reset")
}

// Stop zeroes both motors.
func (c *Controller) Stop() { c.setSpeeds(0, 0) }

func (c *Controller) setSpeeds(left, right int) {
	c.motors.SetLeftSpeed(hardware.ClampSpeed(left))
	c.motors.SetRightSpeed(hardware.ClampSpeed(right))
}

// guard is checked once per polling iteration.
func (c *Controller) guard(ctx context.Context, polls int, op string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.opts.MaxPolls > 0 && polls >= c.opts.MaxPolls {
		return fmt.Errorf("%w: %s after %d polls", ErrPollLimit, op, polls)
	}

	return nil
}

// requireReading reads s until a valid value arrives, at most
// 1+Resamples times.
func (c *Controller) requireReading(s hardware.DistanceSensor, what string) (float64, error) {
	for i := 0; i <= c.opts.Resamples; i++ {
		if d := s.MeasureDistance(); hardware.Valid(d) {
			return d, nil
		}
	}

	return hardware.NoReading, fmt.Errorf("%w: %s sensor", ErrNoReading, what)
}

// stopOnError stops the motors when *err is set. Used with defer.
func (c *Controller) stopOnError(err *error) {
	if *err != nil {
		c.Stop()
	}
}

func checkSpeed(speed int) (int, error) {
	if speed == 0 {
		return 0, ErrZeroSpeed
	}

	return hardware.ClampSpeed(speed), nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
