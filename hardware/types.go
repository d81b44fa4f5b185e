package hardware

import (
	"errors"
	"fmt"
)

// ErrNilCapability is returned by Robot.Validate when a capability is missing.
var ErrNilCapability = errors.New("hardware: capability is nil")

// Reading bounds in centimetres.
const (
	// NoReading is what a distance sensor reports on timeout or an implausible echo.
	NoReading = 0.0
	// MinValidCM is the closest distance a sensor can measure reliably.
	MinValidCM = 1.0
	// MaxValidCM is the farthest distance a sensor can measure reliably.
	MaxValidCM = 300.0
)

// Speed bounds in percent of full duty cycle.
const (
	MinSpeed = -100
	MaxSpeed = 100
)

// DistanceSensor measures the distance to the nearest obstacle in front of it.
type DistanceSensor interface {
	// MeasureDistance returns centimetres, or NoReading when no valid echo arrived.
	MeasureDistance() float64
}

// HeadingSensor reports the robot's heading.
type HeadingSensor interface {
	// Heading returns degrees in [0, 360).
	Heading() float64
	// ResetOffset makes the current physical orientation read as angle from now on.
	ResetOffset(angle float64)
}

// Actuator drives the left and right wheels independently.
type Actuator interface {
	SetLeftSpeed(pct int)
	SetRightSpeed(pct int)
}

// Sensors groups the three distance sensors, each facing one way
// relative to the robot's body.
type Sensors struct {
	Left, Front, Right DistanceSensor
}

// Robot bundles every capability the drive controller needs.
type Robot struct {
	Motors  Actuator
	Compass HeadingSensor
	Sensors Sensors
}

// Validate reports the first missing capability.
func (r Robot) Validate() error {
	switch {
	case r.Motors == nil:
		return fmt.Errorf("%w: motors", ErrNilCapability)
	case r.Compass == nil:
		return fmt.Errorf("%w: compass", ErrNilCapability)
	}

	return r.Sensors.Validate()
}

// Validate reports the first missing distance sensor.
func (s Sensors) Validate() error {
	switch {
	case s.Left == nil:
		return fmt.Errorf("%w: left sensor", ErrNilCapability)
	case s.Front == nil:
		return fmt.Errorf("%w: front sensor", ErrNilCapability)
	case s.Right == nil:
		return fmt.Errorf("%w: right sensor", ErrNilCapability)
	}

	return nil
}

// Valid reports whether d is a trustworthy distance reading.
func Valid(d float64) bool {
	return d >= MinValidCM && d <= MaxValidCM
}

// ClampSpeed limits pct to [MinSpeed, MaxSpeed].
func ClampSpeed(pct int) int {
	if pct > MaxSpeed {
		return MaxSpeed
	}
	if pct < MinSpeed {
		return MinSpeed
	}

	return pct
}
