package drive_test

import (
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

// kinematic is a toy differential robot. Every completed speed command
// (left then right) advances the pose by one tick: the heading turns by
// (left-right)*turnRate degrees and the front distance shrinks by the
// mean speed times moveRate.
type kinematic struct {
	left, right int
	heading     float64
	offset      float64
	front       float64
	leftWall    float64
	rightWall   float64
	turnRate    float64
	moveRate    float64

	// frontFn, if set, derives the front reading from the heading.
	frontFn func(heading float64) float64
	// dropouts is the number of upcoming front reads that return NoReading.
	dropouts int

	history [][2]int
}

func newKinematic() *kinematic {
	return &kinematic{front: 100, leftWall: 9, rightWall: 9, turnRate: 0.05, moveRate: 0.1}
}

func (k *kinematic) SetLeftSpeed(pct int) { k.left = pct }

func (k *kinematic) SetRightSpeed(pct int) {
	k.right = pct
	k.history = append(k.history, [2]int{k.left, k.right})
	k.heading = locomotion.Normalize(k.heading + float64(k.left-k.right)*k.turnRate)
	k.front -= float64(k.left+k.right) / 2 * k.moveRate
}

func (k *kinematic) Heading() float64 { return locomotion.Normalize(k.heading - k.offset) }

func (k *kinematic) ResetOffset(angle float64) { k.offset = k.heading - angle }

func (k *kinematic) stopped() bool { return k.left == 0 && k.right == 0 }

func (k *kinematic) robot() hardware.Robot {
	return hardware.Robot{
		Motors:  k,
		Compass: k,
		Sensors: hardware.Sensors{
			Left:  sensorFunc(func() float64 { return k.leftWall }),
			Front: sensorFunc(k.readFront),
			Right: sensorFunc(func() float64 { return k.rightWall }),
		},
	}
}

func (k *kinematic) readFront() float64 {
	if k.dropouts > 0 {
		k.dropouts--
		return hardware.NoReading
	}
	if k.frontFn != nil {
		return k.frontFn(k.heading)
	}

	return k.front
}

type sensorFunc func() float64

func (f sensorFunc) MeasureDistance() float64 { return f() }
