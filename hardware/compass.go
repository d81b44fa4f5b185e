package hardware

import "math"

// RawCompass is a heading source without software zeroing, such as a
// magnetometer or an integrated gyro.
type RawCompass interface {
	// RawHeading returns degrees; the range need not be normalized.
	RawHeading() float64
}

// OffsetCompass adds a software zero reference to a RawCompass.
// The zero value is not usable; construct with NewOffsetCompass.
type OffsetCompass struct {
	raw    RawCompass
	offset float64
}

// NewOffsetCompass wraps raw with a zero offset.
func NewOffsetCompass(raw RawCompass) *OffsetCompass {
	return &OffsetCompass{raw: raw}
}

// ResetOffset makes the current raw reading map to angle.
func (c *OffsetCompass) ResetOffset(angle float64) {
	c.offset = c.raw.RawHeading() - round1(angle)
}

// Heading returns the corrected heading in [0, 360), rounded to 0.1 degree.
func (c *OffsetCompass) Heading() float64 {
	h := math.Mod(360+c.raw.RawHeading()-c.offset, 360)
	if h < 0 {
		h += 360
	}
	h = round1(h)
	if h >= 360 {
		h -= 360
	}

	return h
}

// Offset returns the current raw-to-heading offset.
func (c *OffsetCompass) Offset() float64 { return c.offset }

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
