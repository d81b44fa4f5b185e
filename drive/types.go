package drive

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for controller construction and manoeuvres.
var (
	// ErrNilCapability indicates the robot is missing a sensor or actuator.
	ErrNilCapability = errors.New("drive: robot capability is nil")
	// ErrInvalidSideLength indicates a non-positive cell side length.
	ErrInvalidSideLength = errors.New("drive: side length must be positive")
	// ErrOptionViolation is returned by New when an option value is invalid.
	ErrOptionViolation = errors.New("drive: invalid option supplied")
	// ErrZeroSpeed indicates a manoeuvre was requested at speed 0.
	ErrZeroSpeed = errors.New("drive: speed must be non-zero")
	// ErrNoReading indicates no valid distance reading could be obtained.
	ErrNoReading = errors.New("drive: no valid distance reading")
	// ErrPollLimit indicates a polling loop ran out of iterations.
	ErrPollLimit = errors.New("drive: poll limit reached")
	// ErrNoOpening indicates a fixed turn went full circle without the
	// front sensor reaching the side reading.
	ErrNoOpening = errors.New("drive: no opening within a full rotation")
)

// Defaults used by DefaultOptions.
const (
	DefaultBrakingMargin  = 1.0
	DefaultTurnTolerance  = 3.0
	DefaultWallFollowGain = 0.5
	DefaultMaxPolls       = 20000
	DefaultResamples      = 3
)

// Option configures a Controller.
type Option func(*Options)

// Options holds the controller's tuning parameters.
type Options struct {
	// Logger receives per-manoeuvre debug lines tagged component=drive.
	Logger zerolog.Logger

	// BrakingMargin (cm) is added to the stop distance of straight drives so
	// the robot halts before overshooting. Must be >= 0.
	BrakingMargin float64

	// TurnTolerance (cm) is subtracted from the side reading TurnFixed90
	// compares the front sensor against. Must be >= 0.
	TurnTolerance float64

	// WallFollowing routes DriveToNextSquareCenter through
	// DriveWithWallFollowing. Set by WithWallFollowing.
	WallFollowing bool

	// WallFollowGain scales the left/right wall offset difference into a
	// motor correction. Must be > 0 when WallFollowing is set.
	WallFollowGain float64

	// MaxPolls caps every polling loop; 0 means unbounded. A loop that
	// reaches the cap stops the motors and returns ErrPollLimit.
	MaxPolls int

	// Resamples is how many extra reads a required reading may take before
	// ErrNoReading.
	Resamples int

	// HeadingTolerance (degrees, [0, 90)) ends TurnTo that far short of the
	// target.
	HeadingTolerance float64

	// err records the first invalid option; New returns it.
	err error
}

// DefaultOptions returns the tuning used when no options are given.
func DefaultOptions() Options {
	return Options{
		Logger:         zerolog.Nop(),
		BrakingMargin:  DefaultBrakingMargin,
		TurnTolerance:  DefaultTurnTolerance,
		WallFollowGain: DefaultWallFollowGain,
		MaxPolls:       DefaultMaxPolls,
		Resamples:      DefaultResamples,
	}
}

// WithLogger sets the logger for manoeuvre diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithBrakingMargin sets how early, in cm, a straight drive stops.
func WithBrakingMargin(cm float64) Option {
	return func(o *Options) {
		if cm < 0 {
			o.err = fmt.Errorf("%w: braking margin cannot be negative (%v)", ErrOptionViolation, cm)
			return
		}
		o.BrakingMargin = cm
	}
}

// WithTurnTolerance sets the distance noise allowance for TurnFixed90.
func WithTurnTolerance(cm float64) Option {
	return func(o *Options) {
		if cm < 0 {
			o.err = fmt.Errorf("%w: turn tolerance cannot be negative (%v)", ErrOptionViolation, cm)
			return
		}
		o.TurnTolerance = cm
	}
}

// WithWallFollowing enables side-wall correction for square-to-square
// driving. gain scales the offset difference into a speed correction.
func WithWallFollowing(gain float64) Option {
	return func(o *Options) {
		if gain <= 0 {
			o.err = fmt.Errorf("%w: wall-following gain must be positive (%v)", ErrOptionViolation, gain)
			return
		}
		o.WallFollowing = true
		o.WallFollowGain = gain
	}
}

// WithMaxPolls caps every polling loop at n iterations; 0 disables the cap.
func WithMaxPolls(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max polls cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPolls = n
	}
}

// WithResamples sets how many extra reads are taken for a required reading.
func WithResamples(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: resamples cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Resamples = n
	}
}

// WithHeadingTolerance stops heading turns deg degrees short of the target
// to absorb overshoot.
func WithHeadingTolerance(deg float64) Option {
	return func(o *Options) {
		if deg < 0 || deg >= 90 {
			o.err = fmt.Errorf("%w: heading tolerance must be in [0, 90) (%v)", ErrOptionViolation, deg)
			return
		}
		o.HeadingTolerance = deg
	}
}
