package drive_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazebot/drive"
	"github.com/katalvlaran/mazebot/hardware"
	"github.com/katalvlaran/mazebot/locomotion"
)

// ControllerSuite runs every manoeuvre against a fresh kinematic robot.
type ControllerSuite struct {
	suite.Suite
	ctx context.Context
	k   *kinematic
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.k = newKinematic()
}

func (s *ControllerSuite) controller(opts ...drive.Option) *drive.Controller {
	c, err := drive.New(s.k.robot(), 18, opts...)
	require.NoError(s.T(), err)

	return c
}

//----------------------------------------------------------------------------//
// Heading turns
//----------------------------------------------------------------------------//

// TestTurnClockwiseAcrossZero: 350 -> 80 is a 90 degree right turn.
func (s *ControllerSuite) TestTurnClockwiseAcrossZero() {
	s.k.heading = 350
	c := s.controller()

	require.NoError(s.T(), c.TurnTo(s.ctx, 80, 50))
	require.InDelta(s.T(), 80, c.Heading(), 5)
	require.True(s.T(), s.k.stopped(), "motors must be zeroed")
	require.Equal(s.T(), [2]int{50, -50}, s.k.history[0])
}

// TestTurnCounterClockwiseAcrossZero: 10 -> 280 is a 90 degree left turn.
func (s *ControllerSuite) TestTurnCounterClockwiseAcrossZero() {
	s.k.heading = 10
	c := s.controller()

	require.NoError(s.T(), c.TurnTo(s.ctx, 280, -50))
	require.InDelta(s.T(), 280, c.Heading(), 5)
	require.True(s.T(), s.k.stopped())
	require.Equal(s.T(), [2]int{-50, 50}, s.k.history[0])
}

// TestTurnHalfCircle covers the 180 degree case where SignedDelta flips sign.
func (s *ControllerSuite) TestTurnHalfCircle() {
	s.k.heading = 90
	c := s.controller()

	require.NoError(s.T(), c.TurnTo(s.ctx, 270, 40))
	require.InDelta(s.T(), 270, c.Heading(), 4)
}

func (s *ControllerSuite) TestTurnAlreadyThere() {
	s.k.heading = 180
	c := s.controller(drive.WithHeadingTolerance(2))

	require.NoError(s.T(), c.TurnTo(s.ctx, 181, 60))
	require.Equal(s.T(), [][2]int{{0, 0}}, s.k.history)
}

func (s *ControllerSuite) TestTurnZeroSpeed() {
	require.ErrorIs(s.T(), s.controller().TurnTo(s.ctx, 90, 0), drive.ErrZeroSpeed)
}

func (s *ControllerSuite) TestTurnCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.controller().TurnTo(ctx, 90, 50)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.True(s.T(), s.k.stopped())
}

// TestTurnPollLimit: a robot that never rotates trips the iteration guard.
func (s *ControllerSuite) TestTurnPollLimit() {
	s.k.turnRate = 0
	err := s.controller(drive.WithMaxPolls(25)).TurnTo(s.ctx, 90, 50)
	require.ErrorIs(s.T(), err, drive.ErrPollLimit)
	require.True(s.T(), s.k.stopped())
}

//----------------------------------------------------------------------------//
// Fixed 90 degree turns
//----------------------------------------------------------------------------//

// openEast makes the front sensor see the open cell only when facing east.
func openEast(h float64) float64 {
	if h >= 80 && h <= 100 {
		return 40
	}

	return 10
}

func (s *ControllerSuite) TestTurnFixed90Right() {
	s.k.rightWall = 40
	s.k.frontFn = openEast
	c := s.controller()

	require.NoError(s.T(), c.TurnFixed90(s.ctx, locomotion.Right, 50))
	require.InDelta(s.T(), 90, c.Heading(), 10)
	require.True(s.T(), s.k.stopped())
}

func (s *ControllerSuite) TestTurnFixed90Left() {
	s.k.heading = 180
	s.k.leftWall = 40
	s.k.frontFn = openEast
	c := s.controller()

	require.NoError(s.T(), c.TurnFixed90(s.ctx, locomotion.Left, 50))
	require.InDelta(s.T(), 90, c.Heading(), 10)
}

func (s *ControllerSuite) TestTurnFixed90NoSideReading() {
	s.k.rightWall = hardware.NoReading
	err := s.controller().TurnFixed90(s.ctx, locomotion.Right, 50)
	require.ErrorIs(s.T(), err, drive.ErrNoReading)
}

// TestTurnFixed90AlreadyOpen: a front reading that already meets the side
// reading ends the turn before the motors move.
func (s *ControllerSuite) TestTurnFixed90AlreadyOpen() {
	s.k.rightWall = 40
	s.k.front = 45
	c := s.controller()

	require.NoError(s.T(), c.TurnFixed90(s.ctx, locomotion.Right, 50))
	require.Equal(s.T(), [][2]int{{0, 0}}, s.k.history)
}

// TestTurnFixed90FullCircle: a front sensor that never opens up stops the
// turn after one rotation instead of running into the poll limit.
func (s *ControllerSuite) TestTurnFixed90FullCircle() {
	s.k.rightWall = 40
	s.k.front = 10
	c := s.controller()

	err := c.TurnFixed90(s.ctx, locomotion.Right, 50)
	require.ErrorIs(s.T(), err, drive.ErrNoOpening)
	require.True(s.T(), s.k.stopped())
	require.InDelta(s.T(), 73, len(s.k.history), 2, "one rotation at 5 degrees per tick")
}

//----------------------------------------------------------------------------//
// Straight driving
//----------------------------------------------------------------------------//

func (s *ControllerSuite) TestDriveToWallForward() {
	c := s.controller()

	require.NoError(s.T(), c.DriveToWallDistance(s.ctx, 27, 50, true))
	require.InDelta(s.T(), 27, s.k.front, 5)
	require.LessOrEqual(s.T(), s.k.front, 28.0)
	require.True(s.T(), s.k.stopped())
}

func (s *ControllerSuite) TestDriveToWallReverse() {
	s.k.front = 20
	c := s.controller()

	require.NoError(s.T(), c.DriveToWallDistance(s.ctx, 45, -50, true))
	require.GreaterOrEqual(s.T(), s.k.front, 44.0)
	require.InDelta(s.T(), 45, s.k.front, 5)
}

func (s *ControllerSuite) TestDriveWithoutBrakeKeepsRolling() {
	c := s.controller()

	require.NoError(s.T(), c.DriveToWallDistance(s.ctx, 50, 40, false))
	require.Equal(s.T(), 40, s.k.left)
	require.Equal(s.T(), 40, s.k.right)
}

// TestDriveIgnoresNoReading: dropped echoes must not read as "at the wall".
func (s *ControllerSuite) TestDriveIgnoresNoReading() {
	s.k.dropouts = 3
	c := s.controller()

	require.NoError(s.T(), c.DriveToWallDistance(s.ctx, 27, 50, true))
	require.InDelta(s.T(), 27, s.k.front, 5)
}

func (s *ControllerSuite) TestDriveDistance() {
	c := s.controller()

	require.NoError(s.T(), c.DriveDistance(s.ctx, 36, 50, true))
	require.InDelta(s.T(), 64, s.k.front, 5)

	require.NoError(s.T(), c.DriveDistance(s.ctx, 36, -50, true))
	require.InDelta(s.T(), 100, s.k.front, 6)
}

func (s *ControllerSuite) TestDriveDistanceNoReading() {
	s.k.dropouts = drive.DefaultResamples + 1
	err := s.controller().DriveDistance(s.ctx, 18, 50, true)
	require.ErrorIs(s.T(), err, drive.ErrNoReading)
}

func (s *ControllerSuite) TestDriveCanceledStops() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.controller().DriveToWallDistance(ctx, 9, 50, false)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.True(s.T(), s.k.stopped())
}

//----------------------------------------------------------------------------//
// Wall following
//----------------------------------------------------------------------------//

// TestWallFollowingSlowsRight: the robot hugs the left wall (offset 5 vs
// 13), so the right motor is slowed by ceil(8*0.5) = 4.
func (s *ControllerSuite) TestWallFollowingSlowsRight() {
	s.k.leftWall, s.k.rightWall = 5, 13
	c := s.controller()

	require.NoError(s.T(), c.DriveWithWallFollowing(s.ctx, 18, 50))
	require.Equal(s.T(), [2]int{50, 46}, s.k.history[0])
	require.True(s.T(), s.k.stopped())
}

// TestWallFollowingSlowsLeft uses offsets modulo the side length:
// 30 mod 18 = 12 against 4.
func (s *ControllerSuite) TestWallFollowingSlowsLeft() {
	s.k.leftWall, s.k.rightWall = 30, 4
	c := s.controller()

	require.NoError(s.T(), c.DriveWithWallFollowing(s.ctx, 18, 50))
	require.Equal(s.T(), [2]int{46, 50}, s.k.history[0])
}

func (s *ControllerSuite) TestWallFollowingReverse() {
	s.k.front = 20
	s.k.leftWall, s.k.rightWall = 5, 13
	c := s.controller()

	require.NoError(s.T(), c.DriveWithWallFollowing(s.ctx, 18, -50))
	require.Equal(s.T(), [2]int{-50, -46}, s.k.history[0])
}

// TestWallFollowingClamps: a huge gain saturates the slowed motor at -100.
// The clamped pair spins the robot in place, so the poll guard ends it.
func (s *ControllerSuite) TestWallFollowingClamps() {
	s.k.leftWall, s.k.rightWall = 5, 13
	c := s.controller(drive.WithWallFollowing(100), drive.WithMaxPolls(3))

	err := c.DriveToNextSquareCenter(s.ctx, 50)
	require.ErrorIs(s.T(), err, drive.ErrPollLimit)
	require.Equal(s.T(), [2]int{50, -100}, s.k.history[0])
	require.True(s.T(), s.k.stopped())
}

func (s *ControllerSuite) TestWallFollowingMissingSide() {
	s.k.leftWall = hardware.NoReading
	c := s.controller()

	require.NoError(s.T(), c.DriveWithWallFollowing(s.ctx, 18, 50))
	require.Equal(s.T(), [2]int{50, 50}, s.k.history[0])
}

//----------------------------------------------------------------------------//
// Square to square
//----------------------------------------------------------------------------//

func (s *ControllerSuite) TestDriveToNextSquareCenter() {
	s.k.front = 63
	c := s.controller()

	require.NoError(s.T(), c.DriveToNextSquareCenter(s.ctx, 50))
	require.InDelta(s.T(), 45, s.k.front, 5)

	require.NoError(s.T(), c.DriveToNextSquareCenter(s.ctx, -50))
	require.InDelta(s.T(), 63, s.k.front, 5)
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

//----------------------------------------------------------------------------//
// Construction and helpers
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	k := newKinematic()
	bad := k.robot()
	bad.Compass = nil

	_, err := drive.New(bad, 18)
	require.ErrorIs(t, err, drive.ErrNilCapability)
	require.ErrorIs(t, err, hardware.ErrNilCapability)

	_, err = drive.New(k.robot(), 0)
	require.ErrorIs(t, err, drive.ErrInvalidSideLength)

	for name, opt := range map[string]drive.Option{
		"BrakingMargin":    drive.WithBrakingMargin(-1),
		"TurnTolerance":    drive.WithTurnTolerance(-1),
		"WallFollowing":    drive.WithWallFollowing(0),
		"MaxPolls":         drive.WithMaxPolls(-1),
		"Resamples":        drive.WithResamples(-1),
		"HeadingTolerance": drive.WithHeadingTolerance(90),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := drive.New(k.robot(), 18, opt)
			if !errors.Is(err, drive.ErrOptionViolation) {
				t.Fatalf("New with bad %s = %v; want ErrOptionViolation", name, err)
			}
		})
	}
}

func TestNextCenterTarget(t *testing.T) {
	cases := []struct {
		name    string
		front   float64
		forward bool
		want    float64
	}{
		{"ThreeCellsAhead", 63, true, 45},
		{"DriftedShort", 60, true, 45},
		{"OneCellAhead", 27, true, 9},
		{"AtWall", 9, true, 9},
		{"Backward", 9, false, 27},
		{"BackwardFar", 45, false, 63},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, drive.NextCenterTarget(tc.front, 18, tc.forward))
		})
	}
}

func TestResetHeadingOffset(t *testing.T) {
	k := newKinematic()
	k.heading = 123
	c, err := drive.New(k.robot(), 18)
	require.NoError(t, err)

	c.ResetHeadingOffset(90)
	require.Equal(t, 90.0, c.Heading())
	require.Equal(t, 18.0, c.SideLength())
}
