package sim

import (
	"errors"

	"github.com/katalvlaran/mazebot/grid"
)

// Sentinel errors for the simulated world.
var (
	// ErrGridNil is returned when no truth layout is given.
	ErrGridNil = errors.New("sim: grid is nil")
	// ErrStartBlocked indicates the start pose is outside the layout or on a closed cell.
	ErrStartBlocked = errors.New("sim: start cell is not open")
	// ErrCollision indicates a move into a closed or out-of-grid cell.
	ErrCollision = errors.New("sim: collision")
	// ErrZeroSpeed indicates a manoeuvre at speed 0.
	ErrZeroSpeed = errors.New("sim: speed must be non-zero")
	// ErrBadHeading indicates a start heading that is not a multiple of 90.
	ErrBadHeading = errors.New("sim: heading must be a multiple of 90")
	// ErrGenerateSize indicates a maze size Generate cannot lay out.
	ErrGenerateSize = errors.New("sim: unsupported generated maze size")
)

// Pose is a cell plus a quantized heading.
type Pose struct {
	X       int `yaml:"x"`
	Y       int `yaml:"y"`
	Heading int `yaml:"heading"`
}

// Cell returns the pose's cell.
func (p Pose) Cell() grid.Cell { return grid.Cell{X: p.X, Y: p.Y} }
