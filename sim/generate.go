package sim

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/hardware"
)

// compass steps in north, east, south, west order.
var steps = [4]grid.Cell{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Generate builds a random perfect maze of width×height passages using
// Wilson's algorithm and lays it out on a (2·width-1)×(2·height-1) block
// grid: passage (x, y) is block (2x, 2y), the blocks between passages are
// walls unless carved, and the odd-odd corner blocks stay closed.
//
// Both counts must be odd so the middle block is a passage, and the longest
// possible corridor must stay within sensor range. The robot starts in the
// bottom-left block facing north. A nil rng is seeded from the clock.
func Generate(width, height int, side float64, rng *rand.Rand) (*Layout, error) {
	if width < 1 || height < 1 || width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d passages, both counts must be odd and positive", ErrGenerateSize, width, height)
	}
	if side <= 0 {
		return nil, fmt.Errorf("%w: side length %v", ErrGenerateSize, side)
	}
	if reach := float64(2*max(width, height)-2)*side + side/2; reach > hardware.MaxValidCM {
		return nil, fmt.Errorf("%w: %dx%d passages of %v cm reach %v cm, beyond sensor range",
			ErrGenerateSize, width, height, side, reach)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	blocks := make([][]byte, 2*height-1)
	for y := range blocks {
		blocks[y] = []byte(strings.Repeat("#", 2*width-1))
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			blocks[2*y][2*x] = '.'
		}
	}

	inside := func(c grid.Cell) bool { return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height }
	index := func(c grid.Cell) int { return c.Y*width + c.X }
	inTree := make([]bool, width*height)
	exit := make([]int, width*height)
	inTree[rng.Intn(width*height)] = true

	for _, i := range rng.Perm(width * height) {
		if inTree[i] {
			continue
		}
		from := grid.Cell{X: i % width, Y: i / width}

		// Random walk until the tree is hit, remembering only the last exit
		// from each passage so loops erase themselves.
		for c := from; !inTree[index(c)]; {
			d := rng.Intn(len(steps))
			next := grid.Cell{X: c.X + steps[d].X, Y: c.Y + steps[d].Y}
			if !inside(next) {
				continue
			}
			exit[index(c)] = d
			c = next
		}

		for c := from; !inTree[index(c)]; {
			inTree[index(c)] = true
			s := steps[exit[index(c)]]
			blocks[2*c.Y+s.Y][2*c.X+s.X] = '.'
			c = grid.Cell{X: c.X + s.X, Y: c.Y + s.Y}
		}
	}

	rows := make([]string, len(blocks))
	for y, b := range blocks {
		rows[y] = string(b)
	}

	return &Layout{
		SideLength: side,
		Start:      Pose{X: 0, Y: len(rows) - 1, Heading: 0},
		Rows:       rows,
	}, nil
}
