package sim

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazebot/grid"
)

// Layout is the on-disk description of a simulated maze.
type Layout struct {
	SideLength float64  `yaml:"side_length"`
	Start      Pose     `yaml:"start"`
	Rows       []string `yaml:"rows"`
}

// LoadLayout decodes a YAML layout and checks that it builds a world.
func LoadLayout(r io.Reader) (*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("sim: failed to parse layout: %w", err)
	}
	if _, err := l.World(); err != nil {
		return nil, err
	}

	return &l, nil
}

// LoadLayoutFile reads a YAML layout from path.
func LoadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sim: failed to open layout: %w", err)
	}
	defer f.Close()

	return LoadLayout(f)
}

// Grid builds the truth grid.
func (l *Layout) Grid() (*grid.Grid, error) {
	return grid.Parse(l.Rows, l.SideLength)
}

// World builds a fresh world with the robot at the start pose.
func (l *Layout) World() (*World, error) {
	g, err := l.Grid()
	if err != nil {
		return nil, err
	}

	return New(g, l.Start)
}

// Body builds a fresh continuous body at the start pose.
func (l *Layout) Body() (*Body, error) {
	g, err := l.Grid()
	if err != nil {
		return nil, err
	}

	return NewBody(g, l.Start)
}
