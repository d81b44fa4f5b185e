package main

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebot/sim"
)

func TestRun_Corridor(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-layout", "testdata/corridor.yaml"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	s := out.String()
	assert.Contains(t, s, "....\n#.#.\n#.#.\n#.#.\n")
	assert.Contains(t, s, "path: [{3 3} {3 2} {3 1} {3 0} {2 0} {1 0} {1 1}]")
	assert.Contains(t, s, "  reset_heading_offset(0)\n")
	assert.Contains(t, s, "  turn_to_heading(270, 100)\n")
	assert.Contains(t, s, "  drive_to_wall_distance(45, 100)\n")
	assert.Contains(t, s, "finished at {1 1}")
	assert.Contains(t, errOut.String(), `"run_id"`)
}

// TestRun_Kinematic replays the corridor through the drive controller
// and a continuous body; the plan is the same as cell-by-cell.
func TestRun_Kinematic(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-layout", "testdata/corridor.yaml", "-kinematic"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	s := out.String()
	assert.Contains(t, s, "path: [{3 3} {3 2} {3 1} {3 0} {2 0} {1 0} {1 1}]")
	assert.Contains(t, s, "  drive_to_wall_distance(27, 100)\n")
	assert.Contains(t, s, "finished at {1 1} (")
}

func TestRun_DryRun(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-layout", "testdata/corridor.yaml", "-dry-run"}, &out, &errOut)
	require.NoError(t, err, errOut.String())
	assert.Contains(t, out.String(), "commands:")
	assert.NotContains(t, out.String(), "finished at")
}

// TestRun_Generate maps a generated 5x5 maze and ends in its middle block.
func TestRun_Generate(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"-generate", "5x5", "-seed", "3"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	assert.Contains(t, out.String(), "finished at {4 4}")
	assert.Contains(t, errOut.String(), `"seed":3`)
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("9X7")
	require.NoError(t, err)
	assert.Equal(t, [2]int{9, 7}, [2]int{w, h})

	for _, bad := range []string{"", "9", "9x", "x7", "nine x seven"} {
		_, _, err := parseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run(context.Background(), nil, &out, &errOut))
	require.ErrorIs(t, run(context.Background(), []string{"-h"}, &out, &errOut), flag.ErrHelp)
	require.Error(t, run(context.Background(), []string{"-layout", "testdata/missing.yaml"}, &out, &errOut))
	require.Error(t, run(context.Background(), []string{"-layout", "testdata/corridor.yaml", "-generate", "5x5"}, &out, &errOut))
	require.ErrorIs(t, run(context.Background(), []string{"-generate", "4x4"}, &out, &errOut), sim.ErrGenerateSize)
	require.Error(t, run(context.Background(), []string{"-generate", "big"}, &out, &errOut))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, run(ctx, []string{"-layout", "testdata/corridor.yaml"}, &out, &errOut), context.Canceled)
}
