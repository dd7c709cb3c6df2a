package solve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asciimaze/mazectl/pkg/maze"
	"github.com/asciimaze/mazectl/pkg/maze/eller"
	"github.com/asciimaze/mazectl/pkg/maze/parse"
	"github.com/asciimaze/mazectl/pkg/maze/render"
)

// A 3x3 perfect maze with a unique up-up-right-right path from the
// bottom-left start to the top-right destination.
var solvableFixture = []string{
	"      _________END",
	"     |        |",
	"     |   _____|",
	"     |  |     |",
	"     |  |  ___|",
	"Start|        |",
	"     |________|",
}

func fixtureMaze(t *testing.T, lines []string) *maze.Maze {
	t.Helper()
	m, err := parse.Maze(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return m
}

func TestMazeMarksPath(t *testing.T) {
	m := fixtureMaze(t, solvableFixture)
	require.True(t, Maze(m))

	want := []string{
		"      _________END",
		"     |XX XX XX|",
		"     |   _____|",
		"     |XX|     |",
		"     |  |  ___|",
		"Start|XX      |",
		"     |________|",
	}
	require.Len(t, m.Lines, len(want))
	for i, l := range m.Lines {
		assert.Equal(t, want[i], string(l), "line %d", i)
	}

	path := []maze.Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	marked := 0
	for y, row := range m.Grid {
		for x, c := range row {
			if c.Has(maze.Solution) {
				assert.Contains(t, path, maze.Point{X: x, Y: y})
				marked++
			}
		}
	}
	assert.Equal(t, len(path), marked)
}

func TestMazeTerminatesOnCycles(t *testing.T) {
	m := fixtureMaze(t, solvableFixture)

	// Knock a hole between (2,1) and (2,2); the maze now has a loop
	// through its right half. The walk must still terminate and find the
	// same unique path on the left.
	m.Grid[1][2] |= maze.Down
	m.Grid[2][2] |= maze.Up

	require.True(t, Maze(m))
	assert.True(t, m.Grid[2][0].Has(maze.Solution))
	assert.Equal(t, "     |XX XX XX|", string(m.Lines[1]))
}

func TestMazeUnsolvable(t *testing.T) {
	text := strings.Join([]string{
		"      ______",
		"     |  |  |",
		"     |__|__|",
	}, "\n")
	m, err := parse.Maze(strings.NewReader(text))
	require.NoError(t, err)

	before := make([]string, len(m.Lines))
	for i, l := range m.Lines {
		before[i] = string(l)
	}

	assert.False(t, Maze(m))
	for i, l := range m.Lines {
		assert.Equal(t, before[i], string(l), "unsolvable maze text must stay untouched")
	}
}

func TestMazeEmpty(t *testing.T) {
	assert.False(t, Maze(&maze.Maze{}))
}

func TestMazeCorruptClosingLine(t *testing.T) {
	// A corrupt closing line parses as a Down passage on the bottom row,
	// pointing below the grid. Walking it must dead-end, not index out of
	// range. The middle wall keeps the two rows apart so the off-grid step
	// is the only move from the start cell.
	text := strings.Join([]string{
		"      ___",
		"     |  |",
		"     |__|",
		"     |  |",
		"     |x_|",
	}, "\n")
	m, err := parse.Maze(strings.NewReader(text))
	require.NoError(t, err)
	require.True(t, m.Grid[1][0].Has(maze.Down))

	assert.False(t, Maze(m))
}

func TestMazeSolvesGeneratedMazes(t *testing.T) {
	for _, seed := range []uint64{1, 2, 77, 4096} {
		grid, err := eller.Generate(16, 12, seed)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, render.RenderGrid(&buf, render.Ruled{}, grid))
		m, err := parse.Maze(&buf)
		require.NoError(t, err)

		require.True(t, Maze(m), "generated maze with seed %d must be solvable", seed)
		assert.True(t, m.Grid[m.Start.Y][m.Start.X].Has(maze.Solution))
		assert.True(t, m.Grid[m.Dest.Y][m.Dest.X].Has(maze.Solution))
		assert.Contains(t, string(m.Lines[1]), string(PathMarker))
	}
}
