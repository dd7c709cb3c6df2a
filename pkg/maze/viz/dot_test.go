package viz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asciimaze/mazectl/pkg/maze"
	"github.com/asciimaze/mazectl/pkg/maze/eller"
)

func TestToDOTNodesAndEdges(t *testing.T) {
	grid := [][]maze.Cell{
		{maze.Right, maze.Left | maze.Down},
		{maze.Right, maze.Left | maze.Up},
	}
	dot := ToDOT(grid)

	assert.True(t, strings.HasPrefix(dot, "graph maze {"))
	for _, node := range []string{`"0,0"`, `"1,0"`, `"0,1"`, `"1,1"`} {
		assert.Contains(t, dot, node)
	}
	assert.Contains(t, dot, `"0,0" -- "1,0";`)
	assert.Contains(t, dot, `"1,0" -- "1,1";`)
	assert.Contains(t, dot, `"0,1" -- "1,1";`)
	assert.Equal(t, 3, strings.Count(dot, "--"), "each passage must appear exactly once")
}

func TestToDOTSpanningTreeEdgeCount(t *testing.T) {
	// A perfect maze restricted to its non-final rows is a forest; the full
	// graph stays connected, so the DOT output carries at least cells-1
	// edges and exactly cells nodes.
	const w, h = 9, 7
	grid, err := eller.Generate(w, h, 31)
	require.NoError(t, err)

	dot := ToDOT(grid)
	assert.Equal(t, w*h, strings.Count(dot, "pos="))
	assert.GreaterOrEqual(t, strings.Count(dot, "--"), w*h-1)
}

func TestToDOTEmptyGrid(t *testing.T) {
	dot := ToDOT(nil)
	assert.Contains(t, dot, "graph maze {")
	assert.NotContains(t, dot, "--")
}
