package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellHas(t *testing.T) {
	c := Up | Right
	assert.True(t, c.Has(Up))
	assert.True(t, c.Has(Right))
	assert.True(t, c.Has(Up|Right))
	assert.False(t, c.Has(Down))
	assert.False(t, c.Has(Up|Down))
	assert.True(t, Empty.Has(Empty))
}

func TestCellPassages(t *testing.T) {
	c := Up | Left | Visited | Solution
	assert.Equal(t, Up|Left, c.Passages())
	assert.Equal(t, Empty, (Visited | Solution).Passages())
}

func TestMazeAt(t *testing.T) {
	m := &Maze{
		Width:  2,
		Height: 0,
		Grid:   [][]Cell{{Right, Left}},
	}

	assert.Equal(t, Right, m.At(Point{X: 0, Y: 0}))
	assert.Equal(t, Left, m.At(Point{X: 1, Y: 0}))

	// Out-of-range coordinates read as fully walled cells.
	assert.Equal(t, Empty, m.At(Point{X: -1, Y: 0}))
	assert.Equal(t, Empty, m.At(Point{X: 2, Y: 0}))
	assert.Equal(t, Empty, m.At(Point{X: 0, Y: 1}))
	assert.Equal(t, Empty, m.At(Point{X: 0, Y: -1}))
}
