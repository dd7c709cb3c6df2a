// Package eller generates perfect mazes row by row using Eller's algorithm.
//
// The algorithm needs memory proportional to the width of one row, not to
// the whole maze: each cell in the current row belongs to a set, where two
// cells share a set iff a path already connects them through the part of
// the maze carved so far. That invariant lets the carver decide in O(1)
// whether connecting two cells would close a loop or abandon a region.
//
// A Generator owns the row, previous-row, and set arrays for one run and
// hands out one carved row per step:
//
//	g, err := eller.New(24, 8, seed)
//	for g.Next() {
//		render(g.Row(), g.Prev(), g.First(), g.Last())
//	}
//
// The previous row is kept only because the ruled renderer must look one
// row back to pick the right border glyphs.
package eller

import (
	"math/rand/v2"

	"github.com/asciimaze/mazectl/pkg/errors"
	"github.com/asciimaze/mazectl/pkg/maze"
)

// Generator carves a maze of fixed dimensions one row at a time.
type Generator struct {
	width  int
	height int

	row  []maze.Cell
	prev []maze.Cell
	set  *RowSet

	carver *Carver
	cur    int // index of the row produced by the last Next, -1 before the first
}

// New creates a generator for a width x height maze. The seed fully
// determines the output: the same seed and dimensions produce the same
// maze.
func New(width, height int, seed uint64) (*Generator, error) {
	if width < 1 || height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "maze width and height must be greater than 0")
	}
	set := NewRowSet(width)
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	return &Generator{
		width:  width,
		height: height,
		row:    make([]maze.Cell, width),
		prev:   make([]maze.Cell, width),
		set:    set,
		carver: NewCarver(set, rng),
		cur:    -1,
	}, nil
}

// Next carves the next row and reports whether one was produced. It returns
// false once all height rows have been carved.
func (g *Generator) Next() bool {
	if g.cur+1 >= g.height {
		return false
	}
	g.cur++
	copy(g.prev, g.row)
	g.set.Reset(g.row)
	g.carver.Carve(g.row, g.Last())
	return true
}

// Row returns the row carved by the last call to Next. The slice is reused;
// callers that keep rows across calls must copy.
func (g *Generator) Row() []maze.Cell { return g.row }

// Prev returns the row carved before the current one, or an all-empty row
// while the first row is current.
func (g *Generator) Prev() []maze.Cell { return g.prev }

// Labels returns the current set labels, one per column. Only meaningful
// for the debug renderers.
func (g *Generator) Labels() []int { return g.set.Labels() }

// First reports whether the current row is the first.
func (g *Generator) First() bool { return g.cur == 0 }

// Last reports whether the current row is the final one.
func (g *Generator) Last() bool { return g.cur == g.height-1 }

// Width returns the maze width in cells.
func (g *Generator) Width() int { return g.width }

// Height returns the maze height in rows.
func (g *Generator) Height() int { return g.height }

// Generate carves a complete maze and returns the grid, one copied row per
// maze row. It trades the O(width) memory profile for convenience; the
// streaming API is preferred when rows can be rendered as they are carved.
func Generate(width, height int, seed uint64) ([][]maze.Cell, error) {
	g, err := New(width, height, seed)
	if err != nil {
		return nil, err
	}
	grid := make([][]maze.Cell, 0, height)
	for g.Next() {
		row := make([]maze.Cell, width)
		copy(row, g.Row())
		grid = append(grid, row)
	}
	return grid, nil
}
