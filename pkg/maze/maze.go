// Package maze defines the shared grid representation used by the generator,
// parser, solver, and renderers.
//
// A maze is a rectangular grid of cells. Each cell is a bitmask of the
// passages leaving it: a set flag means there is no wall toward that
// neighbor. Two transient flags exist only during solving: Visited guards
// against revisiting a cell, Solution marks cells on the found path.
package maze

// Cell is a bitmask of passage flags for one grid cell.
type Cell uint8

// Passage and solver flags. A cell with no flags set is fully walled.
const (
	Up    Cell = 1 << iota // passage to the cell above
	Down                   // passage to the cell below
	Left                   // passage to the cell on the left
	Right                  // passage to the cell on the right
	Visited                // solver has entered this cell
	Solution               // cell lies on the solution path
)

// Empty is a cell with walls on all sides.
const Empty Cell = 0

// Has reports whether all flags in f are set on c.
func (c Cell) Has(f Cell) bool { return c&f == f }

// Passages returns c stripped of the transient solver flags.
func (c Cell) Passages() Cell { return c & (Up | Down | Left | Right) }

// Point is a grid coordinate. X is the column, Y the row, both zero-based
// from the top-left corner.
type Point struct {
	X, Y int
}

// Maze is a fully materialized grid, as assembled by the parser. The
// generator never builds one of these; it streams rows instead.
//
// Height follows the textual convention of the ruled format: it is the
// index of the last grid row, so Grid holds Height+1 rows. Lines keeps the
// original text verbatim so non-grid characters (the Start/END markers)
// survive a re-render.
type Maze struct {
	Width  int
	Height int
	Grid   [][]Cell
	Lines  [][]byte

	Start Point // bottom-left grid cell
	Dest  Point // top-right grid cell
}

// At returns the cell at p, or Empty when p lies outside the grid.
func (m *Maze) At(p Point) Cell {
	if p.Y < 0 || p.Y >= len(m.Grid) || p.X < 0 || p.X >= len(m.Grid[p.Y]) {
		return Empty
	}
	return m.Grid[p.Y][p.X]
}

// Rows returns the number of grid rows (Height+1 for a well-formed maze).
func (m *Maze) Rows() int { return len(m.Grid) }
