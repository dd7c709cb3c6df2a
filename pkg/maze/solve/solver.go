// Package solve finds the path through a parsed maze by recursive
// backtracking and marks it in the maze text.
//
// The search assumes a spanning-tree topology (a perfect maze has exactly
// one path between any two cells), but it does not depend on it: every cell
// is flagged Visited on entry, so a braided maze with cycles terminates in
// O(width*height) instead of looping. On a braid the path found is a valid
// one, not necessarily the shortest.
package solve

import (
	"github.com/asciimaze/mazectl/pkg/maze"
	"github.com/asciimaze/mazectl/pkg/maze/render"
)

// PathMarker is the character written into both interior characters of a
// cell on the solution path.
const PathMarker = 'X'

// Maze searches m from its start cell to its destination cell and reports
// whether a path exists. On success every cell on the path carries the
// Solution flag and has its interior characters in m.Lines overwritten with
// PathMarker. On failure m's text is left untouched apart from Visited
// flags.
func Maze(m *maze.Maze) bool {
	if m.Rows() == 0 || m.Width == 0 {
		return false
	}
	return walk(m, m.Start.X, m.Start.Y, maze.Empty)
}

// walk tries to reach the destination from (x, y), having just traversed
// direction from. It never reverses into from, and the Visited flag makes
// re-entering any cell a dead end, which both bounds the work and breaks
// cycles.
func walk(m *maze.Maze, x, y int, from maze.Cell) bool {
	// Malformed text can parse into a passage pointing off the grid; such
	// a step is a dead end, not a crash.
	if y < 0 || y >= len(m.Grid) || x < 0 || x >= len(m.Grid[y]) {
		return false
	}
	cell := m.Grid[y][x]
	if cell.Has(maze.Visited) {
		return false
	}
	m.Grid[y][x] |= maze.Visited

	if x == m.Dest.X && y == m.Dest.Y {
		// The destination has no children worth checking.
		markSolution(m, x, y)
		return true
	}

	// Fixed order, short-circuiting on the first success.
	found := false
	if from != maze.Right && cell.Has(maze.Left) {
		found = walk(m, x-1, y, maze.Left)
	}
	if !found && from != maze.Down && cell.Has(maze.Up) {
		found = walk(m, x, y-1, maze.Up)
	}
	if !found && from != maze.Up && cell.Has(maze.Down) {
		found = walk(m, x, y+1, maze.Down)
	}
	if !found && from != maze.Left && cell.Has(maze.Right) {
		found = walk(m, x+1, y, maze.Right)
	}

	if found {
		markSolution(m, x, y)
	}
	return found
}

// markSolution flags the cell and overwrites its two interior characters in
// the original text.
func markSolution(m *maze.Maze, x, y int) {
	m.Grid[y][x] |= maze.Solution
	line := y*2 + 1
	if line >= len(m.Lines) {
		return
	}
	setByte(m.Lines[line], x*3+render.Margin+1, PathMarker)
	setByte(m.Lines[line], x*3+render.Margin+2, PathMarker)
}

func setByte(line []byte, i int, b byte) {
	if i >= 0 && i < len(line) {
		line[i] = b
	}
}
