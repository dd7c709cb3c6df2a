// Package parse reconstructs a maze grid from its ruled text rendering.
//
// The parser is the inverse of the ruled renderer. It walks the text in
// overlapping three-line windows (wall line, passage line, next wall line;
// the trailing wall line of one window is the leading wall line of the
// next) and emits one row of cells per passage line:
//
//	     _______________________  <- line a
//	    |     |        |        | <- line b
//	    |__   |_____   |  ______| <- line c
//
// Up flags are never parsed from text: a cell can move up exactly when the
// cell above it could move down, so they are copied from the previous row.
// Left/Right are parsed once per adjacent pair and applied to both
// neighbors in the same step, so the two sides can never disagree.
package parse

import (
	"bufio"
	"io"

	"github.com/asciimaze/mazectl/pkg/errors"
	"github.com/asciimaze/mazectl/pkg/maze"
	"github.com/asciimaze/mazectl/pkg/maze/render"
)

// Maze reads a ruled-format maze until end of stream and returns the
// assembled grid. Short or ragged lines degrade to "wall present" rather
// than failing: malformed input yields an over-walled maze, not a crash.
func Maze(r io.Reader) (*maze.Maze, error) {
	m := &maze.Maze{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := make([]byte, len(sc.Bytes()))
		copy(line, sc.Bytes())
		m.Lines = append(m.Lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedMaze, err, "read maze text")
	}
	if len(m.Lines) < 3 {
		return nil, errors.New(errors.ErrCodeMalformedMaze, "maze text needs at least 3 lines, got %d", len(m.Lines))
	}

	// The first passage line fixes the width: margin, border, then three
	// characters per cell (two interior plus one separator).
	m.Width = (len(m.Lines[1]) - render.Margin) / 3
	if m.Width < 1 {
		return nil, errors.New(errors.ErrCodeMalformedMaze, "maze text has no cells")
	}

	var prev []maze.Cell
	for ln := 2; ln < len(m.Lines); ln += 2 {
		row := convertRow(prev, m.Lines[ln-1], m.Lines[ln], m.Width)
		m.Grid = append(m.Grid, row)
		prev = row
	}

	m.Height = len(m.Grid) - 1
	m.Start = maze.Point{X: 0, Y: m.Height}
	m.Dest = maze.Point{X: m.Width - 1, Y: 0}
	return m, nil
}

// convertRow turns one passage line b and the wall line c below it into a
// row of cells, consuming the previous row's Down flags for Up.
func convertRow(prev []maze.Cell, b, c []byte, width int) []maze.Cell {
	row := make([]maze.Cell, width)
	for i := range row {
		if prev != nil && prev[i].Has(maze.Down) {
			row[i] = maze.Up
		}

		// A gap in the wall line below means the cell can move down.
		if charAt(c, i*3+render.Margin+1, '_') != '_' {
			row[i] |= maze.Down
		}

		// Parse the separator once and open both sides of it. Column 0's
		// separator is the outer border; a gap there would be malformed
		// input, so it stays walled.
		if i > 0 && charAt(b, i*3+render.Margin, '|') != '|' {
			row[i] |= maze.Left
			row[i-1] |= maze.Right
		}
	}
	return row
}

// charAt returns line[i], or def when i is out of range. The defaults are
// chosen so missing text reads as a solid wall.
func charAt(line []byte, i int, def byte) byte {
	if i < 0 || i >= len(line) {
		return def
	}
	return line[i]
}
