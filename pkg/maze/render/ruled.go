// Package render emits finished maze rows as text.
//
// Two output conventions exist: the ruled style draws boxed corridors with
// underscores and pipes, the block style tiles solid wall characters. Both
// formats are exact contracts: the parser inverts the ruled renderer byte
// for byte, so nothing here may pad, trim, or restyle. Terminal styling of
// surrounding CLI output happens elsewhere; maze bytes stay plain.
package render

import (
	"fmt"
	"io"

	"github.com/asciimaze/mazectl/pkg/maze"
)

// Margin is the fixed whitespace buffer on the left side of a ruled maze.
const Margin = 5

// RowRenderer renders one carved row. Implementations receive the previous
// row (all-empty for the first row) because the ruled top line depends on
// it, and the current set labels for the debug modes.
type RowRenderer interface {
	RenderRow(w io.Writer, row, prev []maze.Cell, labels []int, first, last bool) error
}

// DebugMode selects what the ruled renderer prints in the two interior
// characters of each cell.
type DebugMode int

const (
	// DebugNone leaves interiors blank (production output).
	DebugNone DebugMode = iota
	// DebugSets prints the cell's set label, for diagnosing the carver.
	DebugSets
	// DebugRows prints the cell's raw bitmask.
	DebugRows
)

// Ruled renders rows in the boxed ASCII style:
//
//	     ________________________
//	    |                       |
//	    |  ___    __    ______  |
//	    |     |  |  |  |        |
//	    |___  |  |  |  |  ___   |
//	    |     |     |  |     |  |
//	    |_____|_____|__|_____|__|
//
// The top-line glyph after each cell depends on the previous row: a cell
// whose upstairs neighbor had a Right passage gets a gap instead of a
// corner, which is why the generator keeps one row of history around.
type Ruled struct {
	Debug DebugMode
}

// RenderRow writes the two text lines for row, plus the closing wall line
// after the final row.
func (r Ruled) RenderRow(w io.Writer, row, prev []maze.Cell, labels []int, first, last bool) error {
	buf := make([]byte, 0, Margin+3*len(row)+2)
	buf = appendMargin(buf)
	if first {
		buf = append(buf, ' ')
	} else {
		buf = append(buf, '|')
	}
	for i, c := range row {
		if c.Has(maze.Up) {
			buf = append(buf, "  "...)
		} else {
			buf = append(buf, "__"...)
		}
		switch {
		case prev[i].Has(maze.Right) && !c.Has(maze.Right):
			buf = append(buf, ' ')
		case !first && !prev[i].Has(maze.Right):
			buf = append(buf, '|')
		default:
			buf = append(buf, '_')
		}
	}
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return err
	}

	if err := r.renderMiddle(w, row, labels); err != nil {
		return err
	}
	if !last {
		return nil
	}
	return renderClosing(w, row)
}

func (r Ruled) renderMiddle(w io.Writer, row []maze.Cell, labels []int) error {
	buf := make([]byte, 0, Margin+3*len(row)+2)
	buf = appendMargin(buf)
	buf = append(buf, '|')
	for i, c := range row {
		switch {
		case r.Debug == DebugSets && labels != nil:
			buf = fmt.Appendf(buf, "%2d", labels[i])
		case r.Debug == DebugRows:
			buf = fmt.Appendf(buf, "%2d", uint8(c))
		default:
			buf = append(buf, "  "...)
		}
		if c.Has(maze.Right) {
			buf = append(buf, ' ')
		} else {
			buf = append(buf, '|')
		}
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

func renderClosing(w io.Writer, row []maze.Cell) error {
	buf := make([]byte, 0, Margin+3*len(row)+2)
	buf = appendMargin(buf)
	for _, c := range row {
		if c.Has(maze.Left) {
			buf = append(buf, '_')
		} else {
			buf = append(buf, '|')
		}
		buf = append(buf, "__"...)
	}
	buf = append(buf, '|', '\n')
	_, err := w.Write(buf)
	return err
}

func appendMargin(buf []byte) []byte {
	for i := 0; i < Margin; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

// RenderGrid renders a whole grid in order. Used to re-emit a parsed maze
// and by callers that hold a full grid anyway (server, tests).
func RenderGrid(w io.Writer, r RowRenderer, grid [][]maze.Cell) error {
	if len(grid) == 0 {
		return nil
	}
	prev := make([]maze.Cell, len(grid[0]))
	for i, row := range grid {
		if err := r.RenderRow(w, row, prev, nil, i == 0, i == len(grid)-1); err != nil {
			return err
		}
		prev = row
	}
	return nil
}
