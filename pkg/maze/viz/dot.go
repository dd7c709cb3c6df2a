// Package viz renders the passage graph of a maze as a Graphviz diagram.
// It exists as an inspection aid: a correct perfect maze shows up as a
// single spanning tree, and a braid introduced by the final-row closure is
// immediately visible as a cycle.
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/asciimaze/mazectl/pkg/maze"
)

// ToDOT converts a maze grid to Graphviz DOT format. Each cell becomes a
// node named "x,y"; each Right or Down passage becomes one undirected edge,
// so edges are never emitted twice.
func ToDOT(grid [][]maze.Cell) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=point, width=0.1];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for y, row := range grid {
		for x := range row {
			fmt.Fprintf(&buf, "  %q [pos=\"%d,%d!\"];\n", nodeID(x, y), x, len(grid)-y)
		}
	}

	buf.WriteString("\n")
	for y, row := range grid {
		for x, c := range row {
			if c.Has(maze.Right) && x+1 < len(row) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(x, y), nodeID(x+1, y))
			}
			if c.Has(maze.Down) && y+1 < len(grid) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(x, y), nodeID(x, y+1))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
