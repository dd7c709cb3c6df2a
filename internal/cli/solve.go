package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asciimaze/mazectl/pkg/errors"
	"github.com/asciimaze/mazectl/pkg/maze/parse"
	"github.com/asciimaze/mazectl/pkg/maze/solve"
)

// newSolveCmd creates the solve command. It reads a ruled-format maze from
// stdin (or --input), finds the path from the bottom-left cell to the
// top-right cell, and re-emits the maze with the path cells marked.
//
// When no path exists, nothing is written to stdout: the diagnostic goes to
// stderr and the process exits non-zero.
func newSolveCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a ruled maze from stdin and print it with the path marked",
		Long: `Read a ruled-format maze until end of input, solve it, and print the
same text with every cell on the solution path filled in.

The start cell is the bottom-left grid cell, the destination the top-right
grid cell, matching the textual convention "Start" bottom-left, "END"
top-right.

Example:
  mazectl generate 10 10 | mazectl solve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, input)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "maze file (stdin if empty)")
	return cmd
}

func runSolve(cmd *cobra.Command, input string) error {
	logger := loggerFromContext(cmd.Context())

	var r io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", input)
		}
		defer f.Close()
		r = f
	}

	m, err := parse.Maze(r)
	if err != nil {
		return err
	}
	logger.Debug("parsed maze", "width", m.Width, "rows", m.Rows())

	p := newProgress(logger)
	if !solve.Maze(m) {
		return errors.New(errors.ErrCodeUnsolvable, "no path found through maze")
	}
	p.done("Solved maze")

	w := bufio.NewWriter(os.Stdout)
	for _, line := range m.Lines {
		if _, err := w.Write(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
