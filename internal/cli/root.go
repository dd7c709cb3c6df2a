// Package cli implements the mazectl command-line interface.
//
// This package provides commands for generating mazes in the ruled and
// block text styles, solving mazes read from stdin, playing a maze
// interactively, serving the same operations over HTTP, and inspecting the
// passage graph. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Carve a maze with Eller's algorithm and print it
//   - solve: Read a ruled maze from stdin and print it with the path marked
//   - play: Walk a generated maze interactively in the terminal
//   - serve: Expose generate/solve as an HTTP API
//   - viz: Export the passage graph as Graphviz DOT or SVG
//   - cache: Manage the generation cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/asciimaze/mazectl/pkg/buildinfo"
)

// Execute runs the mazectl CLI and returns an error if any command fails.
// The context carries signal cancellation from main so the server command
// can shut down gracefully.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "mazectl",
		Short: "mazectl generates and solves ASCII mazes",
		Long: `mazectl is a CLI tool for generating, solving, and exploring text mazes.

Generation uses Eller's algorithm, which carves a perfect maze one row at a
time with memory proportional only to the maze width. Solving reconstructs
the grid from the ruled text format and finds the unique path from the
bottom-left cell to the top-right cell by backtracking.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVizCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
