package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/asciimaze/mazectl/pkg/cache"
	"github.com/asciimaze/mazectl/pkg/errors"
	"github.com/asciimaze/mazectl/pkg/maze/eller"
	"github.com/asciimaze/mazectl/pkg/maze/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	seed    uint64 // fixed seed when seedSet
	output  string // output file path (stdout if empty)
	noCache bool   // bypass the generation cache
}

// genSettings is the result of folding the positional option words, flags,
// and config defaults. Option words are order-independent and repeatable;
// for conflicting words the later one wins.
type genSettings struct {
	width  int
	height int
	style  string // "ruled" or "block"
	debug  render.DebugMode
	seed   uint64
	seeded bool
}

// newGenerateCmd creates the generate command.
//
// The positional option words mirror the traditional interface:
//
//	a  - ruled ("ASCII") style maze (default)
//	b  - block style maze
//	ds - debug: print set labels instead of blank interiors
//	dr - debug: print raw cell bitmasks instead of blank interiors
//	r  - seed the random source deterministically instead of from the clock
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate WIDTH HEIGHT [a|b|ds|dr|r]...",
		Short: "Carve a maze with Eller's algorithm and print it",
		Long: `Carve a perfect maze one row at a time and print it.

WIDTH and HEIGHT are positive cell counts. The remaining arguments are
option words, applied in order (later wins where they conflict):

  a  - ruled ("ASCII") style maze (default)
  b  - block style maze
  ds - debug: print set labels in cell interiors
  dr - debug: print raw cell bitmasks in cell interiors
  r  - deterministic random seed

Examples:
  mazectl generate 24 12
  mazectl generate 24 12 b
  mazectl generate 24 12 r ds`,
		// Missing size arguments print the usage summary; SilenceUsage on
		// the root suppresses it for every later error.
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
				_ = cmd.Usage()
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			settings, err := foldGenArgs(args, &opts, cmd.Flags().Changed("seed"), cfg)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, settings, &opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "fixed random seed (implies deterministic output)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the generation cache")

	return cmd
}

// foldGenArgs validates the size arguments and folds the option words over
// the config defaults.
func foldGenArgs(args []string, opts *generateOpts, seedFlagSet bool, cfg Config) (genSettings, error) {
	s := genSettings{style: cfg.Style}
	if s.style != "ruled" && s.style != "block" {
		return s, errors.New(errors.ErrCodeInvalidFormat, "config style must be %q or %q, got %q", "ruled", "block", s.style)
	}

	width, werr := strconv.Atoi(args[0])
	height, herr := strconv.Atoi(args[1])
	if werr != nil || herr != nil || width < 1 || height < 1 {
		return s, errors.New(errors.ErrCodeInvalidSize, "maze width and height must be greater than 0")
	}
	s.width, s.height = width, height

	for _, word := range args[2:] {
		switch word {
		case "a":
			s.style = "ruled"
		case "b":
			s.style = "block"
		case "ds":
			s.debug = render.DebugSets
		case "dr":
			s.debug = render.DebugRows
		case "r":
			if !s.seeded {
				s.seed = 1
			}
			s.seeded = true
		default:
			return s, errors.New(errors.ErrCodeInvalidInput, "unknown option %q (valid: a, b, ds, dr, r)", word)
		}
	}

	// An explicit --seed always wins over the r word's fixed seed of 1.
	if seedFlagSet {
		s.seed = opts.seed
		s.seeded = true
	}
	if !s.seeded {
		s.seed = uint64(time.Now().UnixNano())
	}
	return s, nil
}

func runGenerate(cmd *cobra.Command, cfg Config, s genSettings, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Debug("generating maze", "width", s.width, "height", s.height, "style", s.style, "seed", s.seed)

	out, closer, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closer()

	// Only seeded, non-debug generations are cacheable: debug output
	// embeds transient set labels, and unseeded output is never repeated.
	cacheable := s.seeded && s.debug == render.DebugNone
	c := newCache(ctx, cfg, opts.noCache || !cacheable)
	defer c.Close()

	key := cache.MazeKey(cache.MazeKeyOpts{
		Width: s.width, Height: s.height, Seed: s.seed, Style: s.style,
		Debug: int(s.debug),
	})
	if cacheable {
		if data, hit, err := c.Get(ctx, key); err == nil && hit {
			logger.Debug("cache hit", "key", key)
			_, err := out.Write(data)
			return err
		}
	}

	p := newProgress(logger)
	g, err := eller.New(s.width, s.height, s.seed)
	if err != nil {
		return err
	}

	var rr render.RowRenderer = render.Ruled{Debug: s.debug}
	if s.style == "block" {
		rr = render.Block{}
	}

	// Stream rows as they are carved; the copy for the cache is the only
	// buffering.
	var buf bytes.Buffer
	w := out
	if cacheable {
		w = io.MultiWriter(out, &buf)
	}
	for g.Next() {
		if err := rr.RenderRow(w, g.Row(), g.Prev(), g.Labels(), g.First(), g.Last()); err != nil {
			return err
		}
	}

	if cacheable {
		if err := c.Set(ctx, key, buf.Bytes(), 0); err != nil {
			logger.Warn("cache set failed", "err", err)
		}
	}
	p.done(fmt.Sprintf("Generated %dx%d maze", s.width, s.height))
	return nil
}

// openOutput returns the writer for the maze text and a close function.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}
