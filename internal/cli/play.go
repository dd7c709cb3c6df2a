package cli

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/asciimaze/mazectl/pkg/errors"
	"github.com/asciimaze/mazectl/pkg/maze"
	"github.com/asciimaze/mazectl/pkg/maze/eller"
	"github.com/asciimaze/mazectl/pkg/maze/render"
)

// newPlayCmd creates the play command: generate a maze and walk it
// interactively from the bottom-left cell to the top-right cell.
func newPlayCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play WIDTH HEIGHT",
		Short: "Walk a generated maze interactively in the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, werr := strconv.Atoi(args[0])
			height, herr := strconv.Atoi(args[1])
			if werr != nil || herr != nil || width < 1 || height < 1 {
				return errors.New(errors.ErrCodeInvalidSize, "maze width and height must be greater than 0")
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			model, err := newPlayModel(width, height, seed)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "fixed random seed")
	return cmd
}

// playModel is the bubbletea model for the maze walk.
type playModel struct {
	grid  [][]maze.Cell
	lines []string // ruled rendering, fixed for the whole game
	pos   maze.Point
	dest  maze.Point
	moves int
	won   bool
}

func newPlayModel(width, height int, seed uint64) (playModel, error) {
	grid, err := eller.Generate(width, height, seed)
	if err != nil {
		return playModel{}, err
	}

	var buf bytes.Buffer
	if err := render.RenderGrid(&buf, render.Ruled{}, grid); err != nil {
		return playModel{}, err
	}

	return playModel{
		grid:  grid,
		lines: strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"),
		pos:   maze.Point{X: 0, Y: height - 1},
		dest:  maze.Point{X: width - 1, Y: 0},
	}, nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.won {
		return m, tea.Quit
	}

	cell := m.grid[m.pos.Y][m.pos.X]
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if cell.Has(maze.Left) {
			m.pos.X--
			m.moves++
		}
	case "right", "l":
		if cell.Has(maze.Right) {
			m.pos.X++
			m.moves++
		}
	case "up", "k":
		if cell.Has(maze.Up) {
			m.pos.Y--
			m.moves++
		}
	case "down", "j":
		if cell.Has(maze.Down) {
			m.pos.Y++
			m.moves++
		}
	}

	if m.pos == m.dest {
		m.won = true
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("mazectl play"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↓↑→/hjkl move  q quit"))
	b.WriteString("\n\n")

	playerLine := m.pos.Y*2 + 1
	playerCol := m.pos.X*3 + render.Margin + 1
	for i, line := range m.lines {
		if i == playerLine && playerCol+2 <= len(line) {
			b.WriteString(line[:playerCol])
			b.WriteString(stylePlayer.Render("[]"))
			b.WriteString(line[playerCol+2:])
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.won {
		b.WriteString(StyleSuccess.Render(fmt.Sprintf("Reached the end in %d moves! Press any key to exit.", m.moves)))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("moves: %d", m.moves)))
	}
	b.WriteString("\n")
	return b.String()
}
