package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathset"
)

func newRenderCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the maze with every optimal tile marked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solveFile(cmd, args[0], true)
			if err != nil {
				return err
			}
			ts, err := tilesOf(cmd, res)
			if err != nil {
				return err
			}
			cfg := configFromContext(cmd.Context())
			if noColor {
				cfg.Render.Color = false
			}
			if err := renderOverlay(cmd.OutOrStdout(), res.Grid(), ts, cfg); err != nil {
				return err
			}
			if cost, ok := res.Cost(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "cost: %d, tiles: %d\n", cost, ts.Len())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no path")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	return cmd
}

// renderOverlay writes g using the configured symbols, replacing open cells
// on an optimal route with the tile rune. Start and goal keep their markers.
func renderOverlay(w io.Writer, g *maze.Grid, ts *pathset.TileSet, cfg config.Config) error {
	sym, err := cfg.MazeSymbols()
	if err != nil {
		return err
	}
	paint := func(s lipgloss.Style, r rune) string {
		if cfg.Render.Color {
			return s.Render(string(r))
		}
		return string(r)
	}

	var (
		sb   strings.Builder
		p    maze.Position
		open = sym.Open[0]
		tile = cfg.TileRune()
	)
	for p.Y = 0; p.Y < g.Height; p.Y++ {
		for p.X = 0; p.X < g.Width; p.X++ {
			switch {
			case p == g.Start().Position:
				sb.WriteString(paint(styleMarker, sym.Start))
			case p == g.Goal():
				sb.WriteString(paint(styleMarker, sym.Goal))
			case g.IsWall(p):
				sb.WriteString(paint(styleWall, sym.Wall))
			case ts.Contains(p):
				sb.WriteString(paint(styleTile, tile))
			default:
				sb.WriteRune(open)
			}
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())
	return err
}
