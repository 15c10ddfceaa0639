package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/pathset"
)

// solveFile parses path and runs the search. track selects the
// predecessor-tracking mode needed for tile reconstruction.
func solveFile(cmd *cobra.Command, path string, track bool) (*dijkstra.Result, error) {
	g, err := loadGrid(cmd, path)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(cmd.Context())
	cfg := configFromContext(cmd.Context())

	opts := cfg.SolveOptions()
	if track {
		opts = append(opts, dijkstra.WithTrackPredecessors())
	}
	prog := newProgress(logger)
	res, err := dijkstra.Solve(g, opts...)
	if err != nil {
		return nil, err
	}
	prog.searchDone(res)
	if !res.Reachable() {
		logger.Warn("goal is unreachable", "start", res.Start(), "goal", res.Goal())
	}
	return res, nil
}

// tilesOf reconstructs the optimal tile set of a tracked result.
func tilesOf(cmd *cobra.Command, res *dijkstra.Result) (*pathset.TileSet, error) {
	prog := newProgress(loggerFromContext(cmd.Context()))
	ts, err := pathset.Reconstruct(res)
	if err != nil {
		return nil, err
	}
	prog.tilesDone(res, ts)
	return ts, nil
}

func newCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost FILE",
		Short: "Print the minimal route cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solveFile(cmd, args[0], false)
			if err != nil {
				return err
			}
			cost, ok := res.Cost()
			if !ok {
				return ErrNoPath
			}
			fmt.Fprintln(cmd.OutOrStdout(), cost)
			return nil
		},
	}
}

func newTilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiles FILE",
		Short: "Print how many cells lie on any minimal route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solveFile(cmd, args[0], true)
			if err != nil {
				return err
			}
			if !res.Reachable() {
				return ErrNoPath
			}
			ts, err := tilesOf(cmd, res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ts.Len())
			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the minimal route cost and the optimal tile count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solveFile(cmd, args[0], true)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cost, ok := res.Cost()
			if !ok {
				fmt.Fprintln(out, "cost: no path")
				fmt.Fprintln(out, "tiles: 0")
				return nil
			}
			ts, err := tilesOf(cmd, res)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "cost: %d\n", cost)
			fmt.Fprintf(out, "tiles: %d\n", ts.Len())
			return nil
		},
	}
}
