// Package cli implements the mazepath command-line interface.
//
// # Commands
//
//   - cost:   print the minimal route cost, or fail with ErrNoPath
//   - tiles:  print how many cells lie on any minimal route
//   - solve:  print both
//   - render: print the maze with every optimal tile marked
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; otherwise
// the level comes from the config file. Loggers are passed through
// context.Context and write to stderr.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/internal/config"
	"github.com/katalvlaran/mazepath/maze"
)

// ErrNoPath is returned by cost and tiles when the goal cannot be reached.
var ErrNoPath = errors.New("no path from start to goal")

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns the mazepath command tree. Output goes to the
// command's Out writer, logs to its Err writer.
func NewRootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
		heading    string
	)

	root := &cobra.Command{
		Use:          "mazepath",
		Short:        "mazepath finds minimum-cost routes through turn-penalised mazes",
		Long:         `mazepath reads a text maze and reports the cheapest route cost (1 per step, 1000 per turn) and every cell on any cheapest route.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if heading != "" {
				cfg.Search.StartHeading = heading
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			level, err := cfg.LogLevel()
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mazepath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&heading, "heading", "", "initial heading at the start marker (overrides config)")

	root.AddCommand(newCostCmd())
	root.AddCommand(newTilesCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newRenderCmd())

	return root
}

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// loadGrid parses the maze at path with the configured symbols.
func loadGrid(cmd *cobra.Command, path string) (*maze.Grid, error) {
	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context())

	sym, err := cfg.MazeSymbols()
	if err != nil {
		return nil, err
	}
	f, err := openInput(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := maze.Parse(f, sym)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed maze", "file", path, "width", g.Width, "height", g.Height,
		"start", g.Start(), "goal", g.Goal())
	return g, nil
}
