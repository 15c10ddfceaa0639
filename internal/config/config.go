// Package config loads mazepath settings from a TOML file.
//
// A missing --config flag means defaults; a named file that does not exist
// is an error. Unknown keys are rejected so typos do not pass silently.
//
// Example file:
//
//	[symbols]
//	wall  = "#"
//	open  = "."
//	start = "S"
//	goal  = "E"
//
//	[search]
//	start_heading = "right"
//	max_cost      = 0        # 0 means no cap
//
//	[log]
//	level = "info"
//
//	[render]
//	color = true
//	tile  = "O"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the decoded configuration file.
type Config struct {
	Symbols Symbols `toml:"symbols"`
	Search  Search  `toml:"search"`
	Log     Log     `toml:"log"`
	Render  Render  `toml:"render"`
}

// Symbols holds one-rune strings for each cell role. Open may list several runes.
type Symbols struct {
	Wall  string `toml:"wall"`
	Open  string `toml:"open"`
	Start string `toml:"start"`
	Goal  string `toml:"goal"`
}

// Search tunes the solver.
type Search struct {
	StartHeading string `toml:"start_heading"`
	MaxCost      int64  `toml:"max_cost"`
}

// Log selects the logger level.
type Log struct {
	Level string `toml:"level"`
}

// Render controls the overlay printed by the render command.
type Render struct {
	Color bool   `toml:"color"`
	Tile  string `toml:"tile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Symbols: Symbols{Wall: "#", Open: ".", Start: "S", Goal: "E"},
		Search:  Search{StartHeading: "right"},
		Log:     Log{Level: "info"},
		Render:  Render{Color: true, Tile: "O"},
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if _, err := c.MazeSymbols(); err != nil {
		return err
	}
	if c.Search.MaxCost < 0 {
		return fmt.Errorf("%w: search.max_cost must be >= 0, got %d", ErrInvalid, c.Search.MaxCost)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.Render.Tile) != 1 {
		return fmt.Errorf("%w: render.tile must be one character, got %q", ErrInvalid, c.Render.Tile)
	}
	return nil
}

// MazeSymbols converts the symbol table for maze.Parse.
func (c Config) MazeSymbols() (maze.Symbols, error) {
	one := func(key, s string) (rune, error) {
		if utf8.RuneCountInString(s) != 1 {
			return 0, fmt.Errorf("%w: symbols.%s must be one character, got %q", ErrInvalid, key, s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}

	var (
		sym maze.Symbols
		err error
	)
	if sym.Wall, err = one("wall", c.Symbols.Wall); err != nil {
		return maze.Symbols{}, err
	}
	if sym.Start, err = one("start", c.Symbols.Start); err != nil {
		return maze.Symbols{}, err
	}
	if sym.Goal, err = one("goal", c.Symbols.Goal); err != nil {
		return maze.Symbols{}, err
	}
	if c.Symbols.Open == "" {
		return maze.Symbols{}, fmt.Errorf("%w: symbols.open must not be empty", ErrInvalid)
	}
	sym.Open = []rune(c.Symbols.Open)
	if sym.StartHeading, err = maze.ParseHeading(c.Search.StartHeading); err != nil {
		return maze.Symbols{}, fmt.Errorf("%w: search.start_heading: %w", ErrInvalid, err)
	}
	if err = sym.Validate(); err != nil {
		return maze.Symbols{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return sym, nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return lvl, nil
}

// SolveOptions returns the dijkstra options implied by the search section.
func (c Config) SolveOptions() []dijkstra.Option {
	if c.Search.MaxCost > 0 {
		return []dijkstra.Option{dijkstra.WithMaxCost(c.Search.MaxCost)}
	}
	return nil
}

// TileRune returns the overlay rune for optimal tiles.
func (c Config) TileRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Render.Tile)
	return r
}
