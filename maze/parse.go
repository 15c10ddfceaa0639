package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze from r: one row per line, every row the same width,
// exactly one sym.Start and one sym.Goal marker. Trailing blank lines and
// carriage returns are ignored. The start State faces sym.StartHeading.
func Parse(r io.Reader, sym Symbols) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read input: %w", err)
	}

	return ParseLines(lines, sym)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, sym Symbols) (*Grid, error) {
	return Parse(strings.NewReader(s), sym)
}

// ParseLines builds a Grid from already-split rows. See Parse.
func ParseLines(lines []string, sym Symbols) (*Grid, error) {
	if err := sym.Validate(); err != nil {
		return nil, err
	}
	// Only truly empty trailing lines are dropped: a row of spaces is a real
	// row whenever ' ' is an open symbol.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	open := make(map[rune]struct{}, len(sym.Open))
	for _, r := range sym.Open {
		open[r] = struct{}{}
	}

	var (
		walls           = make([][]bool, len(lines))
		start           *Position
		goal            *Position
		width           = -1
		x               int
		r               rune
		row             []rune
		isOpen          bool
		firstRowIsEmpty bool
	)
	for y, line := range lines {
		row = []rune(line)
		if width < 0 {
			width = len(row)
			firstRowIsEmpty = width == 0
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), width)
		}
		walls[y] = make([]bool, width)
		for x, r = range row {
			switch r {
			case sym.Wall:
				walls[y][x] = true
			case sym.Start:
				if start != nil {
					return nil, fmt.Errorf("%w: at %d,%d and %v", ErrDuplicateStart, x, y, *start)
				}
				start = &Position{X: x, Y: y}
			case sym.Goal:
				if goal != nil {
					return nil, fmt.Errorf("%w: at %d,%d and %v", ErrDuplicateGoal, x, y, *goal)
				}
				goal = &Position{X: x, Y: y}
			default:
				if _, isOpen = open[r]; !isOpen {
					return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownSymbol, r, x, y)
				}
			}
		}
	}
	if firstRowIsEmpty {
		return nil, ErrEmptyGrid
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if goal == nil {
		return nil, ErrMissingGoal
	}

	return NewGrid(walls, State{Position: *start, Heading: sym.StartHeading}, *goal)
}
