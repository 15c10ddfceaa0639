package maze

import "fmt"

// Grid is an immutable rectangular maze with a start State and a goal Position.
// Width and Height define dimensions; walls is stored row-major.
type Grid struct {
	Width, Height int
	walls         []bool
	start         State
	goal          Position
}

// NewGrid constructs a Grid from a non-empty, rectangular wall mask
// (walls[y][x] == true means impassable). It deep-copies the input.
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadMarker if start
// or goal is out of bounds or on a wall.
// Complexity: O(W×H) time and memory.
func NewGrid(walls [][]bool, start State, goal Position) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for y, row := range walls {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g := &Grid{
		Width:  w,
		Height: h,
		walls:  make([]bool, w*h),
		start:  start,
		goal:   goal,
	}
	for y := 0; y < h; y++ {
		copy(g.walls[y*w:(y+1)*w], walls[y])
	}
	if int(start.Heading) >= NumHeadings {
		return nil, fmt.Errorf("%w: start heading %d", ErrUnknownHeading, start.Heading)
	}
	if !g.IsOpen(start.Position) {
		return nil, fmt.Errorf("%w: start %v", ErrBadMarker, start.Position)
	}
	if !g.IsOpen(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrBadMarker, goal)
	}

	return g, nil
}

// Start returns the start State (position and initial heading).
func (g *Grid) Start() State { return g.start }

// Goal returns the goal Position. Any heading at the goal counts as arrival.
func (g *Grid) Goal() Position { return g.goal }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsWall reports whether p is a wall. Out-of-bounds positions count as walls.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.walls[g.index(p)]
}

// IsOpen reports whether p is an in-bounds, non-wall cell.
func (g *Grid) IsOpen(p Position) bool { return !g.IsWall(p) }

// NumPositions returns W×H.
func (g *Grid) NumPositions() int { return g.Width * g.Height }

// NumStates returns 4×W×H, the size of a dense per-state table.
func (g *Grid) NumStates() int { return g.Width * g.Height * NumHeadings }

// PositionIndex maps p to its row-major index y*Width + x.
// The caller must ensure p is in bounds.
func (g *Grid) PositionIndex(p Position) int { return g.index(p) }

// PositionAt converts a row-major index back to a Position.
func (g *Grid) PositionAt(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

// StateIndex maps s to its dense index (y*Width + x)*4 + heading.
// The caller must ensure s.Position is in bounds.
func (g *Grid) StateIndex(s State) int {
	return g.index(s.Position)*NumHeadings + int(s.Heading)
}

// StateAt is the inverse of StateIndex.
func (g *Grid) StateAt(idx int) State {
	return State{Position: g.PositionAt(idx / NumHeadings), Heading: Heading(idx % NumHeadings)}
}

// Walls returns a fresh copy of the wall mask as rows.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Height)
	for y := range out {
		out[y] = make([]bool, g.Width)
		copy(out[y], g.walls[y*g.Width:(y+1)*g.Width])
	}
	return out
}

func (g *Grid) index(p Position) int {
	return p.Y*g.Width + p.X
}
