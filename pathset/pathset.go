package pathset

import (
	"errors"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for path-set reconstruction.
var (
	// ErrNilResult indicates that a nil *dijkstra.Result was passed.
	ErrNilResult = errors.New("pathset: result is nil")
	// ErrNotTracked indicates the result carries no predecessor sets.
	ErrNotTracked = errors.New("pathset: result was solved without predecessor tracking")
)

// TileSet is the set of distinct positions on any cost-minimal route.
type TileSet struct {
	grid *maze.Grid
	mask []bool
	n    int
}

// Reconstruct returns every position on at least one cost-minimal route
// from res.Start() to res.Goal(), start and goal included.
//
// Behavior:
//  1. Seed a work-list with res.GoalStates().
//  2. Pop a state and mark its position.
//  3. Unless it is the start state or was already expanded, push every
//     recorded predecessor.
//
// Complexity: O(S + P) time, O(S) memory.
func Reconstruct(res *dijkstra.Result) (*TileSet, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if !res.Tracked() {
		return nil, ErrNotTracked
	}

	g := res.Grid()
	ts := &TileSet{grid: g, mask: make([]bool, g.NumPositions())}
	if !res.Reachable() {
		return ts, nil
	}

	var (
		start    = res.Start()
		expanded = make([]bool, g.NumStates())
		work     = res.GoalStates()
		s        maze.State
		idx      int
	)
	push := func(p maze.State) { work = append(work, p) }
	for len(work) > 0 {
		s = work[len(work)-1]
		work = work[:len(work)-1]

		ts.mark(s.Position)
		if s == start {
			continue
		}
		idx = g.StateIndex(s)
		if expanded[idx] {
			continue
		}
		expanded[idx] = true
		res.EachPredecessor(s, push)
	}

	return ts, nil
}

// Count solves g in tracked mode and returns the number of tiles on any
// optimal route. ok is false when the goal is unreachable.
func Count(g *maze.Grid, opts ...dijkstra.Option) (n int, ok bool, err error) {
	opts = append(opts[:len(opts):len(opts)], dijkstra.WithTrackPredecessors())
	res, err := dijkstra.Solve(g, opts...)
	if err != nil {
		return 0, false, err
	}
	ts, err := Reconstruct(res)
	if err != nil {
		return 0, false, err
	}

	return ts.Len(), res.Reachable(), nil
}

func (ts *TileSet) mark(p maze.Position) {
	i := ts.grid.PositionIndex(p)
	if !ts.mask[i] {
		ts.mask[i] = true
		ts.n++
	}
}

// Len returns the number of distinct positions in the set.
func (ts *TileSet) Len() int { return ts.n }

// Contains reports whether p is on some optimal route.
func (ts *TileSet) Contains(p maze.Position) bool {
	return ts.grid.InBounds(p) && ts.mask[ts.grid.PositionIndex(p)]
}

// Positions returns the members in row-major order.
func (ts *TileSet) Positions() []maze.Position {
	out := make([]maze.Position, 0, ts.n)
	for i, on := range ts.mask {
		if on {
			out = append(out, ts.grid.PositionAt(i))
		}
	}
	return out
}

// Mask returns a Height×Width copy of the membership mask.
func (ts *TileSet) Mask() [][]bool {
	g := ts.grid
	out := make([][]bool, g.Height)
	for y := range out {
		out[y] = make([]bool, g.Width)
		copy(out[y], ts.mask[y*g.Width:(y+1)*g.Width])
	}
	return out
}
