package dijkstra

import "github.com/katalvlaran/mazepath/maze"

// Result is the read-only product of one Solve call.
type Result struct {
	grid      *maze.Grid
	start     maze.State
	goal      maze.Position
	dist      []int64
	prev      [][]maze.State
	done      []bool
	best      int64
	finalized int
}

// Cost returns the minimal cost of reaching the goal with any heading.
// ok is false when no goal state is reachable.
func (r *Result) Cost() (cost int64, ok bool) {
	if r.best == Infinity {
		return 0, false
	}
	return r.best, true
}

// Reachable reports whether any goal state was reached.
func (r *Result) Reachable() bool { return r.best != Infinity }

// Tracked reports whether predecessor sets were recorded.
// Only tracked results can be used for path-set reconstruction.
func (r *Result) Tracked() bool { return r.prev != nil }

// Grid returns the grid that was searched.
func (r *Result) Grid() *maze.Grid { return r.grid }

// Start returns the start State of the search.
func (r *Result) Start() maze.State { return r.start }

// Goal returns the goal Position of the search.
func (r *Result) Goal() maze.Position { return r.goal }

// Finalized returns how many states were popped and finalized.
func (r *Result) Finalized() int { return r.finalized }

// Dist returns the recorded cost of s, or Infinity if s was not reached
// or lies outside the grid. In the scalar-cost mode only finalized states
// are guaranteed to carry their minimal cost.
func (r *Result) Dist(s maze.State) int64 {
	if !r.grid.InBounds(s.Position) || int(s.Heading) >= maze.NumHeadings {
		return Infinity
	}
	return r.dist[r.grid.StateIndex(s)]
}

// IsFinalized reports whether s was popped and finalized.
func (r *Result) IsFinalized(s maze.State) bool {
	if !r.grid.InBounds(s.Position) || int(s.Heading) >= maze.NumHeadings {
		return false
	}
	return r.done[r.grid.StateIndex(s)]
}

// Predecessors returns a copy of the predecessor set of s: every state
// from which one move reaches s at its minimal cost. It is nil for the
// start state, for unreached states, and when the result is not tracked.
func (r *Result) Predecessors(s maze.State) []maze.State {
	if r.prev == nil || !r.grid.InBounds(s.Position) || int(s.Heading) >= maze.NumHeadings {
		return nil
	}
	p := r.prev[r.grid.StateIndex(s)]
	if len(p) == 0 {
		return nil
	}
	out := make([]maze.State, len(p))
	copy(out, p)
	return out
}

// GoalStates returns every goal state whose cost equals the minimal goal
// cost, in heading order. It is empty when the goal is unreachable.
func (r *Result) GoalStates() []maze.State {
	if !r.Reachable() {
		return nil
	}
	var out []maze.State
	for _, h := range maze.Headings {
		s := maze.State{Position: r.goal, Heading: h}
		if r.dist[r.grid.StateIndex(s)] == r.best {
			out = append(out, s)
		}
	}
	return out
}

// predecessorsAt exposes the predecessor set of a dense index without copying.
// It backs EachPredecessor.
func (r *Result) predecessorsAt(idx int) []maze.State {
	if r.prev == nil {
		return nil
	}
	return r.prev[idx]
}

// EachPredecessor calls fn for every predecessor of s without copying the set.
// It does nothing when the result is not tracked.
func (r *Result) EachPredecessor(s maze.State, fn func(maze.State)) {
	if !r.grid.InBounds(s.Position) || int(s.Heading) >= maze.NumHeadings {
		return
	}
	for _, p := range r.predecessorsAt(r.grid.StateIndex(s)) {
		fn(p)
	}
}
