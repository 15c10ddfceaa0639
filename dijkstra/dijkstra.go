// Package dijkstra implements a tie-aware Dijkstra search over maze states.
//
// Notes on implementation choices:
//
//   - State tables are dense slices indexed by maze.Grid.StateIndex.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when they are popped.
//   - Equal-cost relaxations append to the predecessor set without a push.
//   - Violated search invariants panic; they indicate a bug, not bad input.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// Solve computes minimal costs from the start State (the grid's start marker
// unless WithStart is given) to every reachable state, and the minimal cost
// of reaching the goal Position with any heading.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. the start position must be in bounds (ErrStartOutOfBounds) and open (ErrStartBlocked).
//  3. the goal position must be in bounds (ErrGoalOutOfBounds) and open (ErrGoalBlocked).
//
// An unreachable goal is reported through Result.Reachable, not as an error.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4×W×H
//   - Space: O(S)
func Solve(g *maze.Grid, opts ...Option) (*Result, error) {
	// 1) Build Options: start from defaults, then apply each functional option.
	//    WithMaxCost panics here on a negative cap, before any work is done.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate grid is non-nil.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Resolve endpoints: the grid markers, unless WithStart/WithGoal override them.
	start := g.Start()
	if cfg.HasStart {
		start = cfg.Start
	}
	goal := g.Goal()
	if cfg.HasGoal {
		goal = cfg.Goal
	}

	// 4) Validate the start State. A heading outside 0..3 would index past
	//    the state's slot in the dense tables, so it is rejected with the bounds.
	if !g.InBounds(start.Position) || int(start.Heading) >= maze.NumHeadings {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if g.IsWall(start.Position) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start.Position)
	}

	// 5) Validate the goal Position. Any heading there counts as arrival.
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalOutOfBounds, goal)
	}
	if g.IsWall(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}

	// 6) Prepare dense tables. Let S = 4×W×H, the number of states.
	//    dist and done are indexed by maze.Grid.StateIndex.
	n := g.NumStates()
	r := &runner{
		grid:    g,
		options: cfg,
		goal:    goal,
		dist:    make([]int64, n),
		done:    make([]bool, n),
		pq:      make(statePQ, 0, 64),
		best:    Infinity,
	}
	//    prev is only allocated in tracking mode; the scalar-cost mode keeps it nil
	//    so relax can skip predecessor bookkeeping with a single nil check.
	if cfg.TrackPredecessors {
		r.prev = make([][]maze.State, n)
	}

	// 7) Initialize algorithm state and run the main loop.
	r.init(start)
	r.process()

	// 8) Hand the tables to a read-only Result; the runner is discarded.
	return &Result{
		grid:      g,
		start:     start,
		goal:      goal,
		dist:      r.dist,
		prev:      r.prev,
		done:      r.done,
		best:      r.best,
		finalized: r.finalized,
	}, nil
}

// runner holds the mutable state of one search.
type runner struct {
	grid      *maze.Grid
	options   Options
	goal      maze.Position
	dist      []int64        // best known cost per state
	prev      [][]maze.State // tie-aware predecessor sets; nil when not tracking
	done      []bool         // finalized states
	pq        statePQ
	best      int64 // cost of the first finalized goal state
	finalized int
}

// init sets every cost to Infinity, the start cost to 0, and seeds the heap.
func (r *runner) init(start maze.State) {
	for i := range r.dist {
		r.dist[i] = Infinity
	}
	s := r.grid.StateIndex(start)
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, stateItem{idx: s, cost: 0})
}

// process pops states in cost order until the heap is empty, or, in the
// scalar-cost mode, until the first goal state is finalized.
func (r *runner) process() {
	var (
		item stateItem
		s    maze.State
	)
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-cost entry from the heap.
		item = heap.Pop(&r.pq).(stateItem)

		// 2) Discard stale entries: a cheaper cost was recorded after this push
		//    (lazy decrease-key), or the state was already finalized.
		if item.cost > r.dist[item.idx] || r.done[item.idx] {
			continue
		}

		// 3) Mark the state finalized. Its cost item.cost is now final and it
		//    is expanded exactly once below.
		r.done[item.idx] = true
		r.finalized++
		s = r.grid.StateAt(item.idx)

		// 4) The first goal state popped carries the minimal goal cost, because
		//    states leave the heap in non-decreasing cost order.
		if s.Position == r.goal && r.best == Infinity {
			r.best = item.cost
			// In scalar-cost mode nothing else is needed: stop here.
			// In tracking mode keep draining, since later equal-cost pops can
			// still add predecessors on optimal routes.
			if !r.options.TrackPredecessors {
				return
			}
		}

		// 5) Relax all moves out of s.
		r.relax(s, item.cost)
	}
}

// relax applies the three-way relaxation rule to every move out of u.
// Assumes u is finalized at cost d.
func (r *runner) relax(u maze.State, d int64) {
	// Only finalized, reached states are expanded; anything else is a bug in process.
	if d == Infinity || d < 0 {
		panic(fmt.Sprintf("dijkstra: relaxing from unreached state %v (cost %d)", u, d))
	}

	var (
		v  int
		nd int64
	)
	// Moves yields at most three successors: forward (cost 1) and two turns (cost 1000).
	for next, w := range r.grid.Moves(u) {
		// Candidate cost if we reach next through u.
		nd = d + w

		// Respect the MaxCost cap: states beyond it are never recorded,
		// so they never enter the heap or any predecessor set.
		if nd > r.options.MaxCost {
			continue
		}
		v = r.grid.StateIndex(next)

		switch {
		case nd < r.dist[v]:
			// Strictly better. With non-negative edge costs a finalized state can
			// never improve; if it does, the heap order was violated.
			if r.done[v] {
				panic(fmt.Sprintf("dijkstra: finalized state %v improved from %d to %d", next, r.dist[v], nd))
			}
			r.dist[v] = nd

			// The old predecessors reached v at a worse cost: replace them with u.
			if r.prev != nil {
				r.prev[v] = append(r.prev[v][:0], u)
			}

			// Push the updated cost. The outdated entry stays in the heap and is
			// skipped when popped (step 2 of process).
			heap.Push(&r.pq, stateItem{idx: v, cost: nd})
		case nd == r.dist[v]:
			// Tie: nothing to propagate, so no push. The route is still recorded,
			// even when v is already finalized.
			if r.prev != nil {
				r.prev[v] = append(r.prev[v], u)
			}
		default:
			// Worse than the recorded cost: ignore.
		}
	}
}

// stateItem is a heap entry: a dense state index and its cost at push time.
type stateItem struct {
	idx  int
	cost int64
}

// statePQ is a min-heap of stateItem. Lower accumulated cost sorts first;
// equal costs are ordered by state index so runs are deterministic.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost ascending, then by state index.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a stateItem.
func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
