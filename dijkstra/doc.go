// Package dijkstra finds minimum-cost routes through a maze.Grid state space
// where a forward step costs 1 and a 90-degree turn costs 1000.
//
// Overview:
//
//   - Solve runs a Dijkstra search over (x, y, heading) states from the
//     grid's start State to any heading at the goal Position.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-cheapest state; lower accumulated cost sorts first.
//   - With WithTrackPredecessors it also keeps, for every state, the full
//     set of predecessors that reach it at its minimal cost (ties included),
//     and drains the queue so that set is complete. package pathset walks
//     that set backwards to collect every tile on any optimal path.
//
// Relaxation rule:
//
//   - candidate <  recorded: record it, replace the predecessor set with the
//     single new predecessor, push onto the heap.
//   - candidate == recorded: add the predecessor, do not push. This also
//     happens after the target is finalized; the tie is still recorded.
//   - candidate >  recorded: ignore.
//
// Modes:
//
//   - Default: scalar cost only. No predecessor tables are allocated and the
//     search stops at the first finalized goal state.
//   - WithTrackPredecessors(): full exhaustion, tie-aware predecessor sets.
//     The early-exit mode must not be used for path-set reconstruction.
//
// Performance and complexity:
//
//   - Time:  O(S log S) with S = 4×W×H states; every state has at most three
//     outgoing moves, so edges are O(S).
//   - Space: O(S) for the dense cost table, O(S) more for predecessor sets,
//     and O(S) heap entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          Solve was given a nil grid.
//   - ErrStartOutOfBounds: the start position is outside the grid.
//   - ErrStartBlocked:     the start position is a wall.
//   - ErrGoalOutOfBounds:  the goal position is outside the grid.
//   - ErrGoalBlocked:      the goal position is a wall.
//   - ErrBadMaxCost:       WithMaxCost was given a negative cap (panics).
//
// An unreachable goal is not an error: Result.Reachable reports false.
//
// Thread safety:
//
//   - maze.Grid is immutable, so independent Solve calls may share one grid.
//   - A Result is read-only once returned and may be shared.
package dijkstra
