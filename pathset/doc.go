// Package pathset collects every grid cell that lies on at least one
// minimum-cost route through a maze.
//
// What:
//
//   - Reconstruct walks the tie-aware predecessor sets recorded by
//     dijkstra.Solve (WithTrackPredecessors) backwards from every
//     cost-minimal goal state to the start state.
//   - Headings are collapsed: the result is a TileSet of positions.
//   - Count is a shortcut that solves and reconstructs in one call.
//
// Traversal:
//
//   - Predecessor sets branch wherever two routes tie on cost; the optimal
//     routes form a DAG. A work-list with a per-state "expanded" marker
//     visits each predecessor list at most once.
//
// Complexity:
//
//   - Time:  O(S + P), S = 4×W×H states, P = total predecessor entries.
//   - Space: O(S) for the expanded marker, O(W×H) for the tile mask.
//
// Errors:
//
//   - ErrNilResult:  Reconstruct was given a nil result.
//   - ErrNotTracked: the result was computed without predecessor tracking.
//
// An unreachable goal yields an empty TileSet, not an error.
package pathset
