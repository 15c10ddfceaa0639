// Package maze models a rectangular maze of wall and open cells as a
// directed state space for heading-aware shortest-path search.
//
// What:
//
//   - Grid wraps a rectangular wall/open layout together with a start State
//     (position + initial heading) and a goal Position.
//   - Parse reads the textual form (rows of equal width, one start marker,
//     one goal marker) using configurable Symbols.
//   - Grid.Moves is the state-space adapter: for a State it lazily yields
//     every successor State with its edge cost.
//
// Movement model:
//
//   - Forward step: same heading, one cell ahead, cost StepCost (1).
//     Only valid when the destination is in bounds and not a wall.
//   - Turn in place: to either perpendicular heading, cost TurnCost (1000).
//   - Reversing is never a single move; it takes two turns (2000).
//
// Complexity:
//
//   - Parse / NewGrid: O(W×H) time and memory.
//   - Moves: O(1) per yielded successor (at most three).
//   - NumStates: 4×W×H, the size of any dense per-state table.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: structural problems.
//   - ErrMissingStart, ErrDuplicateStart, ErrMissingGoal, ErrDuplicateGoal:
//     marker problems.
//   - ErrUnknownSymbol: a cell that is none of the configured symbols.
//   - ErrUnknownHeading: ParseHeading could not recognise its input.
package maze
