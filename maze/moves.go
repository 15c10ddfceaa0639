package maze

import "iter"

// Moves lazily yields every successor of s together with its edge cost:
// the forward step (StepCost) when the cell ahead is open, then the two
// perpendicular turns (TurnCost). The reverse heading is never yielded.
//
// Moves is a pure function of the grid and s; it does not check that s
// itself is open, since every state a search reaches is.
func (g *Grid) Moves(s State) iter.Seq2[State, int64] {
	return func(yield func(State, int64) bool) {
		dx, dy := s.Heading.Offset()
		ahead := Position{X: s.X + dx, Y: s.Y + dy}
		if g.IsOpen(ahead) {
			if !yield(State{Position: ahead, Heading: s.Heading}, StepCost) {
				return
			}
		}
		for _, h := range s.Heading.Rotations() {
			if !yield(State{Position: s.Position, Heading: h}, TurnCost) {
				return
			}
		}
	}
}

// EdgeCost returns the cost of the single move from -> to, or false if
// to is not a one-move successor of from.
func (g *Grid) EdgeCost(from, to State) (int64, bool) {
	for next, cost := range g.Moves(from) {
		if next == to {
			return cost, true
		}
	}
	return 0, false
}
