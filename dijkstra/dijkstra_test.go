// Package dijkstra_test contains unit tests for the maze Dijkstra search.
// They cover validation, the concrete corridor/turn/tie/unreachable
// scenarios, predecessor consistency, and a brute-force cross-check.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSolve_NilGrid(t *testing.T) {
	_, err := dijkstra.Solve(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestSolve_BadEndpoints(t *testing.T) {
	g := mustParse(t, "S#.E")
	cases := []struct {
		name string
		opt  dijkstra.Option
		err  error
	}{
		{"StartOutOfBounds", dijkstra.WithStart(maze.At(9, 0, maze.Right)), dijkstra.ErrStartOutOfBounds},
		{"StartBadHeading", dijkstra.WithStart(maze.At(0, 0, maze.Heading(7))), dijkstra.ErrStartOutOfBounds},
		{"StartBlocked", dijkstra.WithStart(maze.At(1, 0, maze.Right)), dijkstra.ErrStartBlocked},
		{"GoalOutOfBounds", dijkstra.WithGoal(maze.Position{X: -1}), dijkstra.ErrGoalOutOfBounds},
		{"GoalBlocked", dijkstra.WithGoal(maze.Position{X: 1}), dijkstra.ErrGoalBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.Solve(g, tc.opt)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestWithMaxCost_NegativePanics(t *testing.T) {
	// The option validates lazily: building it is harmless, applying it panics.
	opt := dijkstra.WithMaxCost(-1)
	require.NotNil(t, opt)

	g := mustParse(t, "S.E")
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		_, _ = dijkstra.Solve(g, dijkstra.WithMaxCost(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios.
// ------------------------------------------------------------------------

// Straight corridor of N cells: N-1 steps, no turns.
func TestSolve_StraightCorridor(t *testing.T) {
	for _, n := range []int{2, 3, 10} {
		row := "S"
		for i := 0; i < n-2; i++ {
			row += "."
		}
		row += "E"
		for _, track := range []bool{false, true} {
			var opts []dijkstra.Option
			if track {
				opts = append(opts, dijkstra.WithTrackPredecessors())
			}
			res, err := dijkstra.Solve(mustParse(t, row), opts...)
			require.NoError(t, err)
			cost, ok := res.Cost()
			require.True(t, ok)
			assert.Equal(t, int64(n-1), cost, "corridor of %d cells (track=%v)", n, track)
		}
	}
}

// One 90-degree turn: four steps plus one turn.
func TestSolve_SingleTurn(t *testing.T) {
	g := mustParse(t, "S..\n##.\n##E")
	res, err := dijkstra.Solve(g)
	require.NoError(t, err)

	cost, ok := res.Cost()
	require.True(t, ok)
	assert.Equal(t, 4*maze.StepCost+maze.TurnCost, cost)
}

// Reversing costs two turns.
func TestSolve_ReverseCostsTwoTurns(t *testing.T) {
	g := mustParse(t, "E.S")
	res, err := dijkstra.Solve(g)
	require.NoError(t, err)

	cost, _ := res.Cost()
	assert.Equal(t, 2*maze.TurnCost+2*maze.StepCost, cost)
}

// Two disjoint routes of identical cost around a pillar.
func TestSolve_TiedRoutesRecordBothPredecessors(t *testing.T) {
	g := mustParse(t, "#####\n#...#\n#S#E#\n#...#\n#####")
	res, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
	require.NoError(t, err)

	cost, ok := res.Cost()
	require.True(t, ok)
	assert.Equal(t, 3*maze.TurnCost+4*maze.StepCost, cost)

	// Arriving from above faces Down, from below faces Up: both are optimal.
	assert.ElementsMatch(t, []maze.State{maze.At(3, 2, maze.Up), maze.At(3, 2, maze.Down)}, res.GoalStates())
	assert.Equal(t, []maze.State{maze.At(3, 1, maze.Down)}, res.Predecessors(maze.At(3, 2, maze.Down)))
	assert.Equal(t, []maze.State{maze.At(3, 3, maze.Up)}, res.Predecessors(maze.At(3, 2, maze.Up)))
}

// A state reached by two equal-cost routes keeps both predecessors.
func TestSolve_EqualCostPredecessorsMerge(t *testing.T) {
	// From (0,0) facing Right, (1,1)/Right is reachable via
	// right,turn-down,down,turn-right or turn-down,down,turn-right,right,
	// both at 2 steps + 2 turns.
	g := mustParse(t, "S.\n.E")
	res, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
	require.NoError(t, err)

	cost, _ := res.Cost()
	assert.Equal(t, 2*maze.StepCost+maze.TurnCost, cost)

	target := maze.At(1, 1, maze.Right)
	assert.Equal(t, 2*maze.StepCost+2*maze.TurnCost, res.Dist(target))
	assert.ElementsMatch(t, []maze.State{
		maze.At(0, 1, maze.Right), // stepped in
		maze.At(1, 1, maze.Down),  // turned in place
	}, res.Predecessors(target))
}

// A detour through a last row of space-open cells stays reachable.
func TestSolve_TrailingOpenRowDetour(t *testing.T) {
	sym := maze.Symbols{Wall: '#', Open: []rune{' '}, Start: 'S', Goal: 'E', StartHeading: maze.Right}
	g, err := maze.ParseString("S#E\n   \n", sym)
	require.NoError(t, err)

	res, err := dijkstra.Solve(g)
	require.NoError(t, err)
	cost, ok := res.Cost()
	require.True(t, ok)
	assert.Equal(t, 3*maze.TurnCost+4*maze.StepCost, cost)
}

// Start and goal on the same cell.
func TestSolve_StartIsGoal(t *testing.T) {
	g := mustParse(t, "S.E")
	res, err := dijkstra.Solve(g, dijkstra.WithGoal(g.Start().Position), dijkstra.WithTrackPredecessors())
	require.NoError(t, err)

	cost, ok := res.Cost()
	require.True(t, ok)
	assert.Zero(t, cost)
	assert.Equal(t, []maze.State{g.Start()}, res.GoalStates())
	assert.Nil(t, res.Predecessors(g.Start()))
}

// Goal walled off entirely: a defined outcome, not an error.
func TestSolve_Unreachable(t *testing.T) {
	for _, src := range []string{"S#E", "S.#\n###\n#.E"} {
		for _, track := range []bool{false, true} {
			var opts []dijkstra.Option
			if track {
				opts = append(opts, dijkstra.WithTrackPredecessors())
			}
			res, err := dijkstra.Solve(mustParse(t, src), opts...)
			require.NoError(t, err)
			assert.False(t, res.Reachable())
			cost, ok := res.Cost()
			assert.False(t, ok)
			assert.Zero(t, cost)
			assert.Empty(t, res.GoalStates())
		}
	}
}

// MaxCost prunes everything beyond the cap.
func TestSolve_MaxCost(t *testing.T) {
	g := mustParse(t, "S..\n##.\n##E")

	res, err := dijkstra.Solve(g, dijkstra.WithMaxCost(1003))
	require.NoError(t, err)
	assert.False(t, res.Reachable())

	res, err = dijkstra.Solve(g, dijkstra.WithMaxCost(1004))
	require.NoError(t, err)
	cost, ok := res.Cost()
	assert.True(t, ok)
	assert.Equal(t, int64(1004), cost)
}

// The reference mazes.
func TestSolve_ReferenceMazes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int64
	}{
		{"Small", smallExample, 7036},
		{"Larger", largerExample, 11048},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.src)
			fast, err := dijkstra.Solve(g)
			require.NoError(t, err)
			full, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
			require.NoError(t, err)

			c1, _ := fast.Cost()
			c2, _ := full.Cost()
			assert.Equal(t, tc.want, c1)
			assert.Equal(t, tc.want, c2)
			assert.LessOrEqual(t, fast.Finalized(), full.Finalized(), "early exit never finalizes more")
		})
	}
}

// ------------------------------------------------------------------------
// 3. Properties.
// ------------------------------------------------------------------------

// Recorded costs match a brute-force fixed point on random small grids.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 60; i++ {
		g := randomGrid(t, rng, 2+rng.Intn(6), 2+rng.Intn(6), 0.3)
		res, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
		require.NoError(t, err)

		want := bruteForceDist(g, g.Start())
		best := dijkstra.Infinity
		for idx := 0; idx < g.NumStates(); idx++ {
			s := g.StateAt(idx)
			require.Equalf(t, want[idx], res.Dist(s), "grid %d state %v", i, s)
			if s.Position == g.Goal() && want[idx] < best {
				best = want[idx]
			}
		}
		cost, ok := res.Cost()
		if best == dijkstra.Infinity {
			assert.False(t, ok, "grid %d", i)
			continue
		}
		assert.True(t, ok, "grid %d", i)
		assert.Equal(t, best, cost, "grid %d", i)

		fast, err := dijkstra.Solve(g)
		require.NoError(t, err)
		fastCost, _ := fast.Cost()
		assert.Equal(t, best, fastCost, "early-exit grid %d", i)
	}
}

// Every recorded predecessor prices the edge exactly: dist[p] + w(p,s) == dist[s].
func TestSolve_PredecessorsAreTight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grids := []*maze.Grid{mustParse(t, smallExample), mustParse(t, largerExample)}
	for i := 0; i < 20; i++ {
		grids = append(grids, randomGrid(t, rng, 7, 7, 0.25))
	}
	for gi, g := range grids {
		res, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
		require.NoError(t, err)
		for idx := 0; idx < g.NumStates(); idx++ {
			s := g.StateAt(idx)
			preds := res.Predecessors(s)
			if s == res.Start() {
				assert.Empty(t, preds, "grid %d: start has no predecessors", gi)
				continue
			}
			if res.Dist(s) == dijkstra.Infinity {
				assert.Empty(t, preds)
				continue
			}
			require.NotEmptyf(t, preds, "grid %d: reached state %v", gi, s)
			seen := map[maze.State]bool{}
			for _, p := range preds {
				require.False(t, seen[p], "duplicate predecessor %v of %v", p, s)
				seen[p] = true
				w, ok := g.EdgeCost(p, s)
				require.Truef(t, ok, "%v -> %v is not a move", p, s)
				assert.Equalf(t, res.Dist(s), res.Dist(p)+w, "grid %d: %v -> %v", gi, p, s)
				assert.True(t, res.IsFinalized(p))
			}
		}
	}
}

// Two solves of the same grid are identical.
func TestSolve_Deterministic(t *testing.T) {
	g := mustParse(t, largerExample)
	a, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
	require.NoError(t, err)
	b, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
	require.NoError(t, err)

	assert.Equal(t, a.Finalized(), b.Finalized())
	assert.Equal(t, a.GoalStates(), b.GoalStates())
	for idx := 0; idx < g.NumStates(); idx++ {
		s := g.StateAt(idx)
		assert.Equal(t, a.Dist(s), b.Dist(s))
		assert.Equal(t, a.Predecessors(s), b.Predecessors(s))
	}
}

// The scalar-cost mode allocates no predecessor tables.
func TestSolve_UntrackedHasNoPredecessors(t *testing.T) {
	res, err := dijkstra.Solve(mustParse(t, smallExample))
	require.NoError(t, err)
	assert.False(t, res.Tracked())
	assert.Nil(t, res.Predecessors(maze.At(13, 1, maze.Up)))

	n := 0
	res.EachPredecessor(maze.At(13, 1, maze.Up), func(maze.State) { n++ })
	assert.Zero(t, n)
}

// Out-of-range lookups are harmless.
func TestResult_OutOfRange(t *testing.T) {
	res, err := dijkstra.Solve(mustParse(t, "S.E"), dijkstra.WithTrackPredecessors())
	require.NoError(t, err)
	bad := maze.At(10, 10, maze.Up)
	assert.Equal(t, dijkstra.Infinity, res.Dist(bad))
	assert.False(t, res.IsFinalized(bad))
	assert.Nil(t, res.Predecessors(bad))
}
