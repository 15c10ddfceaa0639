package dijkstra_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
)

// smallExample is the 15×15 reference maze: minimal cost 7036, 45 optimal tiles.
var smallExample = strings.Join([]string{
	"###############",
	"#.......#....E#",
	"#.#.###.#.###.#",
	"#.....#.#...#.#",
	"#.###.#####.#.#",
	"#.#.#.......#.#",
	"#.#.#####.###.#",
	"#...........#.#",
	"###.#.#####.#.#",
	"#...#.....#.#.#",
	"#.#.#.###.#.#.#",
	"#.....#...#.#.#",
	"#.###.#.#.#.#.#",
	"#S..#.....#...#",
	"###############",
}, "\n")

// largerExample is the 17×17 reference maze: minimal cost 11048, 64 optimal tiles.
var largerExample = strings.Join([]string{
	"#################",
	"#...#...#...#..E#",
	"#.#.#.#.#.#.#.#.#",
	"#.#.#.#...#...#.#",
	"#.#.#.#.###.#.#.#",
	"#...#.#.#.....#.#",
	"#.#.#.#.#.#####.#",
	"#.#...#.#.#.....#",
	"#.#.#####.#.###.#",
	"#.#.#.......#...#",
	"#.#.###.#####.###",
	"#.#.#...#.....#.#",
	"#.#.#.#####.###.#",
	"#.#.#.........#.#",
	"#.#.#.#########.#",
	"#S#.............#",
	"#################",
}, "\n")

// mustParse parses s with the default symbols or fails the test.
func mustParse(tb testing.TB, s string) *maze.Grid {
	tb.Helper()
	g, err := maze.ParseString(s, maze.DefaultSymbols())
	require.NoError(tb, err)
	return g
}

// bruteForceDist computes exact costs from start by relaxing every move
// until a fixed point is reached (Bellman-Ford over the state space).
func bruteForceDist(g *maze.Grid, start maze.State) []int64 {
	dist := make([]int64, g.NumStates())
	for i := range dist {
		dist[i] = dijkstra.Infinity
	}
	dist[g.StateIndex(start)] = 0
	for changed := true; changed; {
		changed = false
		for i, d := range dist {
			if d == dijkstra.Infinity {
				continue
			}
			for next, w := range g.Moves(g.StateAt(i)) {
				j := g.StateIndex(next)
				if d+w < dist[j] {
					dist[j] = d + w
					changed = true
				}
			}
		}
	}
	return dist
}

// randomGrid builds a w×h grid with the given wall density and random
// open start and goal cells. rng must be deterministic.
func randomGrid(tb testing.TB, rng *rand.Rand, w, h int, density float64) *maze.Grid {
	tb.Helper()
	for {
		walls := make([][]bool, h)
		var open []maze.Position
		for y := range walls {
			walls[y] = make([]bool, w)
			for x := range walls[y] {
				walls[y][x] = rng.Float64() < density
				if !walls[y][x] {
					open = append(open, maze.Position{X: x, Y: y})
				}
			}
		}
		if len(open) < 2 {
			continue
		}
		s := open[rng.Intn(len(open))]
		e := open[rng.Intn(len(open))]
		g, err := maze.NewGrid(walls, maze.State{Position: s, Heading: maze.Headings[rng.Intn(maze.NumHeadings)]}, e)
		require.NoError(tb, err)
		return g
	}
}
