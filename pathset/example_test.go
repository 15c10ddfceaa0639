package pathset_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathset"
)

// ExampleReconstruct collects the tiles of both tied routes around a pillar.
func ExampleReconstruct() {
	g, _ := maze.ParseString("#####\n#...#\n#S#E#\n#...#\n#####", maze.DefaultSymbols())

	res, _ := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
	ts, err := pathset.Reconstruct(res)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, _ := res.Cost()
	fmt.Println(cost, ts.Len())
	// Output: 3004 8
}

// ExampleCount is the one-call form.
func ExampleCount() {
	g, _ := maze.ParseString("S....E", maze.DefaultSymbols())

	n, ok, err := pathset.Count(g)
	fmt.Println(n, ok, err)
	// Output: 6 true <nil>
}
