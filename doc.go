// Package mazepath finds minimum-cost routes through turn-penalised mazes.
//
// A maze is a rectangular grid of walls and open cells with one start cell
// (entered facing a fixed heading) and one goal cell. Moving one cell
// forward costs 1; turning 90 degrees in place costs 1000.
//
// Under the hood, everything is organized under three subpackages:
//
//	maze/     — Grid, Heading, State, the text parser and the move generator
//	dijkstra/ — tie-aware Dijkstra search over (x, y, heading) states
//	pathset/  — every tile on any cheapest route, rebuilt from predecessor sets
//
// The mazepath command (cmd/mazepath) wraps them with a TOML config file,
// structured logging and a rendered overlay.
//
// Quick start:
//
//	g, err := maze.ParseString(input, maze.DefaultSymbols())
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := dijkstra.Solve(g, dijkstra.WithTrackPredecessors())
//	if err != nil {
//		log.Fatal(err)
//	}
//	cost, ok := res.Cost()
//	tiles, _ := pathset.Reconstruct(res)
//	fmt.Println(cost, ok, tiles.Len())
package mazepath
