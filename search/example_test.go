// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/decimatedTomato/mazesolver-visualizer/grid"
	"github.com/decimatedTomato/mazesolver-visualizer/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: stepwise driving
////////////////////////////////////////////////////////////////////////////////

// ExampleStrategy demonstrates the stepwise contract an external driver
// (a render loop, a timer, a test) uses: keep calling Step until it
// reports a terminal outcome, then read the path.
//
// Scenario: a 3×1 corridor. BFS reaches the goal on its second step.
func ExampleStrategy() {
	cells := [][]grid.CellState{
		{grid.Floor, grid.Floor, grid.Floor},
	}
	g, _ := grid.FromCells(cells, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 0})

	s, _ := search.New(g, search.BFS)
	for step := 1; ; step++ {
		out := s.Step()
		fmt.Printf("step %d: %v\n", step, out)
		if out != search.Continued {
			break
		}
	}
	fmt.Println("path:", s.Path())

	// Output:
	// step 1: Continued
	// step 2: Found
	// path: [(0,0) (1,0) (2,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: one-shot solving
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve runs a whole pass in one call and shows that a walled-off
// goal ends in Exhausted, a normal verdict rather than an error.
func ExampleSolve() {
	cells := [][]grid.CellState{
		{grid.Floor, grid.Floor, grid.Floor},
		{grid.Wall, grid.Wall, grid.Wall},
		{grid.Floor, grid.Floor, grid.Floor},
	}
	g, _ := grid.FromCells(cells, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 0, Y: 2})

	for _, name := range []string{"bfs", "greedy", "astar"} {
		algo, _ := search.ParseAlgorithm(name)
		s, _ := search.New(g, algo)
		out, path := search.Solve(s)
		fmt.Printf("%s: %v (path %v)\n", name, out, path)
		g.Reload()
	}

	// Output:
	// bfs: Exhausted (path [])
	// greedy: Exhausted (path [])
	// astar: Exhausted (path [])
}
