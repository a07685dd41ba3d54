package search

import (
	"math"

	"github.com/decimatedTomato/mazesolver-visualizer/grid"
)

// euclidean returns the straight-line distance between two cells. On a
// unit-cost 4-connected grid it never exceeds the true edge-count
// distance, making it an admissible heuristic: A* ordered by it returns
// shortest paths.
func euclidean(a, b grid.Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}
