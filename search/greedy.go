package search

import "github.com/decimatedTomato/mazesolver-visualizer/grid"

// greedyStrategy is greedy best-first search: the frontier is ordered by
// straight-line distance to End alone, computed once when a cell is
// discovered. It tends to race toward the goal and usually examines far
// fewer cells than BFS, but its path carries no optimality guarantee.
// That trade-off is the algorithm's defining property.
type greedyStrategy struct {
	runState
	frontier sortedFrontier
}

func newGreedy(g *grid.Grid, o Options) *greedyStrategy {
	s := &greedyStrategy{runState: newRunState(g, o)}
	root := s.arena.grow(g.Start, noParent)
	s.frontier.insert(frontierItem{node: root, priority: euclidean(g.Start, g.End)})

	return s
}

// Step removes the minimum-priority frontier element and expands it.
func (s *greedyStrategy) Step() StepOutcome {
	s.mustRun()

	if len(s.frontier) == 0 {
		return s.exhaust()
	}
	it := s.frontier.popMin()

	return s.expand(it.node, func(child handle, at grid.Coord) {
		s.frontier.insert(frontierItem{node: child, priority: euclidean(at, s.g.End)})
	})
}
