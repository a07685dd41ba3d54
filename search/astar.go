package search

import "github.com/decimatedTomato/mazesolver-visualizer/grid"

// astarStrategy is A* search: structurally identical to greedy best-first
// but each frontier element carries the number of edges walked from
// Start, and the ordering priority is that cumulative cost plus the
// straight-line distance to End. Because the straight-line estimate
// never overestimates the remaining edge count, the reconstructed path
// is shortest, the same guarantee BFS gives, usually at a fraction of
// the expansions.
type astarStrategy struct {
	runState
	frontier sortedFrontier
}

func newAStar(g *grid.Grid, o Options) *astarStrategy {
	s := &astarStrategy{runState: newRunState(g, o)}
	root := s.arena.grow(g.Start, noParent)
	s.frontier.insert(frontierItem{
		node:     root,
		priority: euclidean(g.Start, g.End),
		pathLen:  0,
	})

	return s
}

// Step removes the minimum-priority frontier element and expands it,
// propagating pathLen+1 to each admitted child.
func (s *astarStrategy) Step() StepOutcome {
	s.mustRun()

	if len(s.frontier) == 0 {
		return s.exhaust()
	}
	it := s.frontier.popMin()

	return s.expand(it.node, func(child handle, at grid.Coord) {
		childLen := it.pathLen + 1
		s.frontier.insert(frontierItem{
			node:     child,
			priority: float64(childLen) + euclidean(at, s.g.End),
			pathLen:  childLen,
		})
	})
}
