package search

import "github.com/decimatedTomato/mazesolver-visualizer/grid"

// bfsStrategy is breadth-first search with a deferred frontier swap: a
// current frontier consumed through a cursor, and a next frontier that
// collects the following distance layer. Cells are visited in
// non-decreasing edge distance from Start, so the reconstructed path is
// shortest in edge count whenever a path exists.
type bfsStrategy struct {
	runState
	current []handle
	next    []handle
	cursor  int
}

func newBFS(g *grid.Grid, o Options) *bfsStrategy {
	s := &bfsStrategy{runState: newRunState(g, o)}
	root := s.arena.grow(g.Start, noParent)
	s.current = append(s.current, root)

	return s
}

// Step advances the cursor once. A call that lands on an exhausted
// cursor swaps in the next layer and still consumes one element, so
// every Step expands exactly one node whenever any is pending.
func (s *bfsStrategy) Step() StepOutcome {
	s.mustRun()

	if s.cursor >= len(s.current) {
		if len(s.next) == 0 {
			return s.exhaust()
		}
		// Swap layers; the drained slice is recycled as the new next.
		s.current, s.next = s.next, s.current[:0]
		s.cursor = 0
	}

	h := s.current[s.cursor]
	s.cursor++

	return s.expand(h, func(child handle, _ grid.Coord) {
		s.next = append(s.next, child)
	})
}
