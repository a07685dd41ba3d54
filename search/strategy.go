package search

import (
	"fmt"

	"github.com/decimatedTomato/mazesolver-visualizer/grid"
)

// New constructs a strategy of the requested variant bound to g. All
// three variants share this construction contract; callers pick one by
// Algorithm tag (or via ParseAlgorithm for name-driven selection).
// Returns ErrNilGrid, ErrUnknownAlgorithm, or ErrOptionViolation.
func New(g *grid.Grid, algo Algorithm, opts ...Option) (Strategy, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.ArenaHint == 0 {
		o.ArenaHint = g.Width * g.Height
	}

	switch algo {
	case BFS:
		return newBFS(g, o), nil
	case Greedy:
		return newGreedy(g, o), nil
	case AStar:
		return newAStar(g, o), nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownAlgorithm, uint8(algo))
	}
}

// Solve steps s to termination and returns the terminal outcome with the
// reconstructed path (nil when Exhausted). Convenience driver for
// callers that do not need stepwise pacing.
func Solve(s Strategy) (StepOutcome, []grid.Coord) {
	for {
		if out := s.Step(); out != Continued {
			return out, s.Path()
		}
	}
}

// runState carries the bookkeeping shared by all three strategies: the
// bound grid, the node arena, hooks, and the terminal run state.
type runState struct {
	g     *grid.Grid
	arena *nodeArena
	opts  Options

	outcome  StepOutcome // Continued until terminal
	found    handle      // noParent until the goal is discovered
	expanded int
}

func newRunState(g *grid.Grid, o Options) runState {
	return runState{
		g:       g,
		arena:   newArena(o.ArenaHint),
		opts:    o,
		outcome: Continued,
		found:   noParent,
	}
}

// mustRun panics if the run already ended: stepping a terminated
// strategy is a programmer error, not a recoverable state.
func (r *runState) mustRun() {
	if r.outcome != Continued {
		panic(fmt.Sprintf("search: Step called after terminal outcome %v", r.outcome))
	}
}

// Done reports whether the run has reached a terminal outcome.
func (r *runState) Done() bool { return r.outcome != Continued }

// Outcome returns Continued while running, else the terminal outcome.
func (r *runState) Outcome() StepOutcome { return r.outcome }

// Expanded returns the number of nodes expanded so far.
func (r *runState) Expanded() int { return r.expanded }

// Path returns the start-to-end coordinate sequence after Found, nil
// otherwise.
func (r *runState) Path() []grid.Coord {
	if r.outcome != Found {
		return nil
	}

	return r.arena.path(r.found)
}

// expand processes the node at handle h: the goal checks, neighbor
// discovery in NeighborsOf order, the one-time Active reversion on
// success, and the final Explored mark. admit is invoked for every
// Floor neighbor that joins the frontier, letting each strategy order
// its own frontier. Returns Found when the goal was reached, else
// Continued.
func (r *runState) expand(h handle, admit func(child handle, at grid.Coord)) StepOutcome {
	at := r.arena.coordOf(h)
	r.expanded++
	r.opts.OnExpand(at)

	// Expanding the goal cell itself covers the start==end layout, where
	// no neighbor scan could ever match.
	if at == r.g.End {
		r.succeed(h, at)
		return Found
	}

	for _, nb := range r.g.NeighborsOf(at) {
		if nb == r.g.End {
			// Goal discovered: link a final node and stop expanding this
			// element; remaining neighbors are not processed.
			r.succeed(r.arena.grow(nb, h), at)
			return Found
		}
		if r.g.CellAt(nb) != grid.Floor {
			continue
		}
		r.g.SetCell(nb, grid.Active)
		r.opts.OnDiscover(nb)
		admit(r.arena.grow(nb, h), nb)
	}
	r.g.SetCell(at, grid.Explored)

	return Continued
}

// succeed finishes the run on goal discovery: goal is the terminal node
// and from the coordinate of the node that discovered it. Any neighbor
// of from still marked Active reverts to Floor: those frontier entries
// turned out unnecessary once the goal was reached through this node.
// This is the single sanctioned exception to cell-state monotonicity.
func (r *runState) succeed(goal handle, from grid.Coord) {
	for _, nb := range r.g.NeighborsOf(from) {
		if r.g.CellAt(nb) == grid.Active {
			r.g.SetCell(nb, grid.Floor)
		}
	}
	r.g.SetCell(from, grid.Explored)
	r.found = goal
	r.outcome = Found
}

// exhaust finishes the run with an empty frontier and no goal. A normal
// outcome for a disconnected layout.
func (r *runState) exhaust() StepOutcome {
	r.outcome = Exhausted
	return Exhausted
}
