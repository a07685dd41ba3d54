// Package search defines the strategy contract, tunable options, and
// sentinel errors for the search subpackage of
// github.com/decimatedTomato/mazesolver-visualizer.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decimatedTomato/mazesolver-visualizer/grid"
)

// Sentinel errors for strategy construction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm tag.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects one of the three search strategies by tag.
type Algorithm uint8

const (
	// BFS is breadth-first search: visits cells in non-decreasing edge
	// distance from Start, guaranteeing a shortest path when one exists.
	BFS Algorithm = iota
	// Greedy is greedy best-first search: orders the frontier by
	// straight-line distance to End alone. Finds a path fast but with no
	// optimality guarantee.
	Greedy
	// AStar orders the frontier by edges-walked-from-Start plus
	// straight-line distance to End; optimal under this admissible
	// heuristic.
	AStar
)

// String returns the canonical lowercase tag name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case Greedy:
		return "greedy"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a case-insensitive tag name to an Algorithm.
// Accepted spellings: "bfs"; "greedy" or "gbfs"; "astar" or "a*".
// Returns ErrUnknownAlgorithm otherwise.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return BFS, nil
	case "greedy", "gbfs":
		return Greedy, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// StepOutcome reports the effect of one Step call.
type StepOutcome uint8

const (
	// Continued means the run is still in progress: call Step again.
	Continued StepOutcome = iota
	// Found means the goal was reached; Path is now valid.
	Found
	// Exhausted means the frontier drained without reaching the goal,
	// a normal result for a possibly disconnected layout, not a failure.
	Exhausted
)

// String returns the human-readable name of the outcome.
func (o StepOutcome) String() string {
	switch o {
	case Continued:
		return "Continued"
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("StepOutcome(%d)", uint8(o))
	}
}

// Strategy is the uniform stepwise contract shared by BFS, Greedy, and
// AStar. Exactly one strategy may be active against a given grid at a
// time; regenerating or replacing the grid invalidates the strategy.
type Strategy interface {
	// Step advances the search by one unit of work (at most one node
	// expansion) and reports the run state. Panics if called after a
	// terminal outcome.
	Step() StepOutcome

	// Done reports whether the run has reached Found or Exhausted.
	Done() bool

	// Outcome returns Continued while running, else the terminal outcome.
	Outcome() StepOutcome

	// Path returns the start-to-end coordinate sequence, valid only
	// after Found; nil otherwise.
	Path() []grid.Coord

	// Expanded returns how many nodes have been expanded so far. Never
	// exceeds Width×Height: each cell is expanded at most once.
	Expanded() int
}

// Option configures a strategy via functional arguments. Invalid values
// are recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// OnExpand is called with a cell's coordinate when it is expanded.
	OnExpand func(c grid.Coord)

	// OnDiscover is called with a cell's coordinate when it joins the
	// frontier (the moment it turns Active).
	OnDiscover func(c grid.Coord)

	// ArenaHint pre-sizes the node arena. 0 lets the strategy derive a
	// capacity from the grid dimensions.
	ArenaHint int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and an automatic
// arena capacity.
func DefaultOptions() Options {
	return Options{
		OnExpand:   func(grid.Coord) {},
		OnDiscover: func(grid.Coord) {},
		ArenaHint:  0,
		err:        nil,
	}
}

// WithOnExpand registers a callback to run on each node expansion.
func WithOnExpand(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback to run when a cell turns Active.
func WithOnDiscover(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithArenaHint pre-sizes the node arena.
//
//	n > 0: reserve capacity for n nodes
//	n == 0: derive capacity from the grid
//	n < 0: invalid option → ErrOptionViolation
func WithArenaHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ArenaHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ArenaHint = n
	}
}
