// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/decimatedTomato/mazesolver-visualizer.
package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrInvalidDimensions indicates a width or height below 1.
	ErrInvalidDimensions = errors.New("grid: width and height must be at least 1")
	// ErrInvalidProbability indicates a floor probability outside [0,1].
	ErrInvalidProbability = errors.New("grid: floor probability must lie in [0,1]")
	// ErrEmptyGrid indicates input cells have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a start or end marker outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// DefaultFloorProbability is the per-cell chance of Floor during random
// generation when no WithFloorProbability option is supplied.
const DefaultFloorProbability = 0.6

// Coord addresses one cell: 0 ≤ X < Width, 0 ≤ Y < Height.
// Value type, compared by field equality.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)" for diagnostics.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CellState enumerates the lifecycle of a cell during one solve pass.
// During a run a cell moves Floor → Active → Explored and never
// regresses, with one documented exception: Active neighbors of the
// node that discovers the goal are reverted to Floor once, on success.
type CellState uint8

const (
	// Floor is a passable, undiscovered cell.
	Floor CellState = iota
	// Wall is an impassable cell; strategies never enter or mark it.
	Wall
	// Active marks a cell enqueued in a frontier but not yet expanded.
	Active
	// Explored marks a cell that has been expanded.
	Explored
)

// String returns the human-readable name of the state.
func (s CellState) String() string {
	switch s {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Active:
		return "Active"
	case Explored:
		return "Explored"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Option configures grid generation via functional arguments.
// Invalid values (e.g. a probability outside [0,1]) are recorded
// internally and surfaced as a sentinel error when New is invoked.
type Option func(*Options)

// Options holds tunable parameters for random grid generation.
type Options struct {
	// FloorProbability is the independent per-cell chance of Floor.
	FloorProbability float64

	// Rand is the RNG used for cell rolls and Start/End placement.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with FloorProbability=0.6 and a nil
// RNG; New substitutes a time-seeded RNG when none is supplied.
func DefaultOptions() Options {
	return Options{
		FloorProbability: DefaultFloorProbability,
		Rand:             nil,
		err:              nil,
	}
}

// WithFloorProbability sets the per-cell Floor chance.
//
//	0 ≤ p ≤ 1: accepted (0 = all walls, 1 = all floor)
//	otherwise: invalid option → ErrInvalidProbability
func WithFloorProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: %v", ErrInvalidProbability, p)
			return
		}
		o.FloorProbability = p
	}
}

// WithRand provides an explicit RNG for generation.
// Panics on nil; prefer WithSeed for reproducible layouts.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("grid: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock layouts.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}
