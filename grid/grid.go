package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// neighborOffsets is the fixed 4-directional adjacency order {+x, +y, −x, −y}.
// All strategies inherit their tie-break order from this sequence, so it
// must never be reordered.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is a Width×Height matrix of CellState plus the Start and End
// markers, always inside bounds. Mutated by strategy steps (SetCell) and
// by an external editing collaborator between runs, never concurrently
// with a running strategy.
type Grid struct {
	Width, Height int
	Start, End    Coord

	cells     [][]CellState // cells[y][x]
	floorProb float64
	rng       *rand.Rand
}

// New constructs a randomly generated grid. Each cell is independently
// Floor with probability FloorProbability (default 0.6), else Wall;
// Start and End are drawn uniformly and independently over the full
// grid; they may coincide, sit on walls, or be mutually unreachable. No
// connectivity guarantee is made: "no path" is a normal solve outcome.
// Returns ErrInvalidDimensions or ErrInvalidProbability on bad input.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Grid{
		Width:     width,
		Height:    height,
		cells:     make([][]CellState, height),
		floorProb: o.FloorProbability,
		rng:       o.Rand,
	}
	for y := 0; y < height; y++ {
		g.cells[y] = make([]CellState, width)
	}
	g.Regenerate()

	return g, nil
}

// FromCells constructs a grid from an explicit, rectangular cell matrix
// (cells[y][x]) and fixed Start/End markers. The input is deep-copied to
// ensure immutability. Intended for editors and tests that need a known
// layout. Returns ErrEmptyGrid, ErrNonRectangular, or ErrOutOfBounds.
// Complexity: O(W×H) time and memory.
func FromCells(cells [][]CellState, start, end Coord) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{
		Width:     w,
		Height:    h,
		cells:     make([][]CellState, h),
		floorProb: DefaultFloorProbability,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for y := 0; y < h; y++ {
		g.cells[y] = make([]CellState, w)
		copy(g.cells[y], cells[y])
	}
	if err := g.SetStart(start); err != nil {
		return nil, err
	}
	if err := g.SetEnd(end); err != nil {
		return nil, err
	}

	return g, nil
}

// InBounds reports whether c lies within the grid boundaries.
// The x axis is checked against Width and the y axis against Height, so
// non-square grids bound each direction independently.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// mustInBounds panics on an out-of-bounds coordinate; direct cell access
// is only defined for coordinates produced by NeighborsOf or vetted with
// InBounds.
func (g *Grid) mustInBounds(c Coord) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %v outside %dx%d grid", c, g.Width, g.Height))
	}
}

// CellAt returns the state of the cell at c. Panics if c is out of
// bounds. Complexity: O(1).
func (g *Grid) CellAt(c Coord) CellState {
	g.mustInBounds(c)
	return g.cells[c.Y][c.X]
}

// SetCell overwrites the state of the cell at c. Panics if c is out of
// bounds. Complexity: O(1).
func (g *Grid) SetCell(c Coord, s CellState) {
	g.mustInBounds(c)
	g.cells[c.Y][c.X] = s
}

// NeighborsOf returns the in-bounds 4-directional neighbors of c in the
// fixed order {+x, +y, −x, −y}. Panics if c itself is out of bounds.
// Complexity: O(1).
func (g *Grid) NeighborsOf(c Coord) []Coord {
	g.mustInBounds(c)
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// SetStart moves the start marker. Returns ErrOutOfBounds if c lies
// outside the grid. Complexity: O(1).
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	g.Start = c

	return nil
}

// SetEnd moves the end marker. Returns ErrOutOfBounds if c lies outside
// the grid. Complexity: O(1).
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: end %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height)
	}
	g.End = c

	return nil
}

// Reload resets every Active and Explored cell back to Floor so a new
// search can run against the same wall layout. Walls, Start, and End are
// untouched. Complexity: O(W×H).
func (g *Grid) Reload() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if s := g.cells[y][x]; s == Active || s == Explored {
				g.cells[y][x] = Floor
			}
		}
	}
}

// Regenerate redraws the whole layout from the grid's RNG: every cell is
// re-rolled against the configured floor probability, and Start and End
// are redrawn uniformly over the full grid. Any strategy still holding
// this grid is invalidated and must not be stepped again.
// Complexity: O(W×H).
func (g *Grid) Regenerate() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.rng.Float64() < g.floorProb {
				g.cells[y][x] = Floor
			} else {
				g.cells[y][x] = Wall
			}
		}
	}
	g.Start = Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
	g.End = Coord{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
}

// Clone returns a deep copy of the cell matrix and markers. The copy
// shares the original's RNG stream, so interleaved Regenerate calls on
// both grids draw from one sequence. Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:     g.Width,
		Height:    g.Height,
		Start:     g.Start,
		End:       g.End,
		cells:     make([][]CellState, g.Height),
		floorProb: g.floorProb,
		rng:       g.rng,
	}
	for y := 0; y < g.Height; y++ {
		c.cells[y] = make([]CellState, g.Width)
		copy(c.cells[y], g.cells[y])
	}

	return c
}

// CountCells returns how many cells currently hold state s.
// Complexity: O(W×H).
func (g *Grid) CountCells(s CellState) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] == s {
				n++
			}
		}
	}

	return n
}
