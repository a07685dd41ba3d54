// Package grid models the rectangular cell field that the search
// strategies explore: a Width×Height matrix of CellState values plus the
// Start and End markers.
//
// What:
//
//   - Grid owns the cell matrix; cells are addressed by Coord (x,y).
//   - Random generation: each cell is independently Floor with a
//     configurable probability (default 0.6), else Wall; Start and End
//     are drawn uniformly over the whole grid with no connectivity
//     guarantee; a mutually unreachable pair is a valid layout.
//   - NeighborsOf yields the in-bounds 4-directional neighbors of a cell
//     in the fixed order {+x, +y, −x, −y}; every strategy inherits its
//     tie-break order from this sequence.
//   - Reload resets search residue (Active/Explored cells) back to
//     Floor so the same wall layout can be solved again; Regenerate
//     redraws walls, Start and End from the grid's own RNG.
//
// Why:
//
//   - The matrix is the single shared surface between the search engine
//     (which marks cells Active/Explored as it works) and an external
//     presentation layer (which renders those marks and edits walls
//     between runs).
//
// Complexity:
//
//   - CellAt / SetCell / InBounds / NeighborsOf: O(1).
//   - New / FromCells / Reload / Regenerate / Clone: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrInvalidProbability: floor probability outside [0,1].
//   - ErrEmptyGrid: FromCells input has no rows or no columns.
//   - ErrNonRectangular: FromCells rows have differing lengths.
//   - ErrOutOfBounds: a start/end marker placed outside the grid.
//
// Out-of-bounds CellAt/SetCell/NeighborsOf calls are programmer errors
// and panic; only coordinates produced by NeighborsOf (or checked with
// InBounds) may be passed.
package grid
