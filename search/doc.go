// Package search provides the stepwise graph-search engine: three
// interchangeable strategies (breadth-first, greedy best-first, and A*)
// that explore a grid.Grid from Start to End one discrete unit of work
// at a time, and reconstruct the discovered path.
//
// What:
//
//   - Strategy is the uniform contract: New(g, algo) builds one of
//     BFS/Greedy/AStar, and every Step() call expands at most one
//     frontier node, returning Continued, Found, or Exhausted.
//   - Found and Exhausted are both normal terminal outcomes; a random
//     layout may simply have no path. After either, Step panics.
//   - Path() yields the start-to-end coordinate sequence once Found.
//   - Solve(s) is a convenience driver that steps to termination.
//
// Why:
//
//   - A presentation layer drives Step on whatever cadence it likes (a
//     timer, a keypress, a test loop); pausing is "stop calling Step"
//     and cancellation is "discard the strategy". The engine itself owns
//     no timers, goroutines, or I/O.
//
// How:
//
//   - Discovered positions live in an append-only node arena; each node
//     records its coordinate and the arena index of its predecessor, so
//     the backward chain is acyclic by construction and path
//     reconstruction is a pointer-free index walk.
//   - BFS keeps two frontier slices (current and next) with a deferred
//     swap, visiting cells in non-decreasing edge distance: its path is
//     shortest in edge count whenever one exists.
//   - Greedy and A* share a stable ascending-priority list. Greedy
//     orders by straight-line distance to End alone (fast, not
//     optimal, and deliberately so); A* adds the edge count walked from
//     Start, which with this admissible heuristic makes it optimal.
//   - As cells are discovered and expanded the strategy marks them
//     Active and Explored on the grid; on success the still-Active
//     neighbors of the goal-discovering node revert to Floor once.
//
// Complexity (per full run, W×H cells):
//
//   - BFS:          O(W×H) time, O(W×H) memory.
//   - Greedy / A*:  O((W×H)²) worst-case time (sorted-insert list),
//     O(W×H) memory; each cell is expanded at most once.
//
// Errors:
//
//   - ErrNilGrid: New received a nil grid.
//   - ErrUnknownAlgorithm: the algorithm tag is not BFS/Greedy/AStar.
//   - ErrOptionViolation: an invalid Option was supplied.
package search
