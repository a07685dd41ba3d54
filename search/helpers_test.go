package search_test

import (
	"testing"

	"github.com/decimatedTomato/mazesolver-visualizer/grid"
)

// mustGrid builds a grid from ASCII rows: '.' Floor, '#' Wall, 'S' the
// start cell, 'E' the end cell, 'B' both on one cell. S/E/B cells are
// Floor.
func mustGrid(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()

	h := len(rows)
	w := len(rows[0])
	cells := make([][]grid.CellState, h)
	start, end := grid.Coord{X: -1}, grid.Coord{X: -1}
	for y, row := range rows {
		if len(row) != w {
			t.Fatalf("row %d has length %d, want %d", y, len(row), w)
		}
		cells[y] = make([]grid.CellState, w)
		for x, r := range row {
			switch r {
			case '.':
				cells[y][x] = grid.Floor
			case '#':
				cells[y][x] = grid.Wall
			case 'S':
				cells[y][x] = grid.Floor
				start = grid.Coord{X: x, Y: y}
			case 'E':
				cells[y][x] = grid.Floor
				end = grid.Coord{X: x, Y: y}
			case 'B':
				cells[y][x] = grid.Floor
				start = grid.Coord{X: x, Y: y}
				end = start
			default:
				t.Fatalf("unknown cell rune %q", r)
			}
		}
	}
	if start.X < 0 || end.X < 0 {
		t.Fatal("layout must place S and E (or B)")
	}

	g, err := grid.FromCells(cells, start, end)
	if err != nil {
		t.Fatalf("FromCells failed: %v", err)
	}

	return g
}

// refShortest returns the shortest edge-count distance from g.Start to
// g.End by an independent plain-queue BFS, or -1 when unreachable. A
// neighbor is passable when it is the end cell or currently Floor, the
// same rule the engine applies on a fresh grid.
func refShortest(g *grid.Grid) int {
	if g.Start == g.End {
		return 0
	}
	type item struct {
		at   grid.Coord
		dist int
	}
	seen := map[grid.Coord]bool{g.Start: true}
	queue := []item{{at: g.Start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.NeighborsOf(cur.at) {
			if nb == g.End {
				return cur.dist + 1
			}
			if seen[nb] || g.CellAt(nb) != grid.Floor {
				continue
			}
			seen[nb] = true
			queue = append(queue, item{at: nb, dist: cur.dist + 1})
		}
	}

	return -1
}

// trapRows is a layout with exactly two corridors from S to E: a short
// one (10 edges) whose entry lies far from E, and a long one (12 edges)
// that hugs the goal the whole way. Greedy best-first provably follows
// the long corridor here; BFS and A* find the short one.
var trapRows = []string{
	"#########",
	".......##",
	".#####.##",
	"S.####E.#",
	"#.#####.#",
	"#.......#",
	"#########",
}

// pathEdges returns len(path)-1, the edge count of a non-empty path.
func pathEdges(t *testing.T, path []grid.Coord) int {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}

	return len(path) - 1
}
