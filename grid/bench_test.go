package grid_test

import (
	"testing"

	"github.com/decimatedTomato/mazesolver-visualizer/grid"
)

// BenchmarkNew measures random generation of a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := grid.New(1000, 1000, grid.WithSeed(42)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNeighborsOf measures adjacency lookup in the interior of a
// large grid. Complexity: O(1) per call.
func BenchmarkNeighborsOf(b *testing.B) {
	g, err := grid.New(1000, 1000, grid.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	c := grid.Coord{X: 500, Y: 500}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.NeighborsOf(c)
	}
}

// BenchmarkReload measures residue cleanup on a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkReload(b *testing.B) {
	g, err := grid.New(1000, 1000, grid.WithSeed(42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reload()
	}
}
