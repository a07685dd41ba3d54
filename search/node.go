package search

import "github.com/decimatedTomato/mazesolver-visualizer/grid"

// handle addresses a node inside an arena. Predecessor links are arena
// indices rather than pointers: allocation is append-only and every
// node's predecessor strictly precedes it, so the backward chain is
// acyclic by construction.
type handle int32

// noParent marks the root node (the start cell).
const noParent handle = -1

// node is an immutable record of one discovered position: its coordinate
// and the handle of the node it was discovered from.
type node struct {
	at   grid.Coord
	prev handle
}

// nodeArena is the append-only store of every node created during one
// solve pass. It outlives every Step call until the pass ends.
type nodeArena struct {
	nodes []node
}

// newArena reserves capacity for capHint nodes.
func newArena(capHint int) *nodeArena {
	return &nodeArena{nodes: make([]node, 0, capHint)}
}

// grow appends a node for coordinate at with predecessor prev and
// returns its handle. Nodes are never mutated after creation.
func (a *nodeArena) grow(at grid.Coord, prev handle) handle {
	a.nodes = append(a.nodes, node{at: at, prev: prev})
	return handle(len(a.nodes) - 1)
}

// coordOf returns the coordinate recorded at h.
func (a *nodeArena) coordOf(h handle) grid.Coord {
	return a.nodes[h].at
}

// path walks predecessor handles from h to the root and returns the
// ordered start-to-end coordinate sequence (the reverse of the backward
// chain). Pure over the arena; no grid side effects.
func (a *nodeArena) path(h handle) []grid.Coord {
	// build reversed path
	out := make([]grid.Coord, 0, 8)
	for cur := h; cur != noParent; cur = a.nodes[cur].prev {
		out = append(out, a.nodes[cur].at)
	}
	// reverse to get start → end
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
