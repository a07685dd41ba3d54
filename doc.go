// Package mazesolver is the algorithmic core of a grid-pathfinding
// visualizer: a cell-grid model plus three interchangeable, stepwise
// search strategies that explore it one expansion at a time.
//
// 🚀 What is mazesolver?
//
//	A small, focused engine that brings together:
//		• Grid model: a Width×Height matrix of Floor/Wall/Active/Explored
//		  cells with Start and End markers, random generation, reload
//		  and regenerate
//		• Strategies: breadth-first, greedy best-first, and A*, all
//		  behind one Step()-driven contract
//		• Path reconstruction: an arena-backed predecessor chain walked
//		  into the start-to-end coordinate sequence
//
// ✨ Why choose this engine?
//
//   - Step-driven – one discrete unit of work per call, so a render
//     loop, a timer, or a plain test loop can pace it freely
//   - Honest terminal states – Found and Exhausted are both normal
//     outcomes; a disconnected random layout is not an error
//   - Pure Go – no cgo, no hidden deps, no goroutines, no timers
//
// Everything is organized under two subpackages:
//
//	grid/   : the cell matrix, markers, generation, and adjacency
//	search/ : the strategies, frontiers, node arena, and path builder
//
// Quick ASCII example:
//
//	S . E      a 3×1 corridor: BFS finds the goal
//	           on its second step, path (0,0)→(1,0)→(2,0)
//
// Rendering, audio, and input editing live with the embedding
// application; the engine only mutates cell states and reports
// outcomes. Dive into examples/ for runnable scenarios.
//
//	go get github.com/decimatedTomato/mazesolver-visualizer
package mazesolver
