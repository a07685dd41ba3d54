package search

import "sort"

// frontierItem pairs a pending node with its ordering priority and, for
// A*, the number of edges walked from Start to reach it. The priority is
// computed once at insertion time and never updated afterwards.
type frontierItem struct {
	node     handle
	priority float64
	pathLen  int
}

// sortedFrontier is an ascending-priority list shared by the Greedy and
// AStar strategies. Insertion is stable: an item lands at the first
// position whose existing priority is strictly greater, so equal
// priorities keep discovery order. A binary heap would be cheaper per
// operation but does not preserve this tie-break order, which the
// strategies' expansion sequence depends on.
type sortedFrontier []frontierItem

// insert places it into the list keeping ascending priority order.
// Complexity: O(log n) to locate + O(n) to shift.
func (f *sortedFrontier) insert(it frontierItem) {
	i := sort.Search(len(*f), func(i int) bool {
		return (*f)[i].priority > it.priority
	})
	*f = append(*f, frontierItem{})
	copy((*f)[i+1:], (*f)[i:])
	(*f)[i] = it
}

// popMin removes and returns the minimum-priority item.
// Callers must check len beforehand. Complexity: O(1) amortized.
func (f *sortedFrontier) popMin() frontierItem {
	it := (*f)[0]
	*f = (*f)[1:]

	return it
}
