// Package search implements the constrained shortest-path engine (C1,
// C6): a binary min-heap keyed on (distance, -year) and a Dijkstra
// variant that additionally proves the winning path is unique.
//
// The heap is a direct descendant of the teacher's internal/topology
// dijkstra.go priorityQueue — same container/heap scaffolding — widened
// from a bare distance key to the (distance, min_year) pair the design
// requires (§4.1).
package search

import (
	"github.com/okdaichi/roadmap/internal/graph"
)

type pathKey struct {
	distance uint64
	minYear  int32
}

// less reports whether a strictly precedes b in the canonical ordering:
// smaller distance first, then larger min-year first (§4.1).
func (a pathKey) less(b pathKey) bool {
	if a.distance != b.distance {
		return a.distance < b.distance
	}
	return a.minYear > b.minYear
}

func (a pathKey) equal(b pathKey) bool {
	return a.distance == b.distance && a.minYear == b.minYear
}

type queueItem struct {
	key      pathKey
	viaRoad  graph.RoadRef
	intoCity graph.CityRef
	index    int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].key.less(pq[j].key)
}
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
