package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/okdaichi/roadmap/internal/arena"
	"github.com/okdaichi/roadmap/internal/graph"
	"github.com/okdaichi/roadmap/internal/rmerr"
)

var (
	// ErrNoPath means the queue emptied before reaching the target.
	ErrNoPath = rmerr.New(rmerr.NotFound, "no path between cities")
	// ErrAmbiguous means the canonical (length, min-year) key is
	// realised by more than one path.
	ErrAmbiguous = rmerr.New(rmerr.Ambiguous, "no unique canonical path")
	// ErrOutOfMemory means the scratch area couldn't be reserved.
	ErrOutOfMemory = rmerr.ErrOutOfMemory
)

type cityState struct {
	key      pathKey
	pred     graph.RoadRef
	has      bool
	settled  bool
	seenTwice bool
}

// ShortestPath computes the canonical path between from and to per
// §4.3: minimal total length, then maximal minimum-year-along-the-path,
// then unique. from and to must be distinct, live, unblocked cities;
// the empty-path case (from == to) is the caller's responsibility to
// reject (§4.6).
//
// The search allocates one unit of scratch per city from budget and
// releases it on every exit path, including early failure (§5).
func ShortestPath(g *graph.Graph, budget *arena.Budget, from, to graph.CityRef) ([]graph.RoadRef, error) {
	n := g.CityCount()
	if !budget.Reserve(int64(n)) {
		return nil, fmt.Errorf("path search: %w", ErrOutOfMemory)
	}
	defer budget.Release(int64(n))

	states := make([]cityState, n)
	pq := &priorityQueue{}
	heap.Init(pq)

	start := pathKey{distance: 0, minYear: math.MaxInt32}
	states[from] = cityState{key: start, pred: graph.NoRoad, has: true}
	heap.Push(pq, &queueItem{key: start, viaRoad: graph.NoRoad, intoCity: from})

	var target pathKey
	targetFound := false

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		u := item.intoCity
		st := &states[u]

		if targetFound && item.key.distance > target.distance {
			break // heap pops non-decreasing distance; no further ties possible
		}

		if st.settled {
			if item.key.equal(st.key) {
				st.seenTwice = true // duplicate settling: the queue-drain ambiguity check
			}
			continue
		}
		if !item.key.equal(st.key) {
			continue // stale lazy-deleted entry
		}

		st.settled = true
		st.pred = item.viaRoad

		if u == to {
			target = st.key
			targetFound = true
			continue // drain remaining entries without expanding the target further
		}

		relax(g, states, pq, u, st.key)
	}

	if !states[to].settled {
		return nil, fmt.Errorf("path search: %w", ErrNoPath)
	}
	// A tie at any city on the chosen predecessor chain (not just at
	// the target) means the winning key is realised by more than one
	// path.
	for cur := to; cur != from; cur = g.Road(states[cur].pred).Other(cur) {
		if states[cur].seenTwice {
			return nil, fmt.Errorf("path search: %w", ErrAmbiguous)
		}
	}

	return reconstruct(g, states, from, to), nil
}

func relax(g *graph.Graph, states []cityState, pq *priorityQueue, u graph.CityRef, uKey pathKey) {
	city := g.City(u)
	for _, roadRef := range city.Roads() {
		road := g.Road(roadRef)
		if road.Blocked() {
			continue
		}
		v := road.Other(u)
		if g.City(v).Blocked() {
			continue
		}
		if states[v].settled {
			continue
		}
		alt := pathKey{
			distance: uKey.distance + uint64(road.Length()),
			minYear:  minInt32(uKey.minYear, road.Year()),
		}
		cur := &states[v]
		switch {
		case !cur.has || alt.less(cur.key):
			*cur = cityState{key: alt, pred: roadRef, has: true}
			heap.Push(pq, &queueItem{key: alt, viaRoad: roadRef, intoCity: v})
		case alt.equal(cur.key):
			cur.seenTwice = true
			heap.Push(pq, &queueItem{key: alt, viaRoad: roadRef, intoCity: v})
		}
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// reconstruct walks predecessor roads from to back to from, returning
// the ordered road sequence from -> to.
func reconstruct(g *graph.Graph, states []cityState, from, to graph.CityRef) []graph.RoadRef {
	var rev []graph.RoadRef
	cur := to
	for cur != from {
		ref := states[cur].pred
		rev = append(rev, ref)
		cur = g.Road(ref).Other(cur)
	}
	path := make([]graph.RoadRef, len(rev))
	for i, r := range rev {
		path[len(rev)-1-i] = r
	}
	return path
}
