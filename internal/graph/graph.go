// Package graph implements the city/road graph (C2-C5 of the design):
// the name index, the city and road stores, and the structural graph
// operations (add/repair/remove road, block/unblock). It owns every
// City and Road record; callers hold only the opaque CityRef/RoadRef
// handles handed back.
package graph

import "github.com/okdaichi/roadmap/internal/arena"

// Graph owns the city store, road store and name index. It has no
// knowledge of trunks; the roadmap façade coordinates trunk rebuilds
// around the mutations Graph exposes here (§4.7).
type Graph struct {
	cities cityStore
	roads  roadStore
	index  *nameIndex
	budget *arena.Budget

	// incidence logs every addRoad(city, road) attach made through
	// attach, in order, so a rollback can detach them again from a
	// city that survives the trim (§4.8: a pre-existing endpoint's
	// incidence list must come back byte-identical on failure).
	incidence []incidenceEntry
}

type incidenceEntry struct {
	city CityRef
	road RoadRef
}

// attach records ref in city's incidence list and logs the attach so a
// later trim can undo it even if city itself predates the mark and so
// survives the store trim untouched.
func (g *Graph) attach(city CityRef, ref RoadRef) {
	g.cities.get(city).addRoad(ref)
	g.incidence = append(g.incidence, incidenceEntry{city: city, road: ref})
}

// New creates an empty graph. A nil budget behaves as unlimited.
func New(budget *arena.Budget) *Graph {
	return &Graph{index: newNameIndex(), budget: budget}
}

// City resolves a CityRef to its record, or nil if it doesn't exist.
func (g *Graph) City(ref CityRef) *City { return g.cities.get(ref) }

// Road resolves a RoadRef to its record, or nil if it doesn't exist.
func (g *Graph) Road(ref RoadRef) *Road { return g.roads.get(ref) }

// CityCount returns the number of live city slots, used to size search
// scratch state.
func (g *Graph) CityCount() int { return g.cities.len() }

// Find resolves a city name through the name index.
func (g *Graph) Find(name string) (CityRef, bool) { return g.index.find(name) }

// ValidName reports whether name satisfies the charset rule of §6: a
// non-empty byte string with no byte in 0x01..0x1F and no ';'.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b >= 0x01 && b <= 0x1F {
			return false
		}
		if b == ';' {
			return false
		}
	}
	return true
}

// FindRoadBetween returns the road connecting the two given cities, if
// any.
func (g *Graph) FindRoadBetween(c1, c2 CityRef) (RoadRef, bool) {
	city := g.cities.get(c1)
	if city == nil {
		return NoRoad, false
	}
	for _, ref := range city.roads {
		r := g.roads.get(ref)
		if r != nil && r.Other(c1) == c2 {
			return ref, true
		}
	}
	return NoRoad, false
}

// mark bundles the city/road store lengths and incidence-log length
// taken before a multi-step mutation that may need to roll back
// (§4.8). While a mark is outstanding the road store's freelist is
// floored at the mark's road count, so any road created during the
// transaction gets a fresh tail slot rather than resurrecting a
// tombstoned one below the mark — a reused slot's index can't be told
// apart from pre-transaction state once trim truncates the tail, so
// trim must never have to cope with one.
type mark struct {
	cities    int
	roads     int
	incidence int
}

func (g *Graph) mark() mark {
	m := mark{cities: g.cities.mark(), roads: g.roads.mark(), incidence: len(g.incidence)}
	g.roads.pushFloor(m.roads)
	return m
}

// trim unwinds every incidence-list attach, road and city created since
// m, in that order: incidence entries are detached while the cities
// and roads they reference are still addressable, then the stores are
// truncated back to m's lengths.
func (g *Graph) trim(m mark) {
	for i := len(g.incidence) - 1; i >= m.incidence; i-- {
		e := g.incidence[i]
		if c := g.cities.get(e.city); c != nil {
			c.removeRoad(e.road)
		}
	}
	g.incidence = g.incidence[:m.incidence]
	g.roads.trim(m.roads)
	g.cities.trim(m.cities)
	g.roads.popFloor()
}

// commit discards the incidence log entries and freelist floor pushed
// by mark without undoing anything: the transaction succeeded, so its
// attaches are now permanent and needn't be remembered for rollback.
func (g *Graph) commit(m mark) {
	g.incidence = g.incidence[:m.incidence]
	g.roads.popFloor()
}

// Mark is the exported form of mark, handed to a caller (the roadmap
// façade's route_from_list, §4.8) that needs to remember a rollback
// point across several of its own steps, interleaved with calls the
// façade itself coordinates.
type Mark struct {
	cities    int
	roads     int
	incidence int
}

// Mark records the current city/road store lengths and floors the
// road freelist until Trim or Commit releases it.
func (g *Graph) Mark() Mark {
	m := g.mark()
	return Mark{cities: m.cities, roads: m.roads, incidence: m.incidence}
}

// Trim unwinds every incidence attach, city and road created since m,
// per the same rule as trim.
func (g *Graph) Trim(m Mark) {
	g.trim(mark{cities: m.cities, roads: m.roads, incidence: m.incidence})
}

// Commit releases m without unwinding anything, once the caller knows
// every step since the matching Mark has succeeded.
func (g *Graph) Commit(m Mark) {
	g.commit(mark{cities: m.cities, roads: m.roads, incidence: m.incidence})
}

// Fingerprint is a cheap running digest of the name index's contents,
// used by tests to assert a failed operation left the index
// byte-identical (§8) without walking the whole trie.
func (g *Graph) Fingerprint() uint64 { return g.index.fingerprint }
