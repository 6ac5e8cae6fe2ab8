// Package trunk implements the Trunk (Route) data structure: an
// immutable-after-construction ordered sequence of roads between two
// cities, and the build/extend/detour/describe operations that produce
// or replace one (C7, §4.6).
package trunk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okdaichi/roadmap/internal/arena"
	"github.com/okdaichi/roadmap/internal/graph"
	"github.com/okdaichi/roadmap/internal/rmerr"
	"github.com/okdaichi/roadmap/internal/search"
)

// Trunk is an ordered road sequence from First to Last, tagged with an
// id in 1..=999. Roads is immutable once the Trunk is returned by
// Build/Extend/Detour — every mutator here returns a fresh Trunk value
// rather than editing one in place (§3).
type Trunk struct {
	ID    int
	First graph.CityRef
	Last  graph.CityRef
	Roads []graph.RoadRef
}

var (
	// ErrNoUniquePath is returned by Build when no canonical path
	// exists or more than one does.
	ErrNoUniquePath = rmerr.New(rmerr.Ambiguous, "no unique path between cities")
	// ErrNoUniqueExtension is returned by Extend under the same
	// condition, scoped to the two extension candidates.
	ErrNoUniqueExtension = rmerr.New(rmerr.Ambiguous, "no unique extension")
	// ErrDetourFailure is returned by Detour when no replacement path
	// exists or more than one does.
	ErrDetourFailure = rmerr.New(rmerr.Conflict, "no unique detour")
	// ErrAlreadyOnRoute is returned by Extend when the city is already
	// part of the trunk.
	ErrAlreadyOnRoute = rmerr.New(rmerr.Conflict, "city already on route")
)

// Build runs the canonical path search between from and to and wraps
// the result as a new Trunk. from == to is rejected here, per §4.6's
// requirement that callers reject the empty-path case. The returned
// Trunk carries no committed route-set state until the caller calls
// Attach.
func Build(g *graph.Graph, budget *arena.Budget, id int, from, to graph.CityRef) (*Trunk, error) {
	if from == to {
		return nil, fmt.Errorf("build route: %w", rmerr.ErrInvalidArgument)
	}
	roads, err := search.ShortestPath(g, budget, from, to)
	if err != nil {
		return nil, fmt.Errorf("build route: %w", collapseSearchErr(err, ErrNoUniquePath))
	}
	return &Trunk{ID: id, First: from, Last: to, Roads: roads}, nil
}

// collapseSearchErr maps search's distinguishable NoPath/Ambiguous/OOM
// errors onto the single caller-facing sentinel the API surface
// exposes for this operation (§6), while preserving OutOfMemory as its
// own first-class kind.
func collapseSearchErr(err error, collapsed error) error {
	if rmerr.Is(err, rmerr.OutOfMemory) {
		return err
	}
	return collapsed
}

// Attach records this trunk's id into every road it uses (§4.6).
// Idempotent: a road already carrying the id is left unchanged, so
// calling Attach on a replacement trunk that shares roads with the one
// it supersedes is safe. Build/Extend/Detour never call this
// themselves — they only compute candidate Trunk values; the caller
// commits the result by calling Attach (and Detach on whatever the
// candidate replaces) once it knows the whole requested operation will
// succeed (§4.4, §8).
func (t *Trunk) Attach(g *graph.Graph) {
	for _, ref := range t.Roads {
		g.Road(ref).Attach(t.ID)
	}
}

// Detach removes this trunk's id from every road it uses (§4.6),
// called when the trunk is replaced or destroyed.
func (t *Trunk) Detach(g *graph.Graph) {
	for _, ref := range t.Roads {
		if r := g.Road(ref); r != nil {
			r.Detach(t.ID)
		}
	}
}

// interiorCities returns every city visited by the trunk, in order,
// including the termini.
func (t *Trunk) interiorCities(g *graph.Graph) []graph.CityRef {
	cities := make([]graph.CityRef, 0, len(t.Roads)+1)
	cur := t.First
	cities = append(cities, cur)
	for _, ref := range t.Roads {
		cur = g.Road(ref).Other(cur)
		cities = append(cities, cur)
	}
	return cities
}

func blockAllExcept(g *graph.Graph, cities []graph.CityRef, keep ...graph.CityRef) {
	for _, c := range cities {
		if contains(keep, c) {
			continue
		}
		g.City(c).Block()
	}
}

func unblockAll(g *graph.Graph, cities []graph.CityRef) {
	for _, c := range cities {
		g.City(c).Unblock()
	}
}

func contains(list []graph.CityRef, c graph.CityRef) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

// Extend decides whether to prepend a path city->First or append
// Last->city, whichever is strictly cheaper by total length, tie-broken
// by max min-year; an unresolved tie is an ambiguity error. Every other
// city of the existing trunk is blocked during both candidate searches
// so neither reuses the trunk's interior (§4.6). The returned Trunk is
// a computed candidate only — it carries no roads' route-sets until
// the caller commits it with Attach.
func Extend(g *graph.Graph, budget *arena.Budget, t *Trunk, city graph.CityRef) (*Trunk, error) {
	interior := t.interiorCities(g)
	for _, c := range interior {
		if c == city {
			return nil, fmt.Errorf("extend route: %w", ErrAlreadyOnRoute)
		}
	}

	blockAllExcept(g, interior, t.First)
	prependRoads, prependErr := search.ShortestPath(g, budget, city, t.First)
	unblockAll(g, interior)

	blockAllExcept(g, interior, t.Last)
	appendRoads, appendErr := search.ShortestPath(g, budget, t.Last, city)
	unblockAll(g, interior)

	if rmerr.Is(prependErr, rmerr.OutOfMemory) {
		return nil, fmt.Errorf("extend route: %w", prependErr)
	}
	if rmerr.Is(appendErr, rmerr.OutOfMemory) {
		return nil, fmt.Errorf("extend route: %w", appendErr)
	}

	switch {
	case prependErr != nil && appendErr != nil:
		return nil, fmt.Errorf("extend route: %w", ErrNoUniqueExtension)
	case prependErr != nil:
		return appended(t, appendRoads, city), nil
	case appendErr != nil:
		return prepended(t, prependRoads, city), nil
	}

	prependLen, prependYear := pathMetric(g, prependRoads)
	appendLen, appendYear := pathMetric(g, appendRoads)

	switch {
	case prependLen < appendLen:
		return prepended(t, prependRoads, city), nil
	case appendLen < prependLen:
		return appended(t, appendRoads, city), nil
	case prependYear > appendYear:
		return prepended(t, prependRoads, city), nil
	case appendYear > prependYear:
		return appended(t, appendRoads, city), nil
	default:
		return nil, fmt.Errorf("extend route: %w", ErrNoUniqueExtension)
	}
}

func pathMetric(g *graph.Graph, roads []graph.RoadRef) (uint64, int32) {
	var length uint64
	minYear := int32(1<<31 - 1)
	for _, ref := range roads {
		r := g.Road(ref)
		length += uint64(r.Length())
		if r.Year() < minYear {
			minYear = r.Year()
		}
	}
	return length, minYear
}

func prepended(t *Trunk, extra []graph.RoadRef, newFirstCity graph.CityRef) *Trunk {
	roads := make([]graph.RoadRef, 0, len(extra)+len(t.Roads))
	roads = append(roads, extra...)
	roads = append(roads, t.Roads...)
	return &Trunk{ID: t.ID, First: newFirstCity, Last: t.Last, Roads: roads}
}

func appended(t *Trunk, extra []graph.RoadRef, newLastCity graph.CityRef) *Trunk {
	roads := make([]graph.RoadRef, 0, len(extra)+len(t.Roads))
	roads = append(roads, t.Roads...)
	roads = append(roads, extra...)
	return &Trunk{ID: t.ID, First: t.First, Last: newLastCity, Roads: roads}
}

// Detour locates road's position in the trunk, blocks every trunk city
// except the road's own two endpoints, blocks the road itself, and
// searches for a canonical replacement path between those two
// endpoints. The result replaces the one road with the detour's road
// sequence in a fresh Trunk (§4.6) — a computed candidate only; the
// caller must call Attach to commit it and Detach the trunk it
// replaces. This lets a multi-trunk remove_road compute every affected
// trunk's detour before committing any of them, so a single failure
// leaves graph state untouched (§4.4, §8).
func Detour(g *graph.Graph, budget *arena.Budget, t *Trunk, removed graph.RoadRef) (*Trunk, error) {
	pos := -1
	for i, ref := range t.Roads {
		if ref == removed {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("detour: %w", rmerr.ErrInvalidArgument)
	}

	interior := t.interiorCities(g)
	endpointA := interior[pos]
	endpointB := interior[pos+1]

	blockAllExcept(g, interior, endpointA, endpointB)
	road := g.Road(removed)
	road.Block()

	detourRoads, err := search.ShortestPath(g, budget, endpointA, endpointB)

	road.Unblock()
	unblockAll(g, interior)

	if err != nil {
		return nil, fmt.Errorf("detour: %w", collapseSearchErr(err, ErrDetourFailure))
	}

	newRoads := make([]graph.RoadRef, 0, len(t.Roads)-1+len(detourRoads))
	newRoads = append(newRoads, t.Roads[:pos]...)
	newRoads = append(newRoads, detourRoads...)
	newRoads = append(newRoads, t.Roads[pos+1:]...)

	return &Trunk{ID: t.ID, First: t.First, Last: t.Last, Roads: newRoads}, nil
}

// Describe renders the textual form of §4.6/§6:
//
//	<id>;<name0>;<len0>;<year0>;<name1>;...;<nameN>
//
// in the orientation chosen at construction time (First on the left).
func Describe(g *graph.Graph, t *Trunk) string {
	cities := t.interiorCities(g)
	var b strings.Builder
	b.WriteString(strconv.Itoa(t.ID))
	for i, ref := range t.Roads {
		c := g.City(cities[i])
		r := g.Road(ref)
		b.WriteByte(';')
		b.WriteString(c.Name())
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(r.Length()), 10))
		b.WriteByte(';')
		b.WriteString(strconv.FormatInt(int64(r.Year()), 10))
	}
	b.WriteByte(';')
	b.WriteString(g.City(cities[len(cities)-1]).Name())
	return b.String()
}
