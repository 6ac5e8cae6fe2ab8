package graph

import "fmt"

// AddRoad implements C5's add_road (§4.4). It creates whichever of the
// two endpoint cities doesn't yet exist, then the road between them.
// The whole operation is all-or-nothing: any failure after a partial
// mutation rolls back via the store mark taken up front. Name-index
// insertion for whichever endpoints are new is deferred to a single
// bulkInsert after both cities and the road exist, the same
// defer-then-commit shape route_from_list uses (§4.8), so a failure at
// any earlier step needs nothing more than a store trim to undo — the
// index is never touched until the whole road is already guaranteed to
// exist.
func (g *Graph) AddRoad(name1, name2 string, length uint32, year int32) (RoadRef, error) {
	if year == 0 || length == 0 || length == blockedLength {
		return NoRoad, fmt.Errorf("add road: %w", errInvalidArgument)
	}
	if name1 == name2 {
		return NoRoad, fmt.Errorf("add road: %w", errInvalidArgument)
	}
	if !ValidName(name1) || !ValidName(name2) {
		return NoRoad, fmt.Errorf("add road: %w", errInvalidArgument)
	}

	m := g.mark()
	fail := func(err error) (RoadRef, error) {
		g.trim(m)
		return NoRoad, err
	}

	c1, ok1 := g.index.find(name1)
	c2, ok2 := g.index.find(name2)

	if ok1 && ok2 {
		if _, exists := g.FindRoadBetween(c1, c2); exists {
			return fail(fmt.Errorf("add road: %w", errAlreadyExists))
		}
	}

	var newNames []string
	var newRefs []CityRef

	if !ok1 {
		ref, created := g.cities.create(g.budget, name1)
		if !created {
			return fail(fmt.Errorf("add road: %w", errOutOfMemory))
		}
		c1 = ref
		newNames = append(newNames, name1)
		newRefs = append(newRefs, ref)
	}
	if !ok2 {
		ref, created := g.cities.create(g.budget, name2)
		if !created {
			return fail(fmt.Errorf("add road: %w", errOutOfMemory))
		}
		c2 = ref
		newNames = append(newNames, name2)
		newRefs = append(newRefs, ref)
	}

	roadRef, created := g.roads.create(g.budget, Road{a: c1, b: c2, length: length, year: year})
	if !created {
		return fail(fmt.Errorf("add road: %w", errOutOfMemory))
	}

	if len(newNames) > 0 {
		if err := g.index.bulkInsert(g.budget, newNames, newRefs); err != nil {
			return fail(fmt.Errorf("add road: %w", err))
		}
	}

	g.attach(c1, roadRef)
	g.attach(c2, roadRef)

	g.commit(m)
	return roadRef, nil
}

// RepairRoad implements C5's repair_road (§4.4): year >= current year
// is accepted (equal is a no-op repair, per the Open Questions
// resolution in SPEC_FULL.md).
func (g *Graph) RepairRoad(name1, name2 string, year int32) error {
	if year == 0 {
		return fmt.Errorf("repair road: %w", errInvalidArgument)
	}
	c1, ok1 := g.index.find(name1)
	c2, ok2 := g.index.find(name2)
	if !ok1 || !ok2 {
		return fmt.Errorf("repair road: %w", errNotFound)
	}
	ref, ok := g.FindRoadBetween(c1, c2)
	if !ok {
		return fmt.Errorf("repair road: %w", errNotFound)
	}
	road := g.roads.get(ref)
	if year < road.year {
		return fmt.Errorf("repair road: %w", rmerrConflict("year regression"))
	}
	road.year = year
	return nil
}

// CreateCityRaw creates a new city record without inserting it into
// the name index. It exists for the route_from_list bulk path (§4.8),
// which defers all index insertion to a single BulkInsertNames call
// rather than indexing each new city as it's created.
func (g *Graph) CreateCityRaw(name string) (CityRef, bool) {
	return g.cities.create(g.budget, name)
}

// CreateRoadRaw creates a road between two already-resolved cities. It
// skips the validation add_road performs (charset, duplicate names,
// existing-road check) because its one caller, route_from_list, has
// already verified those conditions as part of its own up-front
// consistency check (§4.8 step 1). The incidence-list attach goes
// through attach so a rollback spanning this call (route_from_list's
// Mark/Trim, §4.8) can detach it again even from a city that predates
// the mark and so survives the store trim untouched.
func (g *Graph) CreateRoadRaw(c1, c2 CityRef, length uint32, year int32) (RoadRef, bool) {
	roadRef, created := g.roads.create(g.budget, Road{a: c1, b: c2, length: length, year: year})
	if !created {
		return NoRoad, false
	}
	g.attach(c1, roadRef)
	g.attach(c2, roadRef)
	return roadRef, true
}

// BulkInsertNames inserts every (names[i], refs[i]) pair not already
// present into the name index as a single pre-reserved batch (§4.2,
// §4.8 step 5).
func (g *Graph) BulkInsertNames(names []string, refs []CityRef) error {
	return g.index.bulkInsert(g.budget, names, refs)
}

// DetachRoad removes ref from both endpoints' incidence lists and
// destroys its slot. The caller (the roadmap façade) must have already
// rebuilt every trunk that used this road (§4.4).
func (g *Graph) DetachRoad(ref RoadRef) {
	road := g.roads.get(ref)
	if road == nil {
		return
	}
	if c := g.cities.get(road.a); c != nil {
		c.removeRoad(ref)
	}
	if c := g.cities.get(road.b); c != nil {
		c.removeRoad(ref)
	}
	g.roads.destroy(ref)
}
