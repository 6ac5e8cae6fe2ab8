package roadmap

import (
	"fmt"
	"log/slog"

	"github.com/okdaichi/roadmap/internal/graph"
	"github.com/okdaichi/roadmap/internal/rmerr"
	"github.com/okdaichi/roadmap/internal/trunk"
)

var errInconsistentRoad = rmerr.New(rmerr.Conflict, "existing road inconsistent with supplied data")
var errDuplicateName = rmerr.New(rmerr.Conflict, "duplicate city name in list")

// RouteFromList implements route_from_list (§4.8): build a trunk
// directly from a caller-supplied chain of cities, roads, lengths and
// years rather than by searching, creating whatever roads/cities don't
// already exist. The whole call is all-or-nothing: on any failure
// after step 2 the city and road stores are trimmed back to their
// pre-call lengths, every incidence-list attach made since is undone —
// including on a pre-existing endpoint that the store trim itself
// doesn't touch — and nothing else is left changed.
func (m *Map) RouteFromList(id int, names []string, lengths []uint32, years []int32) error {
	if !validRouteID(id) {
		return fmt.Errorf("route from list: %w", rmerr.ErrInvalidArgument)
	}
	if m.trunks[id] != nil {
		return fmt.Errorf("route from list: %w", errSlotTaken)
	}

	n := len(names)
	if n < 2 || len(lengths) != n-1 || len(years) != n-1 {
		return fmt.Errorf("route from list: %w", rmerr.ErrInvalidArgument)
	}
	for _, name := range names {
		if !graph.ValidName(name) {
			return fmt.Errorf("route from list: %w", rmerr.ErrInvalidArgument)
		}
	}
	for i := range lengths {
		if lengths[i] == 0 || years[i] == 0 {
			return fmt.Errorf("route from list: %w", rmerr.ErrInvalidArgument)
		}
	}
	seen := make(map[string]bool, n)
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("route from list: %w", errDuplicateName)
		}
		seen[name] = true
	}

	// Step 1: every road already on the map between consecutive listed
	// names must match the supplied length exactly and have a year no
	// newer than the supplied one.
	for i := 0; i < n-1; i++ {
		c1, ok1 := m.graph.Find(names[i])
		c2, ok2 := m.graph.Find(names[i+1])
		if !ok1 || !ok2 {
			continue
		}
		ref, ok := m.graph.FindRoadBetween(c1, c2)
		if !ok {
			continue
		}
		road := m.graph.Road(ref)
		if road.Length() != lengths[i] || years[i] < road.Year() {
			return fmt.Errorf("route from list: %w", errInconsistentRoad)
		}
	}

	// Step 2: the rollback point.
	mk := m.graph.Mark()
	fail := func(err error) error {
		m.graph.Trim(mk)
		return fmt.Errorf("route from list: %w", err)
	}

	// Step 3: create whatever cities/roads don't already exist. New
	// cities bypass the name index for now (§4.2, §4.8 step 5 bulk
	// inserts them all at once).
	type pendingCity struct {
		name string
		ref  graph.CityRef
	}
	var pending []pendingCity
	resolve := func(name string) (graph.CityRef, bool) {
		if ref, ok := m.graph.Find(name); ok {
			return ref, true
		}
		for _, p := range pending {
			if p.name == name {
				return p.ref, true
			}
		}
		ref, ok := m.graph.CreateCityRaw(name)
		if !ok {
			return graph.NoCity, false
		}
		pending = append(pending, pendingCity{name: name, ref: ref})
		return ref, true
	}

	roads := make([]graph.RoadRef, n-1)
	for i := 0; i < n-1; i++ {
		c1, ok := resolve(names[i])
		if !ok {
			return fail(rmerr.ErrOutOfMemory)
		}
		c2, ok := resolve(names[i+1])
		if !ok {
			return fail(rmerr.ErrOutOfMemory)
		}
		if ref, already := m.graph.FindRoadBetween(c1, c2); already {
			roads[i] = ref
			continue
		}
		ref, ok := m.graph.CreateRoadRaw(c1, c2, lengths[i], years[i])
		if !ok {
			return fail(rmerr.ErrOutOfMemory)
		}
		roads[i] = ref
	}

	// Step 5: bulk-insert every newly created city's name.
	if len(pending) > 0 {
		bulkNames := make([]string, len(pending))
		bulkRefs := make([]graph.CityRef, len(pending))
		for i, p := range pending {
			bulkNames[i] = p.name
			bulkRefs[i] = p.ref
		}
		if err := m.graph.BulkInsertNames(bulkNames, bulkRefs); err != nil {
			return fail(err)
		}
	}

	// Step 6: bring every road (pre-existing or just created) up to
	// the listed year. Step 1 already proved year[i] >= the current
	// year for pre-existing roads, and a freshly created road already
	// carries year[i], so this never fails here.
	for i := 0; i < n-1; i++ {
		if err := m.graph.RepairRoad(names[i], names[i+1], years[i]); err != nil {
			return fail(err)
		}
	}

	// Everything since mk has succeeded: release the rollback point
	// before step 4 so the attaches CreateRoadRaw logged become
	// permanent rather than something a later, unrelated Trim could
	// ever unwind.
	m.graph.Commit(mk)

	// Step 4 + 7: the trunk's road sequence is exactly the one built
	// above, in order — no search involved.
	first, _ := m.graph.Find(names[0])
	last, _ := m.graph.Find(names[n-1])
	t := &trunk.Trunk{ID: id, First: first, Last: last, Roads: roads}
	t.Attach(m.graph)
	m.trunks[id] = t

	slog.Info("route built from list", "id", id, "cities", n, "roads", len(roads))
	return nil
}
