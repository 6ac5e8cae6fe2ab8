// Package roadmap implements the Map façade (C8, §4.7): the top-level
// entry point that owns the graph and the 999-slot trunk table, and
// coordinates the graph/search/trunk layers so each command in §6
// behaves as one atomic operation.
package roadmap

import (
	"fmt"
	"log/slog"

	"github.com/okdaichi/roadmap/internal/arena"
	"github.com/okdaichi/roadmap/internal/graph"
	"github.com/okdaichi/roadmap/internal/rmerr"
	"github.com/okdaichi/roadmap/internal/trunk"
)

// Map owns the city/road graph and the trunk table. It is the sole
// mutator of both (§3); callers never touch graph.Graph or trunk.Trunk
// values directly.
type Map struct {
	graph  *graph.Graph
	budget *arena.Budget
	trunks [graph.MaxRouteID + 1]*trunk.Trunk
}

// New creates an empty map. A nil budget runs unlimited.
func New(budget *arena.Budget) *Map {
	if budget == nil {
		budget = arena.Unlimited()
	}
	return &Map{graph: graph.New(budget), budget: budget}
}

func validRouteID(id int) bool { return id >= 1 && id <= graph.MaxRouteID }

var errSlotTaken = rmerr.New(rmerr.Conflict, "route slot already in use")

// AddRoad implements add_road (§4.4, §6).
func (m *Map) AddRoad(name1, name2 string, length uint32, year int32) error {
	if _, err := m.graph.AddRoad(name1, name2, length, year); err != nil {
		return fmt.Errorf("add road: %w", err)
	}
	slog.Info("road added", "from", name1, "to", name2, "length", length, "year", year)
	return nil
}

// RepairRoad implements repair_road (§4.4, §6).
func (m *Map) RepairRoad(name1, name2 string, year int32) error {
	if err := m.graph.RepairRoad(name1, name2, year); err != nil {
		return fmt.Errorf("repair road: %w", err)
	}
	slog.Info("road repaired", "from", name1, "to", name2, "year", year)
	return nil
}

// NewRoute implements new_route (§4.6, §4.7, §6): resolve both
// endpoint names, build the canonical path between them, and install
// the result into the requested slot.
func (m *Map) NewRoute(id int, name1, name2 string) error {
	if !validRouteID(id) {
		return fmt.Errorf("new route: %w", rmerr.ErrInvalidArgument)
	}
	if m.trunks[id] != nil {
		return fmt.Errorf("new route: %w", errSlotTaken)
	}
	c1, ok1 := m.graph.Find(name1)
	c2, ok2 := m.graph.Find(name2)
	if !ok1 || !ok2 {
		return fmt.Errorf("new route: %w", rmerr.ErrNotFound)
	}

	t, err := trunk.Build(m.graph, m.budget, id, c1, c2)
	if err != nil {
		return fmt.Errorf("new route: %w", err)
	}
	t.Attach(m.graph)
	m.trunks[id] = t
	slog.Info("route built", "id", id, "from", name1, "to", name2, "roads", len(t.Roads))
	return nil
}

// ExtendRoute implements extend_route (§4.6, §6): compute the
// extension candidate and, only once it's known to succeed, replace
// the slot's trunk with the extended one.
func (m *Map) ExtendRoute(id int, name string) error {
	if !validRouteID(id) {
		return fmt.Errorf("extend route: %w", rmerr.ErrInvalidArgument)
	}
	t := m.trunks[id]
	if t == nil {
		return fmt.Errorf("extend route: %w", rmerr.ErrNotFound)
	}
	city, ok := m.graph.Find(name)
	if !ok {
		return fmt.Errorf("extend route: %w", rmerr.ErrNotFound)
	}

	nt, err := trunk.Extend(m.graph, m.budget, t, city)
	if err != nil {
		return fmt.Errorf("extend route: %w", err)
	}
	t.Detach(m.graph)
	nt.Attach(m.graph)
	m.trunks[id] = nt
	slog.Info("route extended", "id", id, "city", name, "roads", len(nt.Roads))
	return nil
}

// RemoveRoad implements remove_road (§4.4, §6). Every trunk that uses
// the road must be repaired with a detour; the candidate detour for
// every affected trunk is computed (a pure, non-mutating call) before
// any of them is committed, so a single detour failure leaves the map
// byte-identical to its pre-call state (§8).
func (m *Map) RemoveRoad(name1, name2 string) error {
	c1, ok1 := m.graph.Find(name1)
	c2, ok2 := m.graph.Find(name2)
	if !ok1 || !ok2 {
		return fmt.Errorf("remove road: %w", rmerr.ErrNotFound)
	}
	ref, ok := m.graph.FindRoadBetween(c1, c2)
	if !ok {
		return fmt.Errorf("remove road: %w", rmerr.ErrNotFound)
	}
	road := m.graph.Road(ref)

	var affected []int
	road.Routes().Each(func(id int) { affected = append(affected, id) })

	detours := make(map[int]*trunk.Trunk, len(affected))
	for _, id := range affected {
		nt, err := trunk.Detour(m.graph, m.budget, m.trunks[id], ref)
		if err != nil {
			slog.Warn("remove road: detour failed, road left in place",
				"from", name1, "to", name2, "trunk", id, "error", err)
			return fmt.Errorf("remove road: %w", err)
		}
		detours[id] = nt
	}

	for id, nt := range detours {
		m.trunks[id].Detach(m.graph)
		nt.Attach(m.graph)
		m.trunks[id] = nt
	}
	m.graph.DetachRoad(ref)
	slog.Info("road removed", "from", name1, "to", name2, "detoured_routes", len(affected))
	return nil
}

// RemoveRoute implements remove_route (§6).
func (m *Map) RemoveRoute(id int) error {
	if !validRouteID(id) {
		return fmt.Errorf("remove route: %w", rmerr.ErrInvalidArgument)
	}
	t := m.trunks[id]
	if t == nil {
		return fmt.Errorf("remove route: %w", rmerr.ErrNotFound)
	}
	t.Detach(m.graph)
	m.trunks[id] = nil
	slog.Info("route removed", "id", id)
	return nil
}

// GetRouteDescription implements get_route_description (§6). An
// out-of-range id or an empty slot both yield ("", nil) — the Go
// rendering of the Open Questions' "non-null empty string" resolution
// (§9); describing a trunk never allocates from budget, so this path
// never returns OutOfMemory in this port.
func (m *Map) GetRouteDescription(id int) (string, error) {
	if !validRouteID(id) {
		return "", nil
	}
	t := m.trunks[id]
	if t == nil {
		return "", nil
	}
	return trunk.Describe(m.graph, t), nil
}
