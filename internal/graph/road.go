package graph

// Road is an undirected edge between two distinct cities, carrying a
// length, a construction/repair year, and the set of trunk ids
// currently traversing it (§3).
type Road struct {
	a, b    CityRef
	length  uint32
	year    int32
	blocked bool
	routes  RouteSet
}

func (r *Road) Length() uint32 { return r.length }
func (r *Road) Year() int32    { return r.year }
func (r *Road) Cities() (CityRef, CityRef) { return r.a, r.b }

// Other returns the endpoint of the road that isn't from.
func (r *Road) Other(from CityRef) CityRef {
	if r.a == from {
		return r.b
	}
	return r.a
}

// Has reports whether c is one of this road's two endpoints.
func (r *Road) Has(c CityRef) bool { return r.a == c || r.b == c }

// Blocked reports whether the search must treat this road as absent —
// either its own flag, or the length sentinel (§4.3).
func (r *Road) Blocked() bool { return r != nil && (r.blocked || r.length == blockedLength) }

// Block and Unblock toggle the search-visibility flag (§4.4).
func (r *Road) Block()   { r.blocked = true }
func (r *Road) Unblock() { r.blocked = false }

// Routes returns the trunk ids currently traversing this road.
func (r *Road) Routes() RouteSet { return r.routes }

// Attach and Detach maintain the road's route set (§3, §4.6).
func (r *Road) Attach(id int) { r.routes.Add(id) }
func (r *Road) Detach(id int) { r.routes.Remove(id) }
