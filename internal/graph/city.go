package graph

// City is a vertex in the road map: a unique name, a dynamic incidence
// list of roads, and a blocked flag the search consults but never
// exposes to callers (§3, §4.4).
type City struct {
	name    string
	blocked bool
	roads   []RoadRef
}

// Name returns the city's stored name.
func (c *City) Name() string { return c.name }

// Blocked reports whether the search must treat this city as absent.
func (c *City) Blocked() bool { return c != nil && c.blocked }

// Roads returns the incident road references. Callers must not mutate
// the returned slice.
func (c *City) Roads() []RoadRef { return c.roads }

func (c *City) addRoad(ref RoadRef) {
	c.roads = append(c.roads, ref)
}

func (c *City) removeRoad(ref RoadRef) {
	for i, r := range c.roads {
		if r == ref {
			c.roads[i] = c.roads[len(c.roads)-1]
			c.roads = c.roads[:len(c.roads)-1]
			return
		}
	}
}

// Block and Unblock toggle the search-visibility flag. They are used
// only by the trunk package's extend/detour logic (§4.4) and must
// always be paired so a failed operation leaves no city blocked.
func (c *City) Block()   { c.blocked = true }
func (c *City) Unblock() { c.blocked = false }
