package graph

// CityRef and RoadRef are opaque, stable indices into the city/road
// stores (see store.go). They replace the source's raw City*/Road*
// pointers (city.h, road.h in original_source/) with arena-relative
// handles, eliminating the ownership cycles a pointer-based graph would
// otherwise need.
type CityRef int

// NoCity is the zero-value-safe "absent" reference.
const NoCity CityRef = -1

type RoadRef int

// NoRoad is the zero-value-safe "absent" reference.
const NoRoad RoadRef = -1

// MaxRouteID is the highest trunk id a Road's route set can carry.
const MaxRouteID = 999

// blockedLength is the sentinel length (§4.3) that marks a road as
// blocked from the search's perspective even if its blocked flag is
// clear.
const blockedLength uint32 = 1<<32 - 1
