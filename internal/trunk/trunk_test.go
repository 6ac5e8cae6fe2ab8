package trunk

import (
	"testing"

	"github.com/okdaichi/roadmap/internal/arena"
	"github.com/okdaichi/roadmap/internal/graph"
)

func mustAdd(t *testing.T, g *graph.Graph, a, b string, length uint32, year int32) {
	t.Helper()
	if _, err := g.AddRoad(a, b, length, year); err != nil {
		t.Fatalf("setup AddRoad(%s,%s) failed: %v", a, b, err)
	}
}

func find(t *testing.T, g *graph.Graph, name string) graph.CityRef {
	t.Helper()
	ref, ok := g.Find(name)
	if !ok {
		t.Fatalf("city %q not found", name)
	}
	return ref
}

func TestBuild_RejectsEmptyPath(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	cA := find(t, g, "A")

	if _, err := Build(g, arena.Unlimited(), 1, cA, cA); err == nil {
		t.Fatal("expected from == to to be rejected")
	}
}

func TestBuild_DoesNotAttachUntilCallerCommits(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	cA, cB := find(t, g, "A"), find(t, g, "B")

	trunkRef, err := Build(g, arena.Unlimited(), 1, cA, cB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ref := range trunkRef.Roads {
		if g.Road(ref).Routes().Has(1) {
			t.Fatalf("Build must not attach the trunk itself")
		}
	}
	trunkRef.Attach(g)
	for _, ref := range trunkRef.Roads {
		if !g.Road(ref).Routes().Has(1) {
			t.Errorf("Attach must record the trunk id on every road")
		}
	}
}

func TestExtend_PrependsOrAppendsByShorterLength(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 10, 2000)
	mustAdd(t, g, "C", "B", 3, 2000)
	mustAdd(t, g, "C", "A", 20, 2000)
	cA, cB, cC := find(t, g, "A"), find(t, g, "B"), find(t, g, "C")

	tr, err := Build(g, arena.Unlimited(), 1, cA, cB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr.Attach(g)

	nt, err := Extend(g, arena.Unlimited(), tr, cC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.First != cA || nt.Last != cC {
		t.Fatalf("expected extension to append C as the new Last, got First=%v Last=%v", nt.First, nt.Last)
	}
	if len(nt.Roads) != 2 {
		t.Fatalf("expected 2 roads after extension, got %d", len(nt.Roads))
	}
}

func TestExtend_RejectsCityAlreadyOnRoute(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	mustAdd(t, g, "B", "C", 1, 2000)
	cA, cB, cC := find(t, g, "A"), find(t, g, "B"), find(t, g, "C")

	tr, err := Build(g, arena.Unlimited(), 1, cA, cC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr.Attach(g)

	if _, err := Extend(g, arena.Unlimited(), tr, cB); err == nil {
		t.Fatal("expected an error extending to a city already on the route")
	}
}

func TestDetour_SplicesReplacementInPlace(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	mustAdd(t, g, "B", "C", 1, 2000)
	mustAdd(t, g, "C", "D", 1, 2000)
	mustAdd(t, g, "B", "E", 1, 2000)
	mustAdd(t, g, "E", "C", 1, 2000)
	cA, cB, cC, cD := find(t, g, "A"), find(t, g, "B"), find(t, g, "C"), find(t, g, "D")

	tr, err := Build(g, arena.Unlimited(), 1, cA, cD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr.Attach(g)

	removed, ok := g.FindRoadBetween(cB, cC)
	if !ok {
		t.Fatal("expected a road between B and C")
	}

	nt, err := Detour(g, arena.Unlimited(), tr, removed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nt.Roads) != 4 {
		t.Fatalf("expected 4 roads after detour, got %d", len(nt.Roads))
	}
	for _, ref := range nt.Roads {
		if ref == removed {
			t.Errorf("the removed road must not appear in the detoured trunk")
		}
	}

	// Detour is purely computational: the blocked flags toggled during
	// the search must all be cleared afterward.
	for _, c := range []graph.CityRef{cA, cB, cC, cD} {
		if g.City(c).Blocked() {
			t.Errorf("city %v left blocked after Detour", c)
		}
	}
}

func TestDetour_NoBridgeAlternativeFails(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	mustAdd(t, g, "B", "C", 1, 2000)
	cA, cC := find(t, g, "A"), find(t, g, "C")

	tr, err := Build(g, arena.Unlimited(), 1, cA, cC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tr.Attach(g)

	removed, _ := g.FindRoadBetween(find(t, g, "B"), cC)
	if _, err := Detour(g, arena.Unlimited(), tr, removed); err == nil {
		t.Fatal("expected detour of a bridge road with no alternative to fail")
	}
}

func TestDescribe_RendersOrientedFields(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 10, 2000)
	cA, cB := find(t, g, "A"), find(t, g, "B")

	tr, err := Build(g, arena.Unlimited(), 1, cA, cB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Describe(g, tr)
	want := "1;A;10;2000;B"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
