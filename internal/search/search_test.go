package search

import (
	"testing"

	"github.com/okdaichi/roadmap/internal/arena"
	"github.com/okdaichi/roadmap/internal/graph"
)

func TestShortestPath_Direct(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 5, 2000)
	cA, _ := g.Find("A")
	cB, _ := g.Find("B")

	roads, err := ShortestPath(g, arena.Unlimited(), cA, cB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roads) != 1 {
		t.Fatalf("expected a single-road path, got %d", len(roads))
	}
}

func TestShortestPath_PrefersShorterTotalLength(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 10, 2000)
	mustAdd(t, g, "A", "C", 2, 2000)
	mustAdd(t, g, "C", "B", 2, 2000)

	cA, _ := g.Find("A")
	cB, _ := g.Find("B")

	roads, err := ShortestPath(g, arena.Unlimited(), cA, cB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roads) != 2 {
		t.Fatalf("expected the 2-road detour through C, got %d roads", len(roads))
	}
}

func TestShortestPath_TieBreaksOnMaxMinYear(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 5, 1990)
	mustAdd(t, g, "A", "C", 2, 2010)
	mustAdd(t, g, "C", "B", 3, 2010)

	cA, _ := g.Find("A")
	cB, _ := g.Find("B")
	cC, _ := g.Find("C")

	roads, err := ShortestPath(g, arena.Unlimited(), cA, cB)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roads) != 2 {
		t.Fatalf("expected the A-C-B path, got %d roads", len(roads))
	}
	first := g.Road(roads[0])
	if first.Other(cA) != cC {
		t.Errorf("expected the path to go through C first")
	}
}

func TestShortestPath_Ambiguous(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 2, 2000)
	mustAdd(t, g, "B", "C", 2, 2000)
	mustAdd(t, g, "A", "D", 2, 2000)
	mustAdd(t, g, "D", "C", 2, 2000)

	cA, _ := g.Find("A")
	cC, _ := g.Find("C")

	_, err := ShortestPath(g, arena.Unlimited(), cA, cC)
	if err == nil {
		t.Fatal("expected an ambiguity error")
	}
}

func TestShortestPath_NoPath(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	mustAdd(t, g, "C", "D", 1, 2000)

	cA, _ := g.Find("A")
	cD, _ := g.Find("D")

	_, err := ShortestPath(g, arena.Unlimited(), cA, cD)
	if err == nil {
		t.Fatal("expected a no-path error")
	}
}

func TestShortestPath_SkipsBlockedCitiesAndRoads(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	mustAdd(t, g, "B", "C", 1, 2000)
	mustAdd(t, g, "A", "D", 1, 2000)
	mustAdd(t, g, "D", "C", 1, 2000)

	cA, _ := g.Find("A")
	cB, _ := g.Find("B")
	cC, _ := g.Find("C")

	g.City(cB).Block()
	defer g.City(cB).Unblock()

	roads, err := ShortestPath(g, arena.Unlimited(), cA, cC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, ref := range roads {
		if g.Road(ref).Has(cB) {
			t.Errorf("expected blocked city B to be excluded from the path")
		}
	}
}

func TestShortestPath_OutOfMemory(t *testing.T) {
	g := graph.New(nil)
	mustAdd(t, g, "A", "B", 1, 2000)
	cA, _ := g.Find("A")
	cB, _ := g.Find("B")

	_, err := ShortestPath(g, arena.NewBudget(1), cA, cB)
	if err == nil {
		t.Fatal("expected an out-of-memory error for an undersized budget")
	}
}

func mustAdd(t *testing.T, g *graph.Graph, a, b string, length uint32, year int32) {
	t.Helper()
	if _, err := g.AddRoad(a, b, length, year); err != nil {
		t.Fatalf("setup AddRoad(%s,%s) failed: %v", a, b, err)
	}
}
