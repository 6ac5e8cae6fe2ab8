package graph

import "testing"

func TestRouteSet_AddHasRemove(t *testing.T) {
	var s RouteSet
	s.Add(1)
	s.Add(512)
	s.Add(999)

	for _, id := range []int{1, 512, 999} {
		if !s.Has(id) {
			t.Errorf("expected Has(%d) to be true", id)
		}
	}
	if s.Has(2) {
		t.Errorf("expected Has(2) to be false")
	}

	s.Remove(512)
	if s.Has(512) {
		t.Errorf("expected 512 to be removed")
	}
}

func TestRouteSet_Empty(t *testing.T) {
	var s RouteSet
	if !s.Empty() {
		t.Errorf("expected a zero-value RouteSet to be empty")
	}
	s.Add(7)
	if s.Empty() {
		t.Errorf("expected RouteSet to be non-empty after Add")
	}
}

func TestRouteSet_Each_AscendingOrder(t *testing.T) {
	var s RouteSet
	s.Add(900)
	s.Add(3)
	s.Add(65)

	var got []int
	s.Each(func(id int) { got = append(got, id) })

	want := []int{3, 65, 900}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestRouteSet_OutOfRangeIDsAreNoOps(t *testing.T) {
	var s RouteSet
	s.Add(0)
	s.Add(1000)
	s.Add(-1)
	if !s.Empty() {
		t.Errorf("expected out-of-range ids to be ignored")
	}
	if s.Has(0) || s.Has(1000) {
		t.Errorf("expected Has to report false for out-of-range ids")
	}
}
