package bitset

import (
	"reflect"
	"testing"
)

func TestSquaresAscendingOrder(t *testing.T) {
	set := Set(0xc0000000000e1805)
	want := []int{0, 2, 11, 12, 17, 18, 19, 62, 63}
	got := set.Squares()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
}

func TestSetAlgebra(t *testing.T) {
	a := Single(3).Union(Single(10))
	b := Single(10).Union(Single(20))

	if got := a.Intersect(b); got != Single(10) {
		t.Errorf("Intersect = %#x, want %#x", uint64(got), uint64(Single(10)))
	}
	if got := a.Union(b); got.Popcount() != 3 {
		t.Errorf("Union popcount = %d, want 3", got.Popcount())
	}
	if got := a.Difference(b); got != Single(3) {
		t.Errorf("Difference = %#x, want %#x", uint64(got), uint64(Single(3)))
	}
	if got := a.Complement().Complement(); got != a {
		t.Errorf("double complement = %#x, want %#x", uint64(got), uint64(a))
	}
}

func TestContainsSetClear(t *testing.T) {
	s := Empty
	s = s.Set(5)
	if !s.Contains(5) {
		t.Fatal("expected square 5 to be a member after Set")
	}
	s = s.Clear(5)
	if s.Contains(5) {
		t.Fatal("expected square 5 to be absent after Clear")
	}
	if !s.IsEmpty() {
		t.Fatal("expected empty set")
	}
}

func TestPopFirst(t *testing.T) {
	s := Single(4).Union(Single(9)).Union(Single(40))
	var got []int
	for !s.IsEmpty() {
		var sq int
		sq, s = s.PopFirst()
		got = append(got, sq)
	}
	want := []int{4, 9, 40}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PopFirst sequence = %v, want %v", got, want)
	}
}

func TestFirstSetPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on FirstSet of empty set")
		}
	}()
	Empty.FirstSet()
}

func TestWholeFileAndRank(t *testing.T) {
	if got := WholeFile(0).Popcount(); got != 8 {
		t.Errorf("file popcount = %d, want 8", got)
	}
	if !WholeFile(0).Contains(0) || !WholeFile(0).Contains(56) {
		t.Error("file a should contain a1 and a8")
	}
	if got := WholeRank(0).Popcount(); got != 8 {
		t.Errorf("rank popcount = %d, want 8", got)
	}
	if !WholeRank(0).Contains(0) || !WholeRank(0).Contains(7) {
		t.Error("rank 1 should contain a1 and h1")
	}
}

func TestEdges(t *testing.T) {
	e := Edges()
	if !e.Contains(0) || !e.Contains(7) || !e.Contains(56) || !e.Contains(63) {
		t.Error("edges should include all four corners")
	}
	if e.Contains(27) {
		t.Error("edges should not include a central square")
	}
}
