package array

import "testing"

func TestInsertAtShiftsTail(t *testing.T) {
	a := New[string](0)
	a.Append("a")
	a.Append("c")
	a.InsertAt(1, "b")
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got, ok := a.Get(i); !ok || got != w {
			t.Fatalf("index %d: got %q ok=%v, want %q", i, got, ok, w)
		}
	}
}

func TestInsertAtAppendPosition(t *testing.T) {
	a := New[string](0)
	a.Append("a")
	a.InsertAt(1, "b")
	if a.Len() != 2 {
		t.Fatalf("got len %d", a.Len())
	}
	if got, _ := a.Get(1); got != "b" {
		t.Fatalf("got %q", got)
	}
}

func TestRemoveAtShiftsTailLeft(t *testing.T) {
	a := FromSlice([]string{"a", "b", "c"})
	v, ok := a.RemoveAt(1)
	if !ok || v != "b" {
		t.Fatalf("got v=%q ok=%v", v, ok)
	}
	if a.Len() != 2 {
		t.Fatalf("got len %d", a.Len())
	}
	if got, _ := a.Get(1); got != "c" {
		t.Fatalf("got %q, want c", got)
	}
}

func TestRemoveAtClearsVacatedSlotForGC(t *testing.T) {
	type box struct{ v string }
	a := FromSlice([]*box{{"a"}, {"b"}})
	a.RemoveAt(0)
	// The backing slice's old tail slot must not keep a stale
	// reference once it falls outside the visible length.
	raw := a.data[:cap(a.data)]
	if raw[len(a.data)] != nil {
		t.Fatalf("expected vacated slot to be cleared, got %v", raw[len(a.data)])
	}
}

func TestInsertRunInsertsContiguousBlock(t *testing.T) {
	a := FromSlice([]string{"a", "e"})
	a.InsertRun(1, []string{"b", "c", "d"})
	want := []string{"a", "b", "c", "d", "e"}
	if a.Len() != len(want) {
		t.Fatalf("got len %d, want %d", a.Len(), len(want))
	}
	for i, w := range want {
		if got, _ := a.Get(i); got != w {
			t.Fatalf("index %d: got %q, want %q", i, got, w)
		}
	}
}

func TestRemoveRunClampsAtTail(t *testing.T) {
	a := FromSlice([]string{"a", "b", "c"})
	removed := a.RemoveRun(1, 10)
	if removed != 2 {
		t.Fatalf("got removed=%d, want 2", removed)
	}
	if a.Len() != 1 {
		t.Fatalf("got len %d", a.Len())
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	a := New[int](0)
	if _, ok := a.Get(0); ok {
		t.Fatalf("Get on empty array must report false")
	}
	if a.Set(0, 1) {
		t.Fatalf("Set on empty array must report false")
	}
}

func TestGrowthDoublesAndNeverShrinksOnRemove(t *testing.T) {
	a := New[int](0)
	for i := 0; i < 5; i++ {
		a.Append(i)
	}
	if a.Cap() != 8 {
		t.Fatalf("got cap %d, want 8 (the minimum of 4, doubled once)", a.Cap())
	}
	capAfterGrowth := a.Cap()
	a.RemoveAt(0)
	a.RemoveAt(0)
	if a.Cap() != capAfterGrowth {
		t.Fatalf("capacity must not shrink on remove: got %d, want %d", a.Cap(), capAfterGrowth)
	}
}

func TestInsertRunEmptyIsNoOp(t *testing.T) {
	a := FromSlice([]string{"a", "b"})
	a.InsertRun(1, nil)
	if a.Len() != 2 {
		t.Fatalf("got len %d", a.Len())
	}
}
