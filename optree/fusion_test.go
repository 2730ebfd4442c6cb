package optree

import "testing"

func TestFuseInsertIntoEmpty(t *testing.T) {
	n := &Node[int, string]{}
	if n.fuse(KindInsert, "a") {
		t.Fatalf("insert into empty slot must not fuse")
	}
	if !n.empty() {
		t.Fatalf("refused insert must leave the slot empty, got opA %+v", n.opA)
	}
}

func TestFuseInsertRefusesOnInsertOrSet(t *testing.T) {
	for _, kind := range []Kind{KindInsert, KindSet} {
		n := &Node[int, string]{opA: Operation[string]{Kind: kind, Value: "x", Count: 1}}
		if n.fuse(KindInsert, "y") {
			t.Fatalf("insert fusing onto existing %v must refuse", kind)
		}
	}
}

func TestFuseInsertOntoRemoveProducesSet(t *testing.T) {
	n := &Node[int, string]{opA: Operation[string]{Kind: KindRemove, Count: 1}}
	if !n.fuse(KindInsert, "y") {
		t.Fatalf("insert onto a bare Remove must fuse")
	}
	if n.opA.Kind != KindSet || n.opA.Value != "y" {
		t.Fatalf("got opA %+v", n.opA)
	}
	if n.hasB {
		t.Fatalf("single-count Remove absorbs the Insert directly, no opB expected")
	}
}

func TestFuseInsertOntoMultiRemoveSplitsIntoB(t *testing.T) {
	n := &Node[int, string]{opA: Operation[string]{Kind: KindRemove, Count: 3}}
	if !n.fuse(KindInsert, "y") {
		t.Fatalf("insert onto a multi-count Remove must fuse")
	}
	if n.opA.Kind != KindRemove || n.opA.Count != 2 {
		t.Fatalf("got opA %+v", n.opA)
	}
	if !n.hasB || n.opB.Kind != KindSet || n.opB.Value != "y" {
		t.Fatalf("got opB %+v hasB=%v", n.opB, n.hasB)
	}
}

func TestFuseInsertRefusesOnRemoveWithB(t *testing.T) {
	n := &Node[int, string]{
		opA:  Operation[string]{Kind: KindRemove, Count: 1},
		opB:  Operation[string]{Kind: KindSet, Value: "z"},
		hasB: true,
	}
	if n.fuse(KindInsert, "y") {
		t.Fatalf("insert must refuse when opB is already occupied")
	}
}

func TestFuseSetOverwritesInsertOrSet(t *testing.T) {
	for _, kind := range []Kind{KindInsert, KindSet} {
		n := &Node[int, string]{opA: Operation[string]{Kind: kind, Value: "a", Count: 1}}
		n.fuse(KindSet, "b")
		if n.opA.Kind != kind || n.opA.Value != "b" {
			t.Fatalf("got opA %+v", n.opA)
		}
	}
}

func TestFuseSetOntoRemoveOccupiesB(t *testing.T) {
	n := &Node[int, string]{opA: Operation[string]{Kind: KindRemove, Count: 1}}
	n.fuse(KindSet, "b")
	if n.opA.Kind != KindRemove {
		t.Fatalf("set must not disturb opA's Remove, got %v", n.opA.Kind)
	}
	if !n.hasB || n.opB.Value != "b" {
		t.Fatalf("got opB %+v hasB=%v", n.opB, n.hasB)
	}
}

func TestFuseRemoveCancelsInsert(t *testing.T) {
	n := &Node[int, string]{opA: Operation[string]{Kind: KindInsert, Value: "a", Count: 1}}
	n.fuse(KindRemove, "")
	if !n.empty() {
		t.Fatalf("remove must cancel a pending insert, got %+v", n.opA)
	}
}

func TestFuseRemoveOnSetRevertsToBareRemove(t *testing.T) {
	n := &Node[int, string]{opA: Operation[string]{Kind: KindSet, Value: "a", Count: 1}}
	n.fuse(KindRemove, "")
	if n.opA.Kind != KindRemove || n.opA.Count != 1 || n.hasB {
		t.Fatalf("got opA %+v hasB=%v", n.opA, n.hasB)
	}
}

func TestFuseRemoveOnRemoveAccumulatesCount(t *testing.T) {
	n := &Node[int, string]{opA: Operation[string]{Kind: KindRemove, Count: 2}}
	n.fuse(KindRemove, "")
	if n.opA.Kind != KindRemove || n.opA.Count != 3 {
		t.Fatalf("got opA %+v", n.opA)
	}
}

func TestFuseRemoveClearsB(t *testing.T) {
	n := &Node[int, string]{
		opA:  Operation[string]{Kind: KindRemove, Count: 1},
		opB:  Operation[string]{Kind: KindSet, Value: "z"},
		hasB: true,
	}
	n.fuse(KindRemove, "")
	if n.hasB {
		t.Fatalf("remove fusion onto Remove+Set must clear opB")
	}
	if n.opA.Count != 2 {
		t.Fatalf("got opA %+v", n.opA)
	}
}
