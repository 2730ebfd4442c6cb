package optree

// fuse attempts to merge an incoming operation of the given kind and
// value into n's existing slot, following the table in §4.1. It
// returns whether the merge succeeded; on success it has already
// mutated n's slot (possibly emptying it, e.g. an Insert cancelled by
// a Remove) and the caller is responsible for the index-balance delta
// and for deleting n if it emptied.
//
// Insert is the only kind that can fail to fuse: an empty slot, a node
// already carrying an Insert or Set, or a Remove already paired with a
// Set must stay where it is and let the new Insert create a distinct node
// immediately before it instead (§4.3 step 2's "on success, break").
func (n *Node[K, V]) fuse(kind Kind, value V) (fused bool) {
	switch kind {
	case KindInsert:
		fused = n.fuseInsert(value)
	case KindSet:
		n.fuseSet(value)
		fused = true
	case KindRemove:
		n.fuseRemove()
		fused = true
	default:
		fail(CodeIllegalFusion, "fuse: unsupported incoming kind %v", kind)
	}
	if fused {
		n.assertLegal()
	}
	return fused
}

func (n *Node[K, V]) fuseInsert(value V) bool {
	switch {
	case n.empty():
		return false
	case n.opA.Kind == KindInsert, n.opA.Kind == KindSet:
		return false
	case n.opA.Kind == KindRemove && n.hasB:
		return false
	case n.opA.Kind == KindRemove:
		if n.opA.Count == 1 {
			n.opA = Operation[V]{Kind: KindSet, Value: value, Count: 1}
		} else {
			n.opA.Count--
			n.opB = Operation[V]{Kind: KindSet, Value: value, Count: 1}
			n.hasB = true
		}
		return true
	default:
		fail(CodeIllegalFusion, "insert fusion: node has unexpected opA kind %v", n.opA.Kind)
		return false
	}
}

func (n *Node[K, V]) fuseSet(value V) {
	switch n.opA.Kind {
	case KindNone:
		n.opA = Operation[V]{Kind: KindSet, Value: value, Count: 1}
	case KindInsert, KindSet:
		n.opA.Value = value
	case KindRemove:
		n.opB = Operation[V]{Kind: KindSet, Value: value, Count: 1}
		n.hasB = true
	default:
		fail(CodeIllegalFusion, "set fusion: node has unexpected opA kind %v", n.opA.Kind)
	}
}

func (n *Node[K, V]) fuseRemove() {
	switch n.opA.Kind {
	case KindNone:
		n.opA = Operation[V]{Kind: KindRemove, Count: 1}
	case KindInsert:
		n.opA = Operation[V]{}
		n.opB = Operation[V]{}
		n.hasB = false
	case KindSet:
		n.opA = Operation[V]{Kind: KindRemove, Count: 1}
		n.opB = Operation[V]{}
		n.hasB = false
	case KindRemove:
		n.opA.Count++
		n.opB = Operation[V]{}
		n.hasB = false
	default:
		fail(CodeIllegalFusion, "remove fusion: node has unexpected opA kind %v", n.opA.Kind)
	}
}

// assertLegal checks the fusion-legality invariants from §8: op_b
// present implies op_a is a Remove paired with a Set, and op_a.Count
// greater than 1 implies op_a is a Remove (which may carry a paired
// Set in op_b, e.g. a Set fused onto a two-element Remove run). A node that has
// just become empty (both slots cleared, e.g. Insert cancelled by
// Remove) is legal here; the caller deletes it immediately after.
func (n *Node[K, V]) assertLegal() {
	if n.empty() {
		return
	}
	if n.hasB && !(n.opA.Kind == KindRemove && n.opB.Kind == KindSet) {
		fail(CodeIllegalFusion, "node holds op_b %v without op_a Remove+Set (opA=%v)", n.opB.Kind, n.opA.Kind)
	}
	if n.opA.Count > 1 && n.opA.Kind != KindRemove {
		fail(CodeIllegalFusion, "node has count %d but opA=%v hasB=%v", n.opA.Count, n.opA.Kind, n.hasB)
	}
}
