package optree

// Find performs the point lookup described in §4.4. found reports
// whether the element currently visible at index k is described by a
// pending operation in the tree (an Insert or a Set, including one
// fused onto a Remove). When found is false, fallbackIndex is the
// index into the committed array the caller should consult instead.
// If k lands exactly on a bare Remove, fallbackIndex already skips
// past the element that Remove deletes, naming whatever now occupies
// k's position instead.
func (t *Tree[K, V]) Find(k K) (found bool, value V, fallbackIndex int) {
	cur := t.root
	shift := 0
	for cur != t.nilNode {
		t.pushDown(cur)
		switch {
		case k == cur.key:
			shift += idxBal(cur.left) + cur.weight()
			if cur.hasB {
				return true, cur.opB.Value, 0
			}
			if cur.opA.Kind == KindRemove {
				return false, value, int(k) - shift
			}
			return true, cur.opA.Value, 0
		case k > cur.key:
			shift += idxBal(cur.left) + cur.weight()
			cur = cur.right
		default:
			cur = cur.left
		}
	}
	return false, value, int(k) - shift
}
