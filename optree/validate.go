package optree

import "golang.org/x/exp/constraints"

// ValidateHeight is the optional debug API from §7: it measures the
// tree's actual height and fails if it exceeds the stored bound by
// more than one level. It is not called on any hot path; only this
// package's tests call it.
func (t *Tree[K, V]) ValidateHeight() (err error) {
	defer guard(&err)
	measured := t.measureHeight(t.root)
	bound := t.HeightBound()
	if measured > bound+1 {
		fail(CodeHeightExceeded, "measured height %d exceeds bound %d by more than one level", measured, bound)
	}
	return nil
}

func (t *Tree[K, V]) measureHeight(n *Node[K, V]) int {
	if n == t.nilNode {
		return 0
	}
	l := t.measureHeight(n.left)
	r := t.measureHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// CheckInvariants walks the whole tree and returns the first violated
// universal invariant from §8: red-black coloring, strictly increasing
// effective keys, and the subtree index-balance equation. It is meant
// for tests, not production code paths — it is O(n) and pushes down
// every shift it encounters, fully materializing effective keys.
func (t *Tree[K, V]) CheckInvariants() (err error) {
	defer guard(&err)
	if t.root != t.nilNode && t.root.color != black {
		fail(CodeIllegalFusion, "root is not black")
	}
	var blackHeight = -1
	var prevKey *K
	var walk func(n *Node[K, V], blacks int)
	walk = func(n *Node[K, V], blacks int) {
		if n == t.nilNode {
			if blackHeight == -1 {
				blackHeight = blacks
			} else if blacks != blackHeight {
				fail(CodeIllegalFusion, "unequal black height: %d vs %d", blacks, blackHeight)
			}
			return
		}
		t.pushDown(n)
		if n.color == red && (isRed(n.left) || isRed(n.right)) {
			fail(CodeIllegalFusion, "red node %v has a red child", n.key)
		}
		walk(n.left, blacks+blackDelta(n))
		if prevKey != nil && *prevKey >= n.key {
			fail(CodeIllegalFusion, "effective keys out of order: %v then %v", *prevKey, n.key)
		}
		k := n.key
		prevKey = &k
		if n.indexBalance != n.weight()+idxBal(n.left)+idxBal(n.right) {
			fail(CodeIllegalFusion, "node %v index balance %d != weight %d + left %d + right %d",
				n.key, n.indexBalance, n.weight(), idxBal(n.left), idxBal(n.right))
		}
		n.assertLegal()
		walk(n.right, blacks+blackDelta(n))
	}
	walk(t.root, 0)
	return nil
}

func blackDelta[K constraints.Integer, V any](n *Node[K, V]) int {
	if n.color == black {
		return 1
	}
	return 0
}
