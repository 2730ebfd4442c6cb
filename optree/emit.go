package optree

import "iter"

// OpRecord is one entry of an emission stream: either a pending
// operation at an effective key, or the terminal EndOp record
// (Kind == KindEnd) at key = committed length + net index balance.
type OpRecord[V any] struct {
	Key   int
	Kind  Kind
	Value V
	Count int
}

// Drain returns the in-order emission stream described in §4.6, as a
// Go 1.23 range-over-func sequence. committedLength is the backing
// array's current length, needed only to compute the terminal EndOp's
// key. Ranging over the sequence pushes down every node's key shift
// as it is visited; a consumer that stops ranging early still leaves
// the nodes it visited clean, but nodes beyond the stopping point keep
// whatever shift was pending on them when traversal paused — draining
// fully, every time, is what the commit applier does, and is the only
// supported way to observe the tree's full content (§5).
func (t *Tree[K, V]) Drain(committedLength int) iter.Seq[OpRecord[V]] {
	return func(yield func(OpRecord[V]) bool) {
		if !t.emitInOrder(t.root, yield) {
			return
		}
		end := OpRecord[V]{Key: committedLength + t.NetIndexBalance(), Kind: KindEnd}
		yield(end)
	}
}

func (t *Tree[K, V]) emitInOrder(n *Node[K, V], yield func(OpRecord[V]) bool) bool {
	if n == t.nilNode {
		return true
	}
	t.pushDown(n)
	if !t.emitInOrder(n.left, yield) {
		return false
	}
	if !yield(OpRecord[V]{Key: int(n.key), Kind: n.opA.Kind, Value: n.opA.Value, Count: n.opA.Count}) {
		return false
	}
	if n.hasB {
		if !yield(OpRecord[V]{Key: int(n.key), Kind: n.opB.Kind, Value: n.opB.Value, Count: n.opB.Count}) {
			return false
		}
	}
	return t.emitInOrder(n.right, yield)
}

// Cursor is a pull-based alternative to ranging over Drain, useful
// when the consumer's control flow does not fit a callback. (The
// commit applier in package deferred ranges over Drain directly.)
type Cursor[V any] struct {
	next func() (OpRecord[V], bool)
	stop func()
	done bool
}

// NewCursor returns a Cursor over the same stream Drain produces.
func (t *Tree[K, V]) NewCursor(committedLength int) *Cursor[V] {
	next, stop := iter.Pull(t.Drain(committedLength))
	return &Cursor[V]{next: next, stop: stop}
}

// Next advances the cursor, returning false once the EndOp record has
// already been consumed.
func (c *Cursor[V]) Next() (OpRecord[V], bool) {
	if c.done {
		return OpRecord[V]{}, false
	}
	rec, ok := c.next()
	if !ok {
		c.done = true
		return OpRecord[V]{}, false
	}
	if rec.Kind == KindEnd {
		c.done = true
	}
	return rec, true
}

// Close releases the cursor's underlying goroutine if the stream was
// not drained to EndOp. Safe to call multiple times.
func (c *Cursor[V]) Close() {
	c.stop()
}
