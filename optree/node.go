package optree

import "golang.org/x/exp/constraints"

// color is a red-black node color. Unlike go-iradix-generic's keyT,
// which bounds radix labels, the operation tree bounds its key type by
// constraints.Integer so the same tree works over int, int32, or
// int64 index spaces without a conversion at the boundary.
type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

// Node is a vertex of the operation tree. left, right and parent
// always point at a real node or at the tree's sentinel, never at a
// Go nil, so every traversal can dereference blindly.
type Node[K constraints.Integer, V any] struct {
	key          K
	keyShift     K
	indexBalance int
	color        color

	left, right, parent *Node[K, V]

	opA   Operation[V]
	opB   Operation[V]
	hasB  bool
}

// empty reports whether the node's operation slot has collapsed to
// nothing. Such a node is transient: it is physically removed from
// the tree in the same step that empties it (invariant 5, §3).
func (n *Node[K, V]) empty() bool {
	return n.opA.empty()
}

// weight is the node's own contribution to its subtree's index
// balance. opB, when present, is always a Set and never contributes.
func (n *Node[K, V]) weight() int {
	return weight(n.opA)
}
