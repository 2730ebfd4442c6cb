package optree

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	uuid "github.com/hashicorp/go-uuid"
)

// Tree is an order-statistic red-black tree of pending edits. The
// zero value is not usable; construct one with New.
type Tree[K constraints.Integer, V any] struct {
	// ID correlates a tree instance across structured log lines
	// emitted by its collaborators (the façade, the CLI demo). The
	// tree itself never logs.
	ID string

	nilNode *Node[K, V]
	root    *Node[K, V]
	count   int

	// stack is reserved scratch space for an iterative traversal; Drain
	// walks the tree recursively and does not use it.
	stack []*Node[K, V]
}

// New returns an empty operation tree.
func New[K constraints.Integer, V any]() *Tree[K, V] {
	nilNode := &Node[K, V]{color: black}
	nilNode.left, nilNode.right, nilNode.parent = nilNode, nilNode, nilNode

	id, err := uuid.GenerateUUID()
	if err != nil {
		// go-uuid only fails if the system entropy source is
		// broken; a tree identity is diagnostic, not load-bearing,
		// so fall back rather than fail construction.
		id = "unidentified"
	}

	return &Tree[K, V]{
		ID:      id,
		nilNode: nilNode,
		root:    nilNode,
	}
}

// NodeCount returns the number of nodes currently carrying pending
// operations.
func (t *Tree[K, V]) NodeCount() int {
	return t.count
}

// IsEmpty reports whether the tree holds no pending operations.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == t.nilNode
}

// NetIndexBalance is the net number of elements the pending
// operations add to (positive) or remove from (negative) the
// sequence.
func (t *Tree[K, V]) NetIndexBalance() int {
	return idxBal(t.root)
}

// Clear discards every pending operation, returning the tree to its
// initial empty state.
func (t *Tree[K, V]) Clear() {
	t.root = t.nilNode
	t.count = 0
}

// HeightBound reports ⌊2·log2(nodeCount+1)⌋, an upper bound on the
// tree's height used by collaborators to judge when an auto-commit is
// worth its cost.
func (t *Tree[K, V]) HeightBound() int {
	return heightBound(t.count)
}

func heightBound(nodeCount int) int {
	// ⌊2·log2(m)⌋ = ⌊log2(m²)⌋, the bit length of m² minus one.
	m := uint64(nodeCount + 1)
	return bits.Len64(m*m) - 1
}

// idxBal reads the sentinel-safe zero value without needing a nil
// check at every call site: the sentinel's fields are
// never written to, so they stay at their zero value for the whole
// life of the tree.
func idxBal[K constraints.Integer, V any](n *Node[K, V]) int {
	return n.indexBalance
}

func isRed[K constraints.Integer, V any](n *Node[K, V]) bool {
	return n.color == red
}

// pushDown folds a node's pending key shift into its own key and into
// both children's pending shifts, then clears it. It is a no-op on
// the sentinel (whose keyShift is always 0, invariant 4, §3) and on
// any node already at shift 0. Every traversal that observes or
// restructures a node must call this first — "push before you observe
// or restructure" (§9) — so the rest of the package assumes it has
// already happened by the time a node is reachable through t.root,
// t.left, or t.right from code that just visited its parent.
func (t *Tree[K, V]) pushDown(n *Node[K, V]) {
	if n == t.nilNode || n.keyShift == 0 {
		return
	}
	shift := n.keyShift
	n.key += shift
	if n.left != t.nilNode {
		n.left.keyShift += shift
	}
	if n.right != t.nilNode {
		n.right.keyShift += shift
	}
	n.keyShift = 0
}

// addBalance adds delta to n's index balance and to every ancestor's,
// including n itself. This is the single mechanism behind both "a new
// node attaches with weight w" (n.indexBalance starts at 0 and is
// walked up by w) and "an existing node's weight changed by delta"
// (§4.2, §4.3 step 4).
func (t *Tree[K, V]) addBalance(n *Node[K, V], delta int) {
	if delta == 0 {
		return
	}
	for p := n; p != t.nilNode; p = p.parent {
		p.indexBalance += delta
	}
}

func (t *Tree[K, V]) newNode(key K, op Operation[V]) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		color:  red,
		left:   t.nilNode,
		right:  t.nilNode,
		parent: t.nilNode,
		opA:    op,
	}
}
