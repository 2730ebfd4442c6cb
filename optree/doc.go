// Package optree implements the operation tree: an order-statistic
// red-black tree that records pending positional edits (insert, set,
// remove) against a sequence, keyed by the index the caller currently
// observes rather than by a fixed slot.
//
// Two lazy augmentations ride along with the usual red-black machinery:
// a subtree key shift, which lets a single edit retarget every node to
// its right without visiting them, and a subtree index balance, the net
// number of elements the pending edits in a subtree add to or remove
// from the sequence. A per-node operation slot can fuse up to two
// colocated edits (a Remove immediately followed by a Set at the
// emerging index) into one node.
//
// The tree trusts its caller completely: it performs no bounds checking
// and every failure it can detect is a bug in the tree itself, reported
// as a ConsistencyError rather than a normal error value. It is not
// safe for concurrent use.
package optree
