package deferred

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/deferlist/deferlist/array"
	"github.com/deferlist/deferlist/optree"
)

// List is a sequence of V backed by a committed array with pending
// edits queued in an operation tree ahead of it. Not safe for
// concurrent use, matching the tree it wraps.
type List[V any] struct {
	tree *optree.Tree[int, V]
	arr  *array.Array[V]

	cache *lru.Cache[int, V]

	autoCommitMultiplier int
	logger                *slog.Logger

	poison error
}

// New returns an empty List.
func New[V any](opts ...Option) *List[V] {
	return NewFromSlice([]V(nil), opts...)
}

// NewFromSlice returns a List whose committed content starts as
// initial. The slice is taken by reference into the array's backing
// store, matching array.FromSlice.
func NewFromSlice[V any](initial []V, opts ...Option) *List[V] {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[V]{
		tree:                  optree.New[int, V](),
		arr:                   array.FromSlice(initial),
		autoCommitMultiplier:  o.autoCommitMultiplier,
		logger:                o.logger,
	}
	if o.lookupCacheSize > 0 {
		c, err := lru.New[int, V](o.lookupCacheSize)
		if err == nil {
			l.cache = c
		}
	}
	l.logger.Debug("list created", "tree_id", l.tree.ID, "initial_len", l.arr.Len())
	return l
}

// Len reports the sequence's current logical length, pending edits
// included.
func (l *List[V]) Len() int {
	return l.arr.Len() + l.tree.NetIndexBalance()
}

// Stats reports the sequence's committed length, pending node count
// and height bound, and the tree's correlation ID, for diagnostics.
type Stats struct {
	CommittedLen int
	PendingNodes int
	HeightBound  int
	TreeID       string
}

// Stats returns a snapshot of the list's internal sizing, useful for
// deciding whether an explicit Commit is worth calling.
func (l *List[V]) Stats() Stats {
	return Stats{
		CommittedLen: l.arr.Len(),
		PendingNodes: l.tree.NodeCount(),
		HeightBound:  l.tree.HeightBound(),
		TreeID:       l.tree.ID,
	}
}

func (l *List[V]) checkPoisoned() error {
	if l.poison != nil {
		return l.poison
	}
	return nil
}

func (l *List[V]) poisonFrom(err error) error {
	l.poison = err
	l.logger.Error("list poisoned by consistency failure", "tree_id", l.tree.ID, "error", err)
	return err
}

func (l *List[V]) checkRange(i int) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.Len())
	}
	return nil
}

// Get returns the element currently visible at index i.
func (l *List[V]) Get(i int) (V, error) {
	var zero V
	if err := l.checkPoisoned(); err != nil {
		return zero, err
	}
	if err := l.checkRange(i); err != nil {
		return zero, err
	}

	if l.cache != nil {
		if v, ok := l.cache.Get(i); ok {
			return v, nil
		}
	}

	found, value, fallback := l.tree.Find(i)
	if found {
		if l.cache != nil {
			l.cache.Add(i, value)
		}
		return value, nil
	}
	v, ok := l.arr.Get(fallback)
	if !ok {
		var ce error = &optree.ConsistencyError{Code: optree.CodeIllegalFusion, Message: fmt.Sprintf("fallback index %d out of array range", fallback)}
		return zero, l.poisonFrom(ce)
	}
	if l.cache != nil {
		l.cache.Add(i, v)
	}
	return v, nil
}

// Set overwrites the element currently visible at index i.
func (l *List[V]) Set(i int, v V) error {
	if err := l.checkPoisoned(); err != nil {
		return err
	}
	if err := l.checkRange(i); err != nil {
		return err
	}
	if err := l.tree.ApplySet(i, v); err != nil {
		return l.poisonFrom(err)
	}
	l.purgeCache()
	return l.maybeAutoCommit()
}

// Insert records that v becomes the new element at index i, shifting
// everything at or after i one position to the right. i may equal
// Len() to append.
func (l *List[V]) Insert(i int, v V) error {
	if err := l.checkPoisoned(); err != nil {
		return err
	}
	if i < 0 || i > l.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.Len())
	}
	if err := l.tree.ApplyInsert(i, v); err != nil {
		return l.poisonFrom(err)
	}
	l.purgeCache()
	return l.maybeAutoCommit()
}

// Append inserts v at the end of the sequence.
func (l *List[V]) Append(v V) error {
	return l.Insert(l.Len(), v)
}

// Remove records the removal of the element currently at index i.
func (l *List[V]) Remove(i int) error {
	if err := l.checkPoisoned(); err != nil {
		return err
	}
	if err := l.checkRange(i); err != nil {
		return err
	}
	if err := l.tree.ApplyRemove(i); err != nil {
		return l.poisonFrom(err)
	}
	l.purgeCache()
	return l.maybeAutoCommit()
}

// Commit folds every pending edit into the backing array. A no-op,
// not an error, when there is nothing pending.
func (l *List[V]) Commit() error {
	if err := l.checkPoisoned(); err != nil {
		return err
	}
	if l.tree.IsEmpty() {
		return nil
	}
	lenBefore := l.arr.Len()
	commitInto(l.tree, l.arr)
	l.tree.Clear()
	l.purgeCache()
	l.logger.Debug("committed", "tree_id", l.tree.ID, "len_before", lenBefore, "len_after", l.arr.Len())
	return nil
}

func (l *List[V]) purgeCache() {
	if l.cache != nil {
		l.cache.Purge()
	}
}

// maybeAutoCommit triggers Commit once the tree's pending node count
// reaches autoCommitMultiplier times one more than its own height
// bound, the
// "performance indicator" that keeps point lookups and edits from
// degrading as the tree grows without bound between explicit commits.
func (l *List[V]) maybeAutoCommit() error {
	if l.autoCommitMultiplier <= 0 {
		return nil
	}
	threshold := l.autoCommitMultiplier * (l.tree.HeightBound() + 1)
	if l.tree.NodeCount() < threshold {
		return nil
	}
	l.logger.Info("auto-commit threshold reached", "tree_id", l.tree.ID, "nodes", l.tree.NodeCount(), "threshold", threshold)
	return l.Commit()
}
