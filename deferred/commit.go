package deferred

import (
	"github.com/deferlist/deferlist/array"
	"github.com/deferlist/deferlist/optree"
)

// commitInto merges tree's drained operation stream into arr in
// place. readIndex tracks the next untouched position in the
// original array, writeIndex the next position to fill in the
// rewritten one. An Insert reads the element it displaces into the
// queue before writing, so the shifted element waits there for a
// free output slot; a Remove lets readIndex run ahead of writeIndex
// (source elements are skipped rather than copied). While source
// elements remain, readIndex never falls behind writeIndex, so every
// slot is read before it is overwritten and the merge needs no copy
// of the array beyond the queue.
func commitInto[V any](tree *optree.Tree[int, V], arr *array.Array[V]) {
	originalLen := arr.Len()
	q := newRingBuffer[V](tree.NodeCount() + 1)

	writeIndex, readIndex := 0, 0
	var pendingSet V
	hasPendingSet := false

	writeAt := func(pos int, v V) {
		if pos < arr.Len() {
			arr.Set(pos, v)
		} else {
			arr.Append(v)
		}
	}

	advanceTo := func(target int) {
		for writeIndex < target {
			if readIndex < originalLen {
				v, _ := arr.Get(readIndex)
				q.push(v)
				readIndex++
			}
			var out V
			if hasPendingSet {
				out = pendingSet
				hasPendingSet = false
				q.drop(1)
			} else {
				out = q.pop()
			}
			writeAt(writeIndex, out)
			writeIndex++
		}
	}

	for rec := range tree.Drain(originalLen) {
		if rec.Kind == optree.KindEnd {
			advanceTo(rec.Key)
			if arr.Len() > rec.Key {
				arr.RemoveRun(rec.Key, arr.Len()-rec.Key)
			}
			break
		}

		advanceTo(rec.Key)
		switch rec.Kind {
		case optree.KindInsert:
			if readIndex < originalLen {
				v, _ := arr.Get(readIndex)
				q.push(v)
				readIndex++
			}
			writeAt(writeIndex, rec.Value)
			writeIndex++
		case optree.KindSet:
			pendingSet = rec.Value
			hasPendingSet = true
		case optree.KindRemove:
			dropped := q.drop(rec.Count)
			readIndex += rec.Count - dropped
		}
	}
}
