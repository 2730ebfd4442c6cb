// Package deferred exposes a sequence type backed by an operation
// tree (package optree) and a growable array (package array). Edits
// queue in the tree until a threshold or an explicit Commit folds
// them into the array in one linear pass.
package deferred
