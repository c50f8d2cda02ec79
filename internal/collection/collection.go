// Package collection implements the ordered sibling sequences used by the
// diagram tree. Indices returned here are what undo relies on to put an
// element back exactly where it was.
package collection

import "slices"

// End is the insertion index meaning "append".
const End = -1

// InsertAt inserts item into seq at index and returns the resulting slice.
// A negative index or one past the end appends. Duplicates are not checked;
// callers remove the item first when moving it.
func InsertAt[T comparable](seq []T, item T, index int) []T {
	if index < 0 || index >= len(seq) {
		return append(seq, item)
	}
	return slices.Insert(seq, index, item)
}

// Remove deletes the first occurrence of item and returns the resulting slice
// together with the index the item had, or -1 if it was not present.
func Remove[T comparable](seq []T, item T) ([]T, int) {
	index := slices.Index(seq, item)
	if index < 0 {
		return seq, -1
	}
	return slices.Delete(seq, index, index+1), index
}

// IndexOf returns the position of item in seq, or -1.
func IndexOf[T comparable](seq []T, item T) int {
	return slices.Index(seq, item)
}

// Contains reports whether item is in seq.
func Contains[T comparable](seq []T, item T) bool {
	return slices.Contains(seq, item)
}
