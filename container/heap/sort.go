// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Sort sorts s into ascending order in place using heapsort.
// The complexity is O(n log n) where n = s.Len().
func Sort[T any](s Sequence[T]) {
	// Repeatedly moving the root of a heap to the end of the active
	// region leaves the tail ordered from the opposite end, so an
	// ascending sort needs a max-heap.
	sortInPlace[T](reversed[T]{s})
}

// SortDescending sorts s into descending order in place using
// heapsort.
func SortDescending[T any](s Sequence[T]) {
	sortInPlace(s)
}

func sortInPlace[T any](s Sequence[T]) {
	n := s.Len()
	if n < 2 {
		return
	}
	Heapify(s)
	active := NewView(s, 0, n)
	for k := n - 1; k > 0; k-- {
		swap(s, 0, k)
		active.RemoveLast()
		down[T](active, 0)
	}
}
