// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cloudeng.io/errors"

var (
	// ErrEmpty is returned by operations that require at least one
	// element when called on an empty sequence.
	ErrEmpty = errors.New("heap: empty sequence")
	// ErrNotImplemented is returned by operations that are defined but
	// not implemented.
	ErrNotImplemented = errors.New("heap: not implemented")
)

func parent(k int) int { return (k - 1) >> 1 }
func left(k int) int   { return (k << 1) + 1 }
func right(k int) int  { return (k << 1) + 2 }

func less[T any](s Sequence[T], i, j int) bool {
	return s.Compare(s.At(i), s.At(j)) < 0
}

func swap[T any](s Sequence[T], i, j int) {
	x := s.At(i)
	s.Set(i, s.At(j))
	s.Set(j, x)
}

// down restores the heap invariant for the subtree rooted at k assuming
// that the subtrees rooted at its children are already heaps.
func down[T any](s Sequence[T], k int) {
	n := s.Len()
	for {
		smallest := k
		if l := left(k); l < n && less(s, l, smallest) {
			smallest = l
		}
		if r := right(k); r < n && less(s, r, smallest) {
			smallest = r
		}
		if smallest == k {
			return
		}
		swap(s, k, smallest)
		k = smallest
	}
}

// up moves the element at k towards the root until its parent is no
// greater than it.
func up[T any](s Sequence[T], k int) {
	for k > 0 {
		p := parent(k)
		if !less(s, k, p) {
			return
		}
		swap(s, k, p)
		k = p
	}
}

// Heapify rearranges the elements of s into a min-heap.
// The complexity is O(n) where n = s.Len().
func Heapify[T any](s Sequence[T]) {
	// Leaves are already heaps, so start at the last parent.
	for k := s.Len()/2 - 1; k >= 0; k-- {
		down(s, k)
	}
}

// IsMinHeap returns true if s satisfies the min-heap invariant.
func IsMinHeap[T any](s Sequence[T]) bool {
	n := s.Len()
	for k := 0; k < n; k++ {
		l, r := left(k), right(k)
		if l >= n {
			break
		}
		if less(s, l, k) {
			return false
		}
		if r < n && less(s, r, k) {
			return false
		}
	}
	return true
}

// Peek returns the minimum element of the heap without removing it.
func Peek[T any](s Sequence[T]) (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.At(0), nil
}

// Pop removes and returns the minimum element of the heap.
// The complexity is O(log n) where n = s.Len().
func Pop[T any](s Sequence[T]) (T, error) {
	n := s.Len()
	if n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	root := s.At(0)
	s.Set(0, s.At(n-1))
	s.RemoveLast()
	if n > 1 {
		down(s, 0)
	}
	return root, nil
}

// Push adds item to the heap.
// The complexity is O(log n) where n = s.Len().
func Push[T any](s Sequence[T], item T) {
	s.Append(item)
	up(s, s.Len()-1)
}

// PushPop is equivalent to Push followed by Pop but is more efficient
// and never grows s. If item is no greater than the current minimum, or
// s is empty, item is returned and s is left untouched.
func PushPop[T any](s Sequence[T], item T) T {
	if s.Len() == 0 || s.Compare(item, s.At(0)) <= 0 {
		return item
	}
	root := s.At(0)
	s.Set(0, item)
	down(s, 0)
	return root
}

// Replace is equivalent to Pop followed by Push but is more efficient.
// Unlike PushPop the returned value is always the previous minimum,
// even when item is smaller than it.
func Replace[T any](s Sequence[T], item T) (T, error) {
	if s.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	root := s.At(0)
	s.Set(0, item)
	down(s, 0)
	return root, nil
}
