// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides binary min-heap operations that work in place on
// a caller owned sequence. Unlike the standard library's container/heap
// the heap is not a type of its own: any container that implements
// Sequence can be heapified, pushed to, popped from and sorted.
//
//	s := heap.Slice[int]{5, 6, 1, 0}
//	heap.Heapify(&s)
//	min, err := heap.Pop(&s)
//
// The minimum element is always at index 0 and the children of the
// element at index k are at 2k+1 and 2k+2. Slice and Comparables are
// provided for slices of cmp.Ordered values and of types with a
// Compare method respectively. A View exposes a prefix (or any other
// contiguous range) of a sequence as a sequence in its own right without
// copying it.
//
// None of the operations are safe for concurrent use with any other
// operation on the same sequence.
package heap
