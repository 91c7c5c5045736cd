// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "fmt"

// View presents a contiguous range of a backing Sequence as a Sequence
// in its own right. It never copies elements: At and Set are translated
// to the backing sequence by adding the view's offset. RemoveLast and
// Append change the view's logical length only, the length of the
// backing sequence is never changed.
//
// A View must not be used once the backing sequence has been
// structurally changed (appended to or shortened) via any other means.
type View[T any] struct {
	seq   Sequence[T]
	start int
	n     int
}

// NewView returns a View of the n elements of seq starting at start.
// It panics if that range is not within seq.
func NewView[T any](seq Sequence[T], start, n int) *View[T] {
	if start < 0 || n < 0 || start+n > seq.Len() {
		panic(fmt.Sprintf("heap: view [%v:%v] out of range for sequence of length %v", start, start+n, seq.Len()))
	}
	return &View[T]{seq: seq, start: start, n: n}
}

// Len returns the logical length of the view.
func (v *View[T]) Len() int {
	return v.n
}

func (v *View[T]) At(i int) T {
	return v.seq.At(v.start + i)
}

func (v *View[T]) Set(i int, x T) {
	v.seq.Set(v.start+i, x)
}

// Append overwrites the element of the backing sequence immediately
// following the view and extends the view to include it. It panics if
// there is no such element.
func (v *View[T]) Append(x T) {
	if v.start+v.n >= v.seq.Len() {
		panic(fmt.Sprintf("heap: view of length %v at offset %v cannot grow beyond sequence of length %v", v.n, v.start, v.seq.Len()))
	}
	v.seq.Set(v.start+v.n, x)
	v.n++
}

// RemoveLast shrinks the view by one element, the element itself is
// left in place in the backing sequence.
func (v *View[T]) RemoveLast() {
	if v.n == 0 {
		panic("heap: RemoveLast on empty view")
	}
	v.n--
}

func (v *View[T]) Compare(a, b T) int {
	return v.seq.Compare(a, b)
}
