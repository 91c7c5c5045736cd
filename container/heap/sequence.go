// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cmp"

// Sequence represents the capabilities that a container must provide in
// order to be used as a heap. Compare is a three-way comparison that
// returns a negative number, zero or a positive number when a is less
// than, equal to or greater than b; it must implement a total order.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
	Append(v T)
	RemoveLast()
	Compare(a, b T) int
}

// Slice is a Sequence for slices of ordered types.
type Slice[T cmp.Ordered] []T

func (s *Slice[T]) Len() int {
	return len(*s)
}

func (s *Slice[T]) At(i int) T {
	return (*s)[i]
}

func (s *Slice[T]) Set(i int, v T) {
	(*s)[i] = v
}

func (s *Slice[T]) Append(v T) {
	*s = append(*s, v)
}

// RemoveLast removes the last element, zeroing its slot so that the
// backing array does not retain it.
func (s *Slice[T]) RemoveLast() {
	var zero T
	n := len(*s) - 1
	(*s)[n] = zero
	*s = (*s)[:n]
}

func (s *Slice[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

// Comparable represents a type that can compare itself to other
// instances of the same type, time.Time for example.
type Comparable[T any] interface {
	Compare(T) int
}

// Comparables is a Sequence for slices of types that implement
// Comparable.
type Comparables[T Comparable[T]] []T

func (s *Comparables[T]) Len() int {
	return len(*s)
}

func (s *Comparables[T]) At(i int) T {
	return (*s)[i]
}

func (s *Comparables[T]) Set(i int, v T) {
	(*s)[i] = v
}

func (s *Comparables[T]) Append(v T) {
	*s = append(*s, v)
}

func (s *Comparables[T]) RemoveLast() {
	var zero T
	n := len(*s) - 1
	(*s)[n] = zero
	*s = (*s)[:n]
}

func (s *Comparables[T]) Compare(a, b T) int {
	return a.Compare(b)
}

// reversed inverts the order of the sequence it wraps, ie. a min-heap
// built on a reversed sequence is a max-heap of the underlying one.
type reversed[T any] struct {
	Sequence[T]
}

func (r reversed[T]) Compare(a, b T) int {
	return r.Sequence.Compare(b, a)
}
