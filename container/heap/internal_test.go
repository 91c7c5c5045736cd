// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap //nolint:revive // intentional shadowing

import (
	"slices"
	"testing"
)

// Verify reports the first node, if any, that violates the min-heap
// invariant in s.
func Verify[T any](t *testing.T, s Sequence[T]) {
	t.Helper()
	verify(t, s, 0)
}

func verify[T any](t *testing.T, s Sequence[T], p int) {
	t.Helper()
	n := s.Len()
	l, r := left(p), right(p)
	if l < n {
		if less(s, l, p) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, s.At(p), l, s.At(l))
			return
		}
		verify(t, s, l)
	}
	if r < n {
		if less(s, r, p) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, s.At(p), r, s.At(r))
			return
		}
		verify(t, s, r)
	}
}

func TestIndexArithmetic(t *testing.T) {
	for k := 0; k < 1000; k++ {
		if got, want := left(k), 2*k+1; got != want {
			t.Errorf("left(%v): got %v, want %v", k, got, want)
		}
		if got, want := right(k), 2*k+2; got != want {
			t.Errorf("right(%v): got %v, want %v", k, got, want)
		}
		if got, want := parent(left(k)), k; got != want {
			t.Errorf("parent(left(%v)): got %v, want %v", k, got, want)
		}
		if got, want := parent(right(k)), k; got != want {
			t.Errorf("parent(right(%v)): got %v, want %v", k, got, want)
		}
	}
}

func TestDownUp(t *testing.T) {
	// Only the root is out of place.
	s := Slice[int]{9, 1, 2, 3, 4, 5, 6}
	down[int](&s, 0)
	Verify[int](t, &s)
	if got, want := s[0], 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// A leaf is a no-op.
	s = Slice[int]{0, 1, 2}
	down[int](&s, 2)
	if got, want := []int(s), []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Equal keys are not swapped.
	s = Slice[int]{1, 1, 1}
	down[int](&s, 0)
	up[int](&s, 2)
	Verify[int](t, &s)

	// Only the last element is out of place.
	s = Slice[int]{1, 2, 3, 4, 5, 6, 0}
	up[int](&s, 6)
	Verify[int](t, &s)
	if got, want := s[0], 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReversed(t *testing.T) {
	s := Slice[int]{1, 5, 3, 9}
	r := reversed[int]{&s}
	Heapify[int](r)
	if got, want := s[0], 9; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if IsMinHeap[int](&s) {
		t.Errorf("a max-heap should not be a min-heap: %v", s)
	}
	if !IsMinHeap[int](r) {
		t.Errorf("not a max-heap: %v", s)
	}
}
