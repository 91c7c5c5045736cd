// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"cloudeng.io/binheap/container/heap"
)

func TestSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(0)) // #nosec: G404
	for n := 0; n < 300; n++ {
		input := make([]int, n)
		for i := range input {
			input[i] = rnd.Intn(100) - 50
		}
		want := sortedCopy(input)

		s := heap.Slice[int](slices.Clone(input))
		heap.Sort(&s)
		if got := []int(s); !slices.Equal(got, want) {
			t.Errorf("ascending: got %v, want %v", got, want)
		}

		s = heap.Slice[int](slices.Clone(input))
		heap.SortDescending(&s)
		slices.Reverse(want)
		if got := []int(s); !slices.Equal(got, want) {
			t.Errorf("descending: got %v, want %v", got, want)
		}
	}
}

func TestSortOrdered(t *testing.T) {
	for i, tc := range []struct {
		input, ascending []int
	}{
		{[]int{2, 1}, []int{1, 2}},
		{[]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{[]int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{[]int{3, 3, 1, 1, 2, 2}, []int{1, 1, 2, 2, 3, 3}},
		{[]int{7, 7, 7}, []int{7, 7, 7}},
	} {
		s := heap.Slice[int](slices.Clone(tc.input))
		heap.Sort(&s)
		if got, want := []int(s), tc.ascending; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestSortStrings(t *testing.T) {
	input := []string{"delta", "alpha", "echo", "charlie", "bravo", "alpha"}
	s := heap.Slice[string](slices.Clone(input))
	heap.Sort(&s)
	if got, want := []string(s), sortedCopy(input); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortComparables(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rnd := rand.New(rand.NewSource(1)) // #nosec: G404
	times := make([]time.Time, 100)
	for i := range times {
		times[i] = now.Add(time.Duration(rnd.Intn(10000)) * time.Second)
	}
	s := heap.Comparables[time.Time](slices.Clone(times))
	heap.Sort(&s)
	if !slices.IsSortedFunc(s, time.Time.Compare) {
		t.Errorf("not sorted: %v", s)
	}

	s = heap.Comparables[time.Time](slices.Clone(times))
	heap.Heapify(&s)
	if !heap.IsMinHeap(&s) {
		t.Errorf("not a min-heap")
	}
	first, err := heap.Pop(&s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := first, slices.MinFunc(times, time.Time.Compare); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortView(t *testing.T) {
	// Sorting a view leaves the rest of the backing sequence untouched.
	s := heap.Slice[int]{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	heap.Sort(heap.NewView[int](&s, 2, 6))
	if got, want := []int(s), []int{9, 8, 2, 3, 4, 5, 6, 7, 1, 0}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
