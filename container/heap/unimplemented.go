// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cloudeng.io/errors"

// Merge is intended to merge multiple heaps into a single sorted
// sequence. It is not implemented and always returns ErrNotImplemented.
func Merge[T any](heaps ...Sequence[T]) ([]T, error) {
	return nil, notImplemented("Merge")
}

// NSmallest is intended to return the n smallest elements of s. It is not
// implemented and always returns ErrNotImplemented.
func NSmallest[T any](s Sequence[T], n int) ([]T, error) {
	return nil, notImplemented("NSmallest")
}

// NLargest is intended to return the n largest elements of s. It is not
// implemented and always returns ErrNotImplemented.
func NLargest[T any](s Sequence[T], n int) ([]T, error) {
	return nil, notImplemented("NLargest")
}

// notImplemented annotates ErrNotImplemented with the operation and the
// location of the code that called it.
func notImplemented(op string) error {
	return errors.Annotate(errors.FileLocation(3, 2)+": "+op, ErrNotImplemented)
}
