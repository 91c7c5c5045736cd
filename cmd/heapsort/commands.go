// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/binheap/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

func parseInts(args []string) ([]int, error) {
	errs := &errors.M{}
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			errs.Append(fmt.Errorf("invalid integer %q: %w", a, err))
			continue
		}
		values = append(values, v)
	}
	return values, errs.Err()
}

func randomInts(count, limit, seed int) []int {
	if seed == 0 {
		seed = int(time.Now().UnixNano())
	}
	rnd := rand.New(rand.NewSource(int64(seed))) // #nosec: G404
	values := make([]int, count)
	for i := range values {
		values[i] = rnd.Intn(limit)
	}
	return values
}

func join(values []int) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return strings.Join(out, ", ")
}

func runSort(ctx context.Context, out io.Writer, fv *sortFlags, args []string) error {
	return fv.run(ctx, func(ctx context.Context, cfg config) error {
		cfg.applySort(fv)
		values, err := parseInts(args)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			if fv.Count < 0 || fv.Max <= 0 {
				return fmt.Errorf("invalid count (%v) or max (%v)", fv.Count, fv.Max)
			}
			values = randomInts(fv.Count, fv.Max, fv.Seed)
		}
		logger := ctxlog.Logger(ctx)
		logger.Info("sort", "values", len(values), "descending", fv.Descending)
		s := heap.Slice[int](values)
		fmt.Fprintln(out, join(s))
		start := time.Now()
		if fv.Descending {
			heap.SortDescending(&s)
		} else {
			heap.Sort(&s)
		}
		logger.Debug("sorted", "duration", time.Since(start))
		fmt.Fprintln(out, join(s))
		return nil
	})
}

func runHeapify(ctx context.Context, out io.Writer, fv *heapifyFlags, args []string) error {
	return fv.run(ctx, func(ctx context.Context, _ config) error {
		values, err := parseInts(args)
		if err != nil {
			return err
		}
		s := heap.Slice[int](values)
		already := heap.IsMinHeap(&s)
		heap.Heapify(&s)
		ctxlog.Logger(ctx).Info("heapify", "values", len(values), "already", already)
		fmt.Fprintf(out, "min-heap: %v\n", already)
		fmt.Fprintln(out, join(s))
		return nil
	})
}

func parseOp(op string) (name string, arg int, err error) {
	name, val, ok := strings.Cut(op, ":")
	switch name {
	case "pop", "peek":
		if ok {
			return "", 0, fmt.Errorf("%v: %v does not take an argument", op, name)
		}
		return name, 0, nil
	case "push", "pushpop", "replace":
		if !ok {
			return "", 0, fmt.Errorf("%v: %v requires an argument", op, name)
		}
		arg, err = strconv.Atoi(val)
		if err != nil {
			return "", 0, fmt.Errorf("%v: invalid integer %q: %w", op, val, err)
		}
		return name, arg, nil
	}
	return "", 0, fmt.Errorf("%v: unsupported operation", op)
}

// applyOp applies the named operation to s and returns its result, if
// it has one.
func applyOp(s *heap.Slice[int], name string, arg int) (string, error) {
	switch name {
	case "push":
		heap.Push(s, arg)
		return "", nil
	case "pushpop":
		return strconv.Itoa(heap.PushPop(s, arg)), nil
	}
	var v int
	var err error
	switch name {
	case "pop":
		v, err = heap.Pop(s)
	case "peek":
		v, err = heap.Peek(s)
	case "replace":
		v, err = heap.Replace(s, arg)
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

func runQueue(ctx context.Context, out io.Writer, fv *queueFlags, args []string) error {
	return fv.run(ctx, func(ctx context.Context, _ config) error {
		logger := ctxlog.Logger(ctx)
		var s heap.Slice[int]
		errs := &errors.M{}
		for _, op := range args {
			name, arg, err := parseOp(op)
			if err != nil {
				errs.Append(err)
				continue
			}
			result, err := applyOp(&s, name, arg)
			if err != nil {
				errs.Append(fmt.Errorf("%v: %w", op, err))
				fmt.Fprintf(out, "%v: error: %v\n", op, err)
				continue
			}
			if !heap.IsMinHeap(&s) {
				return fmt.Errorf("%v: min-heap invariant violated: %v", op, join(s))
			}
			logger.Debug("queue", "op", name, "arg", arg, "result", result, "len", s.Len())
			if len(result) == 0 {
				fmt.Fprintf(out, "%v: [%v]\n", op, join(s))
				continue
			}
			fmt.Fprintf(out, "%v: %v [%v]\n", op, result, join(s))
		}
		return errs.Err()
	})
}
