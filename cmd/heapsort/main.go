// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapsort demonstrates the in-place heap operations provided by
// cloudeng.io/binheap/container/heap on sequences of integers.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml config file, values it contains override the corresponding flags'"`
}

type sortFlags struct {
	CommonFlags
	Count      int  `subcmd:"count,20,number of random values to generate when none are given"`
	Max        int  `subcmd:"max,20,'random values are generated in the range [0, max)'"`
	Seed       int  `subcmd:"seed,0,'seed for generating random values, 0 uses the current time'"`
	Descending bool `subcmd:"descending,false,sort into descending order"`
}

type heapifyFlags struct {
	CommonFlags
}

type queueFlags struct {
	CommonFlags
}

func init() {
	sortCmd := subcmd.NewCommand("sort",
		subcmd.MustRegisterFlagStruct(&sortFlags{}, nil, nil),
		func(ctx context.Context, values any, args []string) error {
			return runSort(ctx, os.Stdout, values.(*sortFlags), args)
		})
	sortCmd.Document(`sort integers in place using heapsort, random integers are generated if none are specified`, "[integer]...")

	heapifyCmd := subcmd.NewCommand("heapify",
		subcmd.MustRegisterFlagStruct(&heapifyFlags{}, nil, nil),
		func(ctx context.Context, values any, args []string) error {
			return runHeapify(ctx, os.Stdout, values.(*heapifyFlags), args)
		}, subcmd.AtLeastNArguments(1))
	heapifyCmd.Document(`rearrange integers into a min-heap and report whether they already formed one`, "<integer>...")

	queueCmd := subcmd.NewCommand("queue",
		subcmd.MustRegisterFlagStruct(&queueFlags{}, nil, nil),
		func(ctx context.Context, values any, args []string) error {
			return runQueue(ctx, os.Stdout, values.(*queueFlags), args)
		}, subcmd.AtLeastNArguments(1))
	queueCmd.Document(`replay priority queue operations against an initially empty heap.
Operations are: push:<n>, pop, peek, pushpop:<n> and replace:<n>.`, "<operation>...")

	cmdSet = subcmd.NewCommandSet(sortCmd, heapifyCmd, queueCmd)
	cmdSet.Document(`demonstrate in-place binary heap operations on sequences of integers`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}

// setup reads the config file, if any, and returns a context carrying the
// configured logger along with a closer for that logger.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, config, io.Closer, error) {
	var cfg config
	if len(cf.Config) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(cf.Config, &cfg); err != nil {
			return ctx, cfg, nil, err
		}
	}
	lc := cf.LoggingConfig()
	if cfg.Logging != nil {
		lc = *cfg.Logging
	}
	logger, err := lc.NewLogger()
	if err != nil {
		return ctx, cfg, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("configured", "config", cf.Config, "log.level", lc.Level, "log.format", lc.Format)
	return ctx, cfg, logger, nil
}

// run calls fn with a configured context and closes the logger when
// fn returns.
func (cf *CommonFlags) run(ctx context.Context, fn func(ctx context.Context, cfg config) error) error {
	ctx, cfg, closer, err := cf.setup(ctx)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	errs.Append(fn(ctx, cfg))
	errs.Append(closer.Close())
	return errs.Err()
}
