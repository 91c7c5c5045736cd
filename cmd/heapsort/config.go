// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"cloudeng.io/cmdutil"
)

// config represents the optional yaml config file. Fields that are
// not present in the file are left nil and do not override flags.
type config struct {
	Count      *int                   `yaml:"count"`
	Max        *int                   `yaml:"max"`
	Seed       *int                   `yaml:"seed"`
	Descending *bool                  `yaml:"descending"`
	Logging    *cmdutil.LoggingConfig `yaml:"logging"`
}

func (c config) applySort(fv *sortFlags) {
	if c.Count != nil {
		fv.Count = *c.Count
	}
	if c.Max != nil {
		fv.Max = *c.Max
	}
	if c.Seed != nil {
		fv.Seed = *c.Seed
	}
	if c.Descending != nil {
		fv.Descending = *c.Descending
	}
}
