// Copyright 2016 The Citar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliutil holds the small set of helpers the hunspellgo command
// line tools share.
package cliutil

import (
	"fmt"
	"os"
)

// ExitIfError prints prefix and err to stderr and exits with status 1,
// if err is not nil.
func ExitIfError(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err.Error())
		os.Exit(1)
	}
}
