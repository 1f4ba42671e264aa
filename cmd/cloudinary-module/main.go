// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command cloudinary-module resolves the Cloudinary module configuration
// from a host config file, CLOUDINARY_* environment variables and flags,
// and generates the runtime plugin files into a build directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
