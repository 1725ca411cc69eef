// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for oadkit.
//
// Usage:
//
//	go run . [flags]
//	./oadkit [flags]
//
// This launches the oadkit CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cadolab/oadkit/buildvars"
	"github.com/cadolab/oadkit/ui/cli"
)

func main() {
	version := buildvars.VersionOrDefault("dev")
	if os.Getenv("OADKIT_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "oadkit version: %s\n", version)
	}

	cli.SetBuildInfo(version, buildvars.Commit, buildvars.Date)

	if err := cli.Execute(); err != nil {
		log.Printf("oadkit CLI error: %v", err)
		os.Exit(1)
	}
}
