// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// SPDX-License-Identifier: MIT

// sitecfg loads, checks and rewrites the site configuration document.
//
// Usage:
//
//	sitecfg validate [-f site.yaml]
//	sitecfg dump [-f site.yaml] [--format yaml|json]
//	sitecfg fmt -f site.yaml [--check]
//	sitecfg init -o site.yaml [--force]
//	sitecfg watch [-f site.yaml]
//	sitecfg version
//
// Without -f the path is taken from $SITECFG_CONFIG.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/ManuGH/sitecfg/internal/validate"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Create a context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	level := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if level != "" {
		if _, err := validate.ParseLogLevel(level); err != nil {
			fmt.Fprintf(stderr, "Error: LOG_LEVEL=%q: %v\n", level, err)
			return 2
		}
	}
	log.Configure(log.Config{
		Level:   level,
		Output:  stderr,
		Service: "sitecfg",
	})

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stderr)
		return 0
	}

	switch args[0] {
	case "validate":
		return runValidate(args[1:], stdout, stderr)
	case "dump":
		return runDump(args[1:], stdout, stderr)
	case "fmt":
		return runFmt(args[1:], stdout, stderr)
	case "init":
		return runInit(args[1:], stdout, stderr)
	case "watch":
		return runWatch(ctx, args[1:], stdout, stderr)
	case "version", "--version":
		fmt.Fprintf(stdout, "%s (commit: %s, built: %s)\n", version, commit, buildDate)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown subcommand: %s\n\n", args[0])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  sitecfg validate [--file|-f site.yaml]")
	fmt.Fprintln(w, "  sitecfg dump [--file|-f site.yaml] [--format=yaml|json]")
	fmt.Fprintln(w, "  sitecfg fmt --file|-f site.yaml [--check]")
	fmt.Fprintln(w, "  sitecfg init --output|-o site.yaml [--force]")
	fmt.Fprintln(w, "  sitecfg watch [--file|-f site.yaml]")
	fmt.Fprintln(w, "  sitecfg version")
}
