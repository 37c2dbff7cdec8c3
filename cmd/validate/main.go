// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// SPDX-License-Identifier: MIT

// validate is a CLI tool to validate sitecfg YAML or JSON configuration files.
//
// Usage:
//
//	validate -f site.yaml
//	validate --file site.yaml --file other.json
//
// Exit codes:
//   - 0: Every configuration is valid
//   - 1: At least one configuration is invalid (read, parse or validation error)
//   - 2: Usage error (missing required flag)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/sitecfg/internal/config"
	"github.com/ManuGH/sitecfg/internal/log"
	"golang.org/x/sync/errgroup"
)

var Version = "dev"

// maxParallel bounds how many files are loaded at once.
const maxParallel = 8

// fileList collects repeated -f flags.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.Configure(log.Config{Output: stderr, Service: "validate"})

	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var files fileList
	var showVersion bool

	fs.Var(&files, "file", "path to YAML or JSON configuration file (repeatable)")
	fs.Var(&files, "f", "path to YAML or JSON configuration file (shorthand)")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	files = append(files, fs.Args()...)
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: --file is required")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  validate -f site.yaml")
		fmt.Fprintln(stderr, "  validate --file site.yaml [--file other.json ...]")
		return 2
	}

	results := validateAll(context.Background(), files)

	// Report in argument order regardless of completion order
	failed := 0
	for i, err := range results {
		if err != nil {
			failed++
			config.WriteReport(stderr, files[i], err)
			continue
		}
		fmt.Fprintf(stdout, "✓ %s is valid\n", files[i])
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// validateAll loads every file concurrently. The result slot for each file
// holds its load error, or nil when the file is valid.
func validateAll(ctx context.Context, files []string) []error {
	results := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			_, results[i] = config.NewLoader(config.NewFileSource(file)).Load()
			// An invalid file is a result, not a reason to stop the others.
			return nil
		})
	}
	_ = g.Wait() // Workers never return errors

	return results
}
