// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/sitecfg/internal/config"
)

// resolveConfigPath returns the -f value, falling back to $SITECFG_CONFIG.
func resolveConfigPath(file string) string {
	if p := strings.TrimSpace(file); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(config.EnvConfigPath))
}

func runValidate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitecfg validate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	fs.StringVar(&file, "file", "", "path to YAML or JSON configuration file")
	fs.StringVar(&file, "f", "", "path to YAML or JSON configuration file (shorthand)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	configPath := resolveConfigPath(file)
	if configPath == "" {
		fmt.Fprintf(stderr, "Error: --file is required (or set $%s)\n", config.EnvConfigPath)
		return 2
	}

	loader := config.NewLoader(config.NewFileSource(configPath))
	if _, err := loader.Load(); err != nil {
		config.WriteReport(stderr, configPath, err)
		return 1
	}

	fmt.Fprintf(stdout, "✓ %s is valid\n", configPath)
	return 0
}

func runDump(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitecfg dump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	var format string

	fs.StringVar(&file, "file", "", "path to YAML or JSON configuration file (default: built-in config)")
	fs.StringVar(&file, "f", "", "path to YAML or JSON configuration file (shorthand)")
	fs.StringVar(&format, "format", "yaml", "output format: yaml or json")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	outFormat, err := config.ParseFormat(strings.ToLower(strings.TrimSpace(format)))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var src config.Source = config.DefaultSource()
	if configPath := resolveConfigPath(file); configPath != "" {
		src = config.NewFileSource(configPath)
	}

	// Effective configuration: document + environment overrides
	cfg, err := config.NewLoader(src).Load()
	if err != nil {
		config.WriteReport(stderr, src.Name(), err)
		return 1
	}

	data, err := config.Marshal(cfg, outFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to encode %s: %v\n", outFormat, err)
		return 1
	}
	if _, err := stdout.Write(data); err != nil {
		fmt.Fprintf(stderr, "Failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func runFmt(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitecfg fmt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	var check bool

	fs.StringVar(&file, "file", "", "path to YAML or JSON configuration file")
	fs.StringVar(&file, "f", "", "path to YAML or JSON configuration file (shorthand)")
	fs.BoolVar(&check, "check", false, "report whether the file is canonical without rewriting it")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	configPath := resolveConfigPath(file)
	if configPath == "" {
		fmt.Fprintf(stderr, "Error: --file is required (or set $%s)\n", config.EnvConfigPath)
		return 2
	}

	// The document is rewritten as written, without environment overrides.
	src := config.NewFileSource(configPath)
	cfg, err := config.NewLoader(src, config.WithEnv(nil)).Load()
	if err != nil {
		config.WriteReport(stderr, configPath, err)
		return 1
	}

	current, err := src.Read()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	canonical, err := config.Marshal(cfg, src.Format())
	if err != nil {
		fmt.Fprintf(stderr, "Failed to encode %s: %v\n", src.Format(), err)
		return 1
	}

	if bytes.Equal(current, canonical) {
		return 0
	}
	if check {
		fmt.Fprintf(stdout, "%s is not canonically formatted\n", configPath)
		return 1
	}

	if err := config.NewManager(configPath).Save(cfg); err != nil {
		config.WriteReport(stderr, configPath, err)
		return 1
	}
	fmt.Fprintf(stdout, "formatted %s\n", configPath)
	return 0
}

func runInit(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitecfg init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var output string
	var force bool

	fs.StringVar(&output, "output", "", "path of the configuration file to create")
	fs.StringVar(&output, "o", "", "path of the configuration file to create (shorthand)")
	fs.BoolVar(&force, "force", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	output = strings.TrimSpace(output)
	if output == "" {
		fmt.Fprintln(stderr, "Error: --output is required")
		return 2
	}
	format, err := config.FormatFromPath(output)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if _, err := os.Stat(output); err == nil && !force {
		fmt.Fprintf(stderr, "Error: %s already exists (use --force to overwrite)\n", output)
		return 1
	}

	mgr := config.NewManager(output)
	if format == config.FormatYAML {
		// The built-in document is copied as is, comments and quoting included.
		err = mgr.SaveDocument(config.DefaultDocument())
	} else {
		var cfg config.SiteConfig
		cfg, err = config.NewLoader(config.DefaultSource(), config.WithEnv(nil)).Load()
		if err == nil {
			err = mgr.Save(cfg)
		}
	}
	if err != nil {
		config.WriteReport(stderr, output, err)
		return 1
	}

	fmt.Fprintf(stdout, "wrote %s\n", output)
	return 0
}
