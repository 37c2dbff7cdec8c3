// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ManuGH/sitecfg/internal/config"
	"github.com/ManuGH/sitecfg/internal/log"
)

func runWatch(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitecfg watch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	var debounce time.Duration

	fs.StringVar(&file, "file", "", "path to YAML or JSON configuration file")
	fs.StringVar(&file, "f", "", "path to YAML or JSON configuration file (shorthand)")
	fs.DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before a changed file is reloaded")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	configPath := resolveConfigPath(file)
	if configPath == "" {
		fmt.Fprintf(stderr, "Error: --file is required (or set $%s)\n", config.EnvConfigPath)
		return 2
	}

	logger := log.WithComponent("watch")
	store := config.NewStore(config.NewLoader(config.NewFileSource(configPath)), config.WithDebounce(debounce))

	cfg, err := store.Load(ctx)
	if err != nil {
		config.WriteReport(stderr, configPath, err)
		return 1
	}

	updates := make(chan *config.Snapshot, 1)
	store.Subscribe(updates)

	if err := store.StartWatcher(ctx); err != nil {
		logger.Error().Err(err).Str(log.FieldEvent, "config.watcher_failed").Msg("failed to start config watcher")
		return 1
	}
	defer store.Stop()

	printSnapshot(stdout, store.Current(), nil)

	prev := cfg
	for {
		select {
		case <-ctx.Done():
			return 0
		case snap := <-updates:
			next := snap.Config()
			changed := config.Diff(prev, next)
			printSnapshot(stdout, snap, changed)

			rl := log.WithComponentFromContext(log.ContextWithRevision(ctx, snap.Revision()), "watch")
			for _, section := range changed {
				rl.Info().
					Str(log.FieldEvent, "config.section_changed").
					Str(log.FieldSection, section).
					Msg("configuration section changed")
			}
			prev = next
		}
	}
}

func printSnapshot(w io.Writer, snap *config.Snapshot, changed []string) {
	cfg := snap.Config()
	line := fmt.Sprintf("revision %s from %s: %d links, %d external links",
		snap.Revision(), snap.Source(), len(cfg.Header.Links), len(cfg.Header.ExternalLinks))
	if len(changed) > 0 {
		line += " (changed: " + strings.Join(changed, ", ") + ")"
	}
	fmt.Fprintln(w, line)
}
