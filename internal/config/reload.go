// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/fsnotify/fsnotify"
)

// pathSource is implemented by sources backed by a file on disk.
type pathSource interface {
	Path() string
}

// StartWatcher watches the config file for changes and reloads it.
// If the source is not a file this is a no-op. The watcher stops when ctx
// is cancelled or Stop is called.
func (s *Store) StartWatcher(ctx context.Context) error {
	src, ok := s.loader.Source().(pathSource)
	if !ok {
		s.logger.Info().
			Str(log.FieldEvent, "config.watcher_disabled").
			Str(log.FieldSource, s.loader.Source().Name()).
			Msg("config watcher disabled (source is not a file)")
		return nil
	}

	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	if s.watcher != nil {
		return errors.New("config watcher already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors and atomic writers replace the file by
	// rename, which would silently drop a watch on the file itself.
	path := src.Path()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close() // Ignore close error in error path
		return fmt.Errorf("watch config dir: %w", err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	s.logger.Info().
		Str(log.FieldEvent, "config.watcher_started").
		Str(log.FieldPath, path).
		Msg("watching config file for changes")

	go s.watchLoop(ctx, watcher, path, s.done)

	return nil
}

// Stop stops the config watcher (if running) and waits for it to exit.
func (s *Store) Stop() {
	s.watchMu.Lock()
	watcher, done := s.watcher, s.done
	s.watcher, s.done = nil, nil
	s.watchMu.Unlock()

	if watcher == nil {
		return
	}
	_ = watcher.Close() // Ignore close error, the loop exits either way
	<-done
}

// watchLoop is the main file watcher loop.
func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, done chan<- struct{}) {
	defer close(done)

	// Debounce timer to avoid multiple reloads for rapid file changes
	var debounce *time.Timer
	var fire <-chan time.Time
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str(log.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			_ = watcher.Close() // Ignore close error in shutdown path
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			// Write, Create and Rename cover in-place edits, atomic replaces and vim-style saves
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug().
				Str(log.FieldEvent, "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")

			if debounce == nil {
				debounce = time.NewTimer(s.debounce)
			} else {
				debounce.Reset(s.debounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			if err := s.limiter.Wait(ctx); err != nil {
				continue // ctx cancelled, handled on the next iteration
			}
			if err := s.Reload(ctx); err != nil {
				s.logger.Error().
					Err(err).
					Str(log.FieldEvent, "config.auto_reload_failed").
					Msg("automatic config reload failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error().
				Err(err).
				Str(log.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}
