// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/ManuGH/sitecfg/internal/metrics"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Store caches the active configuration as an immutable Snapshot.
// Readers never block; loads are serialized.
type Store struct {
	loader  *Loader
	logger  zerolog.Logger
	now     func() time.Time
	loadMu  sync.Mutex
	current atomic.Pointer[Snapshot]

	// File watching
	watchMu  sync.Mutex
	watcher  *fsnotify.Watcher
	done     chan struct{}
	debounce time.Duration
	limiter  *rate.Limiter

	// Reload notifications
	subsMu      sync.RWMutex
	subscribers []chan<- *Snapshot
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used to stamp snapshots.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithDebounce sets how long the watcher waits for file events to settle.
func WithDebounce(d time.Duration) StoreOption {
	return func(s *Store) { s.debounce = d }
}

// WithReloadLimit caps automatic reloads to one per interval.
func WithReloadLimit(interval time.Duration) StoreOption {
	return func(s *Store) { s.limiter = rate.NewLimiter(rate.Every(interval), 1) }
}

// NewStore creates a store backed by loader. Nothing is read until Load.
func NewStore(loader *Loader, opts ...StoreOption) *Store {
	s := &Store{
		loader:   loader,
		logger:   log.WithComponent("config"),
		now:      time.Now,
		debounce: 500 * time.Millisecond,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the source, validates it and caches the result.
// On failure the previously cached snapshot, if any, stays active.
// Loading an unchanged document keeps the current snapshot and revision.
func (s *Store) Load(ctx context.Context) (SiteConfig, error) {
	snap, _, err := s.refresh(ctx)
	if err != nil {
		metrics.RecordConfigLoad(metrics.OutcomeFailure)
		return SiteConfig{}, err
	}
	metrics.RecordConfigLoad(metrics.OutcomeSuccess)
	return snap.Config(), nil
}

// Get returns a copy of the cached configuration.
func (s *Store) Get() (SiteConfig, error) {
	snap := s.current.Load()
	if snap == nil {
		return SiteConfig{}, ErrNotLoaded
	}
	return snap.Config(), nil
}

// Current returns the active snapshot, or nil before the first successful load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Reload reloads configuration from the source and validates it.
// If loading fails, the old snapshot is kept and an error is returned.
// Subscribers are notified only when the configuration actually changed.
func (s *Store) Reload(ctx context.Context) error {
	logger := log.WithContext(ctx, s.logger)
	logger.Info().Str(log.FieldEvent, "config.reload_start").Msg("reloading configuration")

	snap, changed, err := s.refresh(ctx)
	if err != nil {
		metrics.RecordConfigReload(metrics.OutcomeFailure)
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "config.reload_failed").
			Msg("failed to reload configuration, keeping previous snapshot")
		return err
	}
	if !changed {
		metrics.RecordConfigReload(metrics.OutcomeUnchanged)
		logger.Info().
			Str(log.FieldEvent, "config.reload_unchanged").
			Str(log.FieldRevision, snap.Revision()).
			Msg("configuration unchanged")
		return nil
	}

	metrics.RecordConfigReload(metrics.OutcomeSuccess)
	s.notifySubscribers(snap)
	logger.Info().
		Str(log.FieldEvent, "config.reload_success").
		Str(log.FieldRevision, snap.Revision()).
		Msg("configuration reloaded successfully")
	return nil
}

// refresh loads and, when the result differs from the active snapshot,
// atomically swaps in a new one.
func (s *Store) refresh(ctx context.Context) (*Snapshot, bool, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	logger := log.WithContext(ctx, s.logger)
	source := s.loader.Source().Name()

	cfg, err := s.loader.Load()
	if err != nil {
		logger.Error().
			Err(err).
			Str(log.FieldEvent, "config.load_failed").
			Str(log.FieldSource, source).
			Msg("configuration rejected")
		return nil, false, err
	}

	prev := s.current.Load()
	if prev != nil && Equal(prev.cfg, cfg) {
		return prev, false, nil
	}

	next := NewSnapshot(cfg, source, s.now())
	s.current.Store(next)
	metrics.SetActiveConfig(len(cfg.Header.Links), len(cfg.Header.ExternalLinks), next.LoadedAt())

	event := logger.Info().
		Str(log.FieldEvent, "config.load_success").
		Str(log.FieldSource, source).
		Str(log.FieldRevision, next.Revision()).
		Int("links", len(cfg.Header.Links)).
		Int("external_links", len(cfg.Header.ExternalLinks))
	if prev != nil {
		event = event.Strs("changed", Diff(prev.cfg, cfg))
	}
	event.Msg("configuration loaded")

	return next, true, nil
}

// Subscribe registers a channel to receive every new snapshot after a
// successful reload. Sends never block; a full channel misses the update.
// The caller is responsible for closing the channel.
func (s *Store) Subscribe(ch chan<- *Snapshot) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subscribers = append(s.subscribers, ch)
}

// notifySubscribers sends the new snapshot to all subscribers (non-blocking).
func (s *Store) notifySubscribers(snap *Snapshot) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			s.logger.Warn().
				Str(log.FieldEvent, "config.subscriber_skip").
				Msg("skipped notifying subscriber (channel full)")
		}
	}
}
