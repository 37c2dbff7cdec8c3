// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newWatchedStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeSite(t, path, "Old", "/a")
	store := NewStore(
		NewLoader(NewFileSource(path), noEnv()),
		WithDebounce(20*time.Millisecond),
		WithReloadLimit(time.Millisecond),
	)
	_, err := store.Load(context.Background())
	require.NoError(t, err)
	return store, path
}

func waitForSnapshot(t *testing.T, ch <-chan *Snapshot) *Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
		return nil
	}
}

func TestStartWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, path := newWatchedStore(t)
	ch := make(chan *Snapshot, 4)
	store.Subscribe(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.StartWatcher(ctx))
	defer store.Stop()

	writeSite(t, path, "New", "/a", "/b")

	snap := waitForSnapshot(t, ch)
	cfg := snap.Config()
	assert.Equal(t, "New", cfg.SEO.SiteName)
	assert.Len(t, cfg.Header.Links, 2)

	store.Stop()
}

func TestStartWatcher_ReloadsOnAtomicReplace(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, path := newWatchedStore(t)
	ch := make(chan *Snapshot, 4)
	store.Subscribe(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.StartWatcher(ctx))
	defer store.Stop()

	cfg, err := store.Get()
	require.NoError(t, err)
	cfg.SEO.SiteName = "Replaced"
	require.NoError(t, NewManager(path).Save(cfg))

	snap := waitForSnapshot(t, ch)
	assert.Equal(t, "Replaced", snap.Config().SEO.SiteName)

	store.Stop()
}

func TestStartWatcher_InvalidEditKeepsSnapshot(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, path := newWatchedStore(t)
	ch := make(chan *Snapshot, 4)
	store.Subscribe(ch)
	rev := store.Current().Revision()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.StartWatcher(ctx))
	defer store.Stop()

	require.NoError(t, os.WriteFile(path, []byte("ui:\n  accent: pink\n"), 0o600))

	// Follow up with a valid edit; only that one may be published.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, rev, store.Current().Revision(), "invalid document must not replace the snapshot")

	writeSite(t, path, "Fixed", "/a")
	snap := waitForSnapshot(t, ch)
	assert.Equal(t, "Fixed", snap.Config().SEO.SiteName)

	store.Stop()
}

func TestStartWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, path := newWatchedStore(t)
	ch := make(chan *Snapshot, 4)
	store.Subscribe(ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, store.StartWatcher(ctx))
	defer store.Stop()

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0o600))

	select {
	case <-ch:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}

	store.Stop()
}

func TestStartWatcher_AlreadyRunning(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, _ := newWatchedStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.StartWatcher(ctx))
	assert.Error(t, store.StartWatcher(ctx))

	store.Stop()
	store.Stop() // second Stop is a no-op
}

func TestStartWatcher_NonFileSourceIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewStore(NewLoader(DefaultSource(), noEnv()))
	require.NoError(t, store.StartWatcher(context.Background()))
	store.Stop()
}

func TestStartWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, _ := newWatchedStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, store.StartWatcher(ctx))

	cancel()
	store.Stop()
}
