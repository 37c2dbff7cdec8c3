// Package testutil locates shared test fixtures from any package in the module.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// configTestdata is the fixture directory shared by the config package and the CLIs.
const configTestdata = "internal/config/testdata"

// RepoRoot returns the repository root by walking up to the nearest go.mod.
func RepoRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot determine caller")
	}
	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New("go.mod not found")
}

// MustRepoRoot returns the repo root or fails the test.
func MustRepoRoot(t *testing.T) string {
	t.Helper()
	root, err := RepoRoot()
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}
	return root
}

// ConfigFixture returns the absolute path of a site config fixture and fails
// the test if it does not exist.
func ConfigFixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(MustRepoRoot(t), configTestdata, name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config fixture %s: %v", name, err)
	}
	return path
}

// CopyConfigFixture copies a fixture into a fresh temp dir under the same
// base name, for tests that edit or watch the file.
func CopyConfigFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(ConfigFixture(t, name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	dst := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(dst, data, 0o600); err != nil {
		t.Fatalf("write fixture copy: %v", err)
	}
	return dst
}
