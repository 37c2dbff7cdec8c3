// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/google/renameio/v2"
)

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager for the file at configPath.
// The file extension selects YAML or JSON output.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: filepath.Clean(configPath),
	}
}

// Path returns the file the manager writes to.
func (m *Manager) Path() string {
	return m.configPath
}

// Save validates cfg and writes its canonical form to disk.
// The write is atomic and durable: readers see either the old or the new
// document, never a partial one.
func (m *Manager) Save(cfg SiteConfig) error {
	format, err := FormatFromPath(m.configPath)
	if err != nil {
		return newConfigError("save", m.configPath, err)
	}

	if err := Validate(cfg); err != nil {
		return newConfigError("save", m.configPath, err)
	}

	data, err := Marshal(cfg, format)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return m.write(data)
}

// SaveDocument writes data to disk byte for byte once it parses strictly in
// the file's format and validates. Comments and layout are preserved.
func (m *Manager) SaveDocument(data []byte) error {
	format, err := FormatFromPath(m.configPath)
	if err != nil {
		return newConfigError("save", m.configPath, err)
	}

	cfg, err := parseDocument(data, format)
	if err != nil {
		return newConfigError("save", m.configPath, err)
	}
	if err := Validate(cfg); err != nil {
		return newConfigError("save", m.configPath, err)
	}
	return m.write(data)
}

func (m *Manager) write(data []byte) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(m.configPath, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		// Cleanup on error - renameio removes temp file if not committed
		if err := pendingFile.Cleanup(); err != nil {
			logger := log.WithComponent("config")
			logger.Debug().Err(err).Str(log.FieldPath, m.configPath).Msg("cleanup pending config file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}

	return nil
}
