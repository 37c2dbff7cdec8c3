// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a configuration document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath derives the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config format: %q (only YAML or JSON supported)", ext)
	}
}

// Source supplies a raw configuration document.
type Source interface {
	Name() string
	Format() Format
	Read() ([]byte, error)
}

// FileSource reads the document from disk on every Read.
type FileSource struct {
	path string
}

// NewFileSource returns a source for the YAML or JSON file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

func (s *FileSource) Name() string { return s.path }

// Path returns the cleaned file path.
func (s *FileSource) Path() string { return s.path }

func (s *FileSource) Format() Format {
	f, err := FormatFromPath(s.path)
	if err != nil {
		return FormatYAML
	}
	return f
}

func (s *FileSource) Read() ([]byte, error) {
	if _, err := FormatFromPath(s.path); err != nil {
		return nil, err
	}
	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// BytesSource serves a document held in memory.
type BytesSource struct {
	name   string
	data   []byte
	format Format
}

// NewBytesSource copies data so later changes by the caller are not observed.
func NewBytesSource(name string, data []byte, format Format) *BytesSource {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &BytesSource{name: name, data: buf, format: format}
}

func (s *BytesSource) Name() string   { return s.name }
func (s *BytesSource) Format() Format { return s.format }

func (s *BytesSource) Read() ([]byte, error) {
	buf := make([]byte, len(s.data))
	copy(buf, s.data)
	return buf, nil
}

//go:embed default.yaml
var defaultDocument []byte

// DefaultSourceName is the name reported by DefaultSource.
const DefaultSourceName = "embedded:default.yaml"

// DefaultSource returns the built-in site configuration.
func DefaultSource() *BytesSource {
	return NewBytesSource(DefaultSourceName, defaultDocument, FormatYAML)
}

// DefaultDocument returns a copy of the built-in YAML document.
func DefaultDocument() []byte {
	buf := make([]byte, len(defaultDocument))
	copy(buf, defaultDocument)
	return buf
}
