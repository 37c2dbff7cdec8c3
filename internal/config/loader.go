// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"os"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/rs/zerolog"
)

// Loader turns a Source into a validated SiteConfig.
type Loader struct {
	source          Source
	lookup          LookupFunc
	environ         func() []string
	logger          zerolog.Logger
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// Option customizes a Loader.
type Option func(*Loader)

// WithEnv replaces the process environment with env. A nil map disables
// environment overrides entirely.
func WithEnv(env map[string]string) Option {
	return func(l *Loader) {
		l.lookup = func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		}
		l.environ = func() []string {
			pairs := make([]string, 0, len(env))
			for k, v := range env {
				pairs = append(pairs, k+"="+v)
			}
			return pairs
		}
	}
}

// WithLogger sets the logger used for environment resolution messages.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new configuration loader reading from src.
func NewLoader(src Source, opts ...Option) *Loader {
	l := &Loader{
		source:          src,
		lookup:          os.LookupEnv,
		environ:         os.Environ,
		logger:          log.WithComponent("config"),
		ConsumedEnvKeys: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the source the loader reads from.
func (l *Loader) Source() Source {
	return l.source
}

// Wrapper methods for mechanical connection tracking

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return parseString(l.logger, l.lookup, key, defaultVal)
}

func (l *Loader) envBool(key string, defaultVal bool) bool {
	l.ConsumedEnvKeys[key] = struct{}{}
	return parseBool(l.logger, l.lookup, key, defaultVal)
}

// Load loads configuration with precedence: ENV > Document.
// It enforces Strict Validated Order: Read -> Parse (Strict) -> Apply Env -> Validate.
// Decoded values are kept exactly as written.
// Every failure is a *ConfigError; no partially loaded value is returned.
func (l *Loader) Load() (SiteConfig, error) {
	name := l.source.Name()

	// 1. Read the raw document
	data, err := l.source.Read()
	if err != nil {
		return SiteConfig{}, newConfigError("read", name, err)
	}

	// 2. Strict decode
	cfg, err := parseDocument(data, l.source.Format())
	if err != nil {
		return SiteConfig{}, newConfigError("parse", name, err)
	}

	// 3. Override with environment variables (highest priority)
	l.warnUnknownEnvKeys()
	l.mergeEnvConfig(&cfg)

	// 4. Validate final configuration
	if err := Validate(cfg); err != nil {
		return SiteConfig{}, newConfigError("validate", name, err)
	}

	return Clone(cfg), nil
}
