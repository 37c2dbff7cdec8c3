// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/ManuGH/sitecfg/internal/validate"
)

var (
	// ErrConfig matches every ConfigError. Use errors.Is(err, ErrConfig) to
	// tell a rejected document apart from other failures.
	ErrConfig = errors.New("invalid site configuration")

	// ErrUnknownConfigField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrNotLoaded is returned by Store accessors before the first successful load.
	ErrNotLoaded = errors.New("site configuration not loaded")
)

// ConfigError reports a document that could not be read, parsed or validated.
type ConfigError struct {
	Op     string // read, parse, validate or save
	Source string // source name, usually a file path
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("config %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Is makes every ConfigError match ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// FieldErrors returns the individual validation failures, if the error came
// from validation.
func (e *ConfigError) FieldErrors() []validate.Error {
	var verr validate.ValidationError
	if errors.As(e.Err, &verr) {
		return verr.Errors()
	}
	return nil
}

// WriteReport prints err for a human reader: a heading naming the document,
// then one "field: message" line per rejected field, or the error itself
// when it carries no field detail.
func WriteReport(w io.Writer, name string, err error) {
	fmt.Fprintf(w, "Configuration error in %s:\n", name)

	var cerr *ConfigError
	if errors.As(err, &cerr) {
		if fields := cerr.FieldErrors(); len(fields) > 0 {
			for _, fe := range fields {
				fmt.Fprintf(w, "  %s: %s\n", fe.Field, fe.Message)
			}
			return
		}
	}
	fmt.Fprintf(w, "  %v\n", err)
}

func newConfigError(op, source string, err error) *ConfigError {
	return &ConfigError{Op: op, Source: source, Err: err}
}
