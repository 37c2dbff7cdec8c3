// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for sitecfg.
package validate

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field path that failed validation, e.g. "header.links[2].to"
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Fields returns the field paths of all errors, in the order they were found.
func (e ValidationError) Fields() []string {
	fields := make([]string, len(e.errors))
	for i, err := range e.errors {
		fields[i] = err.Field
	}
	return fields
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// URL validates a URL string
func (v *Validator) URL(field, value string, allowedSchemes []string) {
	if value == "" {
		v.AddError(field, "URL cannot be empty", value)
		return
	}

	u, err := url.Parse(value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("invalid URL: %v", err), value)
		return
	}

	if u.Host == "" {
		v.AddError(field, "URL must have a host", value)
		return
	}

	if len(allowedSchemes) > 0 {
		schemeValid := false
		for _, scheme := range allowedSchemes {
			if u.Scheme == scheme {
				schemeValid = true
				break
			}
		}
		if !schemeValid {
			v.AddError(field,
				fmt.Sprintf("unsupported URL scheme %q (allowed: %v)", u.Scheme, allowedSchemes),
				value)
		}
	}
}

// SitePath validates a site-relative route such as "/docs/intro".
// It must be absolute, free of whitespace and must not climb with "..".
func (v *Validator) SitePath(field, value string) {
	if value == "" {
		v.AddError(field, "path cannot be empty", value)
		return
	}
	if !strings.HasPrefix(value, "/") {
		v.AddError(field, "path must start with /", value)
		return
	}
	if strings.HasPrefix(value, "//") {
		v.AddError(field, "path must not be protocol-relative", value)
		return
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		v.AddError(field, "path must not contain whitespace", value)
		return
	}
	for _, seg := range strings.Split(value, "/") {
		if seg == ".." {
			v.AddError(field, "path contains traversal sequences (..)", value)
			return
		}
	}
	// Query and fragment are fine, only the path component has to be clean.
	p := value
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if cleaned := path.Clean(p); cleaned != p && cleaned+"/" != p {
		v.AddError(field, fmt.Sprintf("path is not canonical (want %s)", cleaned), value)
	}
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// NoWhitespace validates that a string contains no whitespace at all.
func (v *Validator) NoWhitespace(field, value string) {
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		v.AddError(field, "value must not contain whitespace", value)
	}
}

// Matches validates that a value matches the given pattern; desc names the
// expected shape in the error message.
func (v *Validator) Matches(field, value string, re *regexp.Regexp, desc string) {
	if !re.MatchString(value) {
		v.AddError(field, fmt.Sprintf("value must be %s, got %q", desc, value), value)
	}
}

// Unique reports every value that was already seen in the same list.
// fieldFor maps an index to the field path used in the error.
func (v *Validator) Unique(values []string, fieldFor func(i int) string) {
	seen := make(map[string]int, len(values))
	for i, value := range values {
		if value == "" {
			continue
		}
		if first, ok := seen[value]; ok {
			v.AddError(fieldFor(i), fmt.Sprintf("duplicate of %s", fieldFor(first)), value)
			continue
		}
		seen[value] = i
	}
}
