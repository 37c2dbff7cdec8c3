// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDocument decodes data with STRICT parsing.
// Unknown fields, type mismatches and trailing documents are fatal.
// An empty document decodes to the zero SiteConfig.
func parseDocument(data []byte, format Format) (SiteConfig, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	default:
		return parseYAML(data)
	}
}

func parseYAML(data []byte) (SiteConfig, error) {
	var cfg SiteConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return SiteConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return SiteConfig{}, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return SiteConfig{}, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return SiteConfig{}, errors.New("config document contains multiple documents or trailing content")
	}

	return cfg, nil
}

func parseJSON(data []byte) (SiteConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return SiteConfig{}, nil
	}

	// encoding/json folds key case and lets a repeated key win silently;
	// keys must match exactly and appear once, as they must in YAML.
	if err := checkJSONKeys(json.NewDecoder(bytes.NewReader(data)), siteConfigType, ""); err != nil {
		if errors.Is(err, ErrUnknownConfigField) {
			return SiteConfig{}, err
		}
		return SiteConfig{}, fmt.Errorf("strict config parse error: %w", err)
	}

	var cfg SiteConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return SiteConfig{}, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return SiteConfig{}, fmt.Errorf("strict config parse error: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return SiteConfig{}, errors.New("config document contains trailing content")
	}

	return cfg, nil
}

var siteConfigType = reflect.TypeOf(SiteConfig{})

// checkJSONKeys walks one JSON value and checks every object key against the
// json tags of t. A nil t (or a kind mismatch, left for the decoder to
// report) skips key checks but still rejects duplicates.
func checkJSONKeys(dec *json.Decoder, t reflect.Type, path string) error {
	tok, err := nextToken(dec)
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		var fields map[string]reflect.Type
		if t != nil && t.Kind() == reflect.Struct {
			fields = jsonFields(t)
		}
		seen := make(map[string]struct{})
		for dec.More() {
			tok, err := nextToken(dec)
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			field := joinPath(path, key)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("json: duplicate key %q", field)
			}
			seen[key] = struct{}{}

			var next reflect.Type
			if fields != nil {
				ft, known := fields[key]
				if !known {
					return fmt.Errorf("%w: json: unknown field %q", ErrUnknownConfigField, field)
				}
				next = ft
			}
			if err := checkJSONKeys(dec, next, field); err != nil {
				return err
			}
		}
	case '[':
		var elem reflect.Type
		if t != nil && t.Kind() == reflect.Slice {
			elem = t.Elem()
		}
		for i := 0; dec.More(); i++ {
			if err := checkJSONKeys(dec, elem, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	// Closing delimiter
	_, err = nextToken(dec)
	return err
}

// nextToken reads a token of a value that has already begun, so running out
// of input is a truncated document rather than an empty one.
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

// jsonFields maps the exact json key of each exported field to its type.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		fields[name] = f.Type
	}
	return fields
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
