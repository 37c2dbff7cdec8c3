// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name           string
		value          string
		allowedSchemes []string
		wantErr        bool
	}{
		{"valid http", "http://example.com", []string{"http", "https"}, false},
		{"valid https", "https://example.com", []string{"http", "https"}, false},
		{"empty url", "", []string{"http"}, true},
		{"no host", "http://", []string{"http"}, true},
		{"invalid scheme", "ftp://example.com", []string{"http", "https"}, true},
		{"no scheme", "example.com", []string{"http"}, true},
		{"with port", "http://example.com:8080", []string{"http"}, false},
		{"with path", "https://www.linkedin.com/in/someone/", []string{"https"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.URL("testURL", tt.value, tt.allowedSchemes)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_SitePath(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"root", "/", false},
		{"simple", "/node", false},
		{"hyphenated", "/ci-cd", false},
		{"nested", "/vue/getting-started", false},
		{"trailing slash", "/docs/", false},
		{"with fragment", "/git#branches", false},
		{"with query", "/search?q=go", false},
		{"empty", "", true},
		{"relative", "node", true},
		{"protocol relative", "//cdn.example.com/x", true},
		{"traversal", "/docs/../etc", true},
		{"whitespace", "/my page", true},
		{"double slash", "/a//b", true},
		{"dot segment", "/a/./b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.SitePath("to", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error for %q, got none", tt.value)
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error for %q: %v", tt.value, v.Err())
			}
		})
	}
}

func TestValidator_NotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-empty", "hello", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"tab only", "\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.NotEmpty("testField", tt.value)

			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_NoWhitespace(t *testing.T) {
	v := New()
	v.NoWhitespace("icon", "i-mdi-github")
	if !v.IsValid() {
		t.Fatalf("unexpected error: %v", v.Err())
	}
	v.NoWhitespace("icon", "i-mdi-linkedin ")
	if v.IsValid() {
		t.Fatal("expected error for trailing space")
	}
}

func TestValidator_Matches(t *testing.T) {
	re := regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	v := New()
	v.Matches("ui.primary", "green", re, "a color name")
	v.Matches("ui.gray", "cool-gray", re, "a color name")
	if !v.IsValid() {
		t.Fatalf("unexpected error: %v", v.Err())
	}

	v.Matches("ui.primary", "Green", re, "a color name")
	if v.IsValid() {
		t.Fatal("expected error for upper-case color")
	}
	if !strings.Contains(v.Err().Error(), "a color name") {
		t.Errorf("expected description in message, got %v", v.Err())
	}
}

func TestValidator_Unique(t *testing.T) {
	v := New()
	values := []string{"/node", "/vue", "/node", "", "", "/vue"}
	v.Unique(values, func(i int) string { return fmt.Sprintf("links[%d].to", i) })

	errs := v.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 duplicate errors, got %d: %v", len(errs), v.Err())
	}
	if errs[0].Field != "links[2].to" || !strings.Contains(errs[0].Message, "links[0].to") {
		t.Errorf("unexpected first error: %+v", errs[0])
	}
	if errs[1].Field != "links[5].to" || !strings.Contains(errs[1].Message, "links[1].to") {
		t.Errorf("unexpected second error: %+v", errs[1])
	}
}

func TestValidator_MultipleErrors(t *testing.T) {
	v := New()

	v.SitePath("to", "")               // Invalid
	v.URL("url", "", []string{"http"}) // Invalid
	v.NotEmpty("name", "")             // Invalid

	if v.IsValid() {
		t.Fatal("expected errors, got none")
	}

	if got := len(v.Errors()); got != 3 {
		t.Errorf("expected 3 errors, got %d", got)
	}

	err := v.Err()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	errorMsg := err.Error()
	for _, field := range []string{"to", "url", "name"} {
		if !strings.Contains(errorMsg, field) {
			t.Errorf("error message should mention %q", field)
		}
	}

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := []string{"to", "url", "name"}
	got := verr.Fields()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidator_ErrIsDetached(t *testing.T) {
	v := New()
	v.NotEmpty("a", "")
	err := v.Err()
	v.NotEmpty("b", "")

	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors()) != 1 {
		t.Errorf("expected Err() snapshot to keep 1 error, got %d", len(verr.Errors()))
	}
}

func TestValidator_ValidReturnsNilErr(t *testing.T) {
	v := New()
	v.URL("baseURL", "http://example.com", []string{"http", "https"})
	v.SitePath("to", "/node")
	v.NotEmpty("name", "site")

	if !v.IsValid() {
		t.Errorf("expected valid, got errors: %v", v.Errors())
	}
	if err := v.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestLogLevel_IsValid(t *testing.T) {
	for _, level := range []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError} {
		if !level.IsValid() {
			t.Errorf("expected %q to be valid", level)
		}
	}
	if LogLevel("trace").IsValid() {
		t.Error("expected trace to be invalid")
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("warn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != LogLevelWarn {
		t.Errorf("got %q, want warn", level)
	}
	if _, err := ParseLogLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLinkTarget_IsValid(t *testing.T) {
	for _, target := range LinkTargets() {
		if !LinkTarget(target).IsValid() {
			t.Errorf("expected %q to be valid", target)
		}
	}
	if LinkTarget("blank").IsValid() {
		t.Error("expected target without underscore to be invalid")
	}
}
