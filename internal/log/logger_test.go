// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func configureForTest(t *testing.T, cfg Config) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	Reset()
	Configure(cfg)
	t.Cleanup(func() {
		Reset()
		zerolog.SetGlobalLevel(prev)
	})
}

func TestWithComponent_AnnotatesEntries(t *testing.T) {
	var buf bytes.Buffer
	configureForTest(t, Config{Level: "debug", Output: &buf, Service: "sitecfg-test"})

	l := WithComponent("config")
	l.Info().Str(FieldEvent, "config.load_success").Msg("loaded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry[FieldComponent] != "config" {
		t.Errorf("component = %v, want config", entry[FieldComponent])
	}
	if entry[FieldService] != "sitecfg-test" {
		t.Errorf("service = %v, want sitecfg-test", entry[FieldService])
	}
	if entry[FieldEvent] != "config.load_success" {
		t.Errorf("event = %v, want config.load_success", entry[FieldEvent])
	}
}

func TestConfigure_OnlyOnce(t *testing.T) {
	var first, second bytes.Buffer
	configureForTest(t, Config{Output: &first})
	Configure(Config{Output: &second})

	l := Base()
	l.Info().Msg("hello")

	if first.Len() == 0 {
		t.Error("expected output in first writer")
	}
	if second.Len() != 0 {
		t.Error("expected second Configure call to be ignored")
	}
}

func TestConfigure_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	configureForTest(t, Config{Output: &buf})

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level = %v, want warn", zerolog.GlobalLevel())
	}
	l := Base()
	l.Info().Msg("suppressed")
	if buf.Len() != 0 {
		t.Errorf("expected info entry to be suppressed, got %s", buf.String())
	}
}
