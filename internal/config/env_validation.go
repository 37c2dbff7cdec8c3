// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"sort"
	"strings"

	"github.com/ManuGH/sitecfg/internal/log"
)

// UnknownEnvKeys detects SITECFG_* keys that nothing reads (dead flags / typos).
// environ uses the KEY=value form of os.Environ.
func UnknownEnvKeys(environ []string) []string {
	known := make(map[string]struct{}, len(KnownEnvKeys()))
	for _, key := range KnownEnvKeys() {
		known[key] = struct{}{}
	}

	unknown := make([]string, 0)
	for _, pair := range environ {
		key := strings.SplitN(pair, "=", 2)[0]
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		if _, ok := known[key]; ok {
			continue
		}
		unknown = append(unknown, key)
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvKeys logs every unknown SITECFG_* key once per load.
func (l *Loader) warnUnknownEnvKeys() {
	for _, key := range UnknownEnvKeys(l.environ()) {
		l.logger.Warn().
			Str(log.FieldEvent, "config.env_unknown_key").
			Str(log.FieldKey, key).
			Msg("ignoring unknown environment variable")
	}
}
