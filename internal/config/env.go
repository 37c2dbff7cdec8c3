// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/ManuGH/sitecfg/internal/log"
	"github.com/rs/zerolog"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	return strings.Contains(lowerKey, "token") ||
		strings.Contains(lowerKey, "password") ||
		strings.Contains(lowerKey, "secret")
}

// parseString returns the value of key from lookup, or defaultValue when the
// variable is unset or empty. The chosen source is logged at debug level;
// values of sensitive keys are never logged.
func parseString(logger zerolog.Logger, lookup LookupFunc, key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		switch {
		case value == "":
			logger.Debug().
				Str(log.FieldKey, key).
				Str("default", defaultValue).
				Str(log.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		case isSensitiveKey(key):
			logger.Debug().
				Str(log.FieldKey, key).
				Str(log.FieldSource, "environment").
				Bool("sensitive", true).
				Msg("using environment variable")
		default:
			logger.Debug().
				Str(log.FieldKey, key).
				Str("value", value).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
		}
		return value
	}
	logger.Debug().
		Str(log.FieldKey, key).
		Str("default", defaultValue).
		Str(log.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}

// parseBool accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
// Anything else falls back to defaultValue with a warning.
func parseBool(logger zerolog.Logger, lookup LookupFunc, key string, defaultValue bool) bool {
	if v, ok := lookup(key); ok {
		if v == "" {
			logger.Debug().
				Str(log.FieldKey, key).
				Bool("default", defaultValue).
				Str(log.FieldSource, "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			logger.Debug().
				Str(log.FieldKey, key).
				Bool("value", true).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
			return true
		case "false", "0", "no":
			logger.Debug().
				Str(log.FieldKey, key).
				Bool("value", false).
				Str(log.FieldSource, "environment").
				Msg("using environment variable")
			return false
		default:
			logger.Warn().
				Str(log.FieldKey, key).
				Str("value", v).
				Bool("default", defaultValue).
				Msg("invalid boolean in environment variable, using default")
			return defaultValue
		}
	}
	logger.Debug().
		Str(log.FieldKey, key).
		Bool("default", defaultValue).
		Str(log.FieldSource, "default").
		Msg("using default value")
	return defaultValue
}
