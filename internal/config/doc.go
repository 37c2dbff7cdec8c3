// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config loads, validates and serves the site configuration consumed
// by the documentation front end.
//
// A Source supplies the raw document (a YAML or JSON file, or the embedded
// default). The Loader decodes it strictly, applies SITECFG_* environment
// overrides and validates it. The Store caches the result as an
// immutable Snapshot and hands out copies; it can optionally watch the file
// and swap in a new snapshot when the document changes.
package config
