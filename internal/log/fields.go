// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Configuration fields
	FieldSource   = "source"
	FieldRevision = "revision"
	FieldPath     = "path"
	FieldKey      = "key"
	FieldSection  = "section"
)
