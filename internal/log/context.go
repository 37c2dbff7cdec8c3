// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey string

const revisionKey ctxKey = "revision"

// ContextWithRevision stores the configuration revision in the context.
func ContextWithRevision(ctx context.Context, revision string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, revisionKey, revision)
}

// RevisionFromContext extracts the configuration revision from context if present.
func RevisionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(revisionKey).(string); ok {
		return v
	}
	return ""
}

// WithContext enriches the supplied logger with fields carried by ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if rev := RevisionFromContext(ctx); rev != "" {
		return logger.With().Str(FieldRevision, rev).Logger()
	}
	return logger
}

// FromContext returns a logger from the context, or the base logger if none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := Base()
		return &l
	}
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		b := Base()
		return &b
	}
	return l
}

// WithComponentFromContext returns a logger annotated with the component
// name and enriched with the fields carried by ctx.
func WithComponentFromContext(ctx context.Context, component string) zerolog.Logger {
	l := FromContext(ctx).With().Str(FieldComponent, component).Logger()
	return WithContext(ctx, l)
}
