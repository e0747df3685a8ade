// Package logger - fields.go provides shared field keys and logger helpers.
package logger

import (
	"go.uber.org/zap"
)

// Structured field keys shared across packages.
const (
	FieldSource   = "source"
	FieldFormat   = "format"
	FieldURL      = "url"
	FieldOwner    = "owner_id"
	FieldDraft    = "draft_id"
	FieldScore    = "score"
	FieldTemplate = "template"
)

// WithFields attaches fields to logger. A nil logger is replaced by a no-op
// logger so callers never need to check.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Snippet returns a field holding at most limit runes of text.
func Snippet(key, text string, limit int) zap.Field {
	return zap.String(key, TruncateForLog(text, limit))
}
