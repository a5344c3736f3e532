package logging

import (
	"log/slog"
	"time"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyTool      = "tool"
	KeyURI       = "uri"
	KeyList      = "list"
	KeyDuration  = "duration"
	KeyStatus    = "status"
	KeyError     = "error"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// maxLoggedURILen caps how much of a launched URI ends up in logs. Launched
// URIs embed task titles and notes, so they are both long and sensitive;
// the prefix is enough to identify the operation and target list.
const maxLoggedURILen = 120

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// List returns a slog attribute for a 2Do list name.
func List(name string) slog.Attr {
	return slog.String(KeyList, name)
}

// Duration returns a slog attribute for an elapsed duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// TruncateURI shortens a launched URI for logging. URIs carry task content
// in their query strings, so logs keep only a bounded prefix.
func TruncateURI(uri string) string {
	if len(uri) <= maxLoggedURILen {
		return uri
	}
	return uri[:maxLoggedURILen] + "...(truncated)"
}

// URI returns a slog attribute with the truncated launched URI.
func URI(uri string) slog.Attr {
	return slog.String(KeyURI, TruncateURI(uri))
}
