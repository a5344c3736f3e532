// Package logging provides structured logging utilities for the twodo-mcp
// application.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Launched-URI truncation (URIs embed task titles and notes)
//   - Consistent attribute naming across the codebase
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "add")
//	logger.Info("task created",
//	    logging.Status("success"))
//
// Truncate launched URIs before logging:
//
//	logger.Debug("URI launched",
//	    logging.URI(uri))
//
// # Security Considerations
//
// Launched URIs carry user task content in their query strings, so they are
// logged only as bounded prefixes. Full URIs appear in audit records only
// when the operator opts in.
package logging
