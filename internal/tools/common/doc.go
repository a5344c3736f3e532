// Package common provides shared utilities for MCP tool implementations.
// It wraps tool handlers with metrics, tracing, and audit logging so the
// individual tool packages stay focused on argument handling and the
// 2Do operation itself.
package common
