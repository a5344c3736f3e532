// Package server provides the MCP server context, health checks, and the
// dedicated Prometheus metrics server for the twodo-mcp application.
//
// # Key Components
//
// ServerContext holds the shared dependencies handed to tool handlers: the
// 2Do client that performs x-callback-url launches, the metrics recorder,
// and the audit logger. It owns a cancellable context so in-flight launches
// stop during shutdown.
//
// MetricsServer exposes /metrics, /healthz, and /readyz on a port separate
// from the MCP transport. It is only started for network transports; the
// stdio transport stays single-purpose.
//
// HealthChecker backs the probe endpoints. Readiness fails when the server
// is shutting down or the 2Do client has not been wired up.
package server
