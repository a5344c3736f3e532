// Package instrumentation provides comprehensive OpenTelemetry instrumentation
// for the twodo-mcp server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for URI launches, clipboard reads, and tool calls
//   - Distributed tracing for tool invocations and launches
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// URI Launch Metrics:
//   - twodo_uri_launches_total: Counter of x-callback-url launches by operation and status
//   - twodo_uri_launch_duration_seconds: Histogram of launch durations
//
// Clipboard Confirmation Metrics:
//   - twodo_clipboard_reads_total: Counter of clipboard reads by result (uid, empty, mismatch)
//
// Batch Metrics:
//   - twodo_batch_items_total: Counter of batch task items by status
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - MCP tool invocations (tool.<name>)
//   - URI launches (twodo.<operation>)
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: twodo-mcp)
//   - AUDIT_LOGGING_INCLUDE_URIS: Log complete launched URIs (default: false)
//
// # Example Usage
//
//	// Initialize instrumentation
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
//		ServiceName:    "twodo-mcp",
//		ServiceVersion: "0.1.0",
//		Enabled:        true,
//	})
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	// Get metrics recorder
//	recorder := provider.Metrics()
//
//	// Record a URI launch
//	recorder.RecordLaunch(ctx, "add", "success", time.Since(start))
//
//	// Record an MCP tool invocation
//	recorder.RecordToolInvocation(ctx, "twodo_add_task", "success", time.Since(start))
package instrumentation
