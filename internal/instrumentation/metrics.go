package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	// Common attributes (reused across metrics)
	attrStatus    = "status"
	attrOperation = "operation"
	attrResult    = "result"
	attrTool      = "tool"
)

// Metrics provides methods for recording observability metrics.
// All recording methods are nil-safe: a nil *Metrics (instrumentation
// disabled) records nothing.
type Metrics struct {
	// URI launch metrics
	launchesTotal  metric.Int64Counter
	launchDuration metric.Float64Histogram

	// Clipboard confirmation metrics
	clipboardReadsTotal metric.Int64Counter

	// Batch metrics
	batchItemsTotal metric.Int64Counter

	// MCP Tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	// URI launch metrics
	m.launchesTotal, err = meter.Int64Counter(
		"twodo_uri_launches_total",
		metric.WithDescription("Total number of x-callback-url launches"),
		metric.WithUnit("{launch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create twodo_uri_launches_total counter: %w", err)
	}

	m.launchDuration, err = meter.Float64Histogram(
		"twodo_uri_launch_duration_seconds",
		metric.WithDescription("URI launch duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create twodo_uri_launch_duration_seconds histogram: %w", err)
	}

	// Clipboard confirmation metrics
	m.clipboardReadsTotal, err = meter.Int64Counter(
		"twodo_clipboard_reads_total",
		metric.WithDescription("Total number of clipboard confirmation reads"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create twodo_clipboard_reads_total counter: %w", err)
	}

	// Batch metrics
	m.batchItemsTotal, err = meter.Int64Counter(
		"twodo_batch_items_total",
		metric.WithDescription("Total number of batch task items processed"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create twodo_batch_items_total counter: %w", err)
	}

	// MCP Tool Metrics
	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordLaunch records a URI launch with operation, status, and duration.
//
// Parameters:
//   - operation: Scheme operation (add, paste, getTaskID, showList, search, ...)
//   - status: Result status ("success" or "error")
//   - duration: Time until the handler accepted or rejected the URI
func (m *Metrics) RecordLaunch(ctx context.Context, operation, status string, duration time.Duration) {
	if m == nil || m.launchesTotal == nil || m.launchDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.launchesTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.launchDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordClipboardRead records the outcome of a clipboard confirmation read.
// Result should be one of: "uid", "empty", "mismatch"
func (m *Metrics) RecordClipboardRead(ctx context.Context, result string) {
	if m == nil || m.clipboardReadsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrResult, result),
	}

	m.clipboardReadsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBatchItem records the outcome of one item within a batch create.
func (m *Metrics) RecordBatchItem(ctx context.Context, success bool) {
	if m == nil || m.batchItemsTotal == nil {
		return // Instrumentation not initialized
	}

	status := StatusError
	if success {
		status = StatusSuccess
	}
	attrs := []attribute.KeyValue{
		attribute.String(attrStatus, status),
	}

	m.batchItemsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordToolInvocation records an MCP tool invocation with tool name, status, and duration.
//
// Parameters:
//   - toolName: Name of the MCP tool (e.g., "twodo_add_task", "twodo_search")
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the tool execution
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m == nil || m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
