package instrumentation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// Test constants to reduce string repetition and satisfy goconst
const (
	testList     = "Groceries"
	testTraceID  = "abc123def456"
	testSpanID   = "span789"
	testToolAdd  = "twodo_add_task"
	testToolUID  = "twodo_get_task_id"
	testToolShow = "twodo_show_list"
	testURI      = "twodo://x-callback-url/add?task=Buy%20milk&forlist=Groceries"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)

	// Verify initial state
	if ti.Tool != testToolAdd {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolAdd)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	// Complete the invocation - duration should be calculated from StartTime
	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	// Duration is calculated from StartTime, so it should be >= 0
	// We don't check for > 0 as the test may complete instantly
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testToolUID)
	err := errors.New("Timed out waiting for 2Do to respond. Is the app installed?")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != err.Error() {
		t.Errorf("Error = %q, want %q", ti.Error, err.Error())
	}
}

func TestToolInvocation_WithOperation(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	ti.WithOperation("add")

	if ti.Operation != "add" {
		t.Errorf("Operation = %q, want %q", ti.Operation, "add")
	}
}

func TestToolInvocation_WithList(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	ti.WithList(testList)

	if ti.List != testList {
		t.Errorf("List = %q, want %q", ti.List, testList)
	}
}

func TestToolInvocation_WithURI(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	ti.WithURI(testURI)

	if ti.URI != testURI {
		t.Errorf("URI = %q, want %q", ti.URI, testURI)
	}
}

func TestToolInvocation_TruncatedURI(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	ti.WithURI(testURI + strings.Repeat("x", 200))

	got := ti.TruncatedURI()
	if !strings.HasSuffix(got, "...(truncated)") {
		t.Errorf("TruncatedURI() = %q, want truncation marker", got)
	}
}

func TestToolInvocation_Status(t *testing.T) {
	ti := NewToolInvocation("test")

	ti.Success = true
	if status := ti.Status(); status != StatusSuccess {
		t.Errorf("Status() = %q, want %q", status, StatusSuccess)
	}

	ti.Success = false
	if status := ti.Status(); status != StatusError {
		t.Errorf("Status() = %q, want %q", status, StatusError)
	}
}

func TestToolInvocation_LogAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolShow)
	ti.WithOperation("showList").
		WithList(testList).
		WithURI(testURI).
		CompleteSuccess()
	ti.TraceID = testTraceID

	attrs := ti.LogAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check required attributes
	requiredKeys := []string{"tool", "duration", "success"}
	for _, key := range requiredKeys {
		if _, ok := attrMap[key]; !ok {
			t.Errorf("Missing required attribute: %s", key)
		}
	}

	// Check operation attributes
	if operation := attrMap["operation"].Value.String(); operation != "showList" {
		t.Errorf("operation = %q, want %q", operation, "showList")
	}
	if list := attrMap["list"].Value.String(); list != testList {
		t.Errorf("list = %q, want %q", list, testList)
	}
}

func TestToolInvocation_LogAttrs_WithError(t *testing.T) {
	ti := NewToolInvocation(testToolUID)
	ti.WithOperation("getTaskID").
		CompleteWithError(errors.New("test error"))

	attrs := ti.LogAttrs()

	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check error attribute is present
	if _, ok := attrMap["error"]; !ok {
		t.Error("Missing error attribute")
	}
	if errVal := attrMap["error"].Value.String(); errVal != "test error" {
		t.Errorf("error = %q, want %q", errVal, "test error")
	}
}

func TestToolInvocation_LogAttrs_MinimalFields(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	ti.CompleteSuccess()

	attrs := ti.LogAttrs()

	// Verify minimal attributes are present
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// These should NOT be present when not set
	if _, ok := attrMap["operation"]; ok {
		t.Error("operation should not be present when empty")
	}
	if _, ok := attrMap["list"]; ok {
		t.Error("list should not be present when empty")
	}
	if _, ok := attrMap["uri"]; ok {
		t.Error("uri should not be present when empty")
	}
	if _, ok := attrMap["trace_id"]; ok {
		t.Error("trace_id should not be present when empty")
	}
}

func TestToolInvocation_LogAttrs_TruncatesURI(t *testing.T) {
	longURI := testURI + strings.Repeat("x", 200)
	ti := NewToolInvocation(testToolAdd)
	ti.WithURI(longURI).CompleteSuccess()

	attrs := ti.LogAttrs()

	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	uri := attrMap["uri"].Value.String()
	if uri == longURI {
		t.Error("LogAttrs must truncate the launched URI")
	}
	if !strings.HasSuffix(uri, "...(truncated)") {
		t.Errorf("uri = %q, want truncation marker", uri)
	}
}

func TestToolInvocation_LogAuditAttrs(t *testing.T) {
	ti := NewToolInvocation(testToolShow)
	ti.WithOperation("showList").
		WithList(testList).
		WithURI(testURI).
		CompleteSuccess()
	ti.TraceID = testTraceID
	ti.SpanID = testSpanID

	attrs := ti.LogAuditAttrs()

	// Verify we have the expected attributes
	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// Check that the full URI is present (not truncated)
	if uri := attrMap["uri"].Value.String(); uri != testURI {
		t.Errorf("uri = %q, want %q", uri, testURI)
	}

	// Check trace context
	if traceID := attrMap["trace_id"].Value.String(); traceID != testTraceID {
		t.Errorf("trace_id = %q, want %q", traceID, testTraceID)
	}
	if spanID := attrMap["span_id"].Value.String(); spanID != testSpanID {
		t.Errorf("span_id = %q, want %q", spanID, testSpanID)
	}
}

func TestToolInvocation_LogAuditAttrs_MinimalFields(t *testing.T) {
	ti := NewToolInvocation(testToolAdd)
	ti.CompleteSuccess()

	attrs := ti.LogAuditAttrs()

	attrMap := make(map[string]slog.Attr)
	for _, attr := range attrs {
		attrMap[attr.Key] = attr
	}

	// These should NOT be present when not set
	if _, ok := attrMap["operation"]; ok {
		t.Error("operation should not be present when empty")
	}
	if _, ok := attrMap["uri"]; ok {
		t.Error("uri should not be present when empty")
	}
}

func TestToolInvocation_MethodChaining(t *testing.T) {
	ti := NewToolInvocation(testToolAdd).
		WithOperation("add").
		WithList("Inbox").
		WithURI(testURI).
		CompleteSuccess()

	if ti.Tool != testToolAdd {
		t.Errorf("Tool = %q, want %q", ti.Tool, testToolAdd)
	}
	if ti.Operation != "add" {
		t.Errorf("Operation = %q, want %q", ti.Operation, "add")
	}
	if ti.List != "Inbox" {
		t.Errorf("List = %q, want %q", ti.List, "Inbox")
	}
	if !ti.Success {
		t.Error("Success should be true")
	}
}

func TestAuditLogger_New(t *testing.T) {
	// Test with nil logger (should use default)
	al := NewAuditLogger(nil)
	if al.logger == nil {
		t.Error("logger should not be nil when created with nil")
	}

	// Test with custom logger
	logger := slog.Default()
	al = NewAuditLogger(logger)
	if al.logger != logger {
		t.Error("logger should be the provided logger")
	}
}

func TestAuditLogger_LogToolInvocation_Success(t *testing.T) {
	// This test verifies the method runs without panic
	al := NewAuditLogger(slog.Default())
	ti := NewToolInvocation(testToolAdd).
		WithOperation("add").
		WithList(testList).
		CompleteSuccess()

	// Should not panic
	al.LogToolInvocation(ti)
}

func TestAuditLogger_LogToolInvocation_Failure(t *testing.T) {
	// This test verifies the method runs without panic for failures
	al := NewAuditLogger(slog.Default())
	ti := NewToolInvocation(testToolUID).
		WithOperation("getTaskID").
		CompleteWithError(errors.New("test error"))

	// Should not panic
	al.LogToolInvocation(ti)
}

func TestAuditLogger_LogToolAudit(t *testing.T) {
	// This test verifies the method runs without panic
	al := NewAuditLogger(slog.Default())
	ti := NewToolInvocation(testToolShow).
		WithOperation("showList").
		WithList(testList).
		WithURI(testURI).
		CompleteSuccess()
	ti.TraceID = testTraceID

	// Should not panic
	al.LogToolAudit(ti)
}

func TestAuditLogger_Disabled(t *testing.T) {
	al := NewAuditLoggerWithConfig(slog.Default(), AuditLoggingConfig{Enabled: false})
	ti := NewToolInvocation(testToolAdd).CompleteSuccess()

	// Should not panic, should emit nothing
	al.LogToolInvocation(ti)
	al.LogToolAudit(ti)
}

func TestToolInvocation_WithSpanContext_NoSpan(t *testing.T) {
	ctx := context.Background()
	ti := NewToolInvocation("test").WithSpanContext(ctx)

	if ti.TraceID != "" {
		t.Errorf("TraceID = %q, want empty string", ti.TraceID)
	}
	if ti.SpanID != "" {
		t.Errorf("SpanID = %q, want empty string", ti.SpanID)
	}
}

func TestToolInvocation_Complete_NilError(t *testing.T) {
	ti := NewToolInvocation("test")
	ti.Complete(true, nil)

	if ti.Error != "" {
		t.Errorf("Error = %q, want empty string", ti.Error)
	}
}

func TestToolInvocation_Complete_WithError(t *testing.T) {
	ti := NewToolInvocation("test")
	ti.Complete(false, errors.New("some error"))

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "some error" {
		t.Errorf("Error = %q, want %q", ti.Error, "some error")
	}
}
