package logging

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "test_operation")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithTool(t *testing.T) {
	logger := slog.Default()
	result := WithTool(logger, "test_tool")
	if result == nil {
		t.Error("WithTool returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("add")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "add" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "add")
	}
}

func TestToolAttr(t *testing.T) {
	attr := Tool("twodo_add_task")
	if attr.Key != KeyTool {
		t.Errorf("Tool key = %q, want %q", attr.Key, KeyTool)
	}
	if attr.Value.String() != "twodo_add_task" {
		t.Errorf("Tool value = %q, want %q", attr.Value.String(), "twodo_add_task")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestListAttr(t *testing.T) {
	attr := List("Groceries")
	if attr.Key != KeyList {
		t.Errorf("List key = %q, want %q", attr.Key, KeyList)
	}
	if attr.Value.String() != "Groceries" {
		t.Errorf("List value = %q, want %q", attr.Value.String(), "Groceries")
	}
}

func TestDurationAttr(t *testing.T) {
	attr := Duration(250 * time.Millisecond)
	if attr.Key != KeyDuration {
		t.Errorf("Duration key = %q, want %q", attr.Key, KeyDuration)
	}
	if attr.Value.Duration() != 250*time.Millisecond {
		t.Errorf("Duration value = %v, want %v", attr.Value.Duration(), 250*time.Millisecond)
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestTruncateURI(t *testing.T) {
	short := "twodo://x-callback-url/showAll"
	if got := TruncateURI(short); got != short {
		t.Errorf("TruncateURI(%q) = %q, want unchanged", short, got)
	}

	long := "twodo://x-callback-url/add?task=" + strings.Repeat("x", 200)
	got := TruncateURI(long)
	if !strings.HasSuffix(got, "...(truncated)") {
		t.Errorf("TruncateURI long result %q missing truncation marker", got)
	}
	if len(got) != maxLoggedURILen+len("...(truncated)") {
		t.Errorf("TruncateURI long result length = %d", len(got))
	}
	if !strings.HasPrefix(long, got[:maxLoggedURILen]) {
		t.Error("TruncateURI must keep the original prefix")
	}
}

func TestURIAttr(t *testing.T) {
	attr := URI("twodo://x-callback-url/search?text=report")
	if attr.Key != KeyURI {
		t.Errorf("URI key = %q, want %q", attr.Key, KeyURI)
	}
	if attr.Value.String() != "twodo://x-callback-url/search?text=report" {
		t.Errorf("URI value = %q", attr.Value.String())
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
