package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Diagnostics for the two launch failures whose cause needs no detail from
// the OS. Their text is surfaced verbatim in error responses.
var (
	// ErrLaunchTimeout means the handler never accepted the URI within the
	// deadline, usually because 2Do is not installed or is hung.
	ErrLaunchTimeout = errors.New("Timed out waiting for 2Do to respond. Is the app installed?")

	// ErrOpenNotFound means /usr/bin/open does not exist on this system.
	ErrOpenNotFound = errors.New("macOS 'open' command not found. This server only runs on macOS.")
)

// OpenCommand launches URIs via the macOS `open` utility, which dispatches
// them to the default registered handler.
type OpenCommand struct {
	// binary is the launcher executable, overridable in tests.
	binary string
}

// NewOpenCommand returns an OpenCommand using the system `open` binary.
func NewOpenCommand() *OpenCommand {
	return &OpenCommand{binary: "open"}
}

// Launch hands uri to the default handler. It blocks until the handler
// accepts the URI, the context expires, or the launch fails. Every failure
// maps to one of four diagnostics: handler failure (with stderr), timeout,
// missing `open` binary, or a generic OS error.
func (o *OpenCommand) Launch(ctx context.Context, uri string) error {
	cmd := exec.CommandContext(ctx, o.binary, uri)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	// Context expiry surfaces either directly or as a killed process, so
	// check the context before classifying the exec error.
	if ctx.Err() != nil {
		return ErrLaunchTimeout
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return fmt.Errorf("'open' command failed: %s", bytes.TrimSpace(stderr.Bytes()))
	case errors.Is(err, exec.ErrNotFound):
		return ErrOpenNotFound
	}
	return fmt.Errorf("OS error: %v", err)
}

// Pasteboard reads the system clipboard via the macOS `pbpaste` utility.
type Pasteboard struct {
	binary string
}

// NewPasteboard returns a Pasteboard using the system `pbpaste` binary.
func NewPasteboard() *Pasteboard {
	return &Pasteboard{binary: "pbpaste"}
}

// Read returns the clipboard text, or the empty string on any failure
// (missing binary, timeout, non-zero exit). Callers cannot distinguish an
// empty clipboard from a failed read, and do not need to.
func (p *Pasteboard) Read(ctx context.Context) string {
	cmd := exec.CommandContext(ctx, p.binary)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return ""
	}
	return stdout.String()
}
