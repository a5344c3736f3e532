// Package launcher implements the macOS process bridges the 2Do client
// depends on: OpenCommand launches URIs through /usr/bin/open, and
// Pasteboard reads the system clipboard through pbpaste.
//
// Both bridges are single-purpose shims around exec.CommandContext. They
// honor whatever deadline the context carries; the caller owns the timeout
// policy. OpenCommand classifies failures into distinct, user-facing
// diagnostics (handler failure, timeout, missing binary, other OS fault),
// while Pasteboard deliberately swallows every failure as an empty read,
// since a clipboard fault must never fail the operation that triggered it.
package launcher
