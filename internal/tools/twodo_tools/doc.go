// Package twodo_tools implements the MCP tools that drive the 2Do app
// through its twodo:// x-callback-url scheme.
//
// The tools fall into two groups: task creation (add, batch add, paste,
// UID lookup) and navigation (show list, built-in views, search). Every
// handler validates its arguments, delegates to the twodo client, and
// serializes the outcome into a JSON envelope. Failures never escape as
// Go errors to the MCP framework; they become {"success": false, "error"}
// envelopes instead.
package twodo_tools
