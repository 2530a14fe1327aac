// Package utils provides shared low-level helpers used throughout the
// lifemcp servers: JSON rendering for tool results and prompt narration,
// a synchronous HTTP GET helper for the one outbound API dependency,
// coercion of MCP prompt arguments (always strings on the wire) into typed
// Go values, and a simple elapsed-time timer.
//
// Key entry points: [DoGetSync] for JSON round-trips, [ParseStringAs] for
// string→T coercion with JSON repair, [ToString] for compact JSON
// rendering, and [Timer] for measuring upstream latency.
package utils
