// Package congestion implements the mcp-place-congestion toolset: real-time
// place congestion lookups against a public city-data API, together with
// their MCP tool, resource, and prompt bindings.
//
// [Client] performs the upstream calls. Lookups are sequential, uncached,
// and unretried; the multi-place variant aborts on the first failure.
package congestion
