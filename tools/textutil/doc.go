// Package textutil implements the mcp-text-utils toolset: leading-fragment
// text summarization, slash-pair character-set similarity scoring, and
// logarithms, together with their MCP tool, resource, and prompt bindings.
package textutil
