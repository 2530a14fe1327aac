// Package catalog defines the immutable registry each lifemcp server is built
// from: the ordered tool, resource, and prompt bindings plus the identity
// (name, version, instructions) advertised to MCP clients.
//
// A catalog is assembled once at process start with [New] and turned into a
// runnable MCP server with [Catalog.BuildServer]. There is no mutation API,
// so the name→handler table cannot drift after startup; rebuilding a server
// from the same catalog always yields the same registrations in the same
// order.
//
// The package also provides [Outcome], the explicit success-or-error result
// consumed by the prompt renderers when they re-invoke a tool on the caller's
// behalf.
package catalog
