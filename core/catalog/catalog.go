package catalog

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolEntry binds one MCP tool definition to the handler that executes it.
type ToolEntry struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// ResourceEntry binds one static MCP resource to the handler that reads it.
type ResourceEntry struct {
	Resource mcp.Resource
	Handler  server.ResourceHandlerFunc
}

// PromptEntry binds one MCP prompt template to the handler that renders it.
type PromptEntry struct {
	Prompt  mcp.Prompt
	Handler server.PromptHandlerFunc
}

// Catalog is the immutable registry of everything one server exposes.
// Build one with [New]; after that it never changes.
type Catalog struct {
	name         string
	version      string
	instructions string
	tools        []ToolEntry
	resources    []ResourceEntry
	prompts      []PromptEntry
}

// Option configures a [Catalog] during construction.
type Option func(*Catalog)

// WithInstructions sets the instructions string advertised to MCP clients at
// initialization time.
func WithInstructions(instructions string) Option {
	return func(c *Catalog) {
		c.instructions = instructions
	}
}

// WithTool appends a tool binding. Registration order is declaration order.
func WithTool(tool mcp.Tool, handler server.ToolHandlerFunc) Option {
	return func(c *Catalog) {
		c.tools = append(c.tools, ToolEntry{Tool: tool, Handler: handler})
	}
}

// WithResource appends a static resource binding.
func WithResource(resource mcp.Resource, handler server.ResourceHandlerFunc) Option {
	return func(c *Catalog) {
		c.resources = append(c.resources, ResourceEntry{Resource: resource, Handler: handler})
	}
}

// WithPrompt appends a prompt-template binding.
func WithPrompt(prompt mcp.Prompt, handler server.PromptHandlerFunc) Option {
	return func(c *Catalog) {
		c.prompts = append(c.prompts, PromptEntry{Prompt: prompt, Handler: handler})
	}
}

// New builds the registry for a server named name at the given version.
// All bindings are supplied up front via options; the returned catalog has no
// mutation API.
func New(name, version string, opts ...Option) *Catalog {
	c := &Catalog{
		name:    name,
		version: version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the server name advertised to MCP clients.
func (c *Catalog) Name() string { return c.name }

// Version returns the server version advertised to MCP clients.
func (c *Catalog) Version() string { return c.version }

// Instructions returns the instructions string, or "" when none was set.
func (c *Catalog) Instructions() string { return c.instructions }

// Tools returns a copy of the tool bindings in declaration order.
func (c *Catalog) Tools() []ToolEntry {
	out := make([]ToolEntry, len(c.tools))
	copy(out, c.tools)
	return out
}

// Resources returns a copy of the resource bindings in declaration order.
func (c *Catalog) Resources() []ResourceEntry {
	out := make([]ResourceEntry, len(c.resources))
	copy(out, c.resources)
	return out
}

// Prompts returns a copy of the prompt bindings in declaration order.
func (c *Catalog) Prompts() []PromptEntry {
	out := make([]PromptEntry, len(c.prompts))
	copy(out, c.prompts)
	return out
}

// BuildServer constructs an MCP server carrying the catalog's identity and
// registers every entry on it in declaration order. The server is ready to be
// handed to a transport.
func (c *Catalog) BuildServer() *server.MCPServer {
	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
	}
	if c.instructions != "" {
		opts = append(opts, server.WithInstructions(c.instructions))
	}

	s := server.NewMCPServer(c.name, c.version, opts...)
	for _, t := range c.tools {
		s.AddTool(t.Tool, t.Handler)
	}
	for _, r := range c.resources {
		s.AddResource(r.Resource, r.Handler)
	}
	for _, p := range c.prompts {
		s.AddPrompt(p.Prompt, p.Handler)
	}
	return s
}
