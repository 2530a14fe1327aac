package congestion

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leofalp/lifemcp/core/catalog"
	"github.com/leofalp/lifemcp/core/toolerr"
)

// Identity advertised by the congestion server during the MCP handshake.
const (
	ServerName    = "mcp-place-congestion"
	ServerVersion = "3.1.0"

	serverInstructions = "Provides real-time place congestion lookups backed by a public city-data API."
)

// Tool names registered by [NewCatalog].
const (
	ToolLookup         = "place_congestion"
	ToolLookupMultiple = "place_congestion_multiple"
)

// NewCatalog assembles the congestion server's registry around the supplied
// client: the two lookup tools, the usage guide resource, and the
// explanation prompt.
func NewCatalog(client *Client) *catalog.Catalog {
	return catalog.New(ServerName, ServerVersion,
		catalog.WithInstructions(serverInstructions),
		catalog.WithTool(lookupTool(), handleLookup(client)),
		catalog.WithTool(lookupMultipleTool(), handleLookupMultiple(client)),
		catalog.WithResource(readmeResource(), handleReadme),
		catalog.WithPrompt(explanationPrompt(), handleExplanationPrompt(client)),
	)
}

func lookupTool() mcp.Tool {
	return mcp.NewTool(ToolLookup,
		mcp.WithDescription("Looks up the real-time congestion level of a place. A blank name uses the default place."),
		mcp.WithString("name",
			mcp.Description("Place name to look up (default: "+DefaultPlace+")"),
		),
	)
}

func handleLookup(client *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		status, err := client.Lookup(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(status), nil
	}
}

func lookupMultipleTool() mcp.Tool {
	return mcp.NewTool(ToolLookupMultiple,
		mcp.WithDescription("Looks up the congestion level of several places in one call, one bullet line per place. Lookups run sequentially and the first failure aborts the batch."),
		mcp.WithArray("names",
			mcp.Required(),
			mcp.Description("Place names to look up, in order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

func handleLookupMultiple(client *Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := stringSliceArgument(req, "names")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		report, err := client.LookupMultiple(ctx, names)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(report), nil
	}
}

// stringSliceArgument extracts a required array-of-strings tool argument
// from the decoded JSON arguments.
func stringSliceArgument(req mcp.CallToolRequest, key string) ([]string, error) {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return nil, toolerr.Invalidf("missing required argument %q", key)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, toolerr.Invalidf("argument %q must be an array of strings", key)
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, toolerr.Invalidf("argument %q must contain only strings, got %T", key, item)
		}
		values = append(values, s)
	}
	return values, nil
}
