package congestion

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocsURI addresses the static usage guide exposed by the congestion
// server.
const DocsURI = "docs://congestion/readme"

func readmeResource() mcp.Resource {
	return mcp.NewResource(DocsURI, "Place Congestion Guide",
		mcp.WithResourceDescription("Usage guide for the place congestion tools"),
		mcp.WithMIMEType("text/markdown"),
	)
}

func handleReadme(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      DocsURI,
			MIMEType: "text/markdown",
			Text:     readmeDoc,
		},
	}, nil
}

const readmeDoc = `# Place Congestion Server

## Overview
Real-time congestion lookups for city places, backed by a public city-data
API. Each lookup reports the congestion level and an advisory message for
the requested place.

## Available Tools

### place_congestion
Looks up the congestion status of one place.
**Parameters:** name (string, optional; a blank name uses the default place)

### place_congestion_multiple
Looks up several places in one call and reports one bullet line per place.
Lookups run sequentially in input order; the first failure aborts the
whole batch.
**Parameters:** names (array of strings)

## Prompts

### congestion_explanation_template
Runs a lookup and renders an explanation request around its report. Pass
the tool name in tool_name and the tool's own parameters as prompt
arguments (names as a JSON array string).

## Notes
- The default endpoint serves sample data; set CONGESTION_BASE_URL to a
  keyed endpoint for live data.
- Place names are matched by the upstream API; the default place is 강남역.
- Results are not cached and lookups are not retried.
`
