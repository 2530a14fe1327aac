package textutil

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocsURI addresses the static usage guide exposed by the text-utility
// server.
const DocsURI = "docs://textutil/readme"

func readmeResource() mcp.Resource {
	return mcp.NewResource(DocsURI, "Text Utility Guide",
		mcp.WithResourceDescription("Usage guide for the text and math utility tools"),
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

const readmeDoc = `# Text Utility Server

## Overview
Lightweight, deterministic text and math helpers: leading-sentence
summarization, slash-pair similarity scoring, and logarithms.

## Available Tools

### summarize_text
Summarizes text by keeping its leading sentences.
**Parameters:** content (string, text to summarize), length (string: short keeps 2 sentences, medium 5, long 10; default medium)
**Note:** content with no sentences yields "Content is too short to summarize."

### slash_similarity
Scores two terms written as an a/b pair by the overlap of their character
sets, from 0.0 (disjoint) to 1.0 (identical). Case and surrounding
whitespace are ignored.
**Parameters:** input (string, two terms separated by a single '/')

### logarithm
Computes the logarithm of a positive number.
**Parameters:** number (number, must be positive), base (string: 2, 10, or e; default e)

## Prompts

### text_explanation_template
Runs one of the utilities and renders an explanation request around its
result. Pass the tool name in tool_name and the tool's own parameters as
prompt arguments.

## Notes
- All tools are stateless and deterministic.
- Similarity compares unique characters, not words or meanings.
`
