package textutil

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leofalp/lifemcp/core/catalog"
)

// Identity advertised by the text-utility server during the MCP handshake.
const (
	ServerName    = "mcp-text-utils"
	ServerVersion = "2.4.0"

	serverInstructions = "Provides lightweight text and math utilities: summarization, slash-pair similarity scoring, and logarithms."
)

// Tool names registered by [NewCatalog].
const (
	ToolSummarize       = "summarize_text"
	ToolSlashSimilarity = "slash_similarity"
	ToolLogarithm       = "logarithm"
)

// NewCatalog assembles the text-utility server's registry: the three
// utility tools, the usage guide resource, and the explanation prompt.
func NewCatalog() *catalog.Catalog {
	return catalog.New(ServerName, ServerVersion,
		catalog.WithInstructions(serverInstructions),
		catalog.WithTool(summarizeTool(), handleSummarize),
		catalog.WithTool(slashSimilarityTool(), handleSlashSimilarity),
		catalog.WithTool(logarithmTool(), handleLogarithm),
		catalog.WithResource(readmeResource(), handleReadme),
		catalog.WithPrompt(explanationPrompt(), handleExplanationPrompt),
	)
}

func summarizeTool() mcp.Tool {
	return mcp.NewTool(ToolSummarize,
		mcp.WithDescription("Summarizes text by keeping its leading sentences: short keeps 2, medium 5, long 10."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Text to summarize"),
		),
		mcp.WithString("length",
			mcp.Description("Summary length: short, medium, or long (default: medium)"),
			mcp.Enum("short", "medium", "long"),
			mcp.DefaultString("medium"),
		),
	)
}

func handleSummarize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	length := req.GetString("length", "medium")

	summary, err := Summarize(content, length)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(summary), nil
}

func slashSimilarityTool() mcp.Tool {
	return mcp.NewTool(ToolSlashSimilarity,
		mcp.WithDescription("Scores two terms written as an 'a/b' pair by the overlap of their character sets, from 0.0 (disjoint) to 1.0 (identical)."),
		mcp.WithString("input",
			mcp.Required(),
			mcp.Description("Two terms separated by a single '/', e.g. 'apple/apply'"),
		),
	)
}

func handleSlashSimilarity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	score, err := SlashSimilarity(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatFloat(score)), nil
}

func logarithmTool() mcp.Tool {
	return mcp.NewTool(ToolLogarithm,
		mcp.WithDescription("Computes the logarithm of a positive number in base 2, base 10, or base e."),
		mcp.WithNumber("number",
			mcp.Required(),
			mcp.Description("Number to take the logarithm of (must be positive)"),
		),
		mcp.WithString("base",
			mcp.Description("Logarithm base: 2, 10, or e (default: e)"),
			mcp.Enum("2", "10", "e"),
			mcp.DefaultString("e"),
		),
	)
}

func handleLogarithm(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number, err := req.RequireFloat("number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	base := req.GetString("base", "e")

	value, err := Logarithm(number, base)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatFloat(value)), nil
}

// formatFloat renders tool and prompt numbers with the shortest
// representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
