package congestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leofalp/lifemcp/core/catalog"
	"github.com/leofalp/lifemcp/internal/utils"
)

// PromptName is the explanation template registered by [NewCatalog].
const PromptName = "congestion_explanation_template"

const summaryFailed = "The lookup failed."

func explanationPrompt() mcp.Prompt {
	return mcp.NewPrompt(PromptName,
		mcp.WithPromptDescription("Runs a congestion lookup and renders an explanation request around its report."),
		mcp.WithArgument("tool_name",
			mcp.ArgumentDescription("Tool to run: place_congestion or place_congestion_multiple"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("name",
			mcp.ArgumentDescription("Place name (place_congestion; blank uses the default place)"),
		),
		mcp.WithArgument("names",
			mcp.ArgumentDescription("Place names as a JSON array string, e.g. [\"강남역\", \"홍대입구\"] (place_congestion_multiple)"),
		),
	)
}

func handleExplanationPrompt(client *Client) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		toolName := args["tool_name"]

		outcome, summary := runForExplanation(ctx, client, toolName, args)
		text := renderExplanation(toolName, summary, args, outcome)

		return mcp.NewGetPromptResult(
			"Explanation request for a congestion lookup",
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
			},
		), nil
	}
}

// runForExplanation re-invokes the named lookup on the prompt's string
// arguments. Failures become a failed outcome, never a prompt error.
func runForExplanation(ctx context.Context, client *Client, toolName string, args map[string]string) (catalog.Outcome, string) {
	switch toolName {
	case ToolLookup:
		name := args["name"]
		status, err := client.Lookup(ctx, name)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		place := strings.TrimSpace(name)
		if place == "" {
			place = client.defaultPlace
		}
		summary := fmt.Sprintf("Looked up the current congestion status of %s.", place)
		return catalog.Succeeded(status), summary

	case ToolLookupMultiple:
		names, err := utils.ParseStringAs[[]string](args["names"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("names: %w", err)), summaryFailed
		}
		report, err := client.LookupMultiple(ctx, names)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Looked up the current congestion status of %d places.", len(names))
		return catalog.Succeeded(report), summary

	default:
		return catalog.Succeeded("N/A"), "Unsupported congestion operation."
	}
}

func renderExplanation(toolName, summary string, args map[string]string, outcome catalog.Outcome) string {
	return fmt.Sprintf(`Explain the following place congestion report to the user clearly and helpfully.

Operation performed: %s
Summary: %s
Arguments: %s
Final result: %s

Include in your explanation:
1. Which place or places the report covers
2. The congestion level and what it means in practice
3. A brief suggestion, such as whether to visit now or wait

Tone: friendly and informative
Length: 3-5 sentences`,
		toolName, summary, utils.ToString(args), outcome.Text())
}
