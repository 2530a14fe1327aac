package textutil

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leofalp/lifemcp/core/catalog"
	"github.com/leofalp/lifemcp/internal/utils"
)

// PromptName is the explanation template registered by [NewCatalog].
const PromptName = "text_explanation_template"

const summaryFailed = "The operation failed."

func explanationPrompt() mcp.Prompt {
	return mcp.NewPrompt(PromptName,
		mcp.WithPromptDescription("Runs a text utility and renders an explanation request around its result."),
		mcp.WithArgument("tool_name",
			mcp.ArgumentDescription("Tool to run: summarize_text, slash_similarity, or logarithm"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("content",
			mcp.ArgumentDescription("Text to summarize (summarize_text)"),
		),
		mcp.WithArgument("length",
			mcp.ArgumentDescription("Summary length: short, medium, or long (summarize_text, default medium)"),
		),
		mcp.WithArgument("input",
			mcp.ArgumentDescription("Two terms separated by a single '/' (slash_similarity)"),
		),
		mcp.WithArgument("number",
			mcp.ArgumentDescription("Number to take the logarithm of (logarithm)"),
		),
		mcp.WithArgument("base",
			mcp.ArgumentDescription("Logarithm base: 2, 10, or e (logarithm, default e)"),
		),
	)
}

func handleExplanationPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	toolName := args["tool_name"]

	outcome, summary := runForExplanation(toolName, args)
	text := renderExplanation(toolName, summary, args, outcome)

	return mcp.NewGetPromptResult(
		"Explanation request for a text-utility result",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}

// runForExplanation re-invokes the named utility on the prompt's string
// arguments. Failures become a failed outcome, never a prompt error.
func runForExplanation(toolName string, args map[string]string) (catalog.Outcome, string) {
	switch toolName {
	case ToolSummarize:
		content := args["content"]
		length := args["length"]
		if length == "" {
			length = "medium"
		}
		result, err := Summarize(content, length)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Summarized %d characters of content into a %s summary.",
			utf8.RuneCountInString(content), length)
		return catalog.Succeeded(result), summary

	case ToolSlashSimilarity:
		input := args["input"]
		score, err := SlashSimilarity(input)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Scored the character-set similarity of %q.", input)
		return catalog.Succeeded(formatFloat(score)), summary

	case ToolLogarithm:
		number, err := utils.ParseStringAs[float64](args["number"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("number: %w", err)), summaryFailed
		}
		base := args["base"]
		if base == "" {
			base = "e"
		}
		value, err := Logarithm(number, base)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Computed the base-%s logarithm of %s.", base, humanize.Commaf(number))
		return catalog.Succeeded(formatFloat(value)), summary

	default:
		return catalog.Succeeded("N/A"), "Unsupported text operation."
	}
}

func renderExplanation(toolName, summary string, args map[string]string, outcome catalog.Outcome) string {
	return fmt.Sprintf(`Explain the following text-utility result to the user clearly and helpfully.

Operation performed: %s
Summary: %s
Arguments: %s
Final result: %s

Include in your explanation:
1. What the operation does
2. The key inputs and the final result
3. A brief note on how to interpret or use the result

Tone: clear and educational
Length: 3-5 sentences`,
		toolName, summary, utils.ToString(args), outcome.Text())
}
