package finance

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leofalp/lifemcp/core/catalog"
	"github.com/leofalp/lifemcp/internal/utils"
)

// PromptName is the explanation template registered by [NewCatalog].
const PromptName = "finance_explanation_template"

const summaryFailed = "The calculation failed."

func explanationPrompt() mcp.Prompt {
	return mcp.NewPrompt(PromptName,
		mcp.WithPromptDescription("Runs a finance tool and renders an explanation request around its result."),
		mcp.WithArgument("tool_name",
			mcp.ArgumentDescription("Tool to run: calculate_annual_salary, calculate_simple_interest, or calculate_loan_repayment"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("monthly_salary",
			mcp.ArgumentDescription("Pretax monthly salary (calculate_annual_salary)"),
		),
		mcp.WithArgument("period_months",
			mcp.ArgumentDescription("Months paid per year, default 12 (calculate_annual_salary)"),
		),
		mcp.WithArgument("principal",
			mcp.ArgumentDescription("Principal amount (calculate_simple_interest, calculate_loan_repayment)"),
		),
		mcp.WithArgument("annual_rate",
			mcp.ArgumentDescription("Annual rate as a fraction, 0.05 means 5% (calculate_simple_interest, calculate_loan_repayment)"),
		),
		mcp.WithArgument("years",
			mcp.ArgumentDescription("Savings period in years (calculate_simple_interest)"),
		),
		mcp.WithArgument("months",
			mcp.ArgumentDescription("Repayment period in months (calculate_loan_repayment)"),
		),
	)
}

func handleExplanationPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments
	toolName := args["tool_name"]

	outcome, summary := runForExplanation(toolName, args)
	text := renderExplanation(toolName, summary, args, outcome)

	return mcp.NewGetPromptResult(
		"Explanation request for a financial calculation",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}

// runForExplanation re-invokes the named calculator on the prompt's string
// arguments. It always returns a renderable outcome: calculation and parse
// errors become a failed outcome, never a prompt error.
func runForExplanation(toolName string, args map[string]string) (catalog.Outcome, string) {
	switch toolName {
	case ToolAnnualSalary:
		monthlySalary, err := utils.ParseStringAs[float64](args["monthly_salary"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("monthly_salary: %w", err)), summaryFailed
		}
		periodMonths := 12
		if raw := args["period_months"]; raw != "" {
			periodMonths, err = utils.ParseStringAs[int](raw)
			if err != nil {
				return catalog.Failed(fmt.Errorf("period_months: %w", err)), summaryFailed
			}
		}
		result, err := AnnualSalary(monthlySalary, periodMonths)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Annual salary for a monthly salary of %s paid over %d months.",
			humanize.Commaf(monthlySalary), periodMonths)
		return catalog.Succeeded(utils.ToString(result)), summary

	case ToolSimpleInterest:
		principal, err := utils.ParseStringAs[float64](args["principal"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("principal: %w", err)), summaryFailed
		}
		annualRate, err := utils.ParseStringAs[float64](args["annual_rate"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("annual_rate: %w", err)), summaryFailed
		}
		years, err := utils.ParseStringAs[float64](args["years"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("years: %w", err)), summaryFailed
		}
		result, err := SimpleInterest(principal, annualRate, years)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Simple interest on a principal of %s at an annual rate of %v over %v years.",
			humanize.Commaf(principal), annualRate, years)
		return catalog.Succeeded(utils.ToString(result)), summary

	case ToolLoanRepayment:
		principal, err := utils.ParseStringAs[float64](args["principal"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("principal: %w", err)), summaryFailed
		}
		annualRate, err := utils.ParseStringAs[float64](args["annual_rate"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("annual_rate: %w", err)), summaryFailed
		}
		months, err := utils.ParseStringAs[int](args["months"])
		if err != nil {
			return catalog.Failed(fmt.Errorf("months: %w", err)), summaryFailed
		}
		result, err := LoanRepayment(principal, annualRate, months)
		if err != nil {
			return catalog.Failed(err), summaryFailed
		}
		summary := fmt.Sprintf("Equal-installment repayment for a loan principal of %s over %d months.",
			humanize.Commaf(principal), months)
		return catalog.Succeeded(utils.ToString(result)), summary

	default:
		return catalog.Succeeded("N/A"), "Unsupported financial operation."
	}
}

func renderExplanation(toolName, summary string, args map[string]string, outcome catalog.Outcome) string {
	return fmt.Sprintf(`Explain the following financial calculation result to the user clearly and helpfully.

Operation performed: %s
Summary: %s
Arguments: %s
Final result: %s

Include in your explanation:
1. The purpose of the calculation (expected income, investment value, loan burden)
2. The key inputs and the final result
3. A brief interpretation of what the result means for the user's finances

Tone: professional and advisory
Length: 3-5 sentences`,
		toolName, summary, utils.ToString(args), outcome.Text())
}
