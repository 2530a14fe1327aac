package finance

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leofalp/lifemcp/core/catalog"
	"github.com/leofalp/lifemcp/internal/utils"
)

// Identity advertised by the finance server during the MCP handshake.
const (
	ServerName    = "mcp-finance-calc"
	ServerVersion = "5.1.0"

	serverInstructions = "Provides salary-based annual income, simple interest, and loan repayment calculation tools."
)

// Tool names registered by [NewCatalog].
const (
	ToolAnnualSalary   = "calculate_annual_salary"
	ToolSimpleInterest = "calculate_simple_interest"
	ToolLoanRepayment  = "calculate_loan_repayment"
)

// NewCatalog assembles the finance server's registry: the three calculator
// tools, the usage guide resource, and the explanation prompt.
func NewCatalog() *catalog.Catalog {
	return catalog.New(ServerName, ServerVersion,
		catalog.WithInstructions(serverInstructions),
		catalog.WithTool(annualSalaryTool(), handleAnnualSalary),
		catalog.WithTool(simpleInterestTool(), handleSimpleInterest),
		catalog.WithTool(loanRepaymentTool(), handleLoanRepayment),
		catalog.WithResource(readmeResource(), handleReadme),
		catalog.WithPrompt(explanationPrompt(), handleExplanationPrompt),
	)
}

func annualSalaryTool() mcp.Tool {
	return mcp.NewTool(ToolAnnualSalary,
		mcp.WithDescription("Calculates the annual pretax salary and the estimated monthly take-home pay from a monthly salary. The deduction model is a rough approximation and may differ from actual taxes."),
		mcp.WithNumber("monthly_salary",
			mcp.Required(),
			mcp.Description("Pretax monthly salary"),
		),
		mcp.WithNumber("period_months",
			mcp.DefaultNumber(12),
			mcp.Description("Number of months the salary is paid per year (default: 12)"),
		),
	)
}

func handleAnnualSalary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	monthlySalary, err := req.RequireFloat("monthly_salary")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	periodMonths := req.GetInt("period_months", 12)

	result, err := AnnualSalary(monthlySalary, periodMonths)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(utils.ToString(result)), nil
}

func simpleInterestTool() mcp.Tool {
	return mcp.NewTool(ToolSimpleInterest,
		mcp.WithDescription("Calculates simple (non-compounding) interest on a principal over a period in years."),
		mcp.WithNumber("principal",
			mcp.Required(),
			mcp.Description("Principal amount"),
		),
		mcp.WithNumber("annual_rate",
			mcp.Required(),
			mcp.Description("Annual interest rate as a fraction (0.05 means 5%)"),
		),
		mcp.WithNumber("years",
			mcp.Required(),
			mcp.Description("Savings period in years"),
		),
	)
}

func handleSimpleInterest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	principal, err := req.RequireFloat("principal")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	annualRate, err := req.RequireFloat("annual_rate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	years, err := req.RequireFloat("years")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := SimpleInterest(principal, annualRate, years)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(utils.ToString(result)), nil
}

func loanRepaymentTool() mcp.Tool {
	return mcp.NewTool(ToolLoanRepayment,
		mcp.WithDescription("Calculates the fixed monthly payment and total interest of an equal-installment loan."),
		mcp.WithNumber("principal",
			mcp.Required(),
			mcp.Description("Loan principal"),
		),
		mcp.WithNumber("annual_rate",
			mcp.Required(),
			mcp.Description("Annual interest rate as a fraction (0.05 means 5%)"),
		),
		mcp.WithNumber("months",
			mcp.Required(),
			mcp.Description("Repayment period in months"),
		),
	)
}

func handleLoanRepayment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	principal, err := req.RequireFloat("principal")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	annualRate, err := req.RequireFloat("annual_rate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	months, err := req.RequireInt("months")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := LoanRepayment(principal, annualRate, months)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(utils.ToString(result)), nil
}
