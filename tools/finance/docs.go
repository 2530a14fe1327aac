package finance

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// DocsURI addresses the static usage guide exposed by the finance server.
const DocsURI = "docs://finance/readme"

func readmeResource() mcp.Resource {
	return mcp.NewResource(DocsURI, "Finance Calculation Guide",
		mcp.WithResourceDescription("Usage guide for the finance calculation tools"),
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

const readmeDoc = `# Financial Calculation Server

## Overview
Practical financial helpers: salary-based annual income, simple interest,
and equal-installment loan repayment calculations.

## Available Tools

### calculate_annual_salary
Calculates the annual pretax salary and the estimated monthly take-home pay.
**Parameters:** monthly_salary (number, pretax monthly salary), period_months (integer, months paid per year, default 12)
**Note:** the deduction model is a rough approximation and may differ from actual taxes.

### calculate_simple_interest
Calculates simple, non-compounding interest.
**Parameters:** principal (number), annual_rate (number, 0.05 means 5%), years (number)

### calculate_loan_repayment
Calculates the fixed monthly payment of an equal-installment loan.
**Parameters:** principal (number), annual_rate (number, 0.05 means 5%), months (integer)

## Prompts

### finance_explanation_template
Runs one of the calculators and renders an explanation request around its
result. Pass the tool name in tool_name and the tool's own parameters as
prompt arguments.

## Notes
- All amounts are rounded to two decimal places.
- Rates are fractions, not percentages: pass 0.05 for 5%.
- Results are estimates for planning, not financial advice.
`
