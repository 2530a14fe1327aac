// Package finance implements the mcp-finance-calc toolset: salary-based
// annual income, simple interest, and equal-installment loan repayment
// calculators, together with their MCP tool, resource, and prompt bindings.
//
// The deduction model behind [AnnualSalary] is a simplified approximation:
// its bracket thresholds and the 0.9 scale factor are fixed business
// constants, not a tax table, and results may differ from actual
// country-specific taxes and deductions.
package finance
