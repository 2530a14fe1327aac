package finance

import (
	"math"

	"github.com/leofalp/lifemcp/core/toolerr"
)

// Deduction brackets applied by [AnnualSalary], keyed on the annual pretax
// salary. The rates are scaled by deductionScale before being applied to the
// monthly salary.
const (
	lowerBracketCeiling  = 40_000_000.0
	middleBracketCeiling = 70_000_000.0

	lowerRate  = 0.10
	middleRate = 0.15
	upperRate  = 0.20

	deductionScale = 0.9
)

// SalaryBreakdown is the outcome of [AnnualSalary]: the annual pretax salary
// plus the estimated monthly deduction and take-home pay.
type SalaryBreakdown struct {
	AnnualPretax     float64 `json:"annual_pretax"`
	MonthlyDeduction float64 `json:"monthly_deduction"`
	MonthlyTakehome  float64 `json:"monthly_takehome"`
}

// AnnualSalary computes the annual pretax salary for a monthly salary paid
// over periodMonths and estimates the monthly deduction and take-home pay
// from the bracket the annual figure falls into. All amounts are rounded to
// two decimal places.
func AnnualSalary(monthlySalary float64, periodMonths int) (SalaryBreakdown, error) {
	if monthlySalary <= 0 || periodMonths <= 0 {
		return SalaryBreakdown{}, toolerr.Invalidf("monthly salary and period must be greater than zero")
	}

	annualPretax := monthlySalary * float64(periodMonths)

	var deductionRate float64
	switch {
	case annualPretax < lowerBracketCeiling:
		deductionRate = lowerRate
	case annualPretax < middleBracketCeiling:
		deductionRate = middleRate
	default:
		deductionRate = upperRate
	}

	monthlyDeduction := monthlySalary * (deductionRate * deductionScale)

	return SalaryBreakdown{
		AnnualPretax:     round2(annualPretax),
		MonthlyDeduction: round2(monthlyDeduction),
		MonthlyTakehome:  round2(monthlySalary - monthlyDeduction),
	}, nil
}

// InterestSummary is the outcome of [SimpleInterest].
type InterestSummary struct {
	TotalValue    float64 `json:"total_value"`
	TotalInterest float64 `json:"total_interest"`
}

// SimpleInterest computes non-compounding interest on a principal at an
// annual rate over a period in years (I = P * r * t). Passing annualRate as
// 0.05 means 5%.
func SimpleInterest(principal, annualRate, years float64) (InterestSummary, error) {
	if principal <= 0 || years < 0 {
		return InterestSummary{}, toolerr.Invalidf("principal must be positive and years must not be negative")
	}

	totalInterest := principal * annualRate * years

	return InterestSummary{
		TotalValue:    round2(principal + totalInterest),
		TotalInterest: round2(totalInterest),
	}, nil
}

// RepaymentPlan is the outcome of [LoanRepayment].
type RepaymentPlan struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// LoanRepayment computes the fixed monthly payment of an equal-installment
// loan using the standard amortization formula
//
//	PMT = P * i*(1+i)^n / ((1+i)^n - 1)
//
// with i the monthly rate (annualRate / 12) and n the number of months. A
// zero annual rate, or one too small to register against 1 in float64,
// divides the principal evenly with no interest. Total interest is derived
// from the unrounded payment.
func LoanRepayment(principal, annualRate float64, months int) (RepaymentPlan, error) {
	if principal <= 0 || months <= 0 {
		return RepaymentPlan{}, toolerr.Invalidf("principal and months must be greater than zero")
	}

	var monthlyPayment, totalInterest float64
	monthlyRate := annualRate / 12
	growth := math.Pow(1+monthlyRate, float64(months))
	if growth == 1 {
		// Zero rate, or a rate so small that 1+monthlyRate rounds to 1;
		// the formula's denominator would be zero, and its limit is an
		// even split of the principal.
		monthlyPayment = principal / float64(months)
	} else {
		monthlyPayment = principal * (monthlyRate * growth) / (growth - 1)
		totalInterest = monthlyPayment*float64(months) - principal
	}

	return RepaymentPlan{
		MonthlyPayment: round2(monthlyPayment),
		TotalInterest:  round2(totalInterest),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
