package usecases

import (
	"math"

	"estate-hub.backend/internal/domain/entities"
)

// CalculateEMI computes the standard reducing-balance monthly installment:
// EMI = P*r*(1+r)^n / ((1+r)^n - 1), with r the monthly rate and n the
// tenure in months. A non-positive rate degrades to straight division of the
// principal over the tenure.
func CalculateEMI(principal, annualRatePct float64, tenureYears int) float64 {
	if principal <= 0 || tenureYears <= 0 {
		return 0
	}

	n := float64(tenureYears * 12)
	if annualRatePct <= 0 {
		return math.Round(principal / n)
	}

	r := annualRatePct / 1200
	factor := math.Pow(1+r, n)
	return math.Round(principal * r * factor / (factor - 1))
}

// BuildEMICalculation produces the full calculator response block for the
// standalone EMI endpoint.
func BuildEMICalculation(principal, annualRatePct float64, tenureYears int) entities.EMICalculation {
	emi := CalculateEMI(principal, annualRatePct, tenureYears)
	months := tenureYears * 12
	total := emi * float64(months)

	return entities.EMICalculation{
		EMI:           emi,
		TotalAmount:   total,
		TotalInterest: total - principal,
		Breakdown: entities.EMIBreakdown{
			Principal:    principal,
			AnnualRate:   annualRatePct,
			TenureYears:  tenureYears,
			TenureMonths: months,
			MonthlyRate:  annualRatePct / 1200,
		},
	}
}
