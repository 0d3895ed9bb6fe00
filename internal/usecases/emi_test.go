package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"estate-hub.backend/internal/usecases"
)

func TestCalculateEMI_BankTableValues(t *testing.T) {
	// Values cross-checked against a standard amortization table.
	assert.Equal(t, 43391.0, usecases.CalculateEMI(5_000_000, 8.5, 20))
	assert.Equal(t, 12668.0, usecases.CalculateEMI(1_000_000, 9, 10))
}

func TestCalculateEMI_ZeroRateDividesPrincipalOverTenure(t *testing.T) {
	assert.Equal(t, 10000.0, usecases.CalculateEMI(1_200_000, 0, 10))
	assert.Equal(t, 10000.0, usecases.CalculateEMI(1_200_000, -1, 10))
}

func TestCalculateEMI_Guards(t *testing.T) {
	assert.Equal(t, 0.0, usecases.CalculateEMI(0, 8.5, 20))
	assert.Equal(t, 0.0, usecases.CalculateEMI(-100, 8.5, 20))
	assert.Equal(t, 0.0, usecases.CalculateEMI(5_000_000, 8.5, 0))
}

func TestBuildEMICalculation(t *testing.T) {
	calc := usecases.BuildEMICalculation(5_000_000, 8.5, 20)

	assert.Equal(t, 43391.0, calc.EMI)
	assert.Equal(t, 43391.0*240, calc.TotalAmount)
	assert.Equal(t, 43391.0*240-5_000_000, calc.TotalInterest)
	assert.Equal(t, 5_000_000.0, calc.Breakdown.Principal)
	assert.Equal(t, 8.5, calc.Breakdown.AnnualRate)
	assert.Equal(t, 20, calc.Breakdown.TenureYears)
	assert.Equal(t, 240, calc.Breakdown.TenureMonths)
	assert.InDelta(t, 8.5/1200, calc.Breakdown.MonthlyRate, 1e-12)
}
