package entities

import (
	"time"

	"github.com/google/uuid"
)

// EMIOption is one tenure choice within a loan offer
type EMIOption struct {
	TenureYears    int     `json:"tenureYears"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayable   float64 `json:"totalPayable"`
	TotalInterest  float64 `json:"totalInterest"`
}

// LoanOffer is computed per request from a property, a bank and one of its
// loan products. It is never persisted.
type LoanOffer struct {
	BankID        uuid.UUID      `json:"bankId"`
	BankName      string         `json:"bankName"`
	BankRating    float64        `json:"bankRating"`
	ProductName   string         `json:"productName"`
	ProductType   LoanProductType `json:"productType"`
	MaxLoanAmount float64        `json:"maxLoanAmount"`
	InterestRate  float64        `json:"interestRate"`
	ProcessingFee float64        `json:"processingFee"`
	EMIOptions    []EMIOption    `json:"emiOptions"`
	SpecialOffers []SpecialOffer `json:"specialOffers,omitempty"`
}

// LoanOptionFilters are the optional borrower-side query parameters of the
// loan-options endpoint
type LoanOptionFilters struct {
	LoanAmount      float64 `form:"loanAmount"`
	PreferredTenure int     `form:"preferredTenure"`
	EmploymentType  string  `form:"employmentType"`
	MonthlyIncome   float64 `form:"monthlyIncome"`
	CreditScore     int     `form:"creditScore"`
}

// PropertySummary is the condensed property view returned with loan options
type PropertySummary struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	City         string             `json:"city"`
	Price        float64            `json:"price"`
	Type         PropertyType       `json:"type"`
	Verification VerificationStatus `json:"verification"`
	Score        int                `json:"suitabilityScore"`
}

// LoanOptionsResponse is the response body of the loan-options endpoint
type LoanOptionsResponse struct {
	Success              bool            `json:"success"`
	PropertyDetails      PropertySummary `json:"propertyDetails"`
	LoanOffers           []LoanOffer     `json:"loanOffers"`
	TotalOffersAvailable int             `json:"totalOffersAvailable"`
	CalculationDate      time.Time       `json:"calculationDate"`
}

// EMIBreakdown is the detail block of the EMI calculator response
type EMIBreakdown struct {
	Principal     float64 `json:"principal"`
	AnnualRate    float64 `json:"annualRate"`
	TenureYears   int     `json:"tenureYears"`
	TenureMonths  int     `json:"tenureMonths"`
	MonthlyRate   float64 `json:"monthlyRate"`
}

// EMICalculation is the calculation block of the EMI calculator response
type EMICalculation struct {
	EMI           float64      `json:"emi"`
	TotalAmount   float64      `json:"totalAmount"`
	TotalInterest float64      `json:"totalInterest"`
	Breakdown     EMIBreakdown `json:"breakdown"`
}
