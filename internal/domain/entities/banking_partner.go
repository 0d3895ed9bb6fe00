package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PartnershipTier represents the commercial tier of a banking partnership
type PartnershipTier string

const (
	PartnershipTierPreferred PartnershipTier = "preferred"
	PartnershipTierStandard  PartnershipTier = "standard"
	PartnershipTierTrial     PartnershipTier = "trial"
)

// LoanProductType represents the category of a loan product
type LoanProductType string

const (
	LoanProductHome         LoanProductType = "home"
	LoanProductPlot         LoanProductType = "plot"
	LoanProductConstruction LoanProductType = "construction"
	LoanProductTopUp        LoanProductType = "top_up"
)

// RateRange holds an interest-rate band in percent per annum
type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AmountRange holds a loan-amount band
type AmountRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TenureRange holds a tenure band in years
type TenureRange struct {
	MinYears int `json:"minYears"`
	MaxYears int `json:"maxYears"`
}

// ProcessingFee describes how a product's processing fee is computed:
// percent of the loan plus a fixed amount, capped at Max when Max > 0.
type ProcessingFee struct {
	Percent float64 `json:"percent"`
	Fixed   float64 `json:"fixed"`
	Max     float64 `json:"max"`
}

// EligibilityCriteria holds borrower requirements declared by the product
type EligibilityCriteria struct {
	MinMonthlyIncome float64  `json:"minMonthlyIncome"`
	MinCreditScore   int      `json:"minCreditScore"`
	EmploymentTypes  []string `json:"employmentTypes"`
}

// SpecialOffer is a time-bounded promotion attached to a loan product
type SpecialOffer struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	ValidTill   null.Time `json:"validTill,omitempty"`
	Active      bool      `json:"active"`
}

// Expired reports whether the offer's validity window has passed at now.
// Offers without a ValidTill never expire.
func (o *SpecialOffer) Expired(now time.Time) bool {
	return o.ValidTill.Valid && o.ValidTill.Time.Before(now)
}

// LoanProduct is a product owned by a banking partner. Products are embedded
// in their bank: they have no lifecycle of their own.
type LoanProduct struct {
	ID              uuid.UUID           `json:"id"`
	Name            string              `json:"name"`
	Type            LoanProductType     `json:"type"`
	InterestRate    RateRange           `json:"interestRate"`
	LoanAmount      AmountRange         `json:"loanAmount"`
	Tenure          TenureRange         `json:"tenure"`
	LTVRatio        float64             `json:"ltvRatio"`
	ProcessingFee   ProcessingFee       `json:"processingFee"`
	PropertyTypes   []string            `json:"propertyTypes"`
	Eligibility     EligibilityCriteria `json:"eligibility"`
	SpecialOffers   []SpecialOffer      `json:"specialOffers"`
	Active          bool                `json:"active"`
}

// ValueRange is the bank's preferred property-price band. A zero Max means
// the bank has not configured an upper bound.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BankingPartner represents a partnered bank and its loan products
type BankingPartner struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	ContactEmail       string          `json:"contactEmail"`
	ContactPhone       null.String     `json:"contactPhone,omitempty"`
	Rating             float64         `json:"rating"`
	PartnershipTier    PartnershipTier `json:"partnershipTier"`
	PartnerSince       time.Time       `json:"partnerSince"`
	PreferredValues    *ValueRange     `json:"preferredPropertyValueRange,omitempty"`
	LoanProducts       []LoanProduct   `json:"loanProducts"`
	Active             bool            `json:"active"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
	DeletedAt          null.Time       `json:"-"`
}

// LoanProductInput represents input for a loan product within a bank payload
type LoanProductInput struct {
	Name          string              `json:"name" binding:"required"`
	Type          LoanProductType     `json:"type" binding:"required"`
	InterestRate  RateRange           `json:"interestRate" binding:"required"`
	LoanAmount    AmountRange         `json:"loanAmount" binding:"required"`
	Tenure        TenureRange         `json:"tenure" binding:"required"`
	LTVRatio      float64             `json:"ltvRatio" binding:"required,gt=0,lte=100"`
	ProcessingFee ProcessingFee       `json:"processingFee"`
	PropertyTypes []string            `json:"propertyTypes" binding:"required,min=1"`
	Eligibility   EligibilityCriteria `json:"eligibility"`
	SpecialOffers []SpecialOfferInput `json:"specialOffers"`
	Active        *bool               `json:"active"`
}

// SpecialOfferInput represents input for a special offer
type SpecialOfferInput struct {
	Label       string     `json:"label" binding:"required"`
	Description string     `json:"description"`
	ValidTill   *time.Time `json:"validTill,omitempty"`
}

// BankingPartnerInput represents input for creating or replacing a bank
type BankingPartnerInput struct {
	Name            string             `json:"name" binding:"required,min=2,max=255"`
	Code            string             `json:"code" binding:"required,min=2,max=20"`
	ContactEmail    string             `json:"contactEmail" binding:"required,email"`
	ContactPhone    string             `json:"contactPhone"`
	Rating          float64            `json:"rating" binding:"required,gte=1,lte=5"`
	PartnershipTier PartnershipTier    `json:"partnershipTier"`
	PreferredValues *ValueRange        `json:"preferredPropertyValueRange,omitempty"`
	LoanProducts    []LoanProductInput `json:"loanProducts" binding:"required,min=1"`
	Active          *bool              `json:"active"`
}
