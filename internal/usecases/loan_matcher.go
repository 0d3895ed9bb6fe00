package usecases

import (
	"math"
	"sort"
	"strings"
	"time"

	"estate-hub.backend/internal/domain/entities"
)

// LoanOfferMatcher derives ranked loan offers for a property from the active
// banking-partner set. Matching is a pure function of its inputs; nothing is
// persisted or cached here.
type LoanOfferMatcher struct{}

// NewLoanOfferMatcher creates a new loan offer matcher
func NewLoanOfferMatcher() *LoanOfferMatcher {
	return &LoanOfferMatcher{}
}

// Match walks every active product of every bank, filters out incompatible
// ones, computes the score-adjusted rate and EMI schedule, and returns the
// offers sorted by ascending rate, ties broken by descending bank rating.
func (m *LoanOfferMatcher) Match(
	property *entities.Property,
	banks []*entities.BankingPartner,
	score int,
	filters entities.LoanOptionFilters,
	now time.Time,
) []entities.LoanOffer {
	offers := make([]entities.LoanOffer, 0)

	for _, bank := range banks {
		if !bank.Active {
			continue
		}
		if !m.priceWithinPreferredRange(property.Price, bank.PreferredValues) {
			continue
		}

		for i := range bank.LoanProducts {
			product := &bank.LoanProducts[i]
			if offer, ok := m.buildOffer(property, bank, product, score, filters, now); ok {
				offers = append(offers, offer)
			}
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].InterestRate != offers[j].InterestRate {
			return offers[i].InterestRate < offers[j].InterestRate
		}
		return offers[i].BankRating > offers[j].BankRating
	})

	return offers
}

func (m *LoanOfferMatcher) buildOffer(
	property *entities.Property,
	bank *entities.BankingPartner,
	product *entities.LoanProduct,
	score int,
	filters entities.LoanOptionFilters,
	now time.Time,
) (entities.LoanOffer, bool) {
	if !product.Active {
		return entities.LoanOffer{}, false
	}
	if !m.propertyTypeMatches(string(property.Type), product.PropertyTypes) {
		return entities.LoanOffer{}, false
	}
	if !m.borrowerEligible(product, filters) {
		return entities.LoanOffer{}, false
	}

	maxLoan := property.Price * product.LTVRatio / 100
	if product.LoanAmount.Max > 0 && maxLoan > product.LoanAmount.Max {
		maxLoan = product.LoanAmount.Max
	}
	if maxLoan < product.LoanAmount.Min {
		return entities.LoanOffer{}, false
	}

	principal := maxLoan
	if filters.LoanAmount > 0 {
		if maxLoan < filters.LoanAmount {
			return entities.LoanOffer{}, false
		}
		principal = filters.LoanAmount
	}

	rate := m.adjustedRate(product, bank.Rating, score)
	emiOptions := m.emiOptions(principal, rate, product.Tenure, filters.PreferredTenure)
	if len(emiOptions) == 0 {
		return entities.LoanOffer{}, false
	}

	if filters.MonthlyIncome > 0 && !m.affordable(emiOptions, filters.MonthlyIncome) {
		return entities.LoanOffer{}, false
	}

	return entities.LoanOffer{
		BankID:        bank.ID,
		BankName:      bank.Name,
		BankRating:    bank.Rating,
		ProductName:   product.Name,
		ProductType:   product.Type,
		MaxLoanAmount: maxLoan,
		InterestRate:  rate,
		ProcessingFee: m.processingFee(principal, product.ProcessingFee),
		EMIOptions:    emiOptions,
		SpecialOffers: m.currentOffers(product.SpecialOffers, now),
	}, true
}

// adjustedRate starts at the product floor and moves toward the ceiling as
// the property score drops, plus a penalty for lower-rated banks. Better
// properties and better banks get cheaper credit.
func (m *LoanOfferMatcher) adjustedRate(product *entities.LoanProduct, bankRating float64, score int) float64 {
	spread := product.InterestRate.Max - product.InterestRate.Min
	scoreAdjustment := float64(100-score) / 100 * spread
	ratingAdjustment := (5 - bankRating) / 5 * BankRatingRateSpread

	rate := product.InterestRate.Min + scoreAdjustment + ratingAdjustment
	if rate > product.InterestRate.Max {
		rate = product.InterestRate.Max
	}
	return math.Round(rate*100) / 100
}

// emiOptions generates one option per tenure stride. The product's exact max
// tenure is always included even when the stride does not land on it, and a
// preferred tenure inside the band gets its own option.
func (m *LoanOfferMatcher) emiOptions(principal, rate float64, tenure entities.TenureRange, preferredYears int) []entities.EMIOption {
	if tenure.MinYears <= 0 || tenure.MaxYears < tenure.MinYears {
		return nil
	}

	years := make([]int, 0)
	for t := tenure.MinYears; t < tenure.MaxYears; t += EMITenureStepYears {
		years = append(years, t)
	}
	years = append(years, tenure.MaxYears)
	if preferredYears >= tenure.MinYears && preferredYears <= tenure.MaxYears {
		years = append(years, preferredYears)
	}
	sort.Ints(years)

	options := make([]entities.EMIOption, 0, len(years))
	seen := map[int]bool{}
	for _, y := range years {
		if seen[y] {
			continue
		}
		seen[y] = true

		emi := CalculateEMI(principal, rate, y)
		total := emi * float64(y*12)
		options = append(options, entities.EMIOption{
			TenureYears:    y,
			MonthlyPayment: emi,
			TotalPayable:   total,
			TotalInterest:  total - principal,
		})
	}
	return options
}

func (m *LoanOfferMatcher) processingFee(principal float64, fee entities.ProcessingFee) float64 {
	amount := principal*fee.Percent/100 + fee.Fixed
	if fee.Max > 0 && amount > fee.Max {
		amount = fee.Max
	}
	return math.Round(amount)
}

func (m *LoanOfferMatcher) propertyTypeMatches(propertyType string, applicable []string) bool {
	p := strings.ToLower(strings.TrimSpace(propertyType))
	if p == "" {
		return false
	}
	for _, t := range applicable {
		a := strings.ToLower(strings.TrimSpace(t))
		if a == "" {
			continue
		}
		if strings.Contains(a, p) || strings.Contains(p, a) {
			return true
		}
	}
	return false
}

func (m *LoanOfferMatcher) priceWithinPreferredRange(price float64, r *entities.ValueRange) bool {
	if r == nil {
		return true
	}
	if r.Min > 0 && price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

func (m *LoanOfferMatcher) borrowerEligible(product *entities.LoanProduct, filters entities.LoanOptionFilters) bool {
	elig := product.Eligibility
	if filters.MonthlyIncome > 0 && elig.MinMonthlyIncome > 0 && filters.MonthlyIncome < elig.MinMonthlyIncome {
		return false
	}
	if filters.CreditScore > 0 && elig.MinCreditScore > 0 && filters.CreditScore < elig.MinCreditScore {
		return false
	}
	if filters.EmploymentType != "" && len(elig.EmploymentTypes) > 0 {
		found := false
		for _, e := range elig.EmploymentTypes {
			if strings.EqualFold(e, filters.EmploymentType) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m *LoanOfferMatcher) affordable(options []entities.EMIOption, monthlyIncome float64) bool {
	budget := monthlyIncome * MaxEMIToIncomeRatio
	for _, o := range options {
		if o.MonthlyPayment <= budget {
			return true
		}
	}
	return false
}

func (m *LoanOfferMatcher) currentOffers(offers []entities.SpecialOffer, now time.Time) []entities.SpecialOffer {
	current := make([]entities.SpecialOffer, 0)
	for _, o := range offers {
		if !o.Active {
			continue
		}
		if o.Expired(now) {
			continue
		}
		current = append(current, o)
	}
	return current
}
