package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
	"estate-hub.backend/internal/domain/repositories"
)

// LoanOptionsUsecase assembles the loan-options response: load the property
// and the active bank set, score the property, run the matcher. Each request
// recomputes from a fresh read; there is no in-process state.
type LoanOptionsUsecase struct {
	propertyRepo repositories.PropertyRepository
	bankRepo     repositories.BankingPartnerRepository
	scorer       *PropertyScorer
	matcher      *LoanOfferMatcher
	now          func() time.Time
}

// NewLoanOptionsUsecase creates a new loan options usecase
func NewLoanOptionsUsecase(
	propertyRepo repositories.PropertyRepository,
	bankRepo repositories.BankingPartnerRepository,
) *LoanOptionsUsecase {
	return &LoanOptionsUsecase{
		propertyRepo: propertyRepo,
		bankRepo:     bankRepo,
		scorer:       NewPropertyScorer(),
		matcher:      NewLoanOfferMatcher(),
		now:          time.Now,
	}
}

// GetLoanOptions returns ranked loan offers for a property
func (u *LoanOptionsUsecase) GetLoanOptions(ctx context.Context, propertyID uuid.UUID, filters entities.LoanOptionFilters) (*entities.LoanOptionsResponse, error) {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	banks, err := u.bankRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	score := u.scorer.Score(property)
	offers := u.matcher.Match(property, banks, score, filters, now)

	return &entities.LoanOptionsResponse{
		Success: true,
		PropertyDetails: entities.PropertySummary{
			ID:           property.ID,
			Title:        property.Title,
			City:         property.City,
			Price:        property.Price,
			Type:         property.Type,
			Verification: property.Verification,
			Score:        score,
		},
		LoanOffers:           offers,
		TotalOffersAvailable: len(offers),
		CalculationDate:      now,
	}, nil
}
