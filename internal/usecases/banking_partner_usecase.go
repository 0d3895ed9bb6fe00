package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/pkg/utils"
)

// BankingPartnerUsecase handles admin CRUD over banks and their embedded
// loan products
type BankingPartnerUsecase struct {
	bankRepo repositories.BankingPartnerRepository
}

// NewBankingPartnerUsecase creates a new banking partner usecase
func NewBankingPartnerUsecase(bankRepo repositories.BankingPartnerRepository) *BankingPartnerUsecase {
	return &BankingPartnerUsecase{bankRepo: bankRepo}
}

// Create registers a new banking partner with its loan products
func (u *BankingPartnerUsecase) Create(ctx context.Context, input *entities.BankingPartnerInput) (*entities.BankingPartner, error) {
	existing, err := u.bankRepo.GetByCode(ctx, input.Code)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("bank code already registered")
	}

	bank, err := u.bankFromInput(input)
	if err != nil {
		return nil, err
	}
	bank.ID = utils.GenerateUUIDv7()
	bank.PartnerSince = time.Now()

	if err := u.bankRepo.Create(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// Get returns a single banking partner
func (u *BankingPartnerUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.BankingPartner, error) {
	return u.bankRepo.GetByID(ctx, id)
}

// List returns banking partners, paginated
func (u *BankingPartnerUsecase) List(ctx context.Context, limit, offset int) ([]*entities.BankingPartner, int64, error) {
	return u.bankRepo.List(ctx, limit, offset)
}

// Update replaces a bank's details and product set
func (u *BankingPartnerUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.BankingPartnerInput) (*entities.BankingPartner, error) {
	existing, err := u.bankRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	byCode, err := u.bankRepo.GetByCode(ctx, input.Code)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if byCode != nil && byCode.ID != id {
		return nil, domainerrors.Conflict("bank code already registered")
	}

	bank, err := u.bankFromInput(input)
	if err != nil {
		return nil, err
	}
	bank.ID = existing.ID
	bank.PartnerSince = existing.PartnerSince
	bank.CreatedAt = existing.CreatedAt

	if err := u.bankRepo.Update(ctx, bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// Delete soft deletes a banking partner
func (u *BankingPartnerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.bankRepo.SoftDelete(ctx, id)
}

func (u *BankingPartnerUsecase) bankFromInput(input *entities.BankingPartnerInput) (*entities.BankingPartner, error) {
	tier := input.PartnershipTier
	if tier == "" {
		tier = entities.PartnershipTierStandard
	}
	switch tier {
	case entities.PartnershipTierPreferred, entities.PartnershipTierStandard, entities.PartnershipTierTrial:
	default:
		return nil, domainerrors.BadRequest("invalid partnership tier")
	}

	products := make([]entities.LoanProduct, 0, len(input.LoanProducts))
	for i := range input.LoanProducts {
		product, err := u.productFromInput(&input.LoanProducts[i])
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	bank := &entities.BankingPartner{
		Name:            input.Name,
		Code:            input.Code,
		ContactEmail:    input.ContactEmail,
		Rating:          input.Rating,
		PartnershipTier: tier,
		PreferredValues: input.PreferredValues,
		LoanProducts:    products,
		Active:          true,
	}
	if input.ContactPhone != "" {
		bank.ContactPhone = null.StringFrom(input.ContactPhone)
	}
	if input.Active != nil {
		bank.Active = *input.Active
	}
	return bank, nil
}

func (u *BankingPartnerUsecase) productFromInput(input *entities.LoanProductInput) (*entities.LoanProduct, error) {
	if input.InterestRate.Min <= 0 || input.InterestRate.Max < input.InterestRate.Min {
		return nil, domainerrors.BadRequest("invalid interest rate range")
	}
	if input.LoanAmount.Min < 0 || input.LoanAmount.Max < input.LoanAmount.Min {
		return nil, domainerrors.BadRequest("invalid loan amount range")
	}
	if input.Tenure.MinYears <= 0 || input.Tenure.MaxYears < input.Tenure.MinYears {
		return nil, domainerrors.BadRequest("invalid tenure range")
	}

	offers := make([]entities.SpecialOffer, 0, len(input.SpecialOffers))
	for _, o := range input.SpecialOffers {
		offer := entities.SpecialOffer{
			ID:          utils.GenerateUUIDv7(),
			Label:       o.Label,
			Description: o.Description,
			Active:      true,
		}
		if o.ValidTill != nil {
			offer.ValidTill = null.TimeFrom(*o.ValidTill)
		}
		offers = append(offers, offer)
	}

	product := &entities.LoanProduct{
		ID:            utils.GenerateUUIDv7(),
		Name:          input.Name,
		Type:          input.Type,
		InterestRate:  input.InterestRate,
		LoanAmount:    input.LoanAmount,
		Tenure:        input.Tenure,
		LTVRatio:      input.LTVRatio,
		ProcessingFee: input.ProcessingFee,
		PropertyTypes: input.PropertyTypes,
		Eligibility:   input.Eligibility,
		SpecialOffers: offers,
		Active:        true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	return product, nil
}
