package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/infrastructure/models"
	"estate-hub.backend/pkg/utils"
)

// BankingPartnerRepository implements banking-partner data operations.
// Products and offers are written through their bank in one transaction.
type BankingPartnerRepository struct {
	db *gorm.DB
}

// NewBankingPartnerRepository creates a new banking-partner repository
func NewBankingPartnerRepository(db *gorm.DB) *BankingPartnerRepository {
	return &BankingPartnerRepository{db: db}
}

// Create creates a bank with its products and offers
func (r *BankingPartnerRepository) Create(ctx context.Context, bank *entities.BankingPartner) error {
	m := bankToModel(bank)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	bank.CreatedAt = m.CreatedAt
	bank.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a bank with its products and offers
func (r *BankingPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BankingPartner, error) {
	var m models.BankingPartner
	if err := r.db.WithContext(ctx).
		Preload("LoanProducts.SpecialOffers").
		Preload("LoanProducts").
		Where("id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bankToEntity(&m), nil
}

// GetByCode gets a bank by its unique code
func (r *BankingPartnerRepository) GetByCode(ctx context.Context, code string) (*entities.BankingPartner, error) {
	var m models.BankingPartner
	if err := r.db.WithContext(ctx).
		Preload("LoanProducts.SpecialOffers").
		Preload("LoanProducts").
		Where("code = ?", code).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bankToEntity(&m), nil
}

// Update replaces a bank's columns and its full product set. Products are
// replaced wholesale: the incoming payload is the source of truth.
func (r *BankingPartnerRepository) Update(ctx context.Context, bank *entities.BankingPartner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := bankToModel(bank)

		result := tx.Model(&models.BankingPartner{}).
			Where("id = ?", bank.ID).
			Select("*").
			Omit("id", "created_at", "deleted_at", "LoanProducts").
			Updates(m)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}

		var productIDs []uuid.UUID
		if err := tx.Model(&models.LoanProduct{}).
			Where("bank_id = ?", bank.ID).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.SpecialOffer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("bank_id = ?", bank.ID).Delete(&models.LoanProduct{}).Error; err != nil {
				return err
			}
		}

		for i := range m.LoanProducts {
			m.LoanProducts[i].BankID = bank.ID
			if err := tx.Create(&m.LoanProducts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns banks with pagination
func (r *BankingPartnerRepository) List(ctx context.Context, limit, offset int) ([]*entities.BankingPartner, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.BankingPartner{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.BankingPartner
	if err := r.db.WithContext(ctx).
		Preload("LoanProducts.SpecialOffers").
		Preload("LoanProducts").
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	banks := make([]*entities.BankingPartner, 0, len(ms))
	for i := range ms {
		banks = append(banks, bankToEntity(&ms[i]))
	}
	return banks, total, nil
}

// ListActive returns all active banks with their products
func (r *BankingPartnerRepository) ListActive(ctx context.Context) ([]*entities.BankingPartner, error) {
	var ms []models.BankingPartner
	if err := r.db.WithContext(ctx).
		Preload("LoanProducts.SpecialOffers").
		Preload("LoanProducts").
		Where("active = ?", true).
		Order("name ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	banks := make([]*entities.BankingPartner, 0, len(ms))
	for i := range ms {
		banks = append(banks, bankToEntity(&ms[i]))
	}
	return banks, nil
}

// SoftDelete marks a bank as deleted
func (r *BankingPartnerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BankingPartner{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeactivateExpiredOffers flips active=false on offers whose validity
// window has passed. Returns the number of offers deactivated.
func (r *BankingPartnerRepository) DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.SpecialOffer{}).
		Where("active = ? AND valid_till IS NOT NULL AND valid_till < ?", true, now).
		Update("active", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func bankToModel(b *entities.BankingPartner) *models.BankingPartner {
	m := &models.BankingPartner{
		ID:              b.ID,
		Name:            b.Name,
		Code:            b.Code,
		ContactEmail:    b.ContactEmail,
		Rating:          b.Rating,
		PartnershipTier: string(b.PartnershipTier),
		PartnerSince:    b.PartnerSince,
		Active:          b.Active,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.ContactPhone.Valid {
		m.ContactPhone = &b.ContactPhone.String
	}
	if b.PreferredValues != nil {
		m.PreferredValueMin = &b.PreferredValues.Min
		m.PreferredValueMax = &b.PreferredValues.Max
	}
	for i := range b.LoanProducts {
		m.LoanProducts = append(m.LoanProducts, productToModel(b.ID, &b.LoanProducts[i]))
	}
	return m
}

func productToModel(bankID uuid.UUID, p *entities.LoanProduct) models.LoanProduct {
	id := p.ID
	if id == uuid.Nil {
		id = utils.GenerateUUIDv7()
	}
	m := models.LoanProduct{
		ID:               id,
		BankID:           bankID,
		Name:             p.Name,
		Type:             string(p.Type),
		InterestRateMin:  p.InterestRate.Min,
		InterestRateMax:  p.InterestRate.Max,
		LoanAmountMin:    p.LoanAmount.Min,
		LoanAmountMax:    p.LoanAmount.Max,
		TenureMinYears:   p.Tenure.MinYears,
		TenureMaxYears:   p.Tenure.MaxYears,
		LTVRatio:         p.LTVRatio,
		FeePercent:       p.ProcessingFee.Percent,
		FeeFixed:         p.ProcessingFee.Fixed,
		FeeMax:           p.ProcessingFee.Max,
		PropertyTypes:    models.MarshalStrings(p.PropertyTypes),
		MinMonthlyIncome: p.Eligibility.MinMonthlyIncome,
		MinCreditScore:   p.Eligibility.MinCreditScore,
		EmploymentTypes:  models.MarshalStrings(p.Eligibility.EmploymentTypes),
		Active:           p.Active,
	}
	for i := range p.SpecialOffers {
		o := &p.SpecialOffers[i]
		oid := o.ID
		if oid == uuid.Nil {
			oid = utils.GenerateUUIDv7()
		}
		om := models.SpecialOffer{
			ID:          oid,
			ProductID:   id,
			Label:       o.Label,
			Description: o.Description,
			Active:      o.Active,
		}
		if o.ValidTill.Valid {
			om.ValidTill = &o.ValidTill.Time
		}
		m.SpecialOffers = append(m.SpecialOffers, om)
	}
	return m
}

func bankToEntity(m *models.BankingPartner) *entities.BankingPartner {
	b := &entities.BankingPartner{
		ID:              m.ID,
		Name:            m.Name,
		Code:            m.Code,
		ContactEmail:    m.ContactEmail,
		ContactPhone:    null.StringFromPtr(m.ContactPhone),
		Rating:          m.Rating,
		PartnershipTier: entities.PartnershipTier(m.PartnershipTier),
		PartnerSince:    m.PartnerSince,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.PreferredValueMin != nil || m.PreferredValueMax != nil {
		vr := &entities.ValueRange{}
		if m.PreferredValueMin != nil {
			vr.Min = *m.PreferredValueMin
		}
		if m.PreferredValueMax != nil {
			vr.Max = *m.PreferredValueMax
		}
		b.PreferredValues = vr
	}
	if m.DeletedAt.Valid {
		b.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	for i := range m.LoanProducts {
		b.LoanProducts = append(b.LoanProducts, productToEntity(&m.LoanProducts[i]))
	}
	return b
}

func productToEntity(m *models.LoanProduct) entities.LoanProduct {
	p := entities.LoanProduct{
		ID:   m.ID,
		Name: m.Name,
		Type: entities.LoanProductType(m.Type),
		InterestRate: entities.RateRange{
			Min: m.InterestRateMin,
			Max: m.InterestRateMax,
		},
		LoanAmount: entities.AmountRange{
			Min: m.LoanAmountMin,
			Max: m.LoanAmountMax,
		},
		Tenure: entities.TenureRange{
			MinYears: m.TenureMinYears,
			MaxYears: m.TenureMaxYears,
		},
		LTVRatio: m.LTVRatio,
		ProcessingFee: entities.ProcessingFee{
			Percent: m.FeePercent,
			Fixed:   m.FeeFixed,
			Max:     m.FeeMax,
		},
		PropertyTypes: models.UnmarshalStrings(m.PropertyTypes),
		Eligibility: entities.EligibilityCriteria{
			MinMonthlyIncome: m.MinMonthlyIncome,
			MinCreditScore:   m.MinCreditScore,
			EmploymentTypes:  models.UnmarshalStrings(m.EmploymentTypes),
		},
		Active: m.Active,
	}
	for i := range m.SpecialOffers {
		o := &m.SpecialOffers[i]
		p.SpecialOffers = append(p.SpecialOffers, entities.SpecialOffer{
			ID:          o.ID,
			Label:       o.Label,
			Description: o.Description,
			ValidTill:   null.TimeFromPtr(o.ValidTill),
			Active:      o.Active,
		})
	}
	return p
}
