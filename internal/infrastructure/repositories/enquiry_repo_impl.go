package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/infrastructure/models"
)

// EnquiryRepository implements enquiry data operations
type EnquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

// Create creates a new enquiry
func (r *EnquiryRepository) Create(ctx context.Context, enquiry *entities.Enquiry) error {
	m := &models.Enquiry{
		ID:         enquiry.ID,
		PropertyID: enquiry.PropertyID,
		Name:       enquiry.Name,
		Email:      enquiry.Email,
		Phone:      enquiry.Phone,
		Message:    enquiry.Message,
		Status:     string(enquiry.Status),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	enquiry.CreatedAt = m.CreatedAt
	enquiry.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an enquiry by ID
func (r *EnquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Enquiry, error) {
	var m models.Enquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return enquiryToEntity(&m), nil
}

// List returns enquiries, optionally filtered by status, newest first
func (r *EnquiryRepository) List(ctx context.Context, status entities.EnquiryStatus, limit, offset int) ([]*entities.Enquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Enquiry{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Enquiry
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	enquiries := make([]*entities.Enquiry, 0, len(ms))
	for i := range ms {
		enquiries = append(enquiries, enquiryToEntity(&ms[i]))
	}
	return enquiries, total, nil
}

// UpdateStatus progresses an enquiry and records who handled it
func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EnquiryStatus, handledBy string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if handledBy != "" {
		updates["handled_by"] = handledBy
	}

	result := r.db.WithContext(ctx).Model(&models.Enquiry{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func enquiryToEntity(m *models.Enquiry) *entities.Enquiry {
	return &entities.Enquiry{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Message:    m.Message,
		Status:     entities.EnquiryStatus(m.Status),
		HandledBy:  null.StringFromPtr(m.HandledBy),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
