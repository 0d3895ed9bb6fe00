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

// TitleSearchRepository implements title-search request data operations
type TitleSearchRepository struct {
	db *gorm.DB
}

// NewTitleSearchRepository creates a new title-search repository
func NewTitleSearchRepository(db *gorm.DB) *TitleSearchRepository {
	return &TitleSearchRepository{db: db}
}

// Create creates a new title-search request
func (r *TitleSearchRepository) Create(ctx context.Context, request *entities.TitleSearchRequest) error {
	m := &models.TitleSearchRequest{
		ID:              request.ID,
		PropertyAddress: request.PropertyAddress,
		City:            request.City,
		RequesterName:   request.RequesterName,
		RequesterEmail:  request.RequesterEmail,
		RequesterPhone:  request.RequesterPhone,
		Documents:       models.MarshalStrings(request.Documents),
		Status:          string(request.Status),
	}
	if request.SurveyNumber.Valid {
		m.SurveyNumber = &request.SurveyNumber.String
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	request.CreatedAt = m.CreatedAt
	request.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a title-search request by ID
func (r *TitleSearchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TitleSearchRequest, error) {
	var m models.TitleSearchRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return titleSearchToEntity(&m), nil
}

// List returns requests, optionally filtered by status, newest first
func (r *TitleSearchRepository) List(ctx context.Context, status entities.TitleSearchStatus, limit, offset int) ([]*entities.TitleSearchRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TitleSearchRequest{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.TitleSearchRequest
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	requests := make([]*entities.TitleSearchRequest, 0, len(ms))
	for i := range ms {
		requests = append(requests, titleSearchToEntity(&ms[i]))
	}
	return requests, total, nil
}

// UpdateStatus progresses a request and records the outcome notes
func (r *TitleSearchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TitleSearchStatus, resultNotes string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if resultNotes != "" {
		updates["result_notes"] = resultNotes
	}

	result := r.db.WithContext(ctx).Model(&models.TitleSearchRequest{}).
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

func titleSearchToEntity(m *models.TitleSearchRequest) *entities.TitleSearchRequest {
	return &entities.TitleSearchRequest{
		ID:              m.ID,
		PropertyAddress: m.PropertyAddress,
		City:            m.City,
		SurveyNumber:    null.StringFromPtr(m.SurveyNumber),
		RequesterName:   m.RequesterName,
		RequesterEmail:  m.RequesterEmail,
		RequesterPhone:  m.RequesterPhone,
		Documents:       models.UnmarshalStrings(m.Documents),
		Status:          entities.TitleSearchStatus(m.Status),
		ResultNotes:     null.StringFromPtr(m.ResultNotes),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
