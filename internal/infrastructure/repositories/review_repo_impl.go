package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/infrastructure/models"
)

// ReviewRepository implements review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review
func (r *ReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	m := &models.Review{
		ID:         review.ID,
		PropertyID: review.PropertyID,
		UserID:     review.UserID,
		UserName:   review.UserName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Status:     string(review.Status),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.CreatedAt = m.CreatedAt
	review.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error) {
	var m models.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// ListByProperty returns a listing's reviews, newest first. Hidden reviews
// are only included for staff views.
func (r *ReviewRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID, includeHidden bool) ([]*entities.Review, error) {
	query := r.db.WithContext(ctx).Where("property_id = ?", propertyID)
	if !includeHidden {
		query = query.Where("status = ?", string(entities.ReviewStatusVisible))
	}

	var ms []models.Review
	if err := query.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(ms))
	for i := range ms {
		reviews = append(reviews, reviewToEntity(&ms[i]))
	}
	return reviews, nil
}

// GetByPropertyAndUser gets a user's review of a listing, if any
func (r *ReviewRepository) GetByPropertyAndUser(ctx context.Context, propertyID, userID uuid.UUID) (*entities.Review, error) {
	var m models.Review
	if err := r.db.WithContext(ctx).
		Where("property_id = ? AND user_id = ?", propertyID, userID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return reviewToEntity(&m), nil
}

// UpdateStatus shows or hides a review
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReviewStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func reviewToEntity(m *models.Review) *entities.Review {
	return &entities.Review{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		UserID:     m.UserID,
		UserName:   m.UserName,
		Rating:     m.Rating,
		Comment:    m.Comment,
		Status:     entities.ReviewStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
