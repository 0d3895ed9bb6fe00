package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/pkg/utils"
)

// ReviewUsecase handles listing reviews
type ReviewUsecase struct {
	reviewRepo   repositories.ReviewRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	reviewRepo repositories.ReviewRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// Post creates a review. One review per user per listing.
func (u *ReviewUsecase) Post(ctx context.Context, propertyID, userID uuid.UUID, input *entities.CreateReviewInput) (*entities.Review, error) {
	if _, err := u.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := u.reviewRepo.GetByPropertyAndUser(ctx, propertyID, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("you have already reviewed this property")
	}

	review := &entities.Review{
		ID:         utils.GenerateUUIDv7(),
		PropertyID: propertyID,
		UserID:     userID,
		UserName:   user.Name,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Status:     entities.ReviewStatusVisible,
	}

	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListForProperty returns visible reviews of a listing
func (u *ReviewUsecase) ListForProperty(ctx context.Context, propertyID uuid.UUID) ([]*entities.Review, error) {
	return u.reviewRepo.ListByProperty(ctx, propertyID, false)
}

// SetVisibility hides or shows a review (admin moderation)
func (u *ReviewUsecase) SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	status := entities.ReviewStatusHidden
	if visible {
		status = entities.ReviewStatusVisible
	}
	return u.reviewRepo.UpdateStatus(ctx, id, status)
}
