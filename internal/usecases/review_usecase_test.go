package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/usecases"
)

func newReviewUsecase() (*usecases.ReviewUsecase, *MockReviewRepository, *MockPropertyRepository, *MockUserRepository) {
	mockReviewRepo := new(MockReviewRepository)
	mockPropertyRepo := new(MockPropertyRepository)
	mockUserRepo := new(MockUserRepository)
	uc := usecases.NewReviewUsecase(mockReviewRepo, mockPropertyRepo, mockUserRepo)
	return uc, mockReviewRepo, mockPropertyRepo, mockUserRepo
}

func TestPostReview(t *testing.T) {
	uc, mockReviewRepo, mockPropertyRepo, mockUserRepo := newReviewUsecase()

	property := verifiedHouse(5_000_000)
	user := seedUser(t, "s3cret-pass")

	mockPropertyRepo.On("GetByID", mock.Anything, property.ID).Return(property, nil)
	mockUserRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	mockReviewRepo.On("GetByPropertyAndUser", mock.Anything, property.ID, user.ID).Return(nil, domainerrors.ErrNotFound)
	mockReviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Review")).Return(nil)

	review, err := uc.Post(context.Background(), property.ID, user.ID, &entities.CreateReviewInput{
		Rating:  4,
		Comment: "Great locality, responsive owner",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ReviewStatusVisible, review.Status)
	assert.Equal(t, user.Name, review.UserName)
	assert.Equal(t, 4, review.Rating)
	mockReviewRepo.AssertExpectations(t)
}

func TestPostReview_OnePerUserPerListing(t *testing.T) {
	uc, mockReviewRepo, mockPropertyRepo, mockUserRepo := newReviewUsecase()

	property := verifiedHouse(5_000_000)
	user := seedUser(t, "s3cret-pass")
	existing := &entities.Review{ID: uuid.New(), PropertyID: property.ID, UserID: user.ID}

	mockPropertyRepo.On("GetByID", mock.Anything, property.ID).Return(property, nil)
	mockUserRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	mockReviewRepo.On("GetByPropertyAndUser", mock.Anything, property.ID, user.ID).Return(existing, nil)

	review, err := uc.Post(context.Background(), property.ID, user.ID, &entities.CreateReviewInput{
		Rating:  5,
		Comment: "Trying to double-review",
	})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostReview_UnknownProperty(t *testing.T) {
	uc, mockReviewRepo, mockPropertyRepo, _ := newReviewUsecase()

	ghost := uuid.New()
	mockPropertyRepo.On("GetByID", mock.Anything, ghost).Return(nil, domainerrors.ErrNotFound)

	_, err := uc.Post(context.Background(), ghost, uuid.New(), &entities.CreateReviewInput{Rating: 3, Comment: "n/a"})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListForProperty_OnlyVisible(t *testing.T) {
	uc, mockReviewRepo, _, _ := newReviewUsecase()

	propertyID := uuid.New()
	visible := []*entities.Review{{ID: uuid.New(), PropertyID: propertyID}}
	mockReviewRepo.On("ListByProperty", mock.Anything, propertyID, false).Return(visible, nil)

	reviews, err := uc.ListForProperty(context.Background(), propertyID)

	require.NoError(t, err)
	assert.Equal(t, visible, reviews)
	mockReviewRepo.AssertExpectations(t)
}

func TestSetReviewVisibility(t *testing.T) {
	uc, mockReviewRepo, _, _ := newReviewUsecase()

	id := uuid.New()
	mockReviewRepo.On("UpdateStatus", mock.Anything, id, entities.ReviewStatusHidden).Return(nil)
	mockReviewRepo.On("UpdateStatus", mock.Anything, id, entities.ReviewStatusVisible).Return(nil)

	require.NoError(t, uc.SetVisibility(context.Background(), id, false))
	require.NoError(t, uc.SetVisibility(context.Background(), id, true))
	mockReviewRepo.AssertExpectations(t)
}
