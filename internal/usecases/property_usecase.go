package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/pkg/utils"
)

// PropertyUsecase handles listing submission, browsing and the staff
// verification workflow
type PropertyUsecase struct {
	propertyRepo repositories.PropertyRepository
	staffRepo    repositories.StaffProfileRepository
}

// NewPropertyUsecase creates a new property usecase
func NewPropertyUsecase(
	propertyRepo repositories.PropertyRepository,
	staffRepo repositories.StaffProfileRepository,
) *PropertyUsecase {
	return &PropertyUsecase{
		propertyRepo: propertyRepo,
		staffRepo:    staffRepo,
	}
}

// Submit creates a new listing in pending verification state
func (u *PropertyUsecase) Submit(ctx context.Context, ownerID uuid.UUID, input *entities.SubmitPropertyInput) (*entities.Property, error) {
	if !validPropertyType(input.Type) {
		return nil, domainerrors.BadRequest("invalid property type")
	}
	if !validPropertyPurpose(input.Purpose) {
		return nil, domainerrors.BadRequest("invalid property purpose")
	}

	property := &entities.Property{
		ID:           utils.GenerateUUIDv7(),
		Title:        input.Title,
		Description:  input.Description,
		Address:      input.Address,
		City:         input.City,
		Price:        input.Price,
		Bhk:          input.Bhk,
		Bathrooms:    input.Bathrooms,
		Balconies:    input.Balconies,
		AreaSqFt:     input.AreaSqFt,
		Type:         input.Type,
		Purpose:      input.Purpose,
		AgeBracket:   entities.NormalizeAgeBracket(input.Age),
		Amenities:    input.Amenities,
		Images:       input.Images,
		Features:     input.Features,
		Verification: entities.VerificationPending,
		OwnerID:      ownerID,
		OwnerName:    input.OwnerName,
		OwnerPhone:   input.OwnerPhone,
		OwnerEmail:   input.OwnerEmail,
	}
	if input.Landmark != "" {
		property.Landmark.SetValid(input.Landmark)
	}

	if err := u.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Get returns a single listing
func (u *PropertyUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	return u.propertyRepo.GetByID(ctx, id)
}

// List returns listings matching the filter, paginated
func (u *PropertyUsecase) List(ctx context.Context, filter entities.PropertyFilter, limit, offset int) ([]*entities.Property, int64, error) {
	return u.propertyRepo.List(ctx, filter, limit, offset)
}

// ListByOwner returns every listing owned by a user
func (u *PropertyUsecase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Property, error) {
	return u.propertyRepo.ListByOwner(ctx, ownerID)
}

// Update applies a partial update by the listing owner. Any change resets
// the listing to pending so staff re-verify it.
func (u *PropertyUsecase) Update(ctx context.Context, id, callerID uuid.UUID, isAdmin bool, input *entities.UpdatePropertyInput) (*entities.Property, error) {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property.OwnerID != callerID && !isAdmin {
		return nil, domainerrors.Forbidden("only the owner can update this listing")
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Landmark != nil {
		property.Landmark = null.StringFrom(*input.Landmark)
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.BadRequest("price must be positive")
		}
		property.Price = *input.Price
	}
	if input.Bhk != nil {
		property.Bhk = *input.Bhk
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Balconies != nil {
		property.Balconies = *input.Balconies
	}
	if input.AreaSqFt != nil {
		property.AreaSqFt = *input.AreaSqFt
	}
	if input.Age != nil {
		property.AgeBracket = entities.NormalizeAgeBracket(*input.Age)
	}
	if input.Amenities != nil {
		property.Amenities = input.Amenities
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.Features != nil {
		property.Features = *input.Features
	}

	property.Verification = entities.VerificationPending
	property.VerifiedBy = null.String{}
	property.VerifiedAt = null.Time{}

	if err := u.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// ListPending returns listings awaiting staff verification
func (u *PropertyUsecase) ListPending(ctx context.Context, limit, offset int) ([]*entities.Property, int64, error) {
	return u.propertyRepo.ListPendingVerification(ctx, limit, offset)
}

// Verify marks a listing verified and credits the acting staff member
func (u *PropertyUsecase) Verify(ctx context.Context, propertyID, staffID uuid.UUID) error {
	return u.setVerification(ctx, propertyID, staffID, entities.VerificationVerified)
}

// Reject marks a listing rejected
func (u *PropertyUsecase) Reject(ctx context.Context, propertyID, staffID uuid.UUID) error {
	return u.setVerification(ctx, propertyID, staffID, entities.VerificationRejected)
}

func (u *PropertyUsecase) setVerification(ctx context.Context, propertyID, staffID uuid.UUID, status entities.VerificationStatus) error {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if property.Verification == status {
		return nil
	}

	if err := u.propertyRepo.UpdateVerification(ctx, propertyID, status, staffID); err != nil {
		return err
	}

	if status == entities.VerificationVerified {
		// Activity log update is best effort: the verification itself has
		// already been committed.
		_ = u.staffRepo.IncrementPropertiesVerified(ctx, staffID)
	}
	return nil
}

// Remove soft deletes a listing. Admin only; this is the one hard removal
// path the marketplace exposes.
func (u *PropertyUsecase) Remove(ctx context.Context, id uuid.UUID) error {
	return u.propertyRepo.SoftDelete(ctx, id)
}

func validPropertyType(t entities.PropertyType) bool {
	switch t {
	case entities.PropertyTypeHouse, entities.PropertyTypeApartment, entities.PropertyTypePlot:
		return true
	}
	return false
}

func validPropertyPurpose(p entities.PropertyPurpose) bool {
	switch p {
	case entities.PropertyPurposeRent, entities.PropertyPurposeLease, entities.PropertyPurposeSell:
		return true
	}
	return false
}
