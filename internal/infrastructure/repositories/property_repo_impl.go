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
)

// PropertyRepository implements property data operations
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new listing
func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	m := propertyToModel(property)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	property.CreatedAt = m.CreatedAt
	property.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a listing by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	var m models.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return propertyToEntity(&m), nil
}

// Update replaces the mutable columns of a listing
func (r *PropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	m := propertyToModel(property)
	result := r.db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", property.ID).
		Select("*").
		Omit("id", "owner_id", "created_at", "deleted_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns listings matching the filter with pagination
func (r *PropertyRepository) List(ctx context.Context, filter entities.PropertyFilter, limit, offset int) ([]*entities.Property, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Property{})
	query = applyPropertyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Property
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	properties := make([]*entities.Property, 0, len(ms))
	for i := range ms {
		properties = append(properties, propertyToEntity(&ms[i]))
	}
	return properties, total, nil
}

// ListByOwner returns all listings owned by a user
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Property, error) {
	var ms []models.Property
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	properties := make([]*entities.Property, 0, len(ms))
	for i := range ms {
		properties = append(properties, propertyToEntity(&ms[i]))
	}
	return properties, nil
}

// ListPendingVerification returns listings awaiting staff review
func (r *PropertyRepository) ListPendingVerification(ctx context.Context, limit, offset int) ([]*entities.Property, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Property{}).
		Where("verification = ?", string(entities.VerificationPending))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Property
	if err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	properties := make([]*entities.Property, 0, len(ms))
	for i := range ms {
		properties = append(properties, propertyToEntity(&ms[i]))
	}
	return properties, total, nil
}

// UpdateVerification records a staff verification decision
func (r *PropertyRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, staffID uuid.UUID) error {
	updates := map[string]interface{}{
		"verification": string(status),
	}
	if status == entities.VerificationVerified {
		staff := staffID.String()
		now := time.Now()
		updates["verified_by"] = &staff
		updates["verified_at"] = &now
	} else {
		updates["verified_by"] = nil
		updates["verified_at"] = nil
	}

	result := r.db.WithContext(ctx).Model(&models.Property{}).
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

// SoftDelete marks a listing as deleted
func (r *PropertyRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Property{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func applyPropertyFilter(query *gorm.DB, filter entities.PropertyFilter) *gorm.DB {
	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Purpose != "" {
		query = query.Where("purpose = ?", string(filter.Purpose))
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Bhk > 0 {
		query = query.Where("bhk = ?", filter.Bhk)
	}
	if filter.VerifiedOnly {
		query = query.Where("verification = ?", string(entities.VerificationVerified))
	}
	return query
}

func propertyToModel(p *entities.Property) *models.Property {
	m := &models.Property{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Address:         p.Address,
		City:            p.City,
		Price:           p.Price,
		Bhk:             p.Bhk,
		Bathrooms:       p.Bathrooms,
		Balconies:       p.Balconies,
		AreaSqFt:        p.AreaSqFt,
		Type:            string(p.Type),
		Purpose:         string(p.Purpose),
		AgeBracket:      string(p.AgeBracket),
		Amenities:       models.MarshalStrings(p.Amenities),
		Images:          models.MarshalStrings(p.Images),
		PoojaRoom:       p.Features.PoojaRoom,
		StudyRoom:       p.Features.StudyRoom,
		ServantRoom:     p.Features.ServantRoom,
		StoreRoom:       p.Features.StoreRoom,
		PriceNegotiable: p.Features.PriceNegotiable,
		Verification:    string(p.Verification),
		OwnerID:         p.OwnerID,
		OwnerName:       p.OwnerName,
		OwnerPhone:      p.OwnerPhone,
		OwnerEmail:      p.OwnerEmail,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Landmark.Valid {
		m.Landmark = &p.Landmark.String
	}
	if p.VerifiedBy.Valid {
		m.VerifiedBy = &p.VerifiedBy.String
	}
	if p.VerifiedAt.Valid {
		m.VerifiedAt = &p.VerifiedAt.Time
	}
	return m
}

func propertyToEntity(m *models.Property) *entities.Property {
	p := &entities.Property{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Address:     m.Address,
		City:        m.City,
		Landmark:    null.StringFromPtr(m.Landmark),
		Price:       m.Price,
		Bhk:         m.Bhk,
		Bathrooms:   m.Bathrooms,
		Balconies:   m.Balconies,
		AreaSqFt:    m.AreaSqFt,
		Type:        entities.PropertyType(m.Type),
		Purpose:     entities.PropertyPurpose(m.Purpose),
		AgeBracket:  entities.AgeBracket(m.AgeBracket),
		Amenities:   models.UnmarshalStrings(m.Amenities),
		Images:      models.UnmarshalStrings(m.Images),
		Features: entities.PropertyFeatures{
			PoojaRoom:       m.PoojaRoom,
			StudyRoom:       m.StudyRoom,
			ServantRoom:     m.ServantRoom,
			StoreRoom:       m.StoreRoom,
			PriceNegotiable: m.PriceNegotiable,
		},
		Verification: entities.VerificationStatus(m.Verification),
		VerifiedBy:   null.StringFromPtr(m.VerifiedBy),
		VerifiedAt:   null.TimeFromPtr(m.VerifiedAt),
		OwnerID:      m.OwnerID,
		OwnerName:    m.OwnerName,
		OwnerPhone:   m.OwnerPhone,
		OwnerEmail:   m.OwnerEmail,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		p.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return p
}
