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

// StaffProfileRepository implements staff activity-log operations
type StaffProfileRepository struct {
	db *gorm.DB
}

// NewStaffProfileRepository creates a new staff profile repository
func NewStaffProfileRepository(db *gorm.DB) *StaffProfileRepository {
	return &StaffProfileRepository{db: db}
}

// Create creates a staff profile
func (r *StaffProfileRepository) Create(ctx context.Context, profile *entities.StaffProfile) error {
	m := &models.StaffProfile{
		UserID:              profile.UserID,
		EmployeeCode:        profile.EmployeeCode,
		Department:          profile.Department,
		AppointmentsHandled: profile.AppointmentsHandled,
		PropertiesVerified:  profile.PropertiesVerified,
		SalesTarget:         profile.SalesTarget,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets a staff profile by user ID
func (r *StaffProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StaffProfile, error) {
	var m models.StaffProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.StaffProfile{
		UserID:              m.UserID,
		EmployeeCode:        m.EmployeeCode,
		Department:          m.Department,
		AppointmentsHandled: m.AppointmentsHandled,
		PropertiesVerified:  m.PropertiesVerified,
		SalesTarget:         m.SalesTarget,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

// IncrementPropertiesVerified bumps the verified counter for a staff member
func (r *StaffProfileRepository) IncrementPropertiesVerified(ctx context.Context, userID uuid.UUID) error {
	return r.increment(ctx, userID, "properties_verified")
}

// IncrementAppointmentsHandled bumps the appointments counter for a staff member
func (r *StaffProfileRepository) IncrementAppointmentsHandled(ctx context.Context, userID uuid.UUID) error {
	return r.increment(ctx, userID, "appointments_handled")
}

func (r *StaffProfileRepository) increment(ctx context.Context, userID uuid.UUID, column string) error {
	result := r.db.WithContext(ctx).Model(&models.StaffProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
