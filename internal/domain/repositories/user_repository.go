package repositories

import (
	"context"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
)

// UserRepository defines account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error
	List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	AddSavedProperty(ctx context.Context, userID, propertyID uuid.UUID) error
	RemoveSavedProperty(ctx context.Context, userID, propertyID uuid.UUID) error
	ListSavedProperties(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// StaffProfileRepository defines staff activity-log operations
type StaffProfileRepository interface {
	Create(ctx context.Context, profile *entities.StaffProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StaffProfile, error)
	IncrementPropertiesVerified(ctx context.Context, userID uuid.UUID) error
	IncrementAppointmentsHandled(ctx context.Context, userID uuid.UUID) error
}
