package repositories

import (
	"context"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
)

// PropertyRepository defines property data operations
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error)
	Update(ctx context.Context, property *entities.Property) error
	List(ctx context.Context, filter entities.PropertyFilter, limit, offset int) ([]*entities.Property, int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Property, error)
	ListPendingVerification(ctx context.Context, limit, offset int) ([]*entities.Property, int64, error)
	UpdateVerification(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, staffID uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
