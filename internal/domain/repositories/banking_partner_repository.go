package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
)

// BankingPartnerRepository defines banking-partner data operations.
// Loan products and special offers are embedded in their bank and are
// written through it.
type BankingPartnerRepository interface {
	Create(ctx context.Context, bank *entities.BankingPartner) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BankingPartner, error)
	GetByCode(ctx context.Context, code string) (*entities.BankingPartner, error)
	Update(ctx context.Context, bank *entities.BankingPartner) error
	List(ctx context.Context, limit, offset int) ([]*entities.BankingPartner, int64, error)
	ListActive(ctx context.Context) ([]*entities.BankingPartner, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error)
}
