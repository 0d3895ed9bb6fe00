package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"estate-hub.backend/internal/domain/entities"
)

// EnquiryRepository defines enquiry data operations
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entities.Enquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Enquiry, error)
	List(ctx context.Context, status entities.EnquiryStatus, limit, offset int) ([]*entities.Enquiry, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EnquiryStatus, handledBy string) error
}

// ReviewRepository defines review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entities.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, includeHidden bool) ([]*entities.Review, error)
	GetByPropertyAndUser(ctx context.Context, propertyID, userID uuid.UUID) (*entities.Review, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ReviewStatus) error
}

// AppointmentRepository defines appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entities.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Appointment, error)
	List(ctx context.Context, status entities.AppointmentStatus, limit, offset int) ([]*entities.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AppointmentStatus, staffID uuid.UUID, notes string) error
	ExpirePastPending(ctx context.Context, cutoff time.Time) (int64, error)
}

// TitleSearchRepository defines title-search request data operations
type TitleSearchRepository interface {
	Create(ctx context.Context, request *entities.TitleSearchRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TitleSearchRequest, error)
	List(ctx context.Context, status entities.TitleSearchStatus, limit, offset int) ([]*entities.TitleSearchRequest, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TitleSearchStatus, resultNotes string) error
}
