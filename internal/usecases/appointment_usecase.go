package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/pkg/utils"
)

// AppointmentUsecase handles site-visit booking and the staff workflow
// around it
type AppointmentUsecase struct {
	appointmentRepo repositories.AppointmentRepository
	propertyRepo    repositories.PropertyRepository
	staffRepo       repositories.StaffProfileRepository
}

// NewAppointmentUsecase creates a new appointment usecase
func NewAppointmentUsecase(
	appointmentRepo repositories.AppointmentRepository,
	propertyRepo repositories.PropertyRepository,
	staffRepo repositories.StaffProfileRepository,
) *AppointmentUsecase {
	return &AppointmentUsecase{
		appointmentRepo: appointmentRepo,
		propertyRepo:    propertyRepo,
		staffRepo:       staffRepo,
	}
}

// Book schedules a site visit for an existing listing
func (u *AppointmentUsecase) Book(ctx context.Context, userID uuid.UUID, input *entities.CreateAppointmentInput) (*entities.Appointment, error) {
	if input.ScheduledAt.Before(time.Now()) {
		return nil, domainerrors.BadRequest("appointment must be scheduled in the future")
	}

	if _, err := u.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		return nil, err
	}

	appointment := &entities.Appointment{
		ID:          utils.GenerateUUIDv7(),
		PropertyID:  input.PropertyID,
		UserID:      userID,
		Name:        input.Name,
		Phone:       input.Phone,
		ScheduledAt: input.ScheduledAt,
		Status:      entities.AppointmentStatusPending,
	}
	if input.Notes != "" {
		appointment.Notes = null.StringFrom(input.Notes)
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListForUser returns the caller's appointments
func (u *AppointmentUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Appointment, error) {
	return u.appointmentRepo.ListByUser(ctx, userID)
}

// ListForStaff returns appointments for the staff queue, optionally filtered
// by status
func (u *AppointmentUsecase) ListForStaff(ctx context.Context, status entities.AppointmentStatus, limit, offset int) ([]*entities.Appointment, int64, error) {
	return u.appointmentRepo.List(ctx, status, limit, offset)
}

// UpdateStatus progresses an appointment through its lifecycle and credits
// the staff member when a visit completes
func (u *AppointmentUsecase) UpdateStatus(ctx context.Context, id, staffID uuid.UUID, input *entities.UpdateAppointmentStatusInput) error {
	switch input.Status {
	case entities.AppointmentStatusConfirmed,
		entities.AppointmentStatusCompleted,
		entities.AppointmentStatusCancelled:
	default:
		return domainerrors.BadRequest("invalid appointment status transition")
	}

	appointment, err := u.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !validAppointmentTransition(appointment.Status, input.Status) {
		return domainerrors.BadRequest("invalid appointment status transition")
	}

	if err := u.appointmentRepo.UpdateStatus(ctx, id, input.Status, staffID, input.Notes); err != nil {
		return err
	}

	if input.Status == entities.AppointmentStatusCompleted {
		_ = u.staffRepo.IncrementAppointmentsHandled(ctx, staffID)
	}
	return nil
}

// Pending visits can be confirmed, cancelled or expired; confirmed visits
// can complete or be cancelled. Everything else is terminal.
func validAppointmentTransition(from, to entities.AppointmentStatus) bool {
	switch from {
	case entities.AppointmentStatusPending:
		return to == entities.AppointmentStatusConfirmed ||
			to == entities.AppointmentStatusCancelled ||
			to == entities.AppointmentStatusExpired
	case entities.AppointmentStatusConfirmed:
		return to == entities.AppointmentStatusCompleted ||
			to == entities.AppointmentStatusCancelled
	default:
		return false
	}
}
