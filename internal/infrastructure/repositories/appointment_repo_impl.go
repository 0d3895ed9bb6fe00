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

// AppointmentRepository implements appointment data operations
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create creates a new appointment
func (r *AppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	m := &models.Appointment{
		ID:          appointment.ID,
		PropertyID:  appointment.PropertyID,
		UserID:      appointment.UserID,
		Name:        appointment.Name,
		Phone:       appointment.Phone,
		ScheduledAt: appointment.ScheduledAt,
		Status:      string(appointment.Status),
	}
	if appointment.Notes.Valid {
		m.Notes = &appointment.Notes.String
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	appointment.CreatedAt = m.CreatedAt
	appointment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	var m models.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return appointmentToEntity(&m), nil
}

// ListByUser returns a user's appointments, soonest first
func (r *AppointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Appointment, error) {
	var ms []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	appointments := make([]*entities.Appointment, 0, len(ms))
	for i := range ms {
		appointments = append(appointments, appointmentToEntity(&ms[i]))
	}
	return appointments, nil
}

// List returns appointments, optionally filtered by status, soonest first
func (r *AppointmentRepository) List(ctx context.Context, status entities.AppointmentStatus, limit, offset int) ([]*entities.Appointment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Appointment{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Appointment
	if err := query.Order("scheduled_at ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	appointments := make([]*entities.Appointment, 0, len(ms))
	for i := range ms {
		appointments = append(appointments, appointmentToEntity(&ms[i]))
	}
	return appointments, total, nil
}

// UpdateStatus progresses an appointment and records the acting staff member
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AppointmentStatus, staffID uuid.UUID, notes string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if staffID != uuid.Nil {
		updates["staff_id"] = staffID.String()
	}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
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

// ExpirePastPending flips pending appointments whose slot has passed to
// expired. Returns the number of appointments expired.
func (r *AppointmentRepository) ExpirePastPending(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("status = ? AND scheduled_at < ?", string(entities.AppointmentStatusPending), cutoff).
		Update("status", string(entities.AppointmentStatusExpired))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func appointmentToEntity(m *models.Appointment) *entities.Appointment {
	a := &entities.Appointment{
		ID:          m.ID,
		PropertyID:  m.PropertyID,
		UserID:      m.UserID,
		Name:        m.Name,
		Phone:       m.Phone,
		ScheduledAt: m.ScheduledAt,
		Status:      entities.AppointmentStatus(m.Status),
		StaffID:     null.StringFromPtr(m.StaffID),
		Notes:       null.StringFromPtr(m.Notes),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	return a
}
