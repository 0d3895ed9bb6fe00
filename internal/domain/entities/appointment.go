package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AppointmentStatus represents the lifecycle of a site-visit appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusExpired   AppointmentStatus = "expired"
)

// Appointment represents a scheduled site visit for a listing
type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	PropertyID  uuid.UUID         `json:"propertyId"`
	UserID      uuid.UUID         `json:"userId"`
	Name        string            `json:"name"`
	Phone       string            `json:"phone"`
	ScheduledAt time.Time         `json:"scheduledAt"`
	Status      AppointmentStatus `json:"status"`
	StaffID     null.String       `json:"staffId,omitempty"`
	Notes       null.String       `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CreateAppointmentInput represents input for booking a site visit
type CreateAppointmentInput struct {
	PropertyID  uuid.UUID `json:"propertyId" binding:"required"`
	Name        string    `json:"name" binding:"required,min=2,max=100"`
	Phone       string    `json:"phone" binding:"required,min=10,max=15"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Notes       string    `json:"notes"`
}

// UpdateAppointmentStatusInput represents staff input for progressing an appointment
type UpdateAppointmentStatusInput struct {
	Status AppointmentStatus `json:"status" binding:"required"`
	Notes  string            `json:"notes"`
}
