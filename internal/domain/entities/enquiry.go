package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// EnquiryStatus represents the handling state of an enquiry
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

// Enquiry represents a buyer enquiry about a listing
type Enquiry struct {
	ID         uuid.UUID     `json:"id"`
	PropertyID uuid.UUID     `json:"propertyId"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	Message    string        `json:"message"`
	Status     EnquiryStatus `json:"status"`
	HandledBy  null.String   `json:"handledBy,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// CreateEnquiryInput represents input for submitting an enquiry
type CreateEnquiryInput struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	Name       string    `json:"name" binding:"required,min=2,max=100"`
	Email      string    `json:"email" binding:"required,email"`
	Phone      string    `json:"phone" binding:"required,min=10,max=15"`
	Message    string    `json:"message" binding:"required,max=2000"`
}
