package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TitleSearchStatus represents the processing state of a title-search request
type TitleSearchStatus string

const (
	TitleSearchReceived   TitleSearchStatus = "received"
	TitleSearchProcessing TitleSearchStatus = "processing"
	TitleSearchCompleted  TitleSearchStatus = "completed"
	TitleSearchRejected   TitleSearchStatus = "rejected"
)

// TitleSearchRequest represents a request to verify a property's title chain
type TitleSearchRequest struct {
	ID              uuid.UUID         `json:"id"`
	PropertyAddress string            `json:"propertyAddress"`
	City            string            `json:"city"`
	SurveyNumber    null.String       `json:"surveyNumber,omitempty"`
	RequesterName   string            `json:"requesterName"`
	RequesterEmail  string            `json:"requesterEmail"`
	RequesterPhone  string            `json:"requesterPhone"`
	Documents       []string          `json:"documents"`
	Status          TitleSearchStatus `json:"status"`
	ResultNotes     null.String       `json:"resultNotes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CreateTitleSearchInput represents input for requesting a title search
type CreateTitleSearchInput struct {
	PropertyAddress string   `json:"propertyAddress" binding:"required"`
	City            string   `json:"city" binding:"required"`
	SurveyNumber    string   `json:"surveyNumber"`
	RequesterName   string   `json:"requesterName" binding:"required,min=2,max=100"`
	RequesterEmail  string   `json:"requesterEmail" binding:"required,email"`
	RequesterPhone  string   `json:"requesterPhone" binding:"required,min=10,max=15"`
	Documents       []string `json:"documents"`
}

// UpdateTitleSearchStatusInput represents staff input for progressing a request
type UpdateTitleSearchStatusInput struct {
	Status      TitleSearchStatus `json:"status" binding:"required"`
	ResultNotes string            `json:"resultNotes"`
}
