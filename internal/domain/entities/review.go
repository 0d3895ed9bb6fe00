package entities

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus controls whether a review is shown publicly
type ReviewStatus string

const (
	ReviewStatusVisible ReviewStatus = "visible"
	ReviewStatusHidden  ReviewStatus = "hidden"
)

// Review represents a user review of a listing
type Review struct {
	ID         uuid.UUID    `json:"id"`
	PropertyID uuid.UUID    `json:"propertyId"`
	UserID     uuid.UUID    `json:"userId"`
	UserName   string       `json:"userName"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// CreateReviewInput represents input for posting a review
type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"required,max=2000"`
}
