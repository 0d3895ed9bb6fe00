package models

import (
	"time"

	"github.com/google/uuid"
)

type Enquiry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Phone      string    `gorm:"type:varchar(20);not null"`
	Message    string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(50);not null;default:'new';index"`
	HandledBy  *string   `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserName   string    `gorm:"type:varchar(100);not null"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:varchar(50);not null;default:'visible'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	ScheduledAt time.Time `gorm:"not null;index"`
	Status      string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	StaffID     *string   `gorm:"type:varchar(64)"`
	Notes       *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TitleSearchRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyAddress string    `gorm:"type:text;not null"`
	City            string    `gorm:"type:varchar(100);not null"`
	SurveyNumber    *string   `gorm:"type:varchar(100)"`
	RequesterName   string    `gorm:"type:varchar(100);not null"`
	RequesterEmail  string    `gorm:"type:varchar(255);not null"`
	RequesterPhone  string    `gorm:"type:varchar(20);not null"`
	Documents       string    `gorm:"type:text"` // JSON array
	Status          string    `gorm:"type:varchar(50);not null;default:'received';index"`
	ResultNotes     *string   `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
