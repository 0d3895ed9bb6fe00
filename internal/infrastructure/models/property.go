package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text;not null"`
	Address         string    `gorm:"type:text;not null"`
	City            string    `gorm:"type:varchar(100);not null;index"`
	Landmark        *string   `gorm:"type:varchar(255)"`
	Price           float64   `gorm:"not null;index"`
	Bhk             int
	Bathrooms       int
	Balconies       int
	AreaSqFt        float64
	Type            string `gorm:"type:varchar(50);not null;index"`
	Purpose         string `gorm:"type:varchar(50);not null"`
	AgeBracket      string `gorm:"type:varchar(50);not null;default:'new'"`
	Amenities       string `gorm:"type:text"` // JSON array
	Images          string `gorm:"type:text"` // JSON array
	PoojaRoom       bool
	StudyRoom       bool
	ServantRoom     bool
	StoreRoom       bool
	PriceNegotiable bool
	Verification    string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	VerifiedBy      *string    `gorm:"type:varchar(64)"`
	VerifiedAt      *time.Time `gorm:"type:timestamp"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	OwnerName       string     `gorm:"type:varchar(100);not null"`
	OwnerPhone      string     `gorm:"type:varchar(20);not null"`
	OwnerEmail      string     `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
