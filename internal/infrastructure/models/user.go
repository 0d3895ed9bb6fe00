package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type StaffProfile struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode        string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	Department          string    `gorm:"type:varchar(100)"`
	AppointmentsHandled int       `gorm:"not null;default:0"`
	PropertiesVerified  int       `gorm:"not null;default:0"`
	SalesTarget         float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type SavedProperty struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}
