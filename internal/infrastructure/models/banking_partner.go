package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankingPartner struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Code              string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	ContactEmail      string    `gorm:"type:varchar(255);not null"`
	ContactPhone      *string   `gorm:"type:varchar(20)"`
	Rating            float64   `gorm:"not null"`
	PartnershipTier   string    `gorm:"type:varchar(50);not null;default:'standard'"`
	PartnerSince      time.Time
	PreferredValueMin *float64
	PreferredValueMax *float64
	Active            bool          `gorm:"not null;default:true;index"`
	LoanProducts      []LoanProduct `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

type LoanProduct struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BankID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Type             string    `gorm:"type:varchar(50);not null"`
	InterestRateMin  float64   `gorm:"not null"`
	InterestRateMax  float64   `gorm:"not null"`
	LoanAmountMin    float64
	LoanAmountMax    float64
	TenureMinYears   int `gorm:"not null"`
	TenureMaxYears   int `gorm:"not null"`
	LTVRatio         float64 `gorm:"not null"`
	FeePercent       float64
	FeeFixed         float64
	FeeMax           float64
	PropertyTypes    string `gorm:"type:text"` // JSON array
	MinMonthlyIncome float64
	MinCreditScore   int
	EmploymentTypes  string         `gorm:"type:text"` // JSON array
	Active           bool           `gorm:"not null;default:true"`
	SpecialOffers    []SpecialOffer `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SpecialOffer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Label       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ValidTill   *time.Time `gorm:"index"`
	Active      bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
