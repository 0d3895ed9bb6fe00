package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PropertyType represents the kind of property listed
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypePlot      PropertyType = "Plot"
)

// PropertyPurpose represents why the property is listed
type PropertyPurpose string

const (
	PropertyPurposeRent  PropertyPurpose = "Rent"
	PropertyPurposeLease PropertyPurpose = "Lease"
	PropertyPurposeSell  PropertyPurpose = "Sell"
)

// VerificationStatus represents the staff verification state of a listing
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// AgeBracket classifies property age at data-entry time instead of
// parsing free text when scoring.
type AgeBracket string

const (
	AgeBracketNew               AgeBracket = "new"
	AgeBracketUnderConstruction AgeBracket = "under_construction"
	AgeBracketOneToThree        AgeBracket = "one_to_three"
	AgeBracketFourToTen         AgeBracket = "four_to_ten"
	AgeBracketOlder             AgeBracket = "older"
)

// NormalizeAgeBracket maps legacy free-text age values ("new", "0",
// "under construction", "2", "7 years", ...) onto an AgeBracket. It is
// applied once at the API boundary when a listing is created or updated.
func NormalizeAgeBracket(raw string) AgeBracket {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "" || s == "new" || s == "0":
		return AgeBracketNew
	case strings.Contains(s, "under construction"):
		return AgeBracketUnderConstruction
	}

	years := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			years = years*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	switch {
	case !seen:
		return AgeBracketOlder
	case years == 0:
		return AgeBracketNew
	case years <= 3:
		return AgeBracketOneToThree
	case years <= 10:
		return AgeBracketFourToTen
	default:
		return AgeBracketOlder
	}
}

// PropertyFeatures holds the optional room/deal flags counted by the scorer
type PropertyFeatures struct {
	PoojaRoom       bool `json:"poojaRoom"`
	StudyRoom       bool `json:"studyRoom"`
	ServantRoom     bool `json:"servantRoom"`
	StoreRoom       bool `json:"storeRoom"`
	PriceNegotiable bool `json:"priceNegotiable"`
}

// Property represents a property listing
type Property struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Landmark     null.String        `json:"landmark,omitempty"`
	Price        float64            `json:"price"`
	Bhk          int                `json:"bhk"`
	Bathrooms    int                `json:"bathrooms"`
	Balconies    int                `json:"balconies"`
	AreaSqFt     float64            `json:"areaSqFt"`
	Type         PropertyType       `json:"type"`
	Purpose      PropertyPurpose    `json:"purpose"`
	AgeBracket   AgeBracket         `json:"ageBracket"`
	Amenities    []string           `json:"amenities"`
	Images       []string           `json:"images"`
	Features     PropertyFeatures   `json:"features"`
	Verification VerificationStatus `json:"verification"`
	VerifiedBy   null.String        `json:"verifiedBy,omitempty"`
	VerifiedAt   null.Time          `json:"verifiedAt,omitempty"`
	OwnerID      uuid.UUID          `json:"ownerId"`
	OwnerName    string             `json:"ownerName"`
	OwnerPhone   string             `json:"ownerPhone"`
	OwnerEmail   string             `json:"ownerEmail"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	DeletedAt    null.Time          `json:"-"`
}

// FeatureCount counts truthy feature flags plus balconies, as used by the
// feature factor of the suitability score.
func (p *Property) FeatureCount() int {
	count := 0
	if p.Features.PoojaRoom {
		count++
	}
	if p.Features.StudyRoom {
		count++
	}
	if p.Features.ServantRoom {
		count++
	}
	if p.Features.StoreRoom {
		count++
	}
	if p.Features.PriceNegotiable {
		count++
	}
	if p.Balconies > 0 {
		count++
	}
	return count
}

// SubmitPropertyInput represents input for submitting a new listing
type SubmitPropertyInput struct {
	Title       string           `json:"title" binding:"required,min=3,max=200"`
	Description string           `json:"description" binding:"required"`
	Address     string           `json:"address" binding:"required"`
	City        string           `json:"city" binding:"required"`
	Landmark    string           `json:"landmark"`
	Price       float64          `json:"price" binding:"required,gt=0"`
	Bhk         int              `json:"bhk"`
	Bathrooms   int              `json:"bathrooms"`
	Balconies   int              `json:"balconies"`
	AreaSqFt    float64          `json:"areaSqFt" binding:"required,gt=0"`
	Type        PropertyType     `json:"type" binding:"required"`
	Purpose     PropertyPurpose  `json:"purpose" binding:"required"`
	Age         string           `json:"age"`
	Amenities   []string         `json:"amenities"`
	Images      []string         `json:"images"`
	Features    PropertyFeatures `json:"features"`
	OwnerName   string           `json:"ownerName" binding:"required"`
	OwnerPhone  string           `json:"ownerPhone" binding:"required"`
	OwnerEmail  string           `json:"ownerEmail" binding:"required,email"`
}

// UpdatePropertyInput represents input for updating a listing
type UpdatePropertyInput struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Landmark    *string           `json:"landmark,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Bhk         *int              `json:"bhk,omitempty"`
	Bathrooms   *int              `json:"bathrooms,omitempty"`
	Balconies   *int              `json:"balconies,omitempty"`
	AreaSqFt    *float64          `json:"areaSqFt,omitempty"`
	Age         *string           `json:"age,omitempty"`
	Amenities   []string          `json:"amenities,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Features    *PropertyFeatures `json:"features,omitempty"`
}

// PropertyFilter represents list/search filters for listings
type PropertyFilter struct {
	City         string          `form:"city"`
	Type         PropertyType    `form:"type"`
	Purpose      PropertyPurpose `form:"purpose"`
	MinPrice     float64         `form:"minPrice"`
	MaxPrice     float64         `form:"maxPrice"`
	Bhk          int             `form:"bhk"`
	VerifiedOnly bool            `form:"verifiedOnly"`
}
