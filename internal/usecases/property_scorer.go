package usecases

import (
	"math"
	"strings"

	"estate-hub.backend/internal/domain/entities"
)

// PropertyScorer computes a 0-100 suitability score for a listing. The score
// only biases loan interest-rate offers; it is never persisted.
type PropertyScorer struct{}

// NewPropertyScorer creates a new property scorer
func NewPropertyScorer() *PropertyScorer {
	return &PropertyScorer{}
}

// Score computes the weighted additive suitability score. Each factor is
// capped at its weight; missing fields contribute zero for their factor.
func (s *PropertyScorer) Score(p *entities.Property) int {
	total := s.priceFactor(p.Price) +
		s.locationFactor(p.City) +
		s.amenitiesFactor(len(p.Amenities)) +
		s.ageFactor(p.AgeBracket) +
		s.areaFactor(p.AreaSqFt) +
		s.verificationFactor(p.Verification) +
		s.featuresFactor(p.FeatureCount())

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Cheaper properties are more liquid and score higher.
func (s *PropertyScorer) priceFactor(price float64) float64 {
	switch {
	case price <= 0:
		return 0
	case price <= PriceBracketLow:
		return WeightPrice
	case price <= PriceBracketMid:
		return WeightPrice * 0.8
	case price <= PriceBracketHigh:
		return WeightPrice * 0.6
	default:
		return WeightPrice * 0.4
	}
}

func (s *PropertyScorer) locationFactor(city string) float64 {
	c := strings.ToLower(strings.TrimSpace(city))
	if c == "" {
		return 0
	}
	for _, t := range tier1Cities {
		if c == t {
			return WeightLocation
		}
	}
	for _, t := range tier2Cities {
		if c == t {
			return WeightLocation * 0.8
		}
	}
	return WeightLocation * 0.6
}

func (s *PropertyScorer) amenitiesFactor(count int) float64 {
	ratio := float64(count) / AmenityCountForFullScore
	if ratio > 1 {
		ratio = 1
	}
	return WeightAmenities * ratio
}

func (s *PropertyScorer) ageFactor(bracket entities.AgeBracket) float64 {
	switch bracket {
	case entities.AgeBracketNew, entities.AgeBracketUnderConstruction:
		return WeightAge
	case entities.AgeBracketOneToThree:
		return WeightAge * 0.8
	case entities.AgeBracketFourToTen:
		return WeightAge * 0.6
	case entities.AgeBracketOlder:
		return WeightAge * 0.4
	default:
		return 0
	}
}

func (s *PropertyScorer) areaFactor(areaSqFt float64) float64 {
	switch {
	case areaSqFt <= 0:
		return 0
	case areaSqFt >= 1000:
		return WeightArea
	case areaSqFt >= 800:
		return WeightArea * 0.8
	case areaSqFt >= 600:
		return WeightArea * 0.6
	default:
		return WeightArea * 0.4
	}
}

func (s *PropertyScorer) verificationFactor(status entities.VerificationStatus) float64 {
	switch status {
	case entities.VerificationVerified:
		return WeightVerification
	case entities.VerificationPending:
		return WeightVerification * 0.5
	default:
		return 0
	}
}

func (s *PropertyScorer) featuresFactor(count int) float64 {
	ratio := float64(count) / FeatureCountForFullScore
	if ratio > 1 {
		ratio = 1
	}
	return WeightFeatures * ratio
}
