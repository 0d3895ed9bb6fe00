package usecases

// Scoring factor weights. The factors sum to 100 so the score is already on
// a 0-100 scale before clamping.
const (
	WeightPrice        = 25.0
	WeightLocation     = 20.0
	WeightAmenities    = 15.0
	WeightAge          = 15.0
	WeightArea         = 10.0
	WeightVerification = 10.0
	WeightFeatures     = 5.0
)

// Price brackets in rupees (20L / 50L / 1Cr)
const (
	PriceBracketLow  = 2_000_000.0
	PriceBracketMid  = 5_000_000.0
	PriceBracketHigh = 10_000_000.0
)

// Amenity and feature counts that earn the full factor weight
const (
	AmenityCountForFullScore = 10
	FeatureCountForFullScore = 5
)

// Loan matching
const (
	// EMITenureStepYears is the stride between generated EMI options.
	EMITenureStepYears = 5
	// MaxEMIToIncomeRatio caps the affordable EMI at 40% of monthly income.
	MaxEMIToIncomeRatio = 0.40
	// BankRatingRateSpread is the worst-case rate penalty for a low-rated bank.
	BankRatingRateSpread = 0.5
)

// City tiers used as a liquidity proxy by the location factor.
var tier1Cities = []string{
	"mumbai", "delhi", "bangalore", "bengaluru", "hyderabad",
	"chennai", "kolkata", "pune", "ahmedabad",
}

var tier2Cities = []string{
	"jaipur", "lucknow", "indore", "nagpur", "chandigarh",
	"surat", "bhopal", "coimbatore", "kochi", "visakhapatnam",
	"vadodara", "patna",
}
