package domain

import (
	"fmt"
	"math"
)

// Lifestyle scales every spending category.
type Lifestyle string

const (
	LifestyleBudget      Lifestyle = "budget"
	LifestyleModerate    Lifestyle = "moderate"
	LifestyleComfortable Lifestyle = "comfortable"
)

// HousingType scales the rent baseline.
type HousingType string

const (
	HousingDorm   HousingType = "dorm"
	HousingShared HousingType = "shared"
	HousingStudio HousingType = "studio"
)

// FoodStyle scales the food baseline.
type FoodStyle string

const (
	FoodCooking FoodStyle = "cooking"
	FoodMixed   FoodStyle = "mixed"
	FoodDining  FoodStyle = "dining"
)

// TransportStyle scales the transport baseline.
type TransportStyle string

const (
	TransportWalking TransportStyle = "walking"
	TransportPublic  TransportStyle = "public"
	TransportMixed   TransportStyle = "mixed"
)

// LifestyleFactors are the per-category coefficients of one lifestyle.
type LifestyleFactors struct {
	Rent          float64
	Food          float64
	Transport     float64
	Entertainment float64
}

// BudgetBaseline is the per-category monthly baseline in cents, either taken
// from city aggregates or from configured defaults.
type BudgetBaseline struct {
	RentCents          int
	FoodCents          int
	TransportCents     int
	EntertainmentCents int
}

// BudgetConfig bundles the multiplier tables, the fixed miscellaneous
// allowance and the fallback baseline. The tables are data, not code, so
// operators can retune them without touching the estimator.
type BudgetConfig struct {
	Lifestyles      map[Lifestyle]LifestyleFactors
	Housing         map[HousingType]float64
	Food            map[FoodStyle]float64
	Transport       map[TransportStyle]float64
	MiscCents       int
	DefaultBaseline BudgetBaseline
}

// DefaultBudgetConfig carries the multipliers the budgeting pages ship with.
var DefaultBudgetConfig = BudgetConfig{
	Lifestyles: map[Lifestyle]LifestyleFactors{
		LifestyleBudget:      {Rent: 0.85, Food: 0.8, Transport: 0.9, Entertainment: 0.6},
		LifestyleModerate:    {Rent: 1.0, Food: 1.0, Transport: 1.0, Entertainment: 1.0},
		LifestyleComfortable: {Rent: 1.25, Food: 1.3, Transport: 1.15, Entertainment: 1.6},
	},
	Housing: map[HousingType]float64{
		HousingDorm:   0.6,
		HousingShared: 1.0,
		HousingStudio: 1.8,
	},
	Food: map[FoodStyle]float64{
		FoodCooking: 0.7,
		FoodMixed:   1.0,
		FoodDining:  1.5,
	},
	Transport: map[TransportStyle]float64{
		TransportWalking: 0.3,
		TransportPublic:  1.0,
		TransportMixed:   1.2,
	},
	MiscCents: 15000,
	DefaultBaseline: BudgetBaseline{
		RentCents:          55000,
		FoodCents:          25000,
		TransportCents:     5000,
		EntertainmentCents: 12000,
	},
}

// BudgetEstimate is a personalized monthly projection plus the comparison
// against the unscaled baseline. Delta keeps its sign; the absolute and
// percentage forms are precomputed so the presentation layer never has to
// choose wording here.
type BudgetEstimate struct {
	RentCents          int
	FoodCents          int
	TransportCents     int
	EntertainmentCents int
	MiscCents          int
	TotalCents         int
	BaselineTotalCents int
	DeltaCents         int
	AbsDeltaCents      int
	DeltaPercent       float64
}

// EstimateBudget multiplies each baseline category by its lifestyle
// coefficient and its sub-type coefficient. Entertainment has no sub-type
// axis and scales with lifestyle only. Unknown choice values are an input
// error, not a silent default.
func EstimateBudget(lifestyle Lifestyle, housing HousingType, food FoodStyle, transport TransportStyle, baseline BudgetBaseline, cfg BudgetConfig) (BudgetEstimate, error) {
	factors, ok := cfg.Lifestyles[lifestyle]
	if !ok {
		return BudgetEstimate{}, fmt.Errorf("unknown lifestyle %q", lifestyle)
	}
	housingFactor, ok := cfg.Housing[housing]
	if !ok {
		return BudgetEstimate{}, fmt.Errorf("unknown housing type %q", housing)
	}
	foodFactor, ok := cfg.Food[food]
	if !ok {
		return BudgetEstimate{}, fmt.Errorf("unknown food style %q", food)
	}
	transportFactor, ok := cfg.Transport[transport]
	if !ok {
		return BudgetEstimate{}, fmt.Errorf("unknown transport style %q", transport)
	}

	estimate := BudgetEstimate{
		RentCents:          scaleCents(baseline.RentCents, factors.Rent*housingFactor),
		FoodCents:          scaleCents(baseline.FoodCents, factors.Food*foodFactor),
		TransportCents:     scaleCents(baseline.TransportCents, factors.Transport*transportFactor),
		EntertainmentCents: scaleCents(baseline.EntertainmentCents, factors.Entertainment),
		MiscCents:          cfg.MiscCents,
	}
	estimate.TotalCents = estimate.RentCents + estimate.FoodCents + estimate.TransportCents + estimate.EntertainmentCents + estimate.MiscCents

	estimate.BaselineTotalCents = baseline.RentCents + baseline.FoodCents + baseline.TransportCents + baseline.EntertainmentCents + cfg.MiscCents
	estimate.DeltaCents = estimate.TotalCents - estimate.BaselineTotalCents
	estimate.AbsDeltaCents = estimate.DeltaCents
	if estimate.AbsDeltaCents < 0 {
		estimate.AbsDeltaCents = -estimate.AbsDeltaCents
	}
	if estimate.BaselineTotalCents != 0 {
		estimate.DeltaPercent = roundTenth(100 * float64(estimate.DeltaCents) / float64(estimate.BaselineTotalCents))
	}
	return estimate, nil
}

func scaleCents(base int, factor float64) int {
	return int(math.Round(float64(base) * factor))
}
