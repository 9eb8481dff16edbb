package domain

import "testing"

func TestEstimateBudgetModerateMatchesBaseline(t *testing.T) {
	baseline := DefaultBudgetConfig.DefaultBaseline
	estimate, err := EstimateBudget(LifestyleModerate, HousingShared, FoodMixed, TransportPublic, baseline, DefaultBudgetConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All multipliers are 1.0 on this path, so the projection is the baseline itself.
	wantTotal := baseline.RentCents + baseline.FoodCents + baseline.TransportCents + baseline.EntertainmentCents + DefaultBudgetConfig.MiscCents
	if estimate.TotalCents != wantTotal {
		t.Errorf("total: got %d, want %d", estimate.TotalCents, wantTotal)
	}
	if estimate.DeltaCents != 0 || estimate.AbsDeltaCents != 0 || estimate.DeltaPercent != 0 {
		t.Errorf("delta should be zero against its own baseline: %+v", estimate)
	}
}

func TestEstimateBudgetLifestyleScaling(t *testing.T) {
	baseline := DefaultBudgetConfig.DefaultBaseline

	comfortable, err := EstimateBudget(LifestyleComfortable, HousingShared, FoodMixed, TransportPublic, baseline, DefaultBudgetConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	budget, err := EstimateBudget(LifestyleBudget, HousingShared, FoodMixed, TransportPublic, baseline, DefaultBudgetConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comfortable.TotalCents <= budget.TotalCents {
		t.Errorf("comfortable total %d should exceed budget total %d", comfortable.TotalCents, budget.TotalCents)
	}
	if comfortable.DeltaCents <= 0 {
		t.Errorf("comfortable delta should be positive, got %d", comfortable.DeltaCents)
	}
	if budget.DeltaCents >= 0 {
		t.Errorf("budget delta should be negative, got %d", budget.DeltaCents)
	}
	if budget.AbsDeltaCents != -budget.DeltaCents {
		t.Errorf("abs delta: got %d for delta %d", budget.AbsDeltaCents, budget.DeltaCents)
	}
}

func TestEstimateBudgetHousingAxis(t *testing.T) {
	baseline := DefaultBudgetConfig.DefaultBaseline

	dorm, _ := EstimateBudget(LifestyleModerate, HousingDorm, FoodMixed, TransportPublic, baseline, DefaultBudgetConfig)
	studio, _ := EstimateBudget(LifestyleModerate, HousingStudio, FoodMixed, TransportPublic, baseline, DefaultBudgetConfig)

	if dorm.RentCents != 33000 {
		t.Errorf("dorm rent: got %d, want 33000", dorm.RentCents)
	}
	if studio.RentCents != 99000 {
		t.Errorf("studio rent: got %d, want 99000", studio.RentCents)
	}
	// The sub-type axis must leave the other categories alone.
	if dorm.FoodCents != studio.FoodCents || dorm.EntertainmentCents != studio.EntertainmentCents {
		t.Errorf("housing choice leaked into other categories: %+v vs %+v", dorm, studio)
	}
}

func TestEstimateBudgetEntertainmentHasNoSubTypeAxis(t *testing.T) {
	baseline := DefaultBudgetConfig.DefaultBaseline
	cooking, _ := EstimateBudget(LifestyleComfortable, HousingShared, FoodCooking, TransportWalking, baseline, DefaultBudgetConfig)
	dining, _ := EstimateBudget(LifestyleComfortable, HousingShared, FoodDining, TransportMixed, baseline, DefaultBudgetConfig)
	if cooking.EntertainmentCents != dining.EntertainmentCents {
		t.Errorf("entertainment must scale with lifestyle only: %d vs %d", cooking.EntertainmentCents, dining.EntertainmentCents)
	}
}

func TestEstimateBudgetRejectsUnknownChoices(t *testing.T) {
	baseline := DefaultBudgetConfig.DefaultBaseline
	if _, err := EstimateBudget("lavish", HousingShared, FoodMixed, TransportPublic, baseline, DefaultBudgetConfig); err == nil {
		t.Error("unknown lifestyle should be rejected")
	}
	if _, err := EstimateBudget(LifestyleModerate, "penthouse", FoodMixed, TransportPublic, baseline, DefaultBudgetConfig); err == nil {
		t.Error("unknown housing type should be rejected")
	}
	if _, err := EstimateBudget(LifestyleModerate, HousingShared, "takeaway", TransportPublic, baseline, DefaultBudgetConfig); err == nil {
		t.Error("unknown food style should be rejected")
	}
	if _, err := EstimateBudget(LifestyleModerate, HousingShared, FoodMixed, "taxi", baseline, DefaultBudgetConfig); err == nil {
		t.Error("unknown transport style should be rejected")
	}
}
