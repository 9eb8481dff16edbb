package domain

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func rentedRecord(neighborhood string, rentCents int, overall float64) AccommodationRecord {
	return AccommodationRecord{
		Neighborhood:  neighborhood,
		RentCents:     intPtr(rentCents),
		OverallRating: floatPtr(overall),
	}
}

func TestAggregateCityBerlinScenario(t *testing.T) {
	records := []AccommodationRecord{
		rentedRecord("Mitte", 50000, 4.5),
		rentedRecord("Mitte", 70000, 3.0),
		rentedRecord("Mitte", 60000, 5.0),
	}

	stats, err := AggregateCity("Berlin", "Germany", records, DefaultStatsConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Count != 3 {
		t.Errorf("count: got %d, want 3", stats.Count)
	}
	if stats.AverageRentCents != 60000 {
		t.Errorf("average rent: got %d, want 60000", stats.AverageRentCents)
	}
	if stats.MedianRentCents != 60000 {
		t.Errorf("median rent: got %d, want 60000", stats.MedianRentCents)
	}
	if stats.MinRentCents != 50000 || stats.MaxRentCents != 70000 {
		t.Errorf("rent range: got [%d, %d], want [50000, 70000]", stats.MinRentCents, stats.MaxRentCents)
	}
	if stats.RecommendationRate != 67 {
		t.Errorf("recommendation rate: got %d, want 67", stats.RecommendationRate)
	}
}

func TestAggregateCityNoData(t *testing.T) {
	if _, err := AggregateCity("Berlin", "Germany", nil, DefaultStatsConfig); !errors.Is(err, ErrNoData) {
		t.Errorf("empty input: got %v, want ErrNoData", err)
	}
}

func TestMedianPicksElementNotAverage(t *testing.T) {
	records := []AccommodationRecord{
		rentedRecord("", 100, 4),
		rentedRecord("", 200, 4),
		rentedRecord("", 300, 4),
		rentedRecord("", 400, 4),
	}
	stats, err := AggregateCity("Porto", "Portugal", records, DefaultStatsConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// sorted[len/2] = sorted[2] = 300, never the 250 a middle-two average would give.
	if stats.MedianRentCents != 300 {
		t.Errorf("median: got %d, want 300", stats.MedianRentCents)
	}
}

func TestAggregateNeighborhoodsBuckets(t *testing.T) {
	records := []AccommodationRecord{
		rentedRecord("Alfama", 40000, 4),
		rentedRecord("", 50000, 3),
		rentedRecord("Alfama", 45000, 5),
	}

	neighborhoods := AggregateNeighborhoods(records, DefaultStatsConfig)
	if len(neighborhoods) != 2 {
		t.Fatalf("got %d groups, want 2", len(neighborhoods))
	}
	if neighborhoods[0].Neighborhood != "Alfama" || neighborhoods[0].Count != 2 {
		t.Errorf("largest group first: got %q (%d)", neighborhoods[0].Neighborhood, neighborhoods[0].Count)
	}
	if neighborhoods[1].Neighborhood != UnknownArea {
		t.Errorf("missing neighborhood bucket: got %q, want %q", neighborhoods[1].Neighborhood, UnknownArea)
	}
}

func TestAggregateNeighborhoodsStableTieOrder(t *testing.T) {
	records := []AccommodationRecord{
		rentedRecord("Gracia", 40000, 4),
		rentedRecord("Eixample", 42000, 4),
		rentedRecord("Gracia", 41000, 4),
		rentedRecord("Eixample", 43000, 4),
	}
	neighborhoods := AggregateNeighborhoods(records, DefaultStatsConfig)
	if neighborhoods[0].Neighborhood != "Gracia" || neighborhoods[1].Neighborhood != "Eixample" {
		t.Errorf("equal counts must keep first-seen order, got %q then %q",
			neighborhoods[0].Neighborhood, neighborhoods[1].Neighborhood)
	}
}

func TestRecommendationRateMonotonicity(t *testing.T) {
	base := []AccommodationRecord{
		rentedRecord("", 50000, 4.5),
		rentedRecord("", 50000, 2.0),
		rentedRecord("", 50000, 3.5),
	}
	before, err := AggregateCity("Ghent", "Belgium", base, DefaultStatsConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withGood, _ := AggregateCity("Ghent", "Belgium", append(append([]AccommodationRecord{}, base...), rentedRecord("", 50000, 5)), DefaultStatsConfig)
	if withGood.RecommendationRate < before.RecommendationRate {
		t.Errorf("adding a 5-rating decreased the rate: %d -> %d", before.RecommendationRate, withGood.RecommendationRate)
	}

	withBad, _ := AggregateCity("Ghent", "Belgium", append(append([]AccommodationRecord{}, base...), rentedRecord("", 50000, 1)), DefaultStatsConfig)
	if withBad.RecommendationRate > before.RecommendationRate {
		t.Errorf("adding a 1-rating increased the rate: %d -> %d", before.RecommendationRate, withBad.RecommendationRate)
	}
}

func TestRatingAveragesRounding(t *testing.T) {
	records := []AccommodationRecord{
		{RentCents: intPtr(50000), OverallRating: floatPtr(4.0), LocationRating: floatPtr(3.0)},
		{RentCents: intPtr(50000), OverallRating: floatPtr(4.5), LocationRating: floatPtr(4.0)},
		{RentCents: intPtr(50000), OverallRating: floatPtr(3.8)},
	}
	stats, err := AggregateCity("Vienna", "Austria", records, DefaultStatsConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (4.0+4.5+3.8)/3 = 4.1; location averages only the two present values.
	if stats.Ratings.Overall != 4.1 {
		t.Errorf("overall average: got %v, want 4.1", stats.Ratings.Overall)
	}
	if stats.Ratings.Location != 3.5 {
		t.Errorf("location average over present values: got %v, want 3.5", stats.Ratings.Location)
	}
	if stats.Ratings.Cleanliness != 0 {
		t.Errorf("unrated dimension should stay 0, got %v", stats.Ratings.Cleanliness)
	}
}

func TestHighlightRules(t *testing.T) {
	cfg := StatsConfig{
		AffordableRentCents: 60000,
		PremiumRentCents:    120000,
		HighlyRatedCutoff:   80,
		ManyOptionsMinCount: 3,
		TopAmenityCount:     5,
	}
	records := []AccommodationRecord{
		rentedRecord("", 40000, 5),
		rentedRecord("", 50000, 4.5),
		rentedRecord("", 45000, 4),
	}
	stats, err := AggregateCity("Krakow", "Poland", records, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{HighlightAffordable, HighlightHighlyRated, HighlightManyOptions}
	if len(stats.Highlights) != len(want) {
		t.Fatalf("highlights: got %v, want %v", stats.Highlights, want)
	}
	for i, label := range want {
		if stats.Highlights[i] != label {
			t.Errorf("highlight %d: got %q, want %q", i, stats.Highlights[i], label)
		}
	}
}

func TestAmenityRanking(t *testing.T) {
	records := []AccommodationRecord{
		{RentCents: intPtr(50000), Amenities: []string{"wifi", "kitchen", "balcony"}},
		{RentCents: intPtr(50000), Amenities: []string{"wifi", "kitchen"}},
		{RentCents: intPtr(50000), Amenities: []string{"wifi", "laundry", "elevator", "gym", "pool"}},
	}
	stats, err := AggregateCity("Madrid", "Spain", records, DefaultStatsConfig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.TopAmenities) != 5 {
		t.Fatalf("top amenities length: got %d, want 5", len(stats.TopAmenities))
	}
	if stats.TopAmenities[0].Name != "wifi" || stats.TopAmenities[0].Count != 3 {
		t.Errorf("top amenity: got %+v, want wifi x3", stats.TopAmenities[0])
	}
	if stats.TopAmenities[1].Name != "kitchen" {
		t.Errorf("second amenity: got %q, want kitchen", stats.TopAmenities[1].Name)
	}
	// The single-count flags tie; alphabetical order keeps the cut deterministic.
	if stats.TopAmenities[2].Name != "balcony" || stats.TopAmenities[3].Name != "elevator" || stats.TopAmenities[4].Name != "gym" {
		t.Errorf("tie order: got %v", stats.TopAmenities[2:])
	}
}
