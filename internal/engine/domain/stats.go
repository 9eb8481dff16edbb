package domain

import (
	"errors"
	"math"
	"sort"
)

// ErrNoData marks a well-formed request that matched zero records. It is
// distinct from a zero-valued aggregate; the boundary maps it to a 404-style
// response instead of serving empty statistics.
var ErrNoData = errors.New("no records for the requested scope")

// UnknownArea is the bucket for records without a neighborhood.
const UnknownArea = "Unknown Area"

// Highlight labels produced by the rule table in buildHighlights.
const (
	HighlightAffordable  = "affordable"
	HighlightPremium     = "premium"
	HighlightHighlyRated = "highly-rated"
	HighlightManyOptions = "many-options"
)

// StatsConfig carries the tunable cutoffs behind highlight generation and
// amenity ranking. Operators override these through the environment; the
// aggregation logic itself never changes.
type StatsConfig struct {
	// AffordableRentCents marks a group as affordable at or below this average rent.
	AffordableRentCents int
	// PremiumRentCents marks a group as premium at or above this average rent.
	PremiumRentCents int
	// HighlyRatedCutoff is the minimum recommendation rate (0-100) for the highly-rated label.
	HighlyRatedCutoff int
	// ManyOptionsMinCount is the minimum listing count for the many-options label.
	ManyOptionsMinCount int
	// TopAmenityCount limits the amenity ranking length.
	TopAmenityCount int
}

// DefaultStatsConfig matches the cutoffs the browsing pages were tuned for.
var DefaultStatsConfig = StatsConfig{
	AffordableRentCents: 60000,
	PremiumRentCents:    120000,
	HighlyRatedCutoff:   80,
	ManyOptionsMinCount: 10,
	TopAmenityCount:     5,
}

// RatingAverages holds per-dimension rating means rounded to one decimal.
// A dimension nobody rated stays 0.
type RatingAverages struct {
	Overall     float64
	Location    float64
	Cleanliness float64
	Value       float64
}

// AmenityCount is one entry of the ranked amenity list.
type AmenityCount struct {
	Name  string
	Count int
}

// NeighborhoodStats summarizes the accommodation records of one neighborhood.
type NeighborhoodStats struct {
	Neighborhood       string
	Count              int
	AverageRentCents   int
	MedianRentCents    int
	MinRentCents       int
	MaxRentCents       int
	Ratings            RatingAverages
	RecommendationRate int
	TopAmenities       []AmenityCount
	Highlights         []string
}

// CityStats is the city-wide summary plus the ranked neighborhood breakdown.
type CityStats struct {
	City               string
	Country            string
	Count              int
	AverageRentCents   int
	MedianRentCents    int
	MinRentCents       int
	MaxRentCents       int
	Ratings            RatingAverages
	RecommendationRate int
	TopAmenities       []AmenityCount
	Highlights         []string
	Neighborhoods      []NeighborhoodStats
}

// AggregateCity computes the city-wide summary over an already-fetched record
// set and partitions the same records into per-neighborhood statistics,
// ranked by listing count (ties keep first-seen order). Fetching and
// filtering are the caller's job; this is a pure function. An empty input
// returns ErrNoData.
func AggregateCity(city, country string, records []AccommodationRecord, cfg StatsConfig) (CityStats, error) {
	if len(records) == 0 {
		return CityStats{}, ErrNoData
	}

	summary := aggregateGroup(records, cfg)
	stats := CityStats{
		City:               city,
		Country:            country,
		Count:              summary.Count,
		AverageRentCents:   summary.AverageRentCents,
		MedianRentCents:    summary.MedianRentCents,
		MinRentCents:       summary.MinRentCents,
		MaxRentCents:       summary.MaxRentCents,
		Ratings:            summary.Ratings,
		RecommendationRate: summary.RecommendationRate,
		TopAmenities:       summary.TopAmenities,
		Highlights:         summary.Highlights,
		Neighborhoods:      AggregateNeighborhoods(records, cfg),
	}
	return stats, nil
}

// AggregateNeighborhoods groups records by neighborhood (missing ones fall
// into the UnknownArea bucket) and returns per-group statistics sorted by
// listing count descending. The sort is stable so equal-sized groups keep
// the order their first record appeared in.
func AggregateNeighborhoods(records []AccommodationRecord, cfg StatsConfig) []NeighborhoodStats {
	order := make([]string, 0)
	groups := make(map[string][]AccommodationRecord)
	for _, record := range records {
		name := record.Neighborhood
		if name == "" {
			name = UnknownArea
		}
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], record)
	}

	result := make([]NeighborhoodStats, 0, len(order))
	for _, name := range order {
		summary := aggregateGroup(groups[name], cfg)
		result = append(result, NeighborhoodStats{
			Neighborhood:       name,
			Count:              summary.Count,
			AverageRentCents:   summary.AverageRentCents,
			MedianRentCents:    summary.MedianRentCents,
			MinRentCents:       summary.MinRentCents,
			MaxRentCents:       summary.MaxRentCents,
			Ratings:            summary.Ratings,
			RecommendationRate: summary.RecommendationRate,
			TopAmenities:       summary.TopAmenities,
			Highlights:         summary.Highlights,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// groupSummary is the shared computation behind city and neighborhood stats.
type groupSummary struct {
	Count              int
	AverageRentCents   int
	MedianRentCents    int
	MinRentCents       int
	MaxRentCents       int
	Ratings            RatingAverages
	RecommendationRate int
	TopAmenities       []AmenityCount
	Highlights         []string
}

func aggregateGroup(records []AccommodationRecord, cfg StatsConfig) groupSummary {
	summary := groupSummary{Count: len(records)}

	rents := make([]int, 0, len(records))
	recommended := 0
	amenityCounts := make(map[string]int)
	var overall, location, cleanliness, value []float64

	for _, record := range records {
		if record.RentCents != nil {
			rents = append(rents, *record.RentCents)
		}
		if record.OverallRating != nil {
			overall = append(overall, *record.OverallRating)
			if *record.OverallRating >= 4.0 {
				recommended++
			}
		}
		if record.LocationRating != nil {
			location = append(location, *record.LocationRating)
		}
		if record.CleanlinessRating != nil {
			cleanliness = append(cleanliness, *record.CleanlinessRating)
		}
		if record.ValueRating != nil {
			value = append(value, *record.ValueRating)
		}
		for _, amenity := range record.Amenities {
			amenityCounts[amenity]++
		}
	}

	if len(rents) > 0 {
		summary.AverageRentCents = meanInt(rents)
		summary.MedianRentCents = median(rents)
		summary.MinRentCents = minInt(rents)
		summary.MaxRentCents = maxInt(rents)
	}

	summary.Ratings = RatingAverages{
		Overall:     roundTenth(meanFloat(overall)),
		Location:    roundTenth(meanFloat(location)),
		Cleanliness: roundTenth(meanFloat(cleanliness)),
		Value:       roundTenth(meanFloat(value)),
	}

	if summary.Count > 0 {
		summary.RecommendationRate = int(math.Round(100 * float64(recommended) / float64(summary.Count)))
	}

	summary.TopAmenities = rankAmenities(amenityCounts, cfg.TopAmenityCount)
	summary.Highlights = buildHighlights(summary, cfg)
	return summary
}

// buildHighlights is the deterministic rule table turning computed stats into
// qualitative labels. Each rule reads only the summary and the config.
func buildHighlights(summary groupSummary, cfg StatsConfig) []string {
	var highlights []string
	if summary.AverageRentCents > 0 && summary.AverageRentCents <= cfg.AffordableRentCents {
		highlights = append(highlights, HighlightAffordable)
	}
	if cfg.PremiumRentCents > 0 && summary.AverageRentCents >= cfg.PremiumRentCents {
		highlights = append(highlights, HighlightPremium)
	}
	if summary.RecommendationRate >= cfg.HighlyRatedCutoff {
		highlights = append(highlights, HighlightHighlyRated)
	}
	if summary.Count >= cfg.ManyOptionsMinCount {
		highlights = append(highlights, HighlightManyOptions)
	}
	return highlights
}

// rankAmenities orders amenity flags by count descending, then name
// ascending so ties are deterministic, and keeps the top limit entries.
func rankAmenities(counts map[string]int, limit int) []AmenityCount {
	ranked := make([]AmenityCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, AmenityCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].Count > ranked[j].Count
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// median returns sorted[floor(n/2)]. For even n this picks an element rather
// than averaging the middle two; the browsing pages were built against this
// definition and it must not drift.
func median(values []int) int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}

func meanInt(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return int(math.Round(float64(total) / float64(len(values))))
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func minInt(values []int) int {
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

func maxInt(values []int) int {
	highest := values[0]
	for _, v := range values[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}
