package domain

import (
	"math"
	"sort"
	"strings"
)

// Monetary values were historically stored inconsistently: some submissions
// carry euros, some carry cents. Anything at or above this threshold is taken
// to be cents already. The guess is lossy but has a single owner here, so it
// can be replaced by a stored unit flag without touching callers.
const centsThreshold = 1000

// NormalizeAmount converts a raw monetary value into integer cents.
// Values >= 1000 are treated as cents and rounded; smaller values are euros
// and are multiplied by 100. Nil passes through as nil (unknown). Negative
// inputs are rounded and passed through; rejecting them is the caller's job.
func NormalizeAmount(raw *float64) *int {
	if raw == nil {
		return nil
	}
	var cents int
	if *raw >= centsThreshold {
		cents = int(math.Round(*raw))
	} else {
		cents = int(math.Round(*raw * 100))
	}
	return &cents
}

// DefaultAmenityKeywords maps each amenity flag to the substrings that mark
// it in free text. Matching is case-insensitive; unmatched text simply yields
// no flags. Operators can swap the table through the normalizer config.
var DefaultAmenityKeywords = map[string][]string{
	"wifi":      {"wifi", "wi-fi", "wireless", "internet"},
	"parking":   {"parking", "garage"},
	"kitchen":   {"kitchen", "kitchenette"},
	"laundry":   {"laundry", "washer", "washing machine"},
	"furnished": {"furnished", "furniture"},
	"aircon":    {"aircon", "air conditioning", "air-conditioning", "a/c"},
	"heating":   {"heating", "heater", "radiator"},
	"elevator":  {"elevator", "lift"},
	"balcony":   {"balcony", "terrace"},
	"gym":       {"gym", "fitness"},
	"pool":      {"pool", "swimming"},
	"security":  {"security", "doorman", "concierge"},
	"pets":      {"pets allowed", "pet friendly", "pet-friendly", "pets ok"},
	"bike":      {"bike", "bicycle", "cycling"},
}

// ExtractAmenities scans free text for amenity keywords and returns the
// matched flags sorted alphabetically.
func ExtractAmenities(text string, keywords map[string][]string) []string {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}
	var flags []string
	for flag, needles := range keywords {
		for _, needle := range needles {
			if strings.Contains(lower, needle) {
				flags = append(flags, flag)
				break
			}
		}
	}
	sort.Strings(flags)
	return flags
}

// AccommodationRecord is the canonical shape the aggregator consumes: all
// money in cents, ratings as optional floats, amenities as fixed flags.
type AccommodationRecord struct {
	SubmissionID      string
	City              string
	Country           string
	Neighborhood      string
	Name              string
	Type              string
	RentCents         *int
	DepositCents      *int
	UtilitiesCents    *int
	OverallRating     *float64
	LocationRating    *float64
	CleanlinessRating *float64
	ValueRating       *float64
	Amenities         []string
}

// HasAccommodationFields reports whether a submission payload carries the
// minimum accommodation shape (a type and a name) worth deriving a view from.
func HasAccommodationFields(p Payload) bool {
	return p.FirstString("accommodationType", "type") != "" &&
		p.FirstString("accommodationName", "name") != ""
}

// NormalizeAccommodation converts one raw submission into the canonical
// accommodation record. Field aliases reflect the intake form's history;
// missing fields stay nil rather than becoming zeroes.
func NormalizeAccommodation(sub RawSubmission, keywords map[string][]string) AccommodationRecord {
	payload := sub.Payload
	neighborhood := sub.Neighborhood
	if neighborhood == "" {
		neighborhood = payload.FirstString("neighborhood", "area")
	}

	amenityText := payload.FirstString("amenities", "facilities")
	if extra := payload.String("description"); extra != "" {
		amenityText = amenityText + " " + extra
	}
	for _, item := range payload.Strings("amenities") {
		amenityText = amenityText + " " + item
	}

	return AccommodationRecord{
		SubmissionID:      sub.ID,
		City:              sub.City,
		Country:           sub.Country,
		Neighborhood:      neighborhood,
		Name:              payload.FirstString("accommodationName", "name"),
		Type:              payload.FirstString("accommodationType", "type"),
		RentCents:         NormalizeAmount(payload.FirstFloat("monthlyRent", "rent")),
		DepositCents:      NormalizeAmount(payload.FirstFloat("deposit", "securityDeposit")),
		UtilitiesCents:    NormalizeAmount(payload.FirstFloat("monthlyUtilities", "utilities")),
		OverallRating:     payload.FirstFloat("overallRating", "rating"),
		LocationRating:    payload.Float("locationRating"),
		CleanlinessRating: payload.Float("cleanlinessRating"),
		ValueRating:       payload.FirstFloat("valueRating", "valueForMoney"),
		Amenities:         ExtractAmenities(amenityText, keywords),
	}
}
