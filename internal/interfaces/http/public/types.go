package public

import (
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

type ratingAveragesPayload struct {
	Overall     float64 `json:"overall"`
	Location    float64 `json:"location"`
	Cleanliness float64 `json:"cleanliness"`
	Value       float64 `json:"value"`
}

type amenityCountPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type neighborhoodStatsResponse struct {
	Neighborhood       string                `json:"neighborhood"`
	Count              int                   `json:"count"`
	AverageRentCents   int                   `json:"averageRentCents"`
	MedianRentCents    int                   `json:"medianRentCents"`
	MinRentCents       int                   `json:"minRentCents"`
	MaxRentCents       int                   `json:"maxRentCents"`
	Ratings            ratingAveragesPayload `json:"ratings"`
	RecommendationRate int                   `json:"recommendationRate"`
	TopAmenities       []amenityCountPayload `json:"topAmenities,omitempty"`
	Highlights         []string              `json:"highlights,omitempty"`
}

type cityStatsResponse struct {
	City               string                      `json:"city"`
	Country            string                      `json:"country,omitempty"`
	Count              int                         `json:"count"`
	AverageRentCents   int                         `json:"averageRentCents"`
	MedianRentCents    int                         `json:"medianRentCents"`
	MinRentCents       int                         `json:"minRentCents"`
	MaxRentCents       int                         `json:"maxRentCents"`
	Ratings            ratingAveragesPayload       `json:"ratings"`
	RecommendationRate int                         `json:"recommendationRate"`
	TopAmenities       []amenityCountPayload       `json:"topAmenities,omitempty"`
	Highlights         []string                    `json:"highlights,omitempty"`
	Neighborhoods      []neighborhoodStatsResponse `json:"neighborhoods"`
}

type destinationResponse struct {
	City         string `json:"city"`
	Country      string `json:"country,omitempty"`
	ListingCount int    `json:"listingCount"`
	AvgRentCents int    `json:"avgRentCents"`
}

type destinationListResponse struct {
	Items []destinationResponse `json:"items"`
	Total int                   `json:"total"`
}

type coursePayload struct {
	Name    string   `json:"name"`
	Code    string   `json:"code,omitempty"`
	Field   string   `json:"field,omitempty"`
	Credits *float64 `json:"credits,omitempty"`
}

type matchScoreRequest struct {
	HostCourse coursePayload   `json:"hostCourse"`
	Candidates []coursePayload `json:"candidates"`
}

type matchBreakdownPayload struct {
	NameScore    float64 `json:"nameScore"`
	CreditsScore int     `json:"creditsScore"`
	FieldScore   float64 `json:"fieldScore"`
	CodeScore    float64 `json:"codeScore"`
	Total        int     `json:"total"`
}

type matchResponse struct {
	Course coursePayload         `json:"course"`
	Score  matchBreakdownPayload `json:"score"`
}

type matchScoreResponse struct {
	Items []matchResponse `json:"items"`
}

type budgetEstimateRequest struct {
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Lifestyle string `json:"lifestyle"`
	Housing   string `json:"housingType"`
	Food      string `json:"foodStyle"`
	Transport string `json:"transportStyle"`
}

type budgetEstimateResponse struct {
	RentCents          int     `json:"rentCents"`
	FoodCents          int     `json:"foodCents"`
	TransportCents     int     `json:"transportCents"`
	EntertainmentCents int     `json:"entertainmentCents"`
	MiscCents          int     `json:"miscCents"`
	TotalCents         int     `json:"totalCents"`
	BaselineTotalCents int     `json:"baselineTotalCents"`
	DeltaCents         int     `json:"deltaCents"`
	AbsDeltaCents      int     `json:"absDeltaCents"`
	DeltaPercent       float64 `json:"deltaPercent"`
}

type createSubmissionRequest struct {
	Category     string         `json:"category"`
	City         string         `json:"city"`
	Country      string         `json:"country,omitempty"`
	Neighborhood string         `json:"neighborhood,omitempty"`
	Payload      map[string]any `json:"payload"`
}

type createSubmissionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type materializeResponse struct {
	RunID                 string `json:"runId"`
	SubmissionsSeen       int    `json:"submissionsSeen"`
	AccommodationsCreated int    `json:"accommodationsCreated"`
	CoursesCreated        int    `json:"coursesCreated"`
	Skipped               int    `json:"skipped"`
	Failed                int    `json:"failed"`
}

func buildCityStatsResponse(stats domain.CityStats) cityStatsResponse {
	neighborhoods := make([]neighborhoodStatsResponse, 0, len(stats.Neighborhoods))
	for _, n := range stats.Neighborhoods {
		neighborhoods = append(neighborhoods, neighborhoodStatsResponse{
			Neighborhood:       n.Neighborhood,
			Count:              n.Count,
			AverageRentCents:   n.AverageRentCents,
			MedianRentCents:    n.MedianRentCents,
			MinRentCents:       n.MinRentCents,
			MaxRentCents:       n.MaxRentCents,
			Ratings:            buildRatingsPayload(n.Ratings),
			RecommendationRate: n.RecommendationRate,
			TopAmenities:       buildAmenityPayload(n.TopAmenities),
			Highlights:         n.Highlights,
		})
	}

	return cityStatsResponse{
		City:               stats.City,
		Country:            stats.Country,
		Count:              stats.Count,
		AverageRentCents:   stats.AverageRentCents,
		MedianRentCents:    stats.MedianRentCents,
		MinRentCents:       stats.MinRentCents,
		MaxRentCents:       stats.MaxRentCents,
		Ratings:            buildRatingsPayload(stats.Ratings),
		RecommendationRate: stats.RecommendationRate,
		TopAmenities:       buildAmenityPayload(stats.TopAmenities),
		Highlights:         stats.Highlights,
		Neighborhoods:      neighborhoods,
	}
}

func buildRatingsPayload(ratings domain.RatingAverages) ratingAveragesPayload {
	return ratingAveragesPayload{
		Overall:     ratings.Overall,
		Location:    ratings.Location,
		Cleanliness: ratings.Cleanliness,
		Value:       ratings.Value,
	}
}

func buildAmenityPayload(amenities []domain.AmenityCount) []amenityCountPayload {
	if len(amenities) == 0 {
		return nil
	}
	result := make([]amenityCountPayload, 0, len(amenities))
	for _, a := range amenities {
		result = append(result, amenityCountPayload{Name: a.Name, Count: a.Count})
	}
	return result
}

func buildDestinationList(summaries []application.CitySummary) destinationListResponse {
	items := make([]destinationResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, destinationResponse{
			City:         s.City,
			Country:      s.Country,
			ListingCount: s.ListingCount,
			AvgRentCents: s.AvgRentCents,
		})
	}
	return destinationListResponse{Items: items, Total: len(items)}
}

func toCourseDescriptor(payload coursePayload) domain.CourseDescriptor {
	return domain.CourseDescriptor{
		Name:    payload.Name,
		Code:    payload.Code,
		Field:   payload.Field,
		Credits: payload.Credits,
	}
}

func buildMatchResponse(match domain.CourseMatch) matchResponse {
	return matchResponse{
		Course: coursePayload{
			Name:    match.Course.Name,
			Code:    match.Course.Code,
			Field:   match.Course.Field,
			Credits: match.Course.Credits,
		},
		Score: matchBreakdownPayload{
			NameScore:    match.Score.NameScore,
			CreditsScore: match.Score.CreditsScore,
			FieldScore:   match.Score.FieldScore,
			CodeScore:    match.Score.CodeScore,
			Total:        match.Score.Total,
		},
	}
}

func buildBudgetResponse(estimate domain.BudgetEstimate) budgetEstimateResponse {
	return budgetEstimateResponse{
		RentCents:          estimate.RentCents,
		FoodCents:          estimate.FoodCents,
		TransportCents:     estimate.TransportCents,
		EntertainmentCents: estimate.EntertainmentCents,
		MiscCents:          estimate.MiscCents,
		TotalCents:         estimate.TotalCents,
		BaselineTotalCents: estimate.BaselineTotalCents,
		DeltaCents:         estimate.DeltaCents,
		AbsDeltaCents:      estimate.AbsDeltaCents,
		DeltaPercent:       estimate.DeltaPercent,
	}
}
