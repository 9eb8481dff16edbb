package application

import (
	"context"
	"strings"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// statsService implements StatsService. City statistics are recomputed on
// demand from approved raw submissions; there is no incremental update path.
// Callers wanting caching do it at the boundary (an hour is plenty).
type statsService struct {
	submissions SubmissionRepository
	views       ViewRepository
	cfg         domain.StatsConfig
	keywords    map[string][]string
}

// NewStatsService builds the aggregation service. keywords may be nil to use
// the default amenity table.
func NewStatsService(submissions SubmissionRepository, views ViewRepository, cfg domain.StatsConfig, keywords map[string][]string) StatsService {
	if keywords == nil {
		keywords = domain.DefaultAmenityKeywords
	}
	return &statsService{
		submissions: submissions,
		views:       views,
		cfg:         cfg,
		keywords:    keywords,
	}
}

func (s *statsService) CityStats(ctx context.Context, city, country string) (domain.CityStats, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.CityStats{}, Inputf("city is required")
	}

	subs, err := s.submissions.Find(ctx, SubmissionFilter{
		Category:   domain.CategoryAccommodation,
		City:       city,
		Country:    strings.TrimSpace(country),
		Status:     domain.StatusApproved,
		PublicOnly: true,
	})
	if err != nil {
		return domain.CityStats{}, err
	}
	if len(subs) == 0 {
		return domain.CityStats{}, ErrNoData
	}

	records := make([]domain.AccommodationRecord, 0, len(subs))
	for _, sub := range subs {
		records = append(records, domain.NormalizeAccommodation(sub, s.keywords))
	}

	return domain.AggregateCity(city, strings.TrimSpace(country), records, s.cfg)
}

// Destinations serves the browse listing from materialized views, which is
// why it stays cheap even when the submission collection grows.
func (s *statsService) Destinations(ctx context.Context) ([]CitySummary, error) {
	return s.views.CitySummaries(ctx)
}
