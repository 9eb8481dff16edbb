package public

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/interfaces/http/common"
)

type stubStatsService struct {
	stats     domain.CityStats
	statsErr  error
	summaries []application.CitySummary
}

func (s *stubStatsService) CityStats(_ context.Context, city, _ string) (domain.CityStats, error) {
	if city == "" {
		return domain.CityStats{}, application.Inputf("city is required")
	}
	if s.statsErr != nil {
		return domain.CityStats{}, s.statsErr
	}
	return s.stats, nil
}

func (s *stubStatsService) Destinations(_ context.Context) ([]application.CitySummary, error) {
	return s.summaries, nil
}

func newTestRouter(t *testing.T, stats *stubStatsService) chi.Router {
	t.Helper()

	handler := NewHandler(Config{
		Logger:  log.New(&bytes.Buffer{}, "", 0),
		Stats:   stats,
		Matches: application.NewMatchService(),
		Budget:  application.NewBudgetService(stats, domain.DefaultBudgetConfig),
	})

	passthrough := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: "user-1"})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router := chi.NewRouter()
	handler.Register(router, passthrough)
	return router
}

func TestDestinationListHandler(t *testing.T) {
	stats := &stubStatsService{
		summaries: []application.CitySummary{
			{City: "Berlin", Country: "Germany", ListingCount: 12, AvgRentCents: 61000},
			{City: "Porto", Country: "Portugal", ListingCount: 4, AvgRentCents: 48000},
		},
	}
	router := newTestRouter(t, stats)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body destinationListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, "Berlin", body.Items[0].City)
	assert.Equal(t, 61000, body.Items[0].AvgRentCents)
}

func TestDestinationListHandlerLimit(t *testing.T) {
	stats := &stubStatsService{
		summaries: []application.CitySummary{
			{City: "Berlin", ListingCount: 12, AvgRentCents: 61000},
			{City: "Porto", ListingCount: 4, AvgRentCents: 48000},
		},
	}
	router := newTestRouter(t, stats)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations?limit=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body destinationListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "Berlin", body.Items[0].City)
}

func TestCityStatsHandlerNoData(t *testing.T) {
	stats := &stubStatsService{statsErr: application.ErrNoData}
	router := newTestRouter(t, stats)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations/Atlantis/stats", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCityStatsHandlerOK(t *testing.T) {
	stats := &stubStatsService{
		stats: domain.CityStats{
			City:             "Berlin",
			Country:          "Germany",
			Count:            3,
			AverageRentCents: 60000,
			MedianRentCents:  60000,
			Highlights:       []string{domain.HighlightAffordable},
		},
	}
	router := newTestRouter(t, stats)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations/Berlin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body cityStatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Berlin", body.City)
	assert.Equal(t, 60000, body.AverageRentCents)
	assert.Equal(t, []string{domain.HighlightAffordable}, body.Highlights)
}

func TestMatchScoreHandler(t *testing.T) {
	router := newTestRouter(t, &stubStatsService{})

	payload := matchScoreRequest{
		HostCourse: coursePayload{Name: "Distributed Systems", Credits: floatPtr(6)},
		Candidates: []coursePayload{
			{Name: "Operating Systems", Credits: floatPtr(6)},
			{Name: "Distributed Systems", Credits: floatPtr(6)},
		},
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matches/score", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp matchScoreResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Distributed Systems", resp.Items[0].Course.Name)
	assert.Equal(t, 70, resp.Items[0].Score.Total)
	assert.Equal(t, 50, resp.Items[1].Score.Total)
}

func TestMatchScoreHandlerTooManyCandidates(t *testing.T) {
	router := newTestRouter(t, &stubStatsService{})

	candidates := make([]coursePayload, common.MaxMatchCandidates+1)
	for i := range candidates {
		candidates[i] = coursePayload{Name: "Algorithms"}
	}
	body, err := json.Marshal(matchScoreRequest{
		HostCourse: coursePayload{Name: "Algorithms"},
		Candidates: candidates,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matches/score", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBudgetEstimateHandler(t *testing.T) {
	router := newTestRouter(t, &stubStatsService{statsErr: application.ErrNoData})

	body, err := json.Marshal(budgetEstimateRequest{
		Lifestyle: "moderate",
		Housing:   "shared",
		Food:      "mixed",
		Transport: "public",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/budget/estimate", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp budgetEstimateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, resp.BaselineTotalCents, resp.TotalCents)
	assert.Equal(t, 0, resp.DeltaCents)
}

func TestBudgetEstimateHandlerRejectsUnknownLifestyle(t *testing.T) {
	router := newTestRouter(t, &stubStatsService{statsErr: application.ErrNoData})

	body, err := json.Marshal(budgetEstimateRequest{
		Lifestyle: "lavish",
		Housing:   "shared",
		Food:      "mixed",
		Transport: "public",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/budget/estimate", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func floatPtr(v float64) *float64 { return &v }
