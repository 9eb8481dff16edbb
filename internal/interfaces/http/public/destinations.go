package public

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/interfaces/http/common"
)

func (h *Handler) destinationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := h.stats.Destinations(r.Context())
		if err != nil {
			h.logger.Printf("destination list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list destinations")
			return
		}

		if limit, ok := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); ok && limit < len(summaries) {
			summaries = summaries[:limit]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildDestinationList(summaries))
	}
}

func (h *Handler) cityStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := chi.URLParam(r, "city")
		country := r.URL.Query().Get("country")

		stats, err := h.stats.CityStats(r.Context(), city, country)
		if err != nil {
			switch {
			case application.IsInputError(err):
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, application.ErrNoData):
				common.WriteError(h.logger, w, http.StatusNotFound, "no approved submissions for this city")
			default:
				h.logger.Printf("city stats failed for %q: %v", city, err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to compute city statistics")
			}
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildCityStatsResponse(stats))
	}
}
