package public

import (
	"encoding/json"
	"net/http"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/interfaces/http/common"
)

func (h *Handler) budgetEstimateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetEstimateRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxSubmissionRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		estimate, err := h.budget.Estimate(r.Context(), application.EstimateCommand{
			City:      req.City,
			Country:   req.Country,
			Lifestyle: domain.Lifestyle(req.Lifestyle),
			Housing:   domain.HousingType(req.Housing),
			Food:      domain.FoodStyle(req.Food),
			Transport: domain.TransportStyle(req.Transport),
		})
		if err != nil {
			if application.IsInputError(err) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("budget estimate failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to estimate budget")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildBudgetResponse(estimate))
	}
}
