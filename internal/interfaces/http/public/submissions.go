package public

import (
	"encoding/json"
	"net/http"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/interfaces/http/common"
)

func (h *Handler) submissionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req createSubmissionRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxSubmissionRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		sub, err := h.submissionCommands.Submit(r.Context(), application.SubmitCommand{
			AuthorID:     user.ID,
			Category:     domain.SubmissionCategory(req.Category),
			City:         req.City,
			Country:      req.Country,
			Neighborhood: req.Neighborhood,
			Payload:      domain.Payload(req.Payload),
		})
		if err != nil {
			if application.IsInputError(err) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("submission create failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to create submission")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, createSubmissionResponse{
			ID:     sub.ID,
			Status: string(sub.Status),
		})
	}
}
