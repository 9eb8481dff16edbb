package public

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/interfaces/http/common"
)

func (h *Handler) matchScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req matchScoreRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxSubmissionRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		if len(req.Candidates) > common.MaxMatchCandidates {
			common.WriteError(h.logger, w, http.StatusBadRequest,
				fmt.Sprintf("too many candidates: limit is %d", common.MaxMatchCandidates))
			return
		}

		candidates := make([]domain.CourseDescriptor, 0, len(req.Candidates))
		for _, c := range req.Candidates {
			candidates = append(candidates, toCourseDescriptor(c))
		}

		matches, err := h.matches.Rank(toCourseDescriptor(req.HostCourse), candidates)
		if err != nil {
			if application.IsInputError(err) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("match scoring failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to score matches")
			return
		}

		items := make([]matchResponse, 0, len(matches))
		for _, m := range matches {
			items = append(items, buildMatchResponse(m))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, matchScoreResponse{Items: items})
	}
}
