package public

import (
	"net/http"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/interfaces/http/common"
)

func (h *Handler) materializeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		report, err := h.materializer.Run(r.Context())
		if err != nil {
			h.logger.Printf("materialize run %s requested by %s failed: %v", report.RunID, user.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "materialization failed")
			return
		}

		h.logger.Printf("materialize run %s requested by %s: seen=%d accommodations=%d courses=%d skipped=%d failed=%d",
			report.RunID, user.ID, report.SubmissionsSeen, report.AccommodationsCreated,
			report.CoursesCreated, report.Skipped, report.Failed)

		common.WriteJSON(h.logger, w, http.StatusOK, materializeResponse{
			RunID:                 report.RunID,
			SubmissionsSeen:       report.SubmissionsSeen,
			AccommodationsCreated: report.AccommodationsCreated,
			CoursesCreated:        report.CoursesCreated,
			Skipped:               report.Skipped,
			Failed:                report.Failed,
		})
	}
}
