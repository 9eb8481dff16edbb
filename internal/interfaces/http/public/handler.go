package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger             *log.Logger
	stats              application.StatsService
	matches            application.MatchService
	budget             application.BudgetService
	submissionCommands application.SubmissionCommandService
	materializer       *application.Materializer
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger             *log.Logger
	Stats              application.StatsService
	Matches            application.MatchService
	Budget             application.BudgetService
	SubmissionCommands application.SubmissionCommandService
	Materializer       *application.Materializer
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:             cfg.Logger,
		stats:              cfg.Stats,
		matches:            cfg.Matches,
		budget:             cfg.Budget,
		submissionCommands: cfg.SubmissionCommands,
		materializer:       cfg.Materializer,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/destinations", h.destinationListHandler())
	r.Get("/destinations/{city}/stats", h.cityStatsHandler())
	r.Post("/matches/score", h.matchScoreHandler())
	r.Post("/budget/estimate", h.budgetEstimateHandler())
	r.With(authMiddleware).Post("/submissions", h.submissionCreateHandler())
	r.With(authMiddleware).Post("/admin/materialize", h.materializeHandler())
}
