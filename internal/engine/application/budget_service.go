package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// budgetService combines lifestyle choices with aggregate baselines. When a
// city is given its average rent replaces the configured rent baseline; a
// city without data silently falls back to the defaults rather than failing
// the estimate.
type budgetService struct {
	stats StatsService
	cfg   domain.BudgetConfig
}

// NewBudgetService builds the estimator on top of the stats service.
func NewBudgetService(stats StatsService, cfg domain.BudgetConfig) BudgetService {
	return &budgetService{stats: stats, cfg: cfg}
}

func (s *budgetService) Estimate(ctx context.Context, cmd EstimateCommand) (domain.BudgetEstimate, error) {
	baseline := s.cfg.DefaultBaseline

	if city := strings.TrimSpace(cmd.City); city != "" {
		stats, err := s.stats.CityStats(ctx, city, cmd.Country)
		switch {
		case err == nil:
			if stats.AverageRentCents > 0 {
				baseline.RentCents = stats.AverageRentCents
			}
		case errors.Is(err, ErrNoData):
			// keep configured defaults
		default:
			return domain.BudgetEstimate{}, err
		}
	}

	estimate, err := domain.EstimateBudget(cmd.Lifestyle, cmd.Housing, cmd.Food, cmd.Transport, baseline, s.cfg)
	if err != nil {
		return domain.BudgetEstimate{}, Inputf("%s", err.Error())
	}
	return estimate, nil
}
