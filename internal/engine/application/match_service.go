package application

import (
	"strings"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

type matchService struct{}

// NewMatchService builds the equivalency matching service. Scoring is pure
// and per-request; nothing is persisted.
func NewMatchService() MatchService {
	return &matchService{}
}

func (s *matchService) Rank(host domain.CourseDescriptor, candidates []domain.CourseDescriptor) ([]domain.CourseMatch, error) {
	if strings.TrimSpace(host.Name) == "" {
		return nil, Inputf("host course name is required")
	}
	if len(candidates) == 0 {
		return nil, Inputf("at least one candidate course is required")
	}
	return domain.RankMatches(host, candidates), nil
}
