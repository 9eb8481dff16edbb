package application

import (
	"context"
	"strings"
	"time"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

type submissionCommandService struct {
	repo SubmissionRepository
}

// NewSubmissionCommandService builds the intake service. Submissions enter
// PENDING and become visible to the engine only after moderation approves
// them; moderation itself lives outside this service.
func NewSubmissionCommandService(repo SubmissionRepository) SubmissionCommandService {
	return &submissionCommandService{repo: repo}
}

func (s *submissionCommandService) Submit(ctx context.Context, cmd SubmitCommand) (*domain.RawSubmission, error) {
	if !domain.ValidCategory(cmd.Category) {
		return nil, Inputf("unknown category %q", cmd.Category)
	}
	city := strings.TrimSpace(cmd.City)
	if city == "" {
		return nil, Inputf("city is required")
	}
	if len(cmd.Payload) == 0 {
		return nil, Inputf("payload must not be empty")
	}

	now := time.Now().UTC()
	sub := &domain.RawSubmission{
		AuthorID:     cmd.AuthorID,
		Category:     cmd.Category,
		Status:       domain.StatusPending,
		IsPublic:     true,
		City:         city,
		Country:      strings.TrimSpace(cmd.Country),
		Neighborhood: strings.TrimSpace(cmd.Neighborhood),
		Payload:      cmd.Payload,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return sub, s.repo.Create(ctx, sub)
}
