package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// SubmissionRepository is the read/write port for raw submissions. The
// persistence engine behind it (queries, migrations, moderation) is an
// external collaborator; this engine only consumes the contract.
type SubmissionRepository interface {
	Find(ctx context.Context, filter SubmissionFilter) ([]domain.RawSubmission, error)
	Create(ctx context.Context, sub *domain.RawSubmission) error
}

// SubmissionFilter expresses the read interface's filter contract.
type SubmissionFilter struct {
	Category   domain.SubmissionCategory
	City       string
	Country    string
	Status     domain.SubmissionStatus
	PublicOnly bool
}

// CitySummary is one row of the cheap destinations listing, computed from
// materialized views instead of raw submissions.
type CitySummary struct {
	City         string
	Country      string
	ListingCount int
	AvgRentCents int
}

// ViewRepository is the write port for derived view records. Insert calls
// report created=false when the idempotency key already exists; the storage
// layer's unique indexes make that decision, not application code.
type ViewRepository interface {
	InsertAccommodationView(ctx context.Context, view domain.AccommodationView) (created bool, err error)
	InsertCourseExchangeView(ctx context.Context, view domain.CourseExchangeView) (created bool, err error)
	CitySummaries(ctx context.Context) ([]CitySummary, error)
}

// ErrNoData re-exports the domain sentinel so handlers only import one
// error surface from this package.
var ErrNoData = domain.ErrNoData

// InputError marks a malformed or missing request parameter. The boundary
// maps it to a client error instead of a silent default.
type InputError struct {
	msg string
}

func (e *InputError) Error() string {
	return e.msg
}

// Inputf builds an InputError from a format string.
func Inputf(format string, args ...any) *InputError {
	return &InputError{msg: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// StatsService computes city and neighborhood statistics on demand.
type StatsService interface {
	CityStats(ctx context.Context, city, country string) (domain.CityStats, error)
	Destinations(ctx context.Context) ([]CitySummary, error)
}

// MatchService ranks candidate home courses against a host course.
type MatchService interface {
	Rank(host domain.CourseDescriptor, candidates []domain.CourseDescriptor) ([]domain.CourseMatch, error)
}

// BudgetService produces personalized monthly cost projections.
type BudgetService interface {
	Estimate(ctx context.Context, cmd EstimateCommand) (domain.BudgetEstimate, error)
}

// EstimateCommand captures the lifestyle choices behind one estimate. City is
// optional; when present the rent baseline comes from that city's aggregates.
type EstimateCommand struct {
	City      string
	Country   string
	Lifestyle domain.Lifestyle
	Housing   domain.HousingType
	Food      domain.FoodStyle
	Transport domain.TransportStyle
}

// SubmissionCommandService handles the intake path for new submissions.
type SubmissionCommandService interface {
	Submit(ctx context.Context, cmd SubmitCommand) (*domain.RawSubmission, error)
}

// SubmitCommand captures an authenticated author's raw submission.
type SubmitCommand struct {
	AuthorID     string
	Category     domain.SubmissionCategory
	City         string
	Country      string
	Neighborhood string
	Payload      domain.Payload
}
