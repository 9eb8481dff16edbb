package application

import (
	"context"
	"log"
	"time"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
	"github.com/google/uuid"
)

// Materializer walks approved public submissions once and emits denormalized
// view records so reads never re-parse raw payloads. Runs are idempotent:
// existing idempotency keys are skipped, duplicates are impossible as long as
// the storage layer keeps its unique indexes. It is a best-effort catch-up
// job meant to run as a single offline batch, never concurrently with itself.
type Materializer struct {
	submissions SubmissionRepository
	views       ViewRepository
	keywords    map[string][]string
	logger      *log.Logger
}

// MaterializeReport summarizes one materializer run.
type MaterializeReport struct {
	RunID                 string
	SubmissionsSeen       int
	AccommodationsCreated int
	CoursesCreated        int
	Skipped               int
	Failed                int
	StartedAt             time.Time
	FinishedAt            time.Time
}

// NewMaterializer builds the batch job. keywords may be nil to use the
// default amenity table.
func NewMaterializer(submissions SubmissionRepository, views ViewRepository, keywords map[string][]string, logger *log.Logger) *Materializer {
	if keywords == nil {
		keywords = domain.DefaultAmenityKeywords
	}
	return &Materializer{
		submissions: submissions,
		views:       views,
		keywords:    keywords,
		logger:      logger,
	}
}

// Run processes every approved public submission. A failure on one submission
// is logged and counted, never fatal to the batch; the returned error covers
// only the initial fetch.
func (m *Materializer) Run(ctx context.Context) (MaterializeReport, error) {
	report := MaterializeReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	subs, err := m.submissions.Find(ctx, SubmissionFilter{
		Status:     domain.StatusApproved,
		PublicOnly: true,
	})
	if err != nil {
		return report, err
	}
	report.SubmissionsSeen = len(subs)

	for _, sub := range subs {
		m.materializeOne(ctx, sub, &report)
	}

	report.FinishedAt = time.Now().UTC()
	m.logger.Printf("materialize run %s: seen=%d accommodations=%d courses=%d skipped=%d failed=%d",
		report.RunID, report.SubmissionsSeen, report.AccommodationsCreated, report.CoursesCreated, report.Skipped, report.Failed)
	return report, nil
}

func (m *Materializer) materializeOne(ctx context.Context, sub domain.RawSubmission, report *MaterializeReport) {
	now := time.Now().UTC()

	if domain.HasAccommodationFields(sub.Payload) {
		record := domain.NormalizeAccommodation(sub, m.keywords)
		created, err := m.views.InsertAccommodationView(ctx, domain.AccommodationViewFromRecord(record, now))
		switch {
		case err != nil:
			report.Failed++
			m.logger.Printf("materialize accommodation view failed submission=%s: %v", sub.ID, err)
		case created:
			report.AccommodationsCreated++
		default:
			report.Skipped++
		}
	}

	for _, view := range domain.CourseViewsFromSubmission(sub, now) {
		created, err := m.views.InsertCourseExchangeView(ctx, view)
		switch {
		case err != nil:
			report.Failed++
			m.logger.Printf("materialize course view failed submission=%s home=%q host=%q: %v",
				sub.ID, view.HomeCourse, view.HostCourse, err)
		case created:
			report.CoursesCreated++
		default:
			report.Skipped++
		}
	}
}
