package application

import (
	"context"
	"fmt"
	"math"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// fakeSubmissionRepo is an in-memory stand-in for the external read store.
type fakeSubmissionRepo struct {
	subs    []domain.RawSubmission
	findErr error
	created []domain.RawSubmission
}

func (f *fakeSubmissionRepo) Find(_ context.Context, filter SubmissionFilter) ([]domain.RawSubmission, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var result []domain.RawSubmission
	for _, sub := range f.subs {
		if filter.Category != "" && sub.Category != filter.Category {
			continue
		}
		if filter.City != "" && sub.City != filter.City {
			continue
		}
		if filter.Country != "" && sub.Country != filter.Country {
			continue
		}
		if filter.Status != "" && sub.Status != filter.Status {
			continue
		}
		if filter.PublicOnly && !sub.IsPublic {
			continue
		}
		result = append(result, sub)
	}
	return result, nil
}

func (f *fakeSubmissionRepo) Create(_ context.Context, sub *domain.RawSubmission) error {
	if sub.ID == "" {
		sub.ID = fmt.Sprintf("sub-%d", len(f.created)+1)
	}
	f.created = append(f.created, *sub)
	return nil
}

// fakeViewRepo mimics the unique-index behavior of the real view store:
// inserting an existing idempotency key reports created=false.
type fakeViewRepo struct {
	accommodations map[string]domain.AccommodationView
	courses        map[string]domain.CourseExchangeView
	failAccFor     map[string]error
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{
		accommodations: make(map[string]domain.AccommodationView),
		courses:        make(map[string]domain.CourseExchangeView),
		failAccFor:     make(map[string]error),
	}
}

func (f *fakeViewRepo) InsertAccommodationView(_ context.Context, view domain.AccommodationView) (bool, error) {
	if err := f.failAccFor[view.SourceSubmissionID]; err != nil {
		return false, err
	}
	if _, exists := f.accommodations[view.SourceSubmissionID]; exists {
		return false, nil
	}
	f.accommodations[view.SourceSubmissionID] = view
	return true, nil
}

func (f *fakeViewRepo) InsertCourseExchangeView(_ context.Context, view domain.CourseExchangeView) (bool, error) {
	key := view.SourceSubmissionID + "|" + view.HomeCourse + "|" + view.HostCourse
	if _, exists := f.courses[key]; exists {
		return false, nil
	}
	f.courses[key] = view
	return true, nil
}

func (f *fakeViewRepo) CitySummaries(_ context.Context) ([]CitySummary, error) {
	type bucket struct {
		summary CitySummary
		rents   []int
	}
	buckets := make(map[string]*bucket)
	for _, view := range f.accommodations {
		key := view.City + "|" + view.Country
		b, ok := buckets[key]
		if !ok {
			b = &bucket{summary: CitySummary{City: view.City, Country: view.Country}}
			buckets[key] = b
		}
		b.summary.ListingCount++
		if view.RentCents != nil {
			b.rents = append(b.rents, *view.RentCents)
		}
	}

	result := make([]CitySummary, 0, len(buckets))
	for _, b := range buckets {
		if len(b.rents) > 0 {
			total := 0
			for _, rent := range b.rents {
				total += rent
			}
			b.summary.AvgRentCents = int(math.Round(float64(total) / float64(len(b.rents))))
		}
		result = append(result, b.summary)
	}
	return result, nil
}
