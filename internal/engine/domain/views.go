package domain

import "time"

// AccommodationView is the denormalized, query-ready record derived from one
// approved accommodation submission. Exactly one view exists per source
// submission; the storage layer enforces that with a unique index. Views are
// not retracted when a source submission is later rejected or archived.
type AccommodationView struct {
	ID                 string
	SourceSubmissionID string
	City               string
	Country            string
	Neighborhood       string
	Name               string
	Type               string
	RentCents          *int
	DepositCents       *int
	UtilitiesCents     *int
	OverallRating      *float64
	LocationRating     *float64
	CleanlinessRating  *float64
	ValueRating        *float64
	Amenities          []string
	CreatedAt          time.Time
}

// CourseExchangeView is one derived course pairing from a submission's
// courses list, keyed by (source submission, home course, host course).
type CourseExchangeView struct {
	ID                 string
	SourceSubmissionID string
	City               string
	Country            string
	HostInstitution    string
	HomeInstitution    string
	HostCourse         string
	HomeCourse         string
	HostCourseCode     string
	HomeCourseCode     string
	HostCredits        *float64
	HomeCredits        *float64
	Field              string
	CreatedAt          time.Time
}

// AccommodationViewFromRecord lifts a normalized record into its view shape.
func AccommodationViewFromRecord(record AccommodationRecord, now time.Time) AccommodationView {
	return AccommodationView{
		SourceSubmissionID: record.SubmissionID,
		City:               record.City,
		Country:            record.Country,
		Neighborhood:       record.Neighborhood,
		Name:               record.Name,
		Type:               record.Type,
		RentCents:          record.RentCents,
		DepositCents:       record.DepositCents,
		UtilitiesCents:     record.UtilitiesCents,
		OverallRating:      record.OverallRating,
		LocationRating:     record.LocationRating,
		CleanlinessRating:  record.CleanlinessRating,
		ValueRating:        record.ValueRating,
		Amenities:          append([]string(nil), record.Amenities...),
		CreatedAt:          now,
	}
}

// CourseViewsFromSubmission expands the courses list of one submission into
// course-exchange views. Entries without both course names are skipped; they
// cannot form an idempotency key.
func CourseViewsFromSubmission(sub RawSubmission, now time.Time) []CourseExchangeView {
	entries := sub.Payload.List("courses")
	if len(entries) == 0 {
		return nil
	}

	hostInstitution := sub.Payload.FirstString("hostUniversity", "hostInstitution")
	homeInstitution := sub.Payload.FirstString("homeUniversity", "homeInstitution")

	views := make([]CourseExchangeView, 0, len(entries))
	for _, entry := range entries {
		hostCourse := entry.FirstString("hostCourseName", "hostCourse")
		homeCourse := entry.FirstString("homeCourseName", "homeCourse")
		if hostCourse == "" || homeCourse == "" {
			continue
		}
		views = append(views, CourseExchangeView{
			SourceSubmissionID: sub.ID,
			City:               sub.City,
			Country:            sub.Country,
			HostInstitution:    hostInstitution,
			HomeInstitution:    homeInstitution,
			HostCourse:         hostCourse,
			HomeCourse:         homeCourse,
			HostCourseCode:     entry.FirstString("hostCourseCode", "hostCode"),
			HomeCourseCode:     entry.FirstString("homeCourseCode", "homeCode"),
			HostCredits:        entry.FirstFloat("hostCredits", "hostEcts", "ects"),
			HomeCredits:        entry.FirstFloat("homeCredits", "homeEcts"),
			Field:              entry.FirstString("field", "fieldOfStudy"),
			CreatedAt:          now,
		})
	}
	return views
}
