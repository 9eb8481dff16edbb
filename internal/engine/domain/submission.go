package domain

import "time"

// SubmissionCategory tags the aspect of an exchange stay a submission describes.
type SubmissionCategory string

const (
	CategoryAccommodation  SubmissionCategory = "ACCOMMODATION"
	CategoryCourseExchange SubmissionCategory = "COURSE_EXCHANGE"
	CategoryFullExperience SubmissionCategory = "FULL_EXPERIENCE"
	CategoryLivingCosts    SubmissionCategory = "LIVING_COSTS"
)

// KnownCategories lists every category accepted at the intake boundary.
var KnownCategories = []SubmissionCategory{
	CategoryAccommodation,
	CategoryCourseExchange,
	CategoryFullExperience,
	CategoryLivingCosts,
}

// ValidCategory reports whether value is one of the known category tags.
func ValidCategory(value SubmissionCategory) bool {
	for _, c := range KnownCategories {
		if c == value {
			return true
		}
	}
	return false
}

// SubmissionStatus is the moderation lifecycle state of a submission.
type SubmissionStatus string

const (
	StatusDraft    SubmissionStatus = "DRAFT"
	StatusPending  SubmissionStatus = "PENDING"
	StatusApproved SubmissionStatus = "APPROVED"
	StatusRejected SubmissionStatus = "REJECTED"
	StatusArchived SubmissionStatus = "ARCHIVED"
)

// RawSubmission is an author-authored record about one aspect of an exchange
// stay. The payload keeps the author's free-form answers as submitted; the
// engine never mutates it. Status and visibility are changed only by the
// moderation workflows, which live outside this service.
type RawSubmission struct {
	ID           string
	AuthorID     string
	Category     SubmissionCategory
	Status       SubmissionStatus
	IsPublic     bool
	City         string
	Country      string
	Neighborhood string
	Payload      Payload
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
