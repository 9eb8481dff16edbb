package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// SubmissionDocument is the MongoDB schema of a raw submission.
type SubmissionDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	AuthorID     string             `bson:"authorId,omitempty"`
	Category     string             `bson:"category"`
	Status       string             `bson:"status"`
	IsPublic     bool               `bson:"isPublic"`
	City         string             `bson:"city,omitempty"`
	Country      string             `bson:"country,omitempty"`
	Neighborhood string             `bson:"neighborhood,omitempty"`
	Payload      bson.M             `bson:"payload,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// AccommodationViewDocument is one denormalized accommodation record.
// sourceSubmissionId carries a unique index; see ViewRepository.EnsureIndexes.
type AccommodationViewDocument struct {
	ID                 primitive.ObjectID `bson:"_id"`
	SourceSubmissionID string             `bson:"sourceSubmissionId"`
	City               string             `bson:"city,omitempty"`
	Country            string             `bson:"country,omitempty"`
	Neighborhood       string             `bson:"neighborhood,omitempty"`
	Name               string             `bson:"name,omitempty"`
	Type               string             `bson:"type,omitempty"`
	RentCents          *int               `bson:"rentCents,omitempty"`
	DepositCents       *int               `bson:"depositCents,omitempty"`
	UtilitiesCents     *int               `bson:"utilitiesCents,omitempty"`
	OverallRating      *float64           `bson:"overallRating,omitempty"`
	LocationRating     *float64           `bson:"locationRating,omitempty"`
	CleanlinessRating  *float64           `bson:"cleanlinessRating,omitempty"`
	ValueRating        *float64           `bson:"valueRating,omitempty"`
	Amenities          []string           `bson:"amenities,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

// CourseExchangeViewDocument is one derived course pairing, keyed by
// (sourceSubmissionId, homeCourse, hostCourse) through a compound unique index.
type CourseExchangeViewDocument struct {
	ID                 primitive.ObjectID `bson:"_id"`
	SourceSubmissionID string             `bson:"sourceSubmissionId"`
	City               string             `bson:"city,omitempty"`
	Country            string             `bson:"country,omitempty"`
	HostInstitution    string             `bson:"hostInstitution,omitempty"`
	HomeInstitution    string             `bson:"homeInstitution,omitempty"`
	HostCourse         string             `bson:"hostCourse"`
	HomeCourse         string             `bson:"homeCourse"`
	HostCourseCode     string             `bson:"hostCourseCode,omitempty"`
	HomeCourseCode     string             `bson:"homeCourseCode,omitempty"`
	HostCredits        *float64           `bson:"hostCredits,omitempty"`
	HomeCredits        *float64           `bson:"homeCredits,omitempty"`
	Field              string             `bson:"field,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
}

// mapSubmissionDocument converts a stored submission into its domain shape.
func mapSubmissionDocument(doc SubmissionDocument) domain.RawSubmission {
	return domain.RawSubmission{
		ID:           doc.ID.Hex(),
		AuthorID:     doc.AuthorID,
		Category:     domain.SubmissionCategory(doc.Category),
		Status:       domain.SubmissionStatus(doc.Status),
		IsPublic:     doc.IsPublic,
		City:         doc.City,
		Country:      doc.Country,
		Neighborhood: doc.Neighborhood,
		Payload:      normalizePayload(doc.Payload),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

// normalizePayload strips bson container types from a decoded payload so the
// domain package never has to know about the driver. primitive.A and nested
// bson.M become plain Go slices and maps.
func normalizePayload(raw bson.M) domain.Payload {
	if raw == nil {
		return nil
	}
	payload := make(domain.Payload, len(raw))
	for key, value := range raw {
		payload[key] = normalizeValue(value)
	}
	return payload
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case bson.M:
		converted := make(map[string]any, len(v))
		for key, item := range v {
			converted[key] = normalizeValue(item)
		}
		return converted
	case bson.D:
		converted := make(map[string]any, len(v))
		for _, elem := range v {
			converted[elem.Key] = normalizeValue(elem.Value)
		}
		return converted
	case primitive.A:
		converted := make([]any, 0, len(v))
		for _, item := range v {
			converted = append(converted, normalizeValue(item))
		}
		return converted
	default:
		return value
	}
}
