package mongo

import (
	"context"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// ViewRepository persists denormalized view records. Idempotency lives in
// the collection's unique indexes, not in check-then-insert application
// code: a duplicate-key error on insert is reported as a skip, so concurrent
// writers cannot produce duplicate rows.
type ViewRepository struct {
	accommodations *mongo.Collection
	courses        *mongo.Collection
}

// NewViewRepository binds the repository to the two view collections.
func NewViewRepository(db *mongo.Database, accommodationCollection, courseCollection string) *ViewRepository {
	return &ViewRepository{
		accommodations: db.Collection(accommodationCollection),
		courses:        db.Collection(courseCollection),
	}
}

// EnsureIndexes creates the unique indexes carrying the idempotency keys.
// Safe to call on every startup; Mongo treats existing identical indexes as
// a no-op.
func (r *ViewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.accommodations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sourceSubmissionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = r.courses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "sourceSubmissionId", Value: 1},
			{Key: "homeCourse", Value: 1},
			{Key: "hostCourse", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// InsertAccommodationView inserts one view; an existing source submission id
// is a skip, not an error.
func (r *ViewRepository) InsertAccommodationView(ctx context.Context, view domain.AccommodationView) (bool, error) {
	doc := AccommodationViewDocument{
		ID:                 primitive.NewObjectID(),
		SourceSubmissionID: view.SourceSubmissionID,
		City:               view.City,
		Country:            view.Country,
		Neighborhood:       view.Neighborhood,
		Name:               view.Name,
		Type:               view.Type,
		RentCents:          view.RentCents,
		DepositCents:       view.DepositCents,
		UtilitiesCents:     view.UtilitiesCents,
		OverallRating:      view.OverallRating,
		LocationRating:     view.LocationRating,
		CleanlinessRating:  view.CleanlinessRating,
		ValueRating:        view.ValueRating,
		Amenities:          view.Amenities,
		CreatedAt:          viewCreatedAt(view.CreatedAt),
	}

	if _, err := r.accommodations.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InsertCourseExchangeView inserts one course pairing; an existing
// (source, home, host) key is a skip.
func (r *ViewRepository) InsertCourseExchangeView(ctx context.Context, view domain.CourseExchangeView) (bool, error) {
	doc := CourseExchangeViewDocument{
		ID:                 primitive.NewObjectID(),
		SourceSubmissionID: view.SourceSubmissionID,
		City:               view.City,
		Country:            view.Country,
		HostInstitution:    view.HostInstitution,
		HomeInstitution:    view.HomeInstitution,
		HostCourse:         view.HostCourse,
		HomeCourse:         view.HomeCourse,
		HostCourseCode:     view.HostCourseCode,
		HomeCourseCode:     view.HomeCourseCode,
		HostCredits:        view.HostCredits,
		HomeCredits:        view.HomeCredits,
		Field:              view.Field,
		CreatedAt:          viewCreatedAt(view.CreatedAt),
	}

	if _, err := r.courses.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CitySummaries groups accommodation views per city inside Mongo, so the
// destinations listing never loads individual documents.
func (r *ViewRepository) CitySummaries(ctx context.Context) ([]application.CitySummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "city", Value: "$city"},
				{Key: "country", Value: "$country"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avgRent", Value: bson.D{{Key: "$avg", Value: "$rentCents"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.accommodations.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := make([]application.CitySummary, 0)
	for cursor.Next(ctx) {
		var row struct {
			ID struct {
				City    string `bson:"city"`
				Country string `bson:"country"`
			} `bson:"_id"`
			Count   int      `bson:"count"`
			AvgRent *float64 `bson:"avgRent"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		summary := application.CitySummary{
			City:         row.ID.City,
			Country:      row.ID.Country,
			ListingCount: row.Count,
		}
		if row.AvgRent != nil {
			summary.AvgRentCents = int(math.Round(*row.AvgRent))
		}
		summaries = append(summaries, summary)
	}
	return summaries, cursor.Err()
}

func viewCreatedAt(value time.Time) time.Time {
	if value.IsZero() {
		return time.Now().UTC()
	}
	return value
}
