package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// SubmissionRepository implements the raw-submission read/write port on a
// MongoDB collection.
type SubmissionRepository struct {
	submissions *mongo.Collection
}

// NewSubmissionRepository binds the repository to its collection.
func NewSubmissionRepository(db *mongo.Database, collection string) *SubmissionRepository {
	return &SubmissionRepository{submissions: db.Collection(collection)}
}

// Find translates the filter contract into a Mongo query and decodes every
// matching submission into its domain shape.
func (r *SubmissionRepository) Find(ctx context.Context, filter application.SubmissionFilter) ([]domain.RawSubmission, error) {
	mongoFilter := bson.M{}
	if filter.Category != "" {
		mongoFilter["category"] = string(filter.Category)
	}
	if filter.City != "" {
		mongoFilter["city"] = filter.City
	}
	if filter.Country != "" {
		mongoFilter["country"] = filter.Country
	}
	if filter.Status != "" {
		mongoFilter["status"] = string(filter.Status)
	}
	if filter.PublicOnly {
		mongoFilter["isPublic"] = true
	}

	cursor, err := r.submissions.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := make([]domain.RawSubmission, 0)
	for cursor.Next(ctx) {
		var doc SubmissionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		subs = append(subs, mapSubmissionDocument(doc))
	}
	return subs, cursor.Err()
}

// Create inserts a new submission and writes the assigned id back onto the
// domain model.
func (r *SubmissionRepository) Create(ctx context.Context, sub *domain.RawSubmission) error {
	now := time.Now().UTC()
	createdAt := sub.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := sub.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	doc := SubmissionDocument{
		ID:           primitive.NewObjectID(),
		AuthorID:     sub.AuthorID,
		Category:     string(sub.Category),
		Status:       string(sub.Status),
		IsPublic:     sub.IsPublic,
		City:         sub.City,
		Country:      sub.Country,
		Neighborhood: sub.Neighborhood,
		Payload:      bson.M(sub.Payload),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}

	if _, err := r.submissions.InsertOne(ctx, doc); err != nil {
		return err
	}

	sub.ID = doc.ID.Hex()
	sub.CreatedAt = doc.CreatedAt
	sub.UpdatedAt = doc.UpdatedAt
	return nil
}
