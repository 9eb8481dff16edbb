package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/config"
	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/application"
	mongodoc "github.com/Anastasios23/ErasmusJourney-sub008/internal/infrastructure/mongo"
)

// One-shot batch runner for the view materializer, intended for cron or
// manual invocation next to the API process.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("MongoDB connection failed: %v", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Printf("MongoDB disconnect error: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDatabase)
	submissionRepo := mongodoc.NewSubmissionRepository(database, cfg.SubmissionCollection)
	viewRepo := mongodoc.NewViewRepository(database, cfg.AccommodationViewCollection, cfg.CourseViewCollection)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := viewRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Fatalf("failed to ensure view indexes: %v", err)
	}

	materializer := application.NewMaterializer(submissionRepo, viewRepo, nil, logger)

	runCtx, runCancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer runCancel()
	report, err := materializer.Run(runCtx)
	if err != nil {
		logger.Fatalf("materialize run %s failed: %v", report.RunID, err)
	}

	logger.Printf("materialize run %s finished in %s: seen=%d accommodations=%d courses=%d skipped=%d failed=%d",
		report.RunID, report.FinishedAt.Sub(report.StartedAt), report.SubmissionsSeen,
		report.AccommodationsCreated, report.CoursesCreated, report.Skipped, report.Failed)
}
