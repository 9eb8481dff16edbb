package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Anastasios23/ErasmusJourney-sub008/internal/engine/domain"
)

// JWTConfig defines an issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                        string
	MongoURI                    string
	MongoDatabase               string
	SubmissionCollection        string
	AccommodationViewCollection string
	CourseViewCollection        string
	Timeout                     time.Duration
	ServerLog                   *log.Logger
	JWTConfigs                  []JWTConfig
	JWTAudience                 string
	AllowedOrigins              []string
	Stats                       domain.StatsConfig
	Budget                      domain.BudgetConfig
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "erasmus-journey-auth"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secret not configured. Set AUTH_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	stats := domain.DefaultStatsConfig
	stats.AffordableRentCents = envIntOrDefault("STATS_AFFORDABLE_RENT_CENTS", stats.AffordableRentCents)
	stats.PremiumRentCents = envIntOrDefault("STATS_PREMIUM_RENT_CENTS", stats.PremiumRentCents)
	stats.HighlyRatedCutoff = envIntOrDefault("STATS_HIGHLY_RATED_CUTOFF", stats.HighlyRatedCutoff)
	stats.ManyOptionsMinCount = envIntOrDefault("STATS_MANY_OPTIONS_MIN_COUNT", stats.ManyOptionsMinCount)
	stats.TopAmenityCount = envIntOrDefault("STATS_TOP_AMENITY_COUNT", stats.TopAmenityCount)

	budget := domain.DefaultBudgetConfig
	budget.DefaultBaseline.RentCents = envIntOrDefault("BUDGET_BASELINE_RENT_CENTS", budget.DefaultBaseline.RentCents)
	budget.DefaultBaseline.FoodCents = envIntOrDefault("BUDGET_BASELINE_FOOD_CENTS", budget.DefaultBaseline.FoodCents)
	budget.DefaultBaseline.TransportCents = envIntOrDefault("BUDGET_BASELINE_TRANSPORT_CENTS", budget.DefaultBaseline.TransportCents)
	budget.DefaultBaseline.EntertainmentCents = envIntOrDefault("BUDGET_BASELINE_ENTERTAINMENT_CENTS", budget.DefaultBaseline.EntertainmentCents)
	budget.MiscCents = envIntOrDefault("BUDGET_MISC_CENTS", budget.MiscCents)

	cfg := Config{
		Addr:                        envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                    envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:               envOrDefault("MONGO_DB", "erasmus-journey"),
		SubmissionCollection:        envOrDefault("SUBMISSION_COLLECTION", "submissions"),
		AccommodationViewCollection: envOrDefault("ACCOMMODATION_VIEW_COLLECTION", "accommodation_views"),
		CourseViewCollection:        envOrDefault("COURSE_VIEW_COLLECTION", "course_exchange_views"),
		Timeout:                     timeout,
		ServerLog:                   log.New(os.Stdout, "[erasmus-journey-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:                  jwtConfigs,
		JWTAudience:                 jwtAudience,
		AllowedOrigins:              allowedOrigins,
		Stats:                       stats,
		Budget:                      budget,
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
