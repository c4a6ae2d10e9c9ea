package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service.
type Config struct {
	ServerPort int

	// Player catalog.
	PlayersCSVPath string
	DefaultClub    string
	RatingStrategy string // "fixed" or "derived"

	// Duel stats store. When StatsDatabaseURL is set the tally lives in
	// Postgres; otherwise it is a JSON blob at StatsFilePath.
	StatsDatabaseURL string
	StatsFilePath    string

	CORSAllowedOrigins []string

	// Portrait uploads (optional as a block; uploads are disabled when
	// any field is missing).
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// PortraitUploadsEnabled reports whether the R2 block is fully configured.
func (c *Config) PortraitUploadsEnabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := getEnvOrDefault("SERVER_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	csvPath := os.Getenv("PLAYERS_CSV_PATH")
	if csvPath == "" {
		return nil, fmt.Errorf("PLAYERS_CSV_PATH environment variable is not set")
	}

	rating := getEnvOrDefault("RATING_STRATEGY", "fixed")
	if rating != "fixed" && rating != "derived" {
		return nil, fmt.Errorf("RATING_STRATEGY must be \"fixed\" or \"derived\", got %q", rating)
	}

	var origins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	} else {
		origins = []string{"*"}
	}

	cfg := &Config{
		ServerPort:         port,
		PlayersCSVPath:     csvPath,
		DefaultClub:        getEnvOrDefault("DEFAULT_CLUB", "Fenerbahce"),
		RatingStrategy:     rating,
		StatsDatabaseURL:   os.Getenv("STATS_DATABASE_URL"),
		StatsFilePath:      getEnvOrDefault("STATS_FILE_PATH", "duel_stats.json"),
		CORSAllowedOrigins: origins,
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
