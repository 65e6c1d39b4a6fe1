// internal/config/config.go
//
// Environment-driven configuration. main loads a .env file (if any) with
// godotenv before calling Load, so values can come from either place.
//
// Environment variables:
//   PORT=2489                           HTTP listen port
//   LOG_LEVEL=info                      zerolog level
//   DB_PATH=./data/wordle-stats.db      SQLite file
//   INGEST_JWT_SECRET=...               HS256 secret for POST /ingest (empty = open)
//   CLIENT_ORIGIN=http://localhost:5173 CORS origin
//   SUMMARY_WEBHOOK_URL=...             summary target (empty = stdout)
//   SUMMARY_WEBHOOK_TOKEN=...           bearer token for the webhook

package config

import "os"

// Config holds every setting the commands read.
type Config struct {
	Port         string
	LogLevel     string
	DBPath       string
	IngestSecret string
	ClientOrigin string
	WebhookURL   string
	WebhookToken string
}

// Load reads the environment, applying defaults for unset values.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "2489"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBPath:       getEnv("DB_PATH", "./data/wordle-stats.db"),
		IngestSecret: os.Getenv("INGEST_JWT_SECRET"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		WebhookURL:   os.Getenv("SUMMARY_WEBHOOK_URL"),
		WebhookToken: os.Getenv("SUMMARY_WEBHOOK_TOKEN"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
