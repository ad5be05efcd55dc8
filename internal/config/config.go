package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort string
	LogLevel   string

	BackendBaseURL string
	BackendTimeout time.Duration
	SessionFile    string

	DatabaseDSN string

	KafkaBrokers []string
	AuditTopic   string
	AuditOutput  string

	AuditWorkers       int
	AuditBatchSize     int
	AuditFlushInterval time.Duration

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
}

// Load reads .env from the working directory or its parents, then builds the
// config from environment variables. Missing optional values fall back to
// development defaults; the backend URL is the only hard requirement.
func Load() (*Config, error) {
	loadEnv()

	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL is required")
	}

	cfg := &Config{
		ListenPort:         envOr("HTTP_PORT", "9000"),
		LogLevel:           envOr("LOG_LEVEL", "debug"),
		BackendBaseURL:     backendURL,
		BackendTimeout:     envDurationOr("BACKEND_TIMEOUT", 10*time.Second),
		SessionFile:        envOr("SESSION_FILE", ".staffops-session.json"),
		DatabaseDSN:        generateDsn(),
		KafkaBrokers:       []string{envOr("KAFKA_BROKERS", "localhost:9092")},
		AuditTopic:         envOr("AUDIT_TOPIC", "staff_audit_events"),
		AuditOutput:        envOr("AUDIT_OUTPUT", "kafka"),
		AuditWorkers:       envIntOr("AUDIT_WORKERS", 2),
		AuditBatchSize:     envIntOr("AUDIT_BATCH_SIZE", 5),
		AuditFlushInterval: envDurationOr("AUDIT_FLUSH_INTERVAL", 500*time.Millisecond),
		OutboxPollInterval: envDurationOr("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:    envIntOr("OUTBOX_BATCH_SIZE", 10),
		OutboxMaxAttempts:  envIntOr("OUTBOX_MAX_ATTEMPTS", 5),
	}
	return cfg, nil
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Error getting working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}
}

// DatabaseDSNFromEnv builds the postgres DSN without requiring the rest of
// the gateway config. Admin tooling uses it directly.
func DatabaseDSNFromEnv() string {
	loadEnv()
	return generateDsn()
}

func generateDsn() string {
	host := envOr("DB_HOST", "localhost")
	port, _ := strconv.Atoi(envOr("DB_PORT", "5432"))
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
