package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Reference data sources.
const (
	SourceAPI    = "api"
	SourceSheets = "sheets"
)

// Config represents the full application configuration surface.
type Config struct {
	Server     ServerConfig
	Reference  ReferenceConfig
	Sheets     SheetsConfig
	Scheduler  SchedulerConfig
	MongoDB    MongoDBConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// ReferenceConfig selects where seed origins, pricing and constants come from.
type ReferenceConfig struct {
	Source     string
	APIBaseURL string
	APITimeout time.Duration
	CacheTTL   time.Duration
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// SchedulerConfig holds the reference refresh schedule.
type SchedulerConfig struct {
	RefreshCron string
	Timezone    string
}

// MongoDBConfig holds settings for MongoDB. An empty URI disables persistence.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Enabled reports whether projections should be persisted.
func (c MongoDBConfig) Enabled() bool {
	return c.URI != ""
}

// SimulationConfig holds Monte Carlo defaults. Seed 0 draws a seed per request.
type SimulationConfig struct {
	Iterations int
	Seed       uint64
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when the environment carries the configuration.
		_ = godotenv.Load()
	}

	apiTimeout, err := durationWithDefault("REFERENCE_API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := durationWithDefault("REFERENCE_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	iterations, err := strconv.Atoi(getenvWithDefault("SIMULATION_ITERATIONS", "1000"))
	if err != nil {
		return nil, fmt.Errorf("SIMULATION_ITERATIONS: %w", err)
	}
	seed, err := strconv.ParseUint(getenvWithDefault("SIMULATION_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SIMULATION_SEED: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     getenvWithDefault("APP_PORT", "8080"),
			LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Reference: ReferenceConfig{
			Source:     getenvWithDefault("REFERENCE_SOURCE", SourceAPI),
			APIBaseURL: getenvWithDefault("REFERENCE_API_URL", "http://localhost:4077"),
			APITimeout: apiTimeout,
			CacheTTL:   cacheTTL,
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		Scheduler: SchedulerConfig{
			RefreshCron: getenvWithDefault("REFERENCE_REFRESH_CRON", "0 * * * *"),
			Timezone:    getenvWithDefault("TIMEZONE", "America/Lima"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "abanico"),
		},
		Simulation: SimulationConfig{
			Iterations: iterations,
			Seed:       seed,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.Reference.Source {
	case SourceAPI:
		if c.Reference.APIBaseURL == "" {
			return errors.New("REFERENCE_API_URL must be provided when REFERENCE_SOURCE=api")
		}
	case SourceSheets:
		if c.Sheets.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided when REFERENCE_SOURCE=sheets")
		}
		if c.Sheets.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATABASE_ID must be provided when REFERENCE_SOURCE=sheets")
		}
	default:
		return fmt.Errorf("REFERENCE_SOURCE must be %q or %q, got %q", SourceAPI, SourceSheets, c.Reference.Source)
	}

	if c.Reference.CacheTTL <= 0 {
		return errors.New("REFERENCE_CACHE_TTL must be positive")
	}

	if c.Scheduler.RefreshCron == "" {
		return errors.New("REFERENCE_REFRESH_CRON must be provided")
	}

	if c.Scheduler.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	if c.Simulation.Iterations < 1 {
		return errors.New("SIMULATION_ITERATIONS must be at least 1")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
