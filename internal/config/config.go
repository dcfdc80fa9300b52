package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port               string
	DBConnectionString string
	StoreDriver        string
	WebhookSecret      string
	LogLevel           string
	MigrationRetries   int
	CORSAllowedOrigins []string
	GitHub             *GitHubConfig
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	storeDriver := getEnv("STORE_DRIVER", StoreDriverPostgres)
	if storeDriver != StoreDriverPostgres && storeDriver != StoreDriverMemory {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", storeDriver)
	}

	migrationRetries, err := strconv.Atoi(getEnv("MIGRATION_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATION_RETRIES: %w", err)
	}

	timeoutSeconds, err := strconv.Atoi(getEnv("GITHUB_REQUEST_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid GITHUB_REQUEST_TIMEOUT_SECONDS: %w", err)
	}

	github := DefaultGitHubConfig()
	github.Token = getEnv("GITHUB_TOKEN", "")
	github.APIBaseURL = getEnv("GITHUB_API_BASE_URL", github.APIBaseURL)
	github.RequestTimeout = time.Duration(timeoutSeconds) * time.Second

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DBConnectionString: getEnv("DB_CONNECTION_STRING", ""),
		StoreDriver:        storeDriver,
		WebhookSecret:      getEnv("GITHUB_WEBHOOK_SECRET", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MigrationRetries:   migrationRetries,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		GitHub:             github,
	}, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if c.StoreDriver == StoreDriverPostgres && c.DBConnectionString == "" {
		return fmt.Errorf("DB_CONNECTION_STRING must be set when STORE_DRIVER is %q", StoreDriverPostgres)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
