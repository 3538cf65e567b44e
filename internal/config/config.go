package config

import (
	"os"
	"strconv"

	"murshid/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Paths      PathConfig
	Letterhead LetterheadConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the optional filter-state store connection. When URL
// is empty the application falls back to the in-memory store.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// PathConfig holds file system paths
type PathConfig struct {
	RosterFile string // xlsx or csv roster to import on startup
	ExportDir  string // where flagged-student workbooks are written
}

// LetterheadConfig holds the printed cover block identity
type LetterheadConfig struct {
	Directorate string
	Institution string
	Counselor   string
	SchoolYear  string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Paths: PathConfig{
			RosterFile: os.Getenv("ROSTER_FILE"),
			ExportDir:  getEnvOrDefault("EXPORT_DIR", "exports"),
		},
		Letterhead: LetterheadConfig{
			Directorate: os.Getenv("LETTERHEAD_DIRECTORATE"),
			Institution: os.Getenv("LETTERHEAD_INSTITUTION"),
			Counselor:   os.Getenv("LETTERHEAD_COUNSELOR"),
			SchoolYear:  os.Getenv("LETTERHEAD_SCHOOL_YEAR"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(c *Config) error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return errors.ConfigInvalid("SERVER_PORT must be numeric")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
