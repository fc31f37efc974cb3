package config

import (
	"os"
	"strconv"

	"ifcdash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	API    APIConfig
	Upload UploadConfig
}

// ServerConfig holds dashboard web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// APIConfig holds headless JSON API settings
type APIConfig struct {
	Port string
}

// UploadConfig holds upload handling settings
type UploadConfig struct {
	// ScratchDir is where transient upload files live for the duration of
	// one parse. Empty means the OS temp dir.
	ScratchDir string
	// MaxBytes caps a single uploaded file.
	MaxBytes int64
	// MaxConcurrentParses gates simultaneous heavy parses across requests.
	MaxConcurrentParses int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		API: APIConfig{
			Port: getEnv("API_PORT", "8081"),
		},
		Upload: UploadConfig{
			ScratchDir:          getEnv("UPLOAD_SCRATCH_DIR", ""),
			MaxBytes:            getEnvInt64("UPLOAD_MAX_BYTES", 64<<20),
			MaxConcurrentParses: getEnvInt64("MAX_CONCURRENT_PARSES", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.ConfigInvalid("UPLOAD_MAX_BYTES must be positive")
	}
	if c.Upload.MaxConcurrentParses <= 0 {
		return errors.ConfigInvalid("MAX_CONCURRENT_PARSES must be positive")
	}
	if c.Upload.ScratchDir != "" {
		info, err := os.Stat(c.Upload.ScratchDir)
		if err != nil || !info.IsDir() {
			return errors.ConfigInvalid("UPLOAD_SCRATCH_DIR must be an existing directory")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
