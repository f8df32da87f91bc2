package config

import (
	"os"
	"path/filepath"
)

// Config carries the environment-driven settings of the data layer.
type Config struct {
	Home          string // blob directory for the file adapter
	AuthURL       string // base URL of the authentication boundary
	RedisAddr     string // when set, blobs live in Redis instead of files
	RedisPassword string

	Env      string
	LogLevel string
}

// Load reads GHAREEB_* environment variables with defaults. Home defaults
// to ~/.ghareeb.
func Load() (*Config, error) {
	home := GetEnv("GHAREEB_HOME", "")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".ghareeb")
	}

	return &Config{
		Home:          home,
		AuthURL:       GetEnv("GHAREEB_AUTH_URL", "http://127.0.0.1:8080/api"),
		RedisAddr:     GetEnv("GHAREEB_REDIS_ADDR", ""),
		RedisPassword: GetEnv("GHAREEB_REDIS_PASSWORD", ""),
		Env:           GetEnv("GHAREEB_ENV", "development"),
		LogLevel:      GetEnv("GHAREEB_LOG_LEVEL", "info"),
	}, nil
}

// GetEnv returns the variable's value, or defaultValue when unset.
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
