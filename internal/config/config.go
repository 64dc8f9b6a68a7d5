package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	DatabasePath  string
	JWTSecret     string
	TokenTTL      time.Duration
	AppEnv        string // "development" or "production"
	AllowedOrigin string
}

// Load loads configuration from the environment, reading a local .env file
// first if one exists. The JWT secret has no default: it must be provided,
// generated with a CSPRNG and at least 256 bits long.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	ttlStr := getEnv("TOKEN_TTL_SECONDS", "1800")
	ttlSecs, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_SECONDS %q: %w", ttlStr, err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:    port,
		DatabasePath:  getEnv("DATABASE_PATH", "./userhub.db"),
		JWTSecret:     secret,
		TokenTTL:      time.Duration(ttlSecs) * time.Second,
		AppEnv:        getEnv("APP_ENV", "development"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}, nil
}

// IsProduction reports whether the service runs with production settings,
// which controls the Secure flag on issued cookies.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
