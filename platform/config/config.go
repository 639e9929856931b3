// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// RegistryConfig provides settings for the messaging registry lookup.
// The API key is the only secret this service carries; it is injected
// into the registry client at construction and must never be logged.
type RegistryConfig interface {
	GetRapidAPIHost() string
	GetRapidAPIKey() string
	IsRegistryEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env          string
	HTTPAddr     string
	CORSAllowAll bool
	CORSOrigins  []string
	RapidAPIHost string
	RapidAPIKey  string
}

// GetHTTPAddr returns the HTTP listen address.
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }

// GetCORSAllowAll reports whether all origins are allowed.
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }

// GetCORSOrigins returns the allowed CORS origins.
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// GetRapidAPIHost returns the registry API host.
func (c *Config) GetRapidAPIHost() string { return c.RapidAPIHost }

// GetRapidAPIKey returns the registry API key.
func (c *Config) GetRapidAPIKey() string { return c.RapidAPIKey }

// IsRegistryEnabled reports whether the registry lookup is configured.
func (c *Config) IsRegistryEnabled() bool { return c.RapidAPIKey != "" }

// Interface compliance checks.
var (
	_ HTTPConfig     = (*Config)(nil)
	_ RegistryConfig = (*Config)(nil)
)

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll: corsAllowAll,
		CORSOrigins:  corsOrigins,
		RapidAPIHost: getEnv("RAPIDAPI_HOST", "whatsapp-osint4.p.rapidapi.com"),
		RapidAPIKey:  getEnv("RAPIDAPI_KEY", ""),
	}

	if cfg.RapidAPIKey == "" && strings.EqualFold(cfg.Env, "production") {
		return nil, fmt.Errorf("RAPIDAPI_KEY is required in production")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
