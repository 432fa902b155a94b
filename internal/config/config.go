// Package config loads the application configuration from environment
// variables once at startup. The resulting Config is immutable; nothing in
// the request path reads the environment again.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every runtime setting of the API.
type Config struct {
	Port       string
	DBHost     string
	DBPort     uint
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWTEnabled mirrors the jwt.enable flag of the web client: when false
	// the API runs in open-access mode and requests under /api are served
	// with an anonymous principal.
	JWTEnabled bool
	JWTSecret  string

	CORSOrigins []string
}

// Load reads the configuration from the environment. JWT_SECRET is the only
// hard requirement: even with JWT_ENABLE=false the login endpoint still
// issues tokens.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       getenv("APP_PORT", "8080"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "gestion"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	port, err := strconv.ParseUint(getenv("DB_PORT", "5432"), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("DB_PORT invalide: %w", err)
	}
	cfg.DBPort = uint(port)

	if v := os.Getenv("JWT_ENABLE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("JWT_ENABLE invalide: %w", err)
		}
		cfg.JWTEnabled = enabled
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET non définie")
	}

	origins := getenv("CORS_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
