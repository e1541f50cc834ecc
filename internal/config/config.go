// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries need to run.
type Config struct {
	// HTTP server
	Port string

	// Database
	DBPath string

	// Auth
	JWTSecret     string
	TokenDuration time.Duration

	// Dues
	PerMemberTarget int64 // monthly goal per member, minor units
	HouseCapacity   int   // how many residents the house holds
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() *Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./data/kosboard.db"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenDuration:   getEnvDuration("TOKEN_DURATION", 24*time.Hour),
		PerMemberTarget: getEnvInt64("PER_MEMBER_TARGET", 65000),
		HouseCapacity:   getEnvInt("HOUSE_CAPACITY", 10),
	}
}

// Validate checks the configuration and returns an error describing every
// violation at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	} else if len(c.JWTSecret) < 16 {
		problems = append(problems, "JWT_SECRET must be at least 16 characters")
	}

	if c.TokenDuration < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid token duration %v: must be at least 1 minute", c.TokenDuration))
	}

	if c.PerMemberTarget <= 0 {
		problems = append(problems, fmt.Sprintf("invalid per-member target %d: must be positive", c.PerMemberTarget))
	}

	if c.HouseCapacity < 1 {
		problems = append(problems, fmt.Sprintf("invalid house capacity %d: must be at least 1", c.HouseCapacity))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
