package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is populated once at
// startup and passed to the components that need it; nothing reads the
// environment after this point.
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Database configuration
	DatabaseURL string

	// Static assets
	StaticDir string

	// Logging
	LogFormat string // "json" or "pretty"
}

// LoadConfig loads the application configuration from environment
// variables, reading a .env file first if one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 15)) * time.Second,
		DatabaseURL:  os.Getenv("POSTGRES_DB_URL"),
		StaticDir:    getEnvString("STATIC_DIR", "static"),
		LogFormat:    getEnvString("LOG_FORMAT", "pretty"),
	}

	if config.DatabaseURL == "" {
		log.Println("Warning: POSTGRES_DB_URL is not set. Database connections will fail.")
	}

	return config, nil
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
