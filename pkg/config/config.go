package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration settings for the application
type AppConfig struct {
	// Server settings
	Port            string
	Host            string
	Environment     string
	RequestTimeout  int
	ShutdownTimeout int
	AppVersion      string

	// Cross-origin and CSRF settings
	CORSAllowOrigins []string
	CSRFSecret       string
	CSRFSecure       bool

	// Error reporting
	SentryDSN string

	// Auth settings (from auth.go)
	Auth *AuthConfig

	// AI generation settings (from generate.go)
	Generate *GenerateConfig

	// Database settings (from database.go)
	Database *DatabaseConfig

	// Redis settings (from redis.go)
	Redis *RedisConfig
}

// LoadConfig loads all configuration from environment variables.
// The returned value is passed explicitly to the components that need it.
func LoadConfig() (*AppConfig, error) {
	// Load environment variables from .env file if it exists
	loadEnvFile()

	authConfig, err := LoadAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}

	generateConfig, err := LoadGenerateConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load generate config: %w", err)
	}

	databaseConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load redis config: %w", err)
	}

	appConfig := &AppConfig{
		// Server settings
		Port:            getEnv("PORT", "8000"),
		Host:            getEnv("HOST", "localhost"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		RequestTimeout:  getEnvAsInt("REQUEST_TIMEOUT", 30),
		ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		AppVersion:      getEnv("APP_VERSION", "dev"),

		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		CSRFSecret:       getEnv("CSRF_SECRET", ""),
		CSRFSecure:       getEnvAsBool("CSRF_SECURE", false),

		SentryDSN: getEnv("SENTRY_DSN", ""),

		Auth:     authConfig,
		Generate: generateConfig,
		Database: databaseConfig,
		Redis:    redisConfig,
	}

	return appConfig, nil
}

// IsDevelopment returns true if the app is in development mode
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the app is in production mode
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

// IsTest returns true if the app is in test mode
func (c *AppConfig) IsTest() bool {
	return c.Environment == "test"
}

// splitList turns a comma separated env value into a trimmed slice
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// loadEnvFile tries to load environment variables from .env file
func loadEnvFile() {
	// Try to load environment from .env file (prioritize based on environment)
	envFiles := []string{
		".env." + os.Getenv("ENVIRONMENT") + ".local", // .env.development.local
		".env.local",                       // .env.local
		".env." + os.Getenv("ENVIRONMENT"), // .env.development
		".env",                             // .env
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			err = godotenv.Load(file)
			if err == nil {
				log.Printf("Loaded environment from %s", file)
				break
			}
		}
	}
}
