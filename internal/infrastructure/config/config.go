// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// Cancellation prediction service
	IAUrl         string
	RiskThreshold float64

	// Reminder job (local wall-clock hour of the daily run)
	ReminderHour int

	// BI microservice
	BiBaseURL    string
	BiAuthToken  string
	BiMaxRetries int
	BiRetryDelay time.Duration

	// Google (Gmail sender + FCM push)
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	MailFrom           string
	FcmProjectID       string

	// Auth
	JWTSecret string
	JWTExpiry time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "agencia"),

		IAUrl:         getEnv("IA_CANCELACION_URL", "http://localhost:8001"),
		RiskThreshold: getEnvAsFloat("RISK_THRESHOLD", 0.70),

		ReminderHour: getEnvAsInt("REMINDER_HOUR", 10),

		BiBaseURL:    getEnv("BI_SERVICE_URL", "http://localhost:8002"),
		BiAuthToken:  getEnv("BI_AUTH_TOKEN", ""),
		BiMaxRetries: getEnvAsInt("BI_MAX_RETRIES", 3),
		BiRetryDelay: time.Duration(getEnvAsInt("BI_RETRY_DELAY", 2)) * time.Second,

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRefreshToken: getEnv("GOOGLE_REFRESH_TOKEN", ""),
		MailFrom:           getEnv("MAIL_FROM", "recordatorios@agencia.dev"),
		FcmProjectID:       getEnv("FCM_PROJECT_ID", ""),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry: time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
