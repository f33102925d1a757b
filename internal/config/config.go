package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Store       StoreConfig
}

// StoreConfig holds record-store configuration
type StoreConfig struct {
	Type       string // "dynamo", "sqlite" or "memory"
	Table      string // DynamoDB table name
	Region     string // AWS region for the dynamo store
	Endpoint   string // optional custom DynamoDB endpoint (localstack)
	SQLitePath string // database file path for the sqlite store
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_TYPE", "sqlite")
	viper.SetDefault("SQLITE_PATH", "./data/submissions.db")
	viper.SetDefault("SUBMISSIONS_TABLE", "submissions")
	viper.SetDefault("AWS_REGION", "us-east-1")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		Store: StoreConfig{
			Type:       viper.GetString("STORE_TYPE"),
			Table:      viper.GetString("SUBMISSIONS_TABLE"),
			Region:     viper.GetString("AWS_REGION"),
			Endpoint:   viper.GetString("AWS_ENDPOINT_URL"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
