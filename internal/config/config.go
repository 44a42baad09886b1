package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Collection names
	ClientCollection           string `json:"mongo_client_collection"`
	MagistrateCollection       string `json:"mongo_magistrate_collection"`
	MagistrateConfigCollection string `json:"mongo_magistrate_config_collection"`
	PresenceCollection         string `json:"mongo_presence_collection"`
	TaskCollection             string `json:"mongo_task_collection"`

	// Admin role name carried in JWT claims
	AdminGroup string `json:"admin_group"`

	// Pending confirmations (dismiss/discard/delete) expire after this TTL
	ConfirmationTTL time.Duration `json:"confirmation_ttl"`

	// Magistrate area unlock tokens expire after this TTL
	SecureAreaTTL time.Duration `json:"secure_area_ttl"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	// Check if MONGODB_CLIENT_COLLECTION is set
	clientCollection := os.Getenv("MONGODB_CLIENT_COLLECTION")
	if clientCollection == "" {
		return fmt.Errorf("MONGODB_CLIENT_COLLECTION environment variable is required")
	}

	confirmationTTL, err := time.ParseDuration(getEnvOrDefault("CONFIRMATION_TTL", "5m"))
	if err != nil {
		return fmt.Errorf("invalid CONFIRMATION_TTL: %w", err)
	}

	secureAreaTTL, err := time.ParseDuration(getEnvOrDefault("SECURE_AREA_TTL", "15m"))
	if err != nil {
		return fmt.Errorf("invalid SECURE_AREA_TTL: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "crm"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		// Collection names
		ClientCollection:           clientCollection,
		MagistrateCollection:       getEnvOrDefault("MONGODB_MAGISTRATE_COLLECTION", "magistrados"),
		MagistrateConfigCollection: getEnvOrDefault("MONGODB_MAGISTRATE_CONFIG_COLLECTION", "config_magistrados"),
		PresenceCollection:         getEnvOrDefault("MONGODB_PRESENCE_COLLECTION", "presenca_portaria"),
		TaskCollection:             getEnvOrDefault("MONGODB_TASK_COLLECTION", "tarefas"),

		AdminGroup: getEnvOrDefault("ADMIN_GROUP", "crm-admin"),

		ConfirmationTTL: confirmationTTL,
		SecureAreaTTL:   secureAreaTTL,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
