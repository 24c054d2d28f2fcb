package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Server     ServerConfig
	Chat       ChatConfig
	JamAI      JamAIConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, preferred when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// ChatConfig holds chat pipeline configuration
type ChatConfig struct {
	FetchLimit   int // rows fetched from the property store per query
	DisplayLimit int // property summaries rendered into the reply
}

// JamAIConfig holds configuration for the JamAI Base table service
type JamAIConfig struct {
	BaseURL          string
	APIKey           string
	ProjectID        string
	ChatTableID      string
	KnowledgeTableID string
	RecommendTableID string
	Timeout          int  // seconds, bounds the enrichment call
	UseAIReply       bool // when false the templated reply is always authoritative
	Enabled          bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "rental_chat"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Chat: ChatConfig{
			FetchLimit:   getEnvAsInt("CHAT_FETCH_LIMIT", 5),
			DisplayLimit: getEnvAsInt("CHAT_DISPLAY_LIMIT", 3),
		},
		JamAI: JamAIConfig{
			BaseURL:          getEnv("JAMAI_BASE_URL", "https://api.jamaibase.com"),
			APIKey:           getEnv("JAMAI_API_KEY", ""),
			ProjectID:        getEnv("JAMAI_PROJECT_ID", ""),
			ChatTableID:      getEnv("JAMAI_CHAT_TABLE_ID", "property_assistant"),
			KnowledgeTableID: getEnv("JAMAI_KNOWLEDGE_TABLE_ID", "properties_knowledge"),
			RecommendTableID: getEnv("JAMAI_RECOMMEND_TABLE_ID", "property_recommendations"),
			Timeout:          getEnvAsInt("JAMAI_TIMEOUT", 10),
			UseAIReply:       getEnvAsBool("JAMAI_USE_AI_REPLY", false),
			Enabled:          getEnv("JAMAI_API_KEY", "") != "" && getEnv("JAMAI_PROJECT_ID", "") != "",
		},
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}
