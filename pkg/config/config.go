package config

import (
	"os"
	"strconv"
	"time"
)

// Config represents the global configuration for the context engine
type Config struct {
	// Directory configuration
	Directory struct {
		// Backend selects the directory store implementation
		// ("memory", "postgres", "supabase")
		Backend string

		// PostgreSQL configuration
		Postgres struct {
			URL string
		}

		// Supabase configuration
		Supabase struct {
			URL    string
			APIKey string
		}
	}

	// Cache configuration for the process-wide directory read cache
	Cache struct {
		// Redis configuration
		Redis struct {
			Enabled  bool
			URL      string
			Password string
			DB       int
			TTL      time.Duration
		}
	}

	// Matching configuration
	Matching struct {
		// MinSimilarity is the minimum normalized similarity a fuzzy name
		// match must clear before it is accepted
		MinSimilarity float64
	}

	// Assembler configuration
	Assembler struct {
		// MaxPeople bounds the people section of an assembled context
		MaxPeople int

		// MaxDocuments bounds the documents section
		MaxDocuments int
	}

	// Multitenancy configuration
	Multitenancy struct {
		Enabled      bool
		DefaultOrgID string
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	config := &Config{}

	// Directory configuration
	config.Directory.Backend = getEnv("DIRECTORY_BACKEND", "memory")
	config.Directory.Postgres.URL = getEnv("POSTGRES_URL", "")
	config.Directory.Supabase.URL = getEnv("SUPABASE_URL", "")
	config.Directory.Supabase.APIKey = getEnv("SUPABASE_API_KEY", "")

	// Cache configuration
	config.Cache.Redis.Enabled = getEnvBool("DIRECTORY_CACHE_REDIS_ENABLED", false)
	config.Cache.Redis.URL = getEnv("REDIS_URL", "localhost:6379")
	config.Cache.Redis.Password = getEnv("REDIS_PASSWORD", "")
	config.Cache.Redis.DB = getEnvInt("REDIS_DB", 0)
	config.Cache.Redis.TTL = time.Duration(getEnvInt("DIRECTORY_CACHE_TTL_SECONDS", 300)) * time.Second

	// Matching configuration
	config.Matching.MinSimilarity = getEnvFloat("MATCHING_MIN_SIMILARITY", 0.72)

	// Assembler configuration
	config.Assembler.MaxPeople = getEnvInt("ASSEMBLER_MAX_PEOPLE", 25)
	config.Assembler.MaxDocuments = getEnvInt("ASSEMBLER_MAX_DOCUMENTS", 10)

	// Multitenancy configuration
	config.Multitenancy.Enabled = getEnvBool("MULTITENANCY_ENABLED", false)
	config.Multitenancy.DefaultOrgID = getEnv("DEFAULT_ORG_ID", "default")

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

// Global instance of the configuration
var globalConfig *Config

// Initialize the global configuration
func init() {
	globalConfig = LoadFromEnv()
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Reload reloads the configuration from environment variables
func Reload() *Config {
	globalConfig = LoadFromEnv()
	return globalConfig
}
