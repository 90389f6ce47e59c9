package common

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	NameService NameServiceConfig
	Batch       BatchConfig
	URLCheck    URLCheckConfig
}

// NameServiceConfig holds configuration for the external name-normalization service.
type NameServiceConfig struct {
	Model          string
	BaseURL        string
	APIKeys        []string
	MaxCallsPerKey int
	ChunkSize      int
	Timeout        time.Duration
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	OutputIndent string
}

// URLCheckConfig holds URL liveness checker configuration
type URLCheckConfig struct {
	Workers int
	Timeout time.Duration
}

// MaxAPIKeys is the number of credential slots read from the environment.
const MaxAPIKeys = 5

// LoadConfig loads configuration from environment variables. API keys come
// from NAME_API_KEY_1..NAME_API_KEY_5; the deployment's secret store is
// expected to inject them, a local .env works the same way.
func LoadConfig() *Config {
	return &Config{
		NameService: NameServiceConfig{
			Model:          getEnv("NAME_API_MODEL", "gemini-2.5-flash-lite"),
			BaseURL:        getEnv("NAME_API_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKeys:        loadAPIKeys(),
			MaxCallsPerKey: getEnvAsInt("NAME_API_MAX_CALLS_PER_KEY", 15),
			ChunkSize:      getEnvAsInt("NAME_API_CHUNK_SIZE", 30),
			Timeout:        getEnvAsDuration("NAME_API_TIMEOUT", 45*time.Second),
		},
		Batch: BatchConfig{
			OutputIndent: getEnv("OUTPUT_INDENT", "    "),
		},
		URLCheck: URLCheckConfig{
			Workers: getEnvAsInt("URLCHECK_WORKERS", 20),
			Timeout: getEnvAsDuration("URLCHECK_TIMEOUT", 5*time.Second),
		},
	}
}

func loadAPIKeys() []string {
	var keys []string
	for i := 1; i <= MaxAPIKeys; i++ {
		if key := os.Getenv(fmt.Sprintf("NAME_API_KEY_%d", i)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. A missing credential pool is
// not an error; it puts name resolution into identity mode.
func (c *Config) Validate() error {
	if c.NameService.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "NAME_API_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	if c.NameService.MaxCallsPerKey <= 0 {
		return NewAppError("CONFIG_ERROR", "NAME_API_MAX_CALLS_PER_KEY must be positive", ErrInvalidInput)
	}
	if c.URLCheck.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "URLCHECK_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}
