package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	MongoURI    string
	Environment string
	LogLevel    string
}

// mongoURIKeys is the ordered list of environment variables consulted for
// the connection string; the first one present wins.
var mongoURIKeys = []string{"MONGO_URI", "MONGO_URL", "MONGODB_URI", "MONGODB_URL"}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		MongoURI:    firstEnv(mongoURIKeys),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("mongo connection string missing: set MONGO_URI (recommended) or MONGODB_URL")
	}

	return cfg, nil
}

func firstEnv(keys []string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
