package config

import (
	"os"
	"time"
)

// Config carries every runtime setting. It is built once in main and passed
// to the components that need it instead of being read from globals.
type Config struct {
	Port       string
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	JWTExpiry  time.Duration
	CodePrefix string
	Debug      bool
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:       getenv("PORT", "8000"),
		MongoURI:   getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getenv("MONGO_DB", "repairtracker"),
		JWTSecret:  getenv("JWT_SECRET", "default-secret-key-change-in-production"),
		JWTExpiry:  getDuration("JWT_EXPIRY", 24*time.Hour),
		CodePrefix: getenv("CODE_PREFIX", "RT-"),
		Debug:      os.Getenv("DEBUG") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}
