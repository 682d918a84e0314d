package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// ConfigDefault returns the value for key, or fallback when the key is unset.
func ConfigDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}

// MustConfig returns the value for key and fails fast when it is absent, so
// a missing required setting stops startup instead of surfacing on first use.
func MustConfig(key string) string {
	value := Config(key)
	if value == "" {
		log.Fatalf("🔥 Required configuration %s is not set", key)
	}
	return value
}
