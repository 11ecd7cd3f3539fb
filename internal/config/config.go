package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	AdminToken string
	GinMode    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		AdminToken: getEnv("ADMIN_TOKEN", ""),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
