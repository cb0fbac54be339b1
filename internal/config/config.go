package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	SessionSecret   string
	GinMode         string
	PhonePrefix     string
	ShutdownTimeout string
}

func Load() *Config {
	// Load .env if present; ignore absence so containers can rely on
	// real environment variables only.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "3001"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "pitcher"),
		DBPassword:      getEnv("DB_PASSWORD", "pitcher"),
		DBName:          getEnv("DB_NAME", "pitcher"),
		SessionSecret:   getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		PhonePrefix:     getEnv("PHONE_PREFIX", "+62"),
		ShutdownTimeout: getEnv("SHUTDOWN_TIMEOUT", "15s"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
