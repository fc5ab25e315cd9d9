package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Version is the service version reported by /health.
const Version = "0.1.0"

// Config holds all runtime configuration, resolved once at process start.
type Config struct {
	Port string

	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSSLMode                string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxIdleMinutes     int
	DBConnMaxLifetimeMinutes int

	// CORSAllowOrigins is the allow-list of origins permitted to call
	// cross-origin. Empty means same-origin only.
	CORSAllowOrigins []string

	// MonitoringKey guards the operator snapshot endpoint. Empty disables it.
	MonitoringKey string
}

// Load reads configuration from the environment, consulting .env if present.
func Load() *Config {
	_ = godotenv.Load() // ok if missing in prod

	return &Config{
		Port: getEnvOrDefault("PORT", "8080"),

		DBHost:                   getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:                   getEnvOrDefault("DB_PORT", "5432"),
		DBUser:                   getEnvOrDefault("DB_USER", "postgres"),
		DBPassword:               getEnvOrDefault("DB_PASSWORD", "password"),
		DBName:                   getEnvOrDefault("DB_NAME", "productpulse"),
		DBSSLMode:                getEnvOrDefault("DB_SSLMODE", "disable"),
		DBMaxOpenConns:           getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:           getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxIdleMinutes:     getIntEnvOrDefault("DB_CONN_MAX_IDLE_MINUTES", 5),
		DBConnMaxLifetimeMinutes: getIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30),

		CORSAllowOrigins: splitOrigins(os.Getenv("CORS_ALLOW_ORIGINS")),

		MonitoringKey: strings.TrimSpace(os.Getenv("MONITORING_API_KEY")),
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	return value
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
