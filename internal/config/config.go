package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort string
	ServerEnv  string
	LogLevel   string

	// Database
	DatabaseURL string

	// Upstream provider credentials
	GeocodeAPIKey    string
	WeatherAPIKey    string
	EventbriteAPIKey string
	MovieAPIKey      string
	YelpAPIKey       string
	TrailAPIKey      string

	// Upstream client behaviour
	UpstreamTimeout time.Duration
	UpstreamRPS     float64
	UpstreamBurst   int

	// OpenTelemetry
	OTLPEndpoint string
}

func Load() *Config {
	return &Config{
		// Server
		ServerPort: getEnv("PORT", "3000"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		// Database - DATABASE_URL wins, otherwise assembled from parts
		DatabaseURL: getDatabaseURL(),

		// Provider keys (names match the original deployment env)
		GeocodeAPIKey:    getEnv("GEOCODE_API_KEY", ""),
		WeatherAPIKey:    getEnv("WEATHER_API_KEY", ""),
		EventbriteAPIKey: getEnv("EVENTBRITE_API_KEY", ""),
		MovieAPIKey:      getEnv("MOVIE_API_KEY", ""),
		YelpAPIKey:       getEnv("YELP_API_KEY", ""),
		TrailAPIKey:      getEnv("TRAIL_API_KEY", ""),

		// Upstream calls must be bounded; none of the providers need more
		// than a handful of requests per second from a single node.
		UpstreamTimeout: time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 10)) * time.Second,
		UpstreamRPS:     getEnvAsFloat("UPSTREAM_RPS", 5),
		UpstreamBurst:   getEnvAsInt("UPSTREAM_BURST", 10),

		// OpenTelemetry
		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDatabaseURL returns DATABASE_URL or builds it from individual env vars
func getDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("POSTGRES_HOST", "localhost")
	port := getEnv("POSTGRES_PORT", "5432")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "")
	dbname := getEnv("POSTGRES_DB", "city_explorer")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, dbname, sslmode)
}
