package config

import (
	"os"
	"strconv"
)

// Config holds application configuration. Engine tunables are surfaced here
// with their documented defaults so deployments can adjust thresholds
// without a rebuild.
type Config struct {
	Port   string
	DBPath string

	// Noise filter
	MinDistanceM      float64
	AngleThresholdDeg float64

	// Backtrack remover
	BacktrackThresholdM float64

	// Rate limiting (requests per minute per IP)
	RateLimit int
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", ":8080"),
		DBPath:              getEnv("DB_PATH", "./data/routes.db"),
		MinDistanceM:        getEnvFloat("MIN_DISTANCE_M", 15),
		AngleThresholdDeg:   getEnvFloat("ANGLE_THRESHOLD_DEG", 160),
		BacktrackThresholdM: getEnvFloat("BACKTRACK_THRESHOLD_M", 50),
		RateLimit:           getEnvInt("RATE_LIMIT", 120),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
