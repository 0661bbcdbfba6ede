package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries the presentation-layer toggles. The tracking core never
// reads the environment; everything here is handed down as plain arguments.
type Config struct {
	// SampleData preloads the store with the generated sample entries.
	SampleData bool
	// RecentLimit caps the recent-activity feed.
	RecentLimit int
	// TrendDays is the trailing window of the trend chart.
	TrendDays int
}

// Load reads configuration from the environment, after loading a .env file
// when one exists. Every variable is optional and falls back to a default.
func Load(log *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system env")
	}
	return &Config{
		SampleData:  getBool("FOODTRACKER_SAMPLE_DATA", false, log),
		RecentLimit: getInt("FOODTRACKER_RECENT_LIMIT", 10, log),
		TrendDays:   getInt("FOODTRACKER_TREND_DAYS", 7, log),
	}
}

func getBool(key string, fallback bool, log *zap.Logger) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		log.Warn("invalid boolean environment variable, using default",
			zap.String("key", key), zap.String("value", val), zap.Bool("default", fallback))
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int, log *zap.Logger) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		log.Warn("invalid integer environment variable, using default",
			zap.String("key", key), zap.String("value", val), zap.Int("default", fallback))
		return fallback
	}
	return parsed
}
