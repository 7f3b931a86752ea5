package config

import (
	"os"
	"strconv"
)

// DefaultHistoryScanLimit bounds how many rows each history source is willing
// to scan per request. It is a latency bound, not a completeness guarantee:
// assets with more than this many audit rows get a recency-biased timeline.
const DefaultHistoryScanLimit = 1000

type Config struct {
	DatabaseURL      string
	AppHost          string
	HistoryScanLimit uint
}

func Load() Config {
	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AppHost:          os.Getenv("APP_HOST"),
		HistoryScanLimit: DefaultHistoryScanLimit,
	}

	if raw := os.Getenv("HISTORY_SCAN_LIMIT"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 32); err == nil && limit > 0 {
			cfg.HistoryScanLimit = uint(limit)
		}
	}

	return cfg
}
