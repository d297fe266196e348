package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config carries process-wide settings. The CRM credential and location id
// are deliberately absent: the CRM adapter resolves those from the
// environment at call time so a rotation needs no restart.
type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	CRMBase     string
	Workers     int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CRMBase:     env("CRM_BASE_URL", "https://services.leadconnectorhq.com"),
		Workers:     atoi("PREBUILD_WORKERS", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 3600)) * time.Second,
	}
	if os.Getenv("CRM_API_KEY") == "" {
		log.Warn().Msg("CRM_API_KEY is empty; lead submissions will be logged and dropped")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
