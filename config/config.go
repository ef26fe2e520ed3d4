package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"festivos/constants"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration read from the environment
type Config struct {
	Env          string
	Port         string
	LogLevel     string
	CacheBackend string
	CacheTTL     time.Duration
	WarmCron     string
	RulesFile    string
	DBSSLMode    string
	DBTimeZone   string
	Redis        RedisConfig
}

type RedisConfig struct {
	Addr     string
	User     string
	Password string
	DB       int
}

// LoadEnv loads .env if present; process variables always win
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load builds a Config from the environment
func Load() Config {
	cfg := Config{
		Env:          getEnvDefault("ENV", "local"),
		Port:         getEnvDefault("PORT", "8083"),
		LogLevel:     getEnvDefault("LOG_LEVEL", "info"),
		CacheBackend: getEnvDefault("CACHE_BACKEND", "memory"),
		CacheTTL:     constants.DefaultCacheTTL,
		WarmCron:     getEnvDefault("WARM_CRON", constants.DefaultWarmCron),
		RulesFile:    os.Getenv("RULES_FILE"),
		DBSSLMode:    getEnvDefault("DB_SSLMODE", "require"),
		DBTimeZone:   getEnvDefault("DB_TIMEZONE", "America/Bogota"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			User:     os.Getenv("REDIS_USER"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil && parsed > 0 {
			cfg.CacheTTL = parsed
		} else {
			log.Printf("Warning: invalid CACHE_TTL %q, using %s", ttl, cfg.CacheTTL)
		}
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if parsed, err := strconv.Atoi(db); err == nil {
			cfg.Redis.DB = parsed
		}
	}
	return cfg
}
