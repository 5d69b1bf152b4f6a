package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	LogLevel           string
	DBConn             string
	RedisAddr          string
	CatalogCacheTTL    time.Duration
	JWTSecret          string
	AdminEmail         string
	AdminPasswordHash  string
	RateFeedURL        string
	RateRefreshSpec    string
	DefaultRatePercent float64
	TaxPolicyPath      string
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SenderEmail        string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		DBConn:            getEnv("DB_CONN", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@assadmotors.in"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		RateFeedURL:       getEnv("RATE_FEED_URL", ""),
		RateRefreshSpec:   getEnv("RATE_REFRESH_SPEC", "@every 6h"),
		TaxPolicyPath:     getEnv("TAX_POLICY_PATH", ""),
		SMTPHost:          getEnv("SMTP_HOST", "localhost"),
		SMTPPort:          getEnv("SMTP_PORT", "25"),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SenderEmail:       getEnv("SENDER_EMAIL", "quotes@assadmotors.in"),
	}

	ttl, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}
	cfg.CatalogCacheTTL = ttl

	rate, err := strconv.ParseFloat(getEnv("DEFAULT_RATE_PERCENT", "9.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_RATE_PERCENT: %w", err)
	}
	if rate < 0 {
		return nil, fmt.Errorf("DEFAULT_RATE_PERCENT must not be negative")
	}
	cfg.DefaultRatePercent = rate

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RateRefreshSpec == "" {
		return nil, fmt.Errorf("RATE_REFRESH_SPEC is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
