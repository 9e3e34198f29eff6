package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Conversion rate cache
	RateCacheTTL time.Duration
	RateFallback decimal.Decimal

	// Rate limiting, in ulule/limiter formatted form ("5-M", "100-H").
	LoginRateLimit string
	AdminRateLimit string
	// RedisURL switches the limiter store from memory to redis when set.
	RedisURL string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "zcred-app")
	v.SetDefault("RATE_CACHE_TTL", "5m")
	v.SetDefault("RATE_FALLBACK", "1")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("ADMIN_RATE_LIMIT", "20-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		AdminRateLimit: v.GetString("ADMIN_RATE_LIMIT"),
		RedisURL:       v.GetString("REDIS_URL"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	var err error
	if cfg.JWTExpiryDuration, err = parsePositiveDuration(v.GetString("JWT_EXPIRY_DURATION")); err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION: %w", err)
	}
	if cfg.RateCacheTTL, err = parsePositiveDuration(v.GetString("RATE_CACHE_TTL")); err != nil {
		return nil, fmt.Errorf("invalid RATE_CACHE_TTL: %w", err)
	}

	cfg.RateFallback, err = decimal.NewFromString(v.GetString("RATE_FALLBACK"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_FALLBACK: %w", err)
	}
	if !cfg.RateFallback.IsPositive() {
		return nil, errors.New("invalid RATE_FALLBACK: must be greater than zero")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", s)
	}
	return d, nil
}
