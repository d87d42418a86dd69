package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNoCatalogFeed is returned alongside a usable config when no feed URL is
// set; inventory devices still populate the catalog.
var ErrNoCatalogFeed = errors.New("CATALOG_FEED_URL not set")

type SubmitMode string

const (
	SubmitBackend SubmitMode = "backend"
	SubmitEmail   SubmitMode = "email"
)

type Config struct {
	Env           string
	ListenAddr    string
	DatabaseURL   string
	NatsURL       string
	RedisURL      string
	NotifyWorkers int

	LogLevel string
	LogFile  string

	AdminToken string
	// AdminJWTSecret enables HS256 bearer tokens with role=admin alongside
	// the static token.
	AdminJWTSecret string
	StoreEmail     string
	SubmitMode     SubmitMode

	CatalogFeedURL      string
	CatalogRefresh      time.Duration
	RatesURL            string
	FallbackRate        decimal.Decimal
	PublicRatePerSecond float64
	PublicRateBurst     int
	SessionTTL          time.Duration
}

type fileConfig struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
		AdminToken string `yaml:"admin_token"`
	} `yaml:"server"`
	Store struct {
		Email      string `yaml:"email"`
		SubmitMode string `yaml:"submit_mode"`
	} `yaml:"store"`
	Catalog struct {
		FeedURL        string `yaml:"feed_url"`
		RefreshMinutes int    `yaml:"refresh_minutes"`
	} `yaml:"catalog"`
	Rates struct {
		URL      string  `yaml:"url"`
		Fallback float64 `yaml:"fallback"`
	} `yaml:"rates"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present), then CONFIG_FILE (if set), then the
// environment. Later sources win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:                 "development",
		ListenAddr:          ":8080",
		NotifyWorkers:       2,
		LogLevel:            "info",
		StoreEmail:          "trade@tradeup.example",
		SubmitMode:          SubmitBackend,
		CatalogRefresh:      15 * time.Minute,
		RatesURL:            "https://open.er-api.com/v6/latest/USD",
		FallbackRate:        decimal.NewFromInt(158),
		PublicRatePerSecond: 5,
		PublicRateBurst:     20,
		SessionTTL:          24 * time.Hour,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.NatsURL = getenv("NATS_URL", cfg.NatsURL)
	cfg.RedisURL = getenv("REDIS_URL", cfg.RedisURL)
	cfg.NotifyWorkers = getenvInt("NOTIFY_WORKERS", cfg.NotifyWorkers)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getenv("LOG_FILE", cfg.LogFile)
	cfg.AdminToken = getenv("ADMIN_TOKEN", cfg.AdminToken)
	cfg.AdminJWTSecret = getenv("ADMIN_JWT_SECRET", cfg.AdminJWTSecret)
	cfg.StoreEmail = getenv("STORE_EMAIL", cfg.StoreEmail)
	cfg.SubmitMode = SubmitMode(strings.ToLower(getenv("SUBMIT_MODE", string(cfg.SubmitMode))))
	cfg.CatalogFeedURL = getenv("CATALOG_FEED_URL", cfg.CatalogFeedURL)
	cfg.CatalogRefresh = time.Duration(getenvInt("CATALOG_REFRESH_MINUTES", int(cfg.CatalogRefresh.Minutes()))) * time.Minute
	cfg.RatesURL = getenv("RATES_URL", cfg.RatesURL)
	if v := os.Getenv("FALLBACK_RATE"); v != "" {
		if r, err := decimal.NewFromString(v); err == nil && r.IsPositive() {
			cfg.FallbackRate = r
		}
	}
	cfg.PublicRatePerSecond = getenvFloat("PUBLIC_RATE_PER_SECOND", cfg.PublicRatePerSecond)
	cfg.PublicRateBurst = getenvInt("PUBLIC_RATE_BURST", cfg.PublicRateBurst)
	cfg.SessionTTL = time.Duration(getenvInt("SESSION_TTL_HOURS", int(cfg.SessionTTL.Hours()))) * time.Hour

	if cfg.SubmitMode != SubmitBackend && cfg.SubmitMode != SubmitEmail {
		return cfg, fmt.Errorf("SUBMIT_MODE must be %q or %q, got %q", SubmitBackend, SubmitEmail, cfg.SubmitMode)
	}
	if cfg.CatalogFeedURL == "" {
		return cfg, ErrNoCatalogFeed
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var f fileConfig
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if f.Server.ListenAddr != "" {
		cfg.ListenAddr = f.Server.ListenAddr
	}
	if f.Server.AdminToken != "" {
		cfg.AdminToken = f.Server.AdminToken
	}
	if f.Store.Email != "" {
		cfg.StoreEmail = f.Store.Email
	}
	if f.Store.SubmitMode != "" {
		cfg.SubmitMode = SubmitMode(strings.ToLower(f.Store.SubmitMode))
	}
	if f.Catalog.FeedURL != "" {
		cfg.CatalogFeedURL = f.Catalog.FeedURL
	}
	if f.Catalog.RefreshMinutes > 0 {
		cfg.CatalogRefresh = time.Duration(f.Catalog.RefreshMinutes) * time.Minute
	}
	if f.Rates.URL != "" {
		cfg.RatesURL = f.Rates.URL
	}
	if f.Rates.Fallback > 0 {
		cfg.FallbackRate = decimal.NewFromFloat(f.Rates.Fallback)
	}
	return nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		var out float64
		_, err := fmt.Sscanf(v, "%g", &out)
		if err == nil {
			return out
		}
	}
	return def
}
