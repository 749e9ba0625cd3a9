package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DataBackend       string
	DatabaseURL       string
	SQLitePath        string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Ledger behaviour
	LedgerTimezone     string
	LedgerLocation     *time.Location
	ExcludedPartyNames []string
	DayLedgerOrder     domain.AccumulationOrder
	CurrencyCode       string

	FrontendBaseURL string
	RateLimit       string
	LoginRateLimit  string
	PosthogAPIKey   string

	// Seed admin, created on startup when missing
	AdminUsername string
	AdminPassword string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DATA_BACKEND", BackendPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_DB_PATH", "cashbook.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "cash-book-app")
	viper.SetDefault("LEDGER_TIMEZONE", "Local")
	viper.SetDefault("EXCLUDED_PARTY_NAMES", "Account")
	viper.SetDefault("DAY_LEDGER_ORDER", string(domain.OrderReceivedFirst))
	viper.SetDefault("CURRENCY_CODE", "PKR")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DataBackend:     strings.ToLower(strings.TrimSpace(viper.GetString("DATA_BACKEND"))),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		SQLitePath:      viper.GetString("SQLITE_DB_PATH"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		LedgerTimezone:  viper.GetString("LEDGER_TIMEZONE"),
		CurrencyCode:    strings.ToUpper(viper.GetString("CURRENCY_CODE")),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		LoginRateLimit:  viper.GetString("LOGIN_RATE_LIMIT"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		AdminUsername:   viper.GetString("ADMIN_USERNAME"),
		AdminPassword:   viper.GetString("ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "24h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	loc, err := time.LoadLocation(cfg.LedgerTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", cfg.LedgerTimezone, err)
	}
	cfg.LedgerLocation = loc

	cfg.ExcludedPartyNames = splitList(viper.GetString("EXCLUDED_PARTY_NAMES"))

	order, err := domain.ParseAccumulationOrder(viper.GetString("DAY_LEDGER_ORDER"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAY_LEDGER_ORDER: %w", err)
	}
	cfg.DayLedgerOrder = order

	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics events will not be sent.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects inconsistent combinations of settings.
func (c *Config) Validate() error {
	switch c.DataBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when DATA_BACKEND is %q", BackendPostgres)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_DB_PATH is required when DATA_BACKEND is %q", BackendSQLite)
		}
	default:
		return fmt.Errorf("unknown DATA_BACKEND %q (want %q or %q)", c.DataBackend, BackendPostgres, BackendSQLite)
	}

	if money.GetCurrency(c.CurrencyCode) == nil {
		return fmt.Errorf("unknown CURRENCY_CODE %q", c.CurrencyCode)
	}

	if c.IsProduction {
		if c.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.AdminPassword != "" && len(c.AdminPassword) < 8 {
			return fmt.Errorf("ADMIN_PASSWORD must be at least 8 characters in production")
		}
	}
	return nil
}

// Location returns the ledger location, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c == nil || c.LedgerLocation == nil {
		return time.Local
	}
	return c.LedgerLocation
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
