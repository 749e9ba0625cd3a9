package config

import (
	"testing"
	"time"

	"github.com/SscSPs/cash_book_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_SQLiteDefaults(t *testing.T) {
	t.Setenv("DATA_BACKEND", "SQLite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/cashbook-test.db")
	t.Setenv("LEDGER_TIMEZONE", "UTC")
	t.Setenv("EXCLUDED_PARTY_NAMES", " Account , Cash In Hand ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, "/tmp/cashbook-test.db", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, []string{"Account", "Cash In Hand"}, cfg.ExcludedPartyNames)
	assert.Equal(t, domain.OrderReceivedFirst, cfg.DayLedgerOrder)
	assert.Equal(t, "PKR", cfg.CurrencyCode)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATA_BACKEND", "postgres")
	t.Setenv("PGSQL_URL", "postgres://localhost/cashbook")
	t.Setenv("LEDGER_TIMEZONE", "UTC")
	t.Setenv("DAY_LEDGER_ORDER", "chronological")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")
	t.Setenv("CURRENCY_CODE", "usd")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, domain.OrderChronological, cfg.DayLedgerOrder)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "USD", cfg.CurrencyCode)
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Run("bad order", func(t *testing.T) {
		t.Setenv("DATA_BACKEND", "sqlite")
		t.Setenv("LEDGER_TIMEZONE", "UTC")
		t.Setenv("DAY_LEDGER_ORDER", "sideways")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DAY_LEDGER_ORDER")
	})
	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("DATA_BACKEND", "sqlite")
		t.Setenv("LEDGER_TIMEZONE", "Mars/Olympus_Mons")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LEDGER_TIMEZONE")
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DataBackend:  BackendPostgres,
			DatabaseURL:  "postgres://localhost/cashbook",
			CurrencyCode: "PKR",
			JWTSecret:    defaultJWTSecret,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "postgres without url", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: "PGSQL_URL"},
		{name: "sqlite without path", mutate: func(c *Config) { c.DataBackend = BackendSQLite }, wantErr: "SQLITE_DB_PATH"},
		{name: "unknown backend", mutate: func(c *Config) { c.DataBackend = "mongo" }, wantErr: "DATA_BACKEND"},
		{name: "unknown currency", mutate: func(c *Config) { c.CurrencyCode = "XXY" }, wantErr: "CURRENCY_CODE"},
		{name: "production default secret", mutate: func(c *Config) { c.IsProduction = true }, wantErr: "JWT_SECRET"},
		{name: "production short admin password", mutate: func(c *Config) {
			c.IsProduction = true
			c.JWTSecret = "something-long-and-random"
			c.AdminPassword = "short"
		}, wantErr: "ADMIN_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLocationFallsBackToLocal(t *testing.T) {
	var cfg *Config
	assert.Equal(t, time.Local, cfg.Location())
	assert.Equal(t, time.Local, (&Config{}).Location())
}
