package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/atm_simulator/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Mode selects the presentation layer started by cmd/atm.
type Mode string

const (
	ModeConsole Mode = "console"
	ModeServe   Mode = "serve"
)

const (
	defaultPort            = "8080"
	defaultMode            = ModeConsole
	defaultInitialBalance  = "1000.00"
	defaultCurrencyCode    = "USD"
	defaultCurrencySymbol  = "$"
	defaultRateLimit       = "60-M"
	defaultCORSOrigins     = "*"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	Mode               Mode
	InitialBalance     decimal.Decimal
	CurrencyCode       string
	CurrencySymbol     string
	RateLimit          string // ulule/limiter formatted rate, e.g. "60-M"
	CORSAllowedOrigins []string
	LogLevel           slog.Level
	LogFile            string // optional; console mode logs nowhere else on a TTY
	ShutdownTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ATM_MODE", string(defaultMode))
	v.SetDefault("ATM_INITIAL_BALANCE", defaultInitialBalance)
	v.SetDefault("ATM_CURRENCY_CODE", defaultCurrencyCode)
	v.SetDefault("ATM_CURRENCY_SYMBOL", defaultCurrencySymbol)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	mode := Mode(strings.ToLower(strings.TrimSpace(v.GetString("ATM_MODE"))))
	switch mode {
	case ModeConsole, ModeServe:
		cfg.Mode = mode
	default:
		cfg.Mode = defaultMode
		log.Printf("Warning: Invalid value for ATM_MODE ('%s'). Defaulting to %s.\n", mode, defaultMode)
	}

	// The opening balance is validated by the ledger; here it only has to be a number.
	initialBalanceStr := v.GetString("ATM_INITIAL_BALANCE")
	initialBalance, err := decimal.NewFromString(strings.TrimSpace(initialBalanceStr))
	if err != nil {
		initialBalance = decimal.RequireFromString(defaultInitialBalance)
		log.Printf("Warning: Invalid value for ATM_INITIAL_BALANCE ('%s'). Defaulting to %s.\n", initialBalanceStr, defaultInitialBalance)
	}
	cfg.InitialBalance = initialBalance

	cfg.CurrencyCode = v.GetString("ATM_CURRENCY_CODE")
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = defaultCurrencyCode
	}
	// An empty symbol is allowed and renders bare amounts.
	cfg.CurrencySymbol = v.GetString("ATM_CURRENCY_SYMBOL")

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSOrigins}
	}

	logLevelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, defaultLogLevel)
	}

	cfg.LogFile = strings.TrimSpace(v.GetString("LOG_FILE"))

	shutdownTimeoutStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownTimeoutStr)
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownTimeoutStr, shutdownTimeout.String())
	}
	cfg.ShutdownTimeout = shutdownTimeout

	return cfg
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Currency returns the display currency configured for the ATM.
func (c *Config) Currency() domain.Currency {
	return domain.Currency{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.CurrencySymbol,
		Precision:    domain.MoneyPrecision,
	}
}
