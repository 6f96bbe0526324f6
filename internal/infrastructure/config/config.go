package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Log     LogConfig
	Finance FinanceConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// FinanceConfig holds finance defaults
type FinanceConfig struct {
	// DefaultCurrency is applied when a request does not name one
	DefaultCurrency string
	// PresetDecliningBalanceRates is the fixed rate menu (percentages)
	// offered by calling layers
	PresetDecliningBalanceRates []string
}

// Load reads configuration from config.toml (if present) and
// environment variables prefixed with FINWARE
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("FINWARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Finance: FinanceConfig{
			DefaultCurrency:             v.GetString("finance.default_currency"),
			PresetDecliningBalanceRates: v.GetStringSlice("finance.preset_declining_balance_rates"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "finware")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("finance.default_currency", "USD")
	v.SetDefault("finance.preset_declining_balance_rates", []string{"20", "25", "30", "33.33", "35"})
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	if c.Finance.DefaultCurrency == "" {
		return fmt.Errorf("finance default currency must not be empty")
	}
	if len(c.Finance.PresetDecliningBalanceRates) == 0 {
		return fmt.Errorf("finance preset declining balance rates must not be empty")
	}
	return nil
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
