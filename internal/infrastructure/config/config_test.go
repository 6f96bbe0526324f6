package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "finware", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "USD", cfg.Finance.DefaultCurrency)
	assert.Equal(t, []string{"20", "25", "30", "33.33", "35"}, cfg.Finance.PresetDecliningBalanceRates)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FINWARE_LOG_LEVEL", "debug")
	t.Setenv("FINWARE_APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App: AppConfig{Name: "finware", Env: "development"},
			Log: LogConfig{Level: "info", Format: "json", Output: "stdout"},
			Finance: FinanceConfig{
				DefaultCurrency:             "USD",
				PresetDecliningBalanceRates: []string{"20"},
			},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := valid()
		cfg.Log.Format = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing currency", func(t *testing.T) {
		cfg := valid()
		cfg.Finance.DefaultCurrency = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty rate menu", func(t *testing.T) {
		cfg := valid()
		cfg.Finance.PresetDecliningBalanceRates = nil
		assert.Error(t, cfg.Validate())
	})
}
