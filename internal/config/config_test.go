package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MAX_SALE_AMOUNT", "5000.5")
	t.Setenv("MAX_INSTALLMENTS", "18")
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5000.5, cfg.MaxSaleAmount)
	assert.Equal(t, 18, cfg.MaxInstallments)
	assert.Equal(t, "card-settlement-calculator", cfg.OTELServiceName)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_SALE_AMOUNT", "muito")
	t.Setenv("MAX_INSTALLMENTS", "doze")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1e9, cfg.MaxSaleAmount)
	assert.Equal(t, 120, cfg.MaxInstallments)
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" ERROR ": slog.LevelError,
		"trace":   slog.LevelInfo,
	}
	for in, want := range tests {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), "SlogLevel(%q)", in)
	}
}
