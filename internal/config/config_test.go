package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"MODE", "PORT", "LOG_LEVEL", "LOG_OUTPUT", "REGISTRATION_FEE", "CURRENCY", "SLOT_INTERVAL_MINUTES", "LOOKAHEAD_DATES"} {
		unsetEnv(t, key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeConsole, cfg.Mode)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.OutputPath)
	assert.Equal(t, 500.0, cfg.Clinic.RegistrationFee)
	assert.Equal(t, "LKR", cfg.Clinic.Currency)
	assert.Equal(t, 15, cfg.Clinic.SlotIntervalMinutes)
	assert.Equal(t, 5, cfg.Clinic.LookaheadDates)
	assert.Equal(t, "LKR 500.00", cfg.Clinic.FeeLabel())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MODE", "HTTP")
	t.Setenv("PORT", "9090")
	t.Setenv("REGISTRATION_FEE", "750.5")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("SLOT_INTERVAL_MINUTES", "30")
	t.Setenv("LOOKAHEAD_DATES", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ModeHTTP, cfg.Mode)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "USD 750.50", cfg.Clinic.FeeLabel())
	assert.Equal(t, 30, cfg.Clinic.SlotIntervalMinutes)
	assert.Equal(t, 3, cfg.Clinic.LookaheadDates)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric fee", "REGISTRATION_FEE", "free"},
		{"negative fee", "REGISTRATION_FEE", "-1"},
		{"non numeric interval", "SLOT_INTERVAL_MINUTES", "quarter"},
		{"zero interval", "SLOT_INTERVAL_MINUTES", "0"},
		{"zero lookahead", "LOOKAHEAD_DATES", "0"},
		{"unknown mode", "MODE", "grpc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}
