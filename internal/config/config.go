package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Run modes
const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

// Config holds all configuration for the appointment desk
type Config struct {
	Mode        string
	Port        string
	Origin      string
	Environment string
	Log         LogConfig
	Clinic      ClinicConfig
}

// LogConfig holds logger settings
type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// ClinicConfig holds the booking rules of the clinic
type ClinicConfig struct {
	RegistrationFee     float64
	Currency            string
	SlotIntervalMinutes int
	LookaheadDates      int
}

// FeeLabel renders the registration fee with its currency, e.g. "LKR 500.00".
func (c ClinicConfig) FeeLabel() string {
	return fmt.Sprintf("%s %.2f", c.Currency, c.RegistrationFee)
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	fee, err := strconv.ParseFloat(getEnv("REGISTRATION_FEE", "500.00"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid REGISTRATION_FEE: %w", err)
	}

	interval, err := strconv.Atoi(getEnv("SLOT_INTERVAL_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid SLOT_INTERVAL_MINUTES: %w", err)
	}

	lookahead, err := strconv.Atoi(getEnv("LOOKAHEAD_DATES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKAHEAD_DATES: %w", err)
	}

	cfg := &Config{
		Mode:        strings.ToLower(strings.TrimSpace(getEnv("MODE", ModeConsole))),
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:4200"),
		Environment: getEnv("APP_ENV", "development"),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "console"),
			OutputPath: getEnv("LOG_OUTPUT", "stderr"),
		},
		Clinic: ClinicConfig{
			RegistrationFee:     fee,
			Currency:            getEnv("CURRENCY", "LKR"),
			SlotIntervalMinutes: interval,
			LookaheadDates:      lookahead,
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Mode != ModeConsole && cfg.Mode != ModeHTTP {
		errs = append(errs, fmt.Sprintf("MODE must be %q or %q, got %q", ModeConsole, ModeHTTP, cfg.Mode))
	}
	if cfg.Clinic.RegistrationFee < 0 {
		errs = append(errs, "REGISTRATION_FEE cannot be negative")
	}
	if cfg.Clinic.SlotIntervalMinutes <= 0 {
		errs = append(errs, "SLOT_INTERVAL_MINUTES must be positive")
	}
	if cfg.Clinic.LookaheadDates <= 0 {
		errs = append(errs, "LOOKAHEAD_DATES must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
