// Package config loads runtime settings. Defaults are overridden by
// environment variables, which the command line flags override in turn.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/philipparndt/goshape/internal/logging"
	"github.com/philipparndt/goshape/pkg/units"
)

// Config holds the settings shared by all commands
type Config struct {
	Unit      string
	DBPath    string
	Addr      string
	LogLevel  string
	LogFormat string

	// Session overrides for the stored calibration. Zero means unset.
	PixelsPerCentimeter float64
	PixelsPerInch       float64
}

// Load reads the configuration from the environment
func Load() *Config {
	return &Config{
		Unit:                getEnv("GOSHAPE_UNIT", string(units.Centimeter)),
		DBPath:              getEnv("GOSHAPE_DB", defaultDBPath()),
		Addr:                getEnv("GOSHAPE_ADDR", ":8080"),
		LogLevel:            getEnv("GOSHAPE_LOG_LEVEL", "info"),
		LogFormat:           getEnv("GOSHAPE_LOG_FORMAT", "text"),
		PixelsPerCentimeter: getEnvAsFloat("GOSHAPE_PX_PER_CM", 0),
		PixelsPerInch:       getEnvAsFloat("GOSHAPE_PX_PER_IN", 0),
	}
}

// Validate checks the values that can be given as free text
func (c *Config) Validate() error {
	if _, err := units.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("invalid unit: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.PixelsPerCentimeter < 0 || c.PixelsPerInch < 0 {
		return fmt.Errorf("pixels per unit must not be negative")
	}
	return nil
}

// DisplayUnit returns the configured unit, or centimeters if it is invalid
func (c *Config) DisplayUnit() units.Unit {
	u, err := units.ParseUnit(c.Unit)
	if err != nil {
		return units.Centimeter
	}
	return u
}

// Overlay applies the session overrides on top of cal
func (c *Config) Overlay(cal units.Calibration) units.Calibration {
	if c.PixelsPerCentimeter > 0 {
		cal = cal.With(units.Centimeter, c.PixelsPerCentimeter)
	}
	if c.PixelsPerInch > 0 {
		cal = cal.With(units.Inch, c.PixelsPerInch)
	}
	return cal
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".goshape", "calibration.db")
	}
	return filepath.Join(dir, "goshape", "calibration.db")
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}
