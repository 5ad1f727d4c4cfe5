package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Data       DataConfig
	Simulation SimulationConfig
	EarthData  EarthDataConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// DataConfig holds the inclusive year window served by the API.
type DataConfig struct {
	YearMin int
	YearMax int
}

// SimulationConfig holds simulation engine tuning.
type SimulationConfig struct {
	SimulateDelay bool
	DelayMS       int
}

// EarthDataConfig holds NASA Earthdata CMR client configuration.
// APIKey is optional; the CMR search endpoints accept anonymous requests.
type EarthDataConfig struct {
	APIKey     string
	CMRBaseURL string
	Timeout    time.Duration
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	Origins []string
}

// Load reads configuration from environment variables.
// It uses viper to read values and provides sensible defaults for development.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults for development
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_YEAR_MIN", 2000)
	v.SetDefault("DATA_YEAR_MAX", 2025)
	v.SetDefault("SIMULATE_API_DELAY", false)
	v.SetDefault("API_DELAY_MS", 500)
	v.SetDefault("NASA_CMR_BASE_URL", "https://cmr.earthdata.nasa.gov")
	v.SetDefault("EARTHDATA_TIMEOUT", "30s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")

	// Bind environment variables
	v.AutomaticEnv()

	// Build configuration
	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("ENV"),
		},
		Data: DataConfig{
			YearMin: v.GetInt("DATA_YEAR_MIN"),
			YearMax: v.GetInt("DATA_YEAR_MAX"),
		},
		Simulation: SimulationConfig{
			SimulateDelay: v.GetBool("SIMULATE_API_DELAY"),
			DelayMS:       v.GetInt("API_DELAY_MS"),
		},
		EarthData: EarthDataConfig{
			APIKey:     v.GetString("NASA_API_KEY"),
			CMRBaseURL: v.GetString("NASA_CMR_BASE_URL"),
			Timeout:    v.GetDuration("EARTHDATA_TIMEOUT"),
		},
		CORS: CORSConfig{
			Origins: parseOrigins(v.GetString("CORS_ORIGINS")),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	// Validate data window
	if c.Data.YearMin < 1 {
		return fmt.Errorf("DATA_YEAR_MIN must be positive")
	}
	if c.Data.YearMin > c.Data.YearMax {
		return fmt.Errorf("DATA_YEAR_MIN must be less than or equal to DATA_YEAR_MAX")
	}

	// Validate simulation config
	if c.Simulation.DelayMS < 0 {
		return fmt.Errorf("API_DELAY_MS must be non-negative")
	}

	// Validate Earthdata config
	if c.EarthData.CMRBaseURL == "" {
		return fmt.Errorf("NASA_CMR_BASE_URL is required")
	}
	if c.EarthData.Timeout <= 0 {
		return fmt.Errorf("EARTHDATA_TIMEOUT must be positive")
	}

	// Validate CORS config
	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("CORS_ORIGINS is required")
	}

	return nil
}

// parseOrigins splits a comma-separated string of origins into a slice.
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
