// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Enable ENV override like PROVIDERS_GEOCODING_BASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Default applies defaults to an empty Config. Useful for tests.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "tourism-agent"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	// Provider defaults. Timeouts follow the upstream services: the
	// Overpass query is much heavier than the other two.
	if cfg.Providers.Geocoding.BaseURL == "" {
		cfg.Providers.Geocoding.BaseURL = "https://nominatim.openstreetmap.org/search"
	}
	if cfg.Providers.Geocoding.UserAgent == "" {
		cfg.Providers.Geocoding.UserAgent = "TourismApp/1.0"
	}
	if cfg.Providers.Geocoding.Timeout == 0 {
		cfg.Providers.Geocoding.Timeout = 10000
	}
	if cfg.Providers.Weather.BaseURL == "" {
		cfg.Providers.Weather.BaseURL = "https://api.open-meteo.com/v1/forecast"
	}
	if cfg.Providers.Weather.Timeout == 0 {
		cfg.Providers.Weather.Timeout = 10000
	}
	if cfg.Providers.Places.BaseURL == "" {
		cfg.Providers.Places.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Providers.Places.Timeout == 0 {
		cfg.Providers.Places.Timeout = 30000
	}
	if cfg.Providers.Places.RadiusMeters == 0 {
		cfg.Providers.Places.RadiusMeters = 15000
	}

	if cfg.Agent.MaxAttractions == 0 {
		cfg.Agent.MaxAttractions = 5
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}

	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9100"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Providers.Geocoding.BaseURL == "" {
		return fmt.Errorf("providers.geocoding.base_url is required")
	}
	if cfg.Providers.Weather.BaseURL == "" {
		return fmt.Errorf("providers.weather.base_url is required")
	}
	if cfg.Providers.Places.BaseURL == "" {
		return fmt.Errorf("providers.places.base_url is required")
	}
	if cfg.Agent.MaxAttractions < 1 {
		return fmt.Errorf("agent.max_attractions must be positive")
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache is enabled")
	}
	return nil
}
