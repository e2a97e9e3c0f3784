// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "tourism-agent", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)

	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.Providers.Geocoding.BaseURL)
	assert.Equal(t, "TourismApp/1.0", cfg.Providers.Geocoding.UserAgent)
	assert.Equal(t, 10000, cfg.Providers.Geocoding.Timeout)
	assert.Zero(t, cfg.Providers.Geocoding.CacheTTL, "caching is off unless configured")

	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.Providers.Weather.BaseURL)
	assert.Equal(t, 10000, cfg.Providers.Weather.Timeout)

	assert.Equal(t, "https://overpass-api.de/api/interpreter", cfg.Providers.Places.BaseURL)
	assert.Equal(t, 30000, cfg.Providers.Places.Timeout)
	assert.Equal(t, 15000, cfg.Providers.Places.RadiusMeters)

	assert.Equal(t, 5, cfg.Agent.MaxAttractions)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	content := `
app:
  name: tourism-agent-test
  environment: test
providers:
  geocoding:
    timeout: 2000
    cache_ttl: 600
  places:
    radius_meters: 5000
agent:
  max_attractions: 3
cache:
  enabled: true
  address: localhost:6379
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)

	// Explicit values win.
	assert.Equal(t, "tourism-agent-test", cfg.App.Name)
	assert.Equal(t, 2000, cfg.Providers.Geocoding.Timeout)
	assert.Equal(t, 600, cfg.Providers.Geocoding.CacheTTL)
	assert.Equal(t, 5000, cfg.Providers.Places.RadiusMeters)
	assert.Equal(t, 3, cfg.Agent.MaxAttractions)
	assert.True(t, cfg.Cache.Enabled)

	// Untouched fields keep their defaults.
	assert.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.Providers.Geocoding.BaseURL)
	assert.Equal(t, 30000, cfg.Providers.Places.Timeout)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	cfg, err := LoadFromFile("/nonexistent/config.yaml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "negative max_attractions",
			content: `
agent:
  max_attractions: -1
`,
			wantErr: "max_attractions",
		},
		{
			name: "cache enabled without address",
			content: `
cache:
  enabled: true
`,
			wantErr: "cache.address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			assert.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := LoadFromFile(path)
			assert.Nil(t, cfg)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, GetDuration(10000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
	assert.Equal(t, 500*time.Millisecond, GetDuration(500))
}
