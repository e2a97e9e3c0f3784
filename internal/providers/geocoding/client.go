// internal/providers/geocoding/client.go
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tourism-agent/internal/common/cache"
	"tourism-agent/internal/common/httpclient"
	"tourism-agent/internal/common/logger"
	"tourism-agent/internal/common/metrics"
	"tourism-agent/internal/models"
)

const providerName = "geocoding"

var (
	// ErrPlaceNotFound means the provider answered but had no match.
	ErrPlaceNotFound = errors.New("PLACE_NOT_FOUND")
)

// Cache is the subset of the redis wrapper the client needs. A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Client struct {
	config *Config
	client *httpclient.Client
	cache  Cache
	logger logger.Logger
}

func NewClient(config *Config, cache Cache, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"provider": providerName}),
	}
}

// Lookup resolves a free-text place name to coordinates and a canonical
// display name. Returns ErrPlaceNotFound when the provider has no match.
func (c *Client) Lookup(ctx context.Context, place string) (*models.Location, error) {
	start := time.Now()

	key := cacheKey(place)
	if c.cache != nil && c.config.CacheTTL > 0 {
		raw, err := c.cache.Get(ctx, key)
		switch {
		case err == nil:
			var loc models.Location
			if json.Unmarshal([]byte(raw), &loc) == nil {
				c.logger.Debug("cache hit", map[string]interface{}{"place": place})
				metrics.LookupsTotal.WithLabelValues(providerName, "cache_hit").Inc()
				return &loc, nil
			}
		case !cache.IsMiss(err):
			// A miss is the normal cold path; anything else is a cache
			// fault worth surfacing before falling through to the network.
			c.logger.Warn("cache read failed", map[string]interface{}{
				"place": place,
				"error": err.Error(),
			})
		}
	}

	loc, err := c.fetch(ctx, place)
	metrics.LookupDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		status := "error"
		if errors.Is(err, ErrPlaceNotFound) {
			status = "not_found"
		}
		metrics.LookupsTotal.WithLabelValues(providerName, status).Inc()
		return nil, err
	}
	metrics.LookupsTotal.WithLabelValues(providerName, "ok").Inc()

	if c.cache != nil && c.config.CacheTTL > 0 {
		if data, err := json.Marshal(loc); err == nil {
			// Cache failures only cost us the next network round trip.
			if err := c.cache.Set(ctx, key, data, c.config.CacheTTL); err != nil {
				c.logger.Warn("cache write failed", map[string]interface{}{
					"place": place,
					"error": err.Error(),
				})
			}
		}
	}

	return loc, nil
}

func (c *Client) fetch(ctx context.Context, place string) (*models.Location, error) {
	params := url.Values{}
	params.Set("q", place)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	headers := map[string]string{"User-Agent": c.config.UserAgent}
	if err := c.client.GetJSON(ctx, c.config.BaseURL+"?"+params.Encode(), headers, &results); err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlaceNotFound, place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	loc := &models.Location{
		QueryName:   place,
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}
	if !loc.Valid() {
		return nil, fmt.Errorf("geocoding returned out-of-range coordinates (%f, %f)", lat, lon)
	}

	c.logger.Info("place resolved", map[string]interface{}{
		"place":       place,
		"displayName": loc.DisplayName,
	})

	return loc, nil
}

func cacheKey(place string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(place))
}
