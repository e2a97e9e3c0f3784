// internal/providers/places/client.go
package places

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"tourism-agent/internal/common/httpclient"
	"tourism-agent/internal/common/logger"
	"tourism-agent/internal/common/metrics"
	"tourism-agent/internal/models"
)

const providerName = "places"

var (
	// ErrPlacesUnavailable covers transport and provider-side failures.
	// An empty result set is NOT an error.
	ErrPlacesUnavailable = errors.New("PLACES_UNAVAILABLE")
)

const (
	tourismCategories  = "attraction|museum|artwork|viewpoint|gallery"
	historicCategories = "monument|castle|memorial|ruins|archaeological_site"
)

type Client struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(config.Timeout),
		logger: log.WithFields(map[string]interface{}{"provider": providerName}),
	}
}

// Lookup returns up to limit named attractions within the configured
// radius of loc, deduplicated by exact name, in provider order.
func (c *Client) Lookup(ctx context.Context, loc *models.Location, limit int) ([]models.Place, error) {
	start := time.Now()
	found, err := c.fetch(ctx, loc, limit)
	metrics.LookupDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrPlacesUnavailable, err)
	}
	metrics.LookupsTotal.WithLabelValues(providerName, "ok").Inc()
	return found, nil
}

func (c *Client) fetch(ctx context.Context, loc *models.Location, limit int) ([]models.Place, error) {
	query := c.buildQuery(loc, limit)

	form := url.Values{}
	form.Set("data", query)

	var apiResponse struct {
		Elements []element `json:"elements"`
	}
	if err := c.client.PostFormJSON(ctx, c.config.BaseURL, form, &apiResponse); err != nil {
		return nil, err
	}

	found := c.processElements(apiResponse.Elements, limit)

	c.logger.Info("attractions fetched", map[string]interface{}{
		"place":       loc.QueryName,
		"resultCount": len(found),
	})

	return found, nil
}

type element struct {
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// buildQuery composes the Overpass QL request: tourism and historic
// nodes/ways around the location. Over-fetch by 3x because unnamed and
// duplicate elements are dropped afterwards.
func (c *Client) buildQuery(loc *models.Location, limit int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", c.config.RadiusMeters, loc.Latitude, loc.Longitude)
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["tourism"~"%[1]s"]%[3]s;
  way["tourism"~"%[1]s"]%[3]s;
  node["historic"~"%[2]s"]%[3]s;
  way["historic"~"%[2]s"]%[3]s;
);
out center %[4]d;`, tourismCategories, historicCategories, around, limit*3)
}

func (c *Client) processElements(elements []element, limit int) []models.Place {
	seen := make(map[string]bool)
	found := []models.Place{}

	for _, el := range elements {
		// Nodes carry coordinates directly; ways carry a computed center.
		var lat, lon float64
		switch {
		case el.Lat != nil && el.Lon != nil:
			lat, lon = *el.Lat, *el.Lon
		case el.Center != nil:
			lat, lon = el.Center.Lat, el.Center.Lon
		default:
			continue
		}

		name := el.Tags["name"]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		category := el.Tags["tourism"]
		if category == "" {
			category = el.Tags["historic"]
		}
		if category == "" {
			category = "attraction"
		}

		found = append(found, models.Place{
			Name:      name,
			Category:  titleCase(strings.ReplaceAll(category, "_", " ")),
			Latitude:  lat,
			Longitude: lon,
		})

		if len(found) >= limit {
			break
		}
	}

	return found
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
