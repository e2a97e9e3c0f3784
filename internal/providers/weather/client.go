// internal/providers/weather/client.go
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"tourism-agent/internal/common/httpclient"
	"tourism-agent/internal/common/logger"
	"tourism-agent/internal/common/metrics"
	"tourism-agent/internal/models"
)

const providerName = "weather"

var (
	// ErrWeatherUnavailable covers every transport and provider-side
	// failure, timeouts included. The caller degrades its section, it
	// never needs to distinguish further.
	ErrWeatherUnavailable = errors.New("WEATHER_UNAVAILABLE")
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

// Lookup returns the current weather at a location: temperature, today's
// maximum precipitation probability and the mapped condition description.
func (c *Client) Lookup(ctx context.Context, loc *models.Location) (*models.WeatherInfo, error) {
	start := time.Now()
	info, err := c.fetch(ctx, loc)
	metrics.LookupDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(providerName, "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	metrics.LookupsTotal.WithLabelValues(providerName, "ok").Inc()
	return info, nil
}

func (c *Client) fetch(ctx context.Context, loc *models.Location) (*models.WeatherInfo, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	params.Set("current", "temperature_2m,weather_code")
	params.Set("daily", "precipitation_probability_max")
	params.Set("timezone", "auto")

	var apiResponse struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
		Daily struct {
			PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		} `json:"daily"`
	}
	if err := c.client.GetJSON(ctx, c.config.BaseURL+"?"+params.Encode(), nil, &apiResponse); err != nil {
		return nil, err
	}

	// Today's figure is the first entry of the daily series.
	rainChance := 0.0
	if len(apiResponse.Daily.PrecipitationProbabilityMax) > 0 {
		rainChance = apiResponse.Daily.PrecipitationProbabilityMax[0]
	}

	info := &models.WeatherInfo{
		TemperatureC:  apiResponse.Current.Temperature,
		RainChancePct: rainChance,
		WeatherCode:   apiResponse.Current.WeatherCode,
		Description:   Describe(apiResponse.Current.WeatherCode),
	}

	c.logger.Info("weather fetched", map[string]interface{}{
		"place":       loc.QueryName,
		"temperature": info.TemperatureC,
		"weatherCode": info.WeatherCode,
	})

	return info, nil
}
