// internal/agent/orchestrator.go
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "tourism-agent/internal/common/errors"
	"tourism-agent/internal/common/logger"
	"tourism-agent/internal/common/metrics"
	"tourism-agent/internal/common/observability"
	"tourism-agent/internal/intent"
	"tourism-agent/internal/models"
	"tourism-agent/internal/providers/geocoding"
)

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, place string) (*models.Location, error)
}

// WeatherService returns current conditions for a resolved location.
type WeatherService interface {
	Lookup(ctx context.Context, loc *models.Location) (*models.WeatherInfo, error)
}

// PlacesService returns up to limit attractions near a resolved location.
type PlacesService interface {
	Lookup(ctx context.Context, loc *models.Location, limit int) ([]models.Place, error)
}

type Config struct {
	MaxAttractions int
}

// Terminal outcomes of a query's state machine, used as metric labels.
const (
	outcomeUnresolved         = "unresolved"
	outcomePlaceNotFound      = "place_not_found"
	outcomeNoActionableIntent = "no_actionable_intent"
	outcomeCancelled          = "cancelled"
	outcomeDone               = "done"
)

// Agent orchestrates one query end to end: intent analysis, geocoding,
// then concurrent weather and attractions enrichment with per-capability
// failure isolation.
type Agent struct {
	config   *Config
	analyzer *intent.Analyzer
	geocoder Geocoder
	weather  WeatherService
	places   PlacesService
	obs      *observability.Observability
	logger   logger.Logger
}

// New builds an Agent. analyzer may be nil to use the built-in
// vocabulary; obs may be nil when query-level meters are not wanted.
func New(config *Config, analyzer *intent.Analyzer, geocoder Geocoder, weather WeatherService,
	places PlacesService, obs *observability.Observability, log logger.Logger) *Agent {
	if analyzer == nil {
		analyzer = intent.NewAnalyzer()
	}
	return &Agent{
		config:   config,
		analyzer: analyzer,
		geocoder: geocoder,
		weather:  weather,
		places:   places,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "agent"}),
	}
}

// Process answers one utterance. It is total over all text inputs: every
// failure class is folded into the returned reply, nothing escapes.
func (a *Agent) Process(ctx context.Context, text string) string {
	start := time.Now()
	log := a.logger.WithFields(map[string]interface{}{"queryId": uuid.NewString()})

	reply, outcome := a.process(ctx, log, text)

	metrics.QueriesTotal.WithLabelValues(outcome).Inc()
	if a.obs != nil {
		a.obs.RecordQueryProcessed(ctx, outcome)
		a.obs.RecordQueryDuration(ctx, time.Since(start), outcome)
	}

	log.Info("query processed", map[string]interface{}{
		"outcome":    outcome,
		"durationMs": time.Since(start).Milliseconds(),
	})

	return reply
}

func (a *Agent) process(ctx context.Context, log logger.Logger, text string) (string, string) {
	in := a.analyzer.Analyze(text)
	log.Debug("intent analyzed", map[string]interface{}{
		"place":        in.Place,
		"wantsWeather": in.WantsWeather,
		"wantsPlaces":  in.WantsPlaces,
	})

	if in.Place == "" {
		serr := apperrors.NewNoIntentDetectedError(text)
		log.Debug("no place extracted", map[string]interface{}{
			"code": string(serr.Code),
		})
		return msgNoPlace, outcomeUnresolved
	}

	loc, err := a.geocoder.Lookup(ctx, in.Place)
	if err != nil {
		if errors.Is(err, geocoding.ErrPlaceNotFound) {
			serr := apperrors.NewPlaceNotFoundError(in.Place)
			log.Debug("place not found", map[string]interface{}{
				"code":    string(serr.Code),
				"details": serr.Details,
			})
		} else {
			serr := apperrors.NewGeocodingFailedError(err)
			log.Warn("geocoding failed", map[string]interface{}{
				"place":     in.Place,
				"code":      string(serr.Code),
				"retryable": serr.Retryable,
				"error":     serr.Details,
			})
		}
		return fmt.Sprintf(msgPlaceNotFoundFmt, in.Place), outcomePlaceNotFound
	}

	if !in.WantsWeather && !in.WantsPlaces {
		return fmt.Sprintf(msgNoActionableIntentFmt, in.Place), outcomeNoActionableIntent
	}

	sections, ok := a.enrich(ctx, log, in, loc)
	if !ok {
		return msgCancelled, outcomeCancelled
	}

	return Render(sections), outcomeDone
}

// enrich dispatches the requested lookups concurrently. Each capability
// writes its own pre-determined slot, so completion order cannot change
// the assembled response. Returns ok=false when the query was cancelled;
// partial sections are discarded rather than rendered.
func (a *Agent) enrich(ctx context.Context, log logger.Logger, in intent.Intent, loc *models.Location) ([]string, bool) {
	var slots [2]string
	var wg sync.WaitGroup

	if in.WantsWeather {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[0] = a.weatherSection(ctx, log, in.Place, loc)
		}()
	}

	if in.WantsPlaces {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[1] = a.placesSection(ctx, log, in.Place, loc)
		}()
	}

	wg.Wait()

	if ctx.Err() != nil {
		return nil, false
	}

	sections := make([]string, 0, 2)
	for _, s := range slots {
		if s != "" {
			sections = append(sections, s)
		}
	}
	return sections, true
}

func (a *Agent) weatherSection(ctx context.Context, log logger.Logger, place string, loc *models.Location) string {
	info, err := a.weather.Lookup(ctx, loc)
	if err != nil {
		serr := apperrors.NewWeatherUnavailableError(err)
		log.Warn("weather lookup degraded", map[string]interface{}{
			"place":     place,
			"code":      string(serr.Code),
			"retryable": serr.Retryable,
			"error":     serr.Details,
		})
		return fmt.Sprintf(msgWeatherUnavailableFmt, place)
	}
	return fmt.Sprintf(msgWeatherFmt, place, info.TemperatureC, info.Description, info.RainChancePct)
}

func (a *Agent) placesSection(ctx context.Context, log logger.Logger, place string, loc *models.Location) string {
	attractions, err := a.places.Lookup(ctx, loc, a.config.MaxAttractions)
	if err != nil {
		serr := apperrors.NewPlacesUnavailableError(err)
		log.Warn("places lookup degraded", map[string]interface{}{
			"place":     place,
			"code":      string(serr.Code),
			"retryable": serr.Retryable,
			"error":     serr.Details,
		})
	}
	if len(attractions) == 0 {
		return fmt.Sprintf(msgPlacesUnavailableFmt, place)
	}

	var b strings.Builder
	fmt.Fprintf(&b, msgPlacesHeaderFmt, place)
	for i, p := range attractions {
		fmt.Fprintf(&b, "\n  %d. %s (%s)", i+1, p.Name, p.Category)
	}
	return b.String()
}

// Render joins the non-empty sections with a blank-line separator.
// Pure: rendering the same list twice yields identical text.
func Render(sections []string) string {
	nonEmpty := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}
