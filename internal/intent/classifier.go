// internal/intent/classifier.go
package intent

import "strings"

// DefaultWeatherKeywords trigger the weather capability. Substring match,
// not token match.
var DefaultWeatherKeywords = []string{
	"weather", "temperature", "temp", "rain", "hot", "cold",
	"climate", "forecast", "sunny", "cloudy", "warm", "cool",
	"degrees", "celsius", "fahrenheit",
}

// DefaultPlacesKeywords trigger the attractions capability.
var DefaultPlacesKeywords = []string{
	"places", "visit", "attractions", "see", "trip", "plan",
	"go", "tourist", "sights", "recommendations", "where",
	"what to do", "things to do", "explore", "tourism",
}

// Flags are the capabilities an utterance requests.
type Flags struct {
	WantsWeather bool
	WantsPlaces  bool
}

// Classifier determines capability flags from lower-cased keyword sets.
type Classifier struct {
	weatherKeywords []string
	placesKeywords  []string
}

func NewClassifier() *Classifier {
	return newClassifierWith(DefaultWeatherKeywords, DefaultPlacesKeywords)
}

func newClassifierWith(weatherKeywords, placesKeywords []string) *Classifier {
	return &Classifier{
		weatherKeywords: weatherKeywords,
		placesKeywords:  placesKeywords,
	}
}

// Classify is a pure function of the lower-cased text and whether a place
// was extracted. Both flags may be true; both are false only when no
// place is known.
func (c *Classifier) Classify(text string, placeKnown bool) Flags {
	lower := strings.ToLower(text)

	flags := Flags{
		WantsWeather: containsAny(lower, c.weatherKeywords),
		WantsPlaces:  containsAny(lower, c.placesKeywords),
	}

	// "plan my trip" always implies sightseeing.
	if strings.Contains(lower, "plan") && strings.Contains(lower, "trip") {
		flags.WantsPlaces = true
	}

	// A bare place name defaults to sightseeing interest.
	if !flags.WantsWeather && !flags.WantsPlaces && placeKnown {
		flags.WantsPlaces = true
	}

	return flags
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
