// internal/intent/classifier_test.go
package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		placeKnown bool
		want       Flags
	}{
		{
			name:       "weather keyword only",
			text:       "what's the temperature in Tokyo",
			placeKnown: true,
			want:       Flags{WantsWeather: true, WantsPlaces: false},
		},
		{
			name:       "places keyword only",
			text:       "best attractions in Rome",
			placeKnown: true,
			want:       Flags{WantsWeather: false, WantsPlaces: true},
		},
		{
			name:       "both capabilities requested",
			text:       "weather in Paris and things to do there",
			placeKnown: true,
			want:       Flags{WantsWeather: true, WantsPlaces: true},
		},
		{
			name:       "matching is case-insensitive",
			text:       "WEATHER in Oslo",
			placeKnown: true,
			want:       Flags{WantsWeather: true, WantsPlaces: false},
		},
		{
			name:       "substring match inside a longer word",
			text:       "is it temperate in Lima",
			placeKnown: true,
			want:       Flags{WantsWeather: true, WantsPlaces: false},
		},
		{
			name:       "bare place defaults to sightseeing",
			text:       "Berlin",
			placeKnown: true,
			want:       Flags{WantsWeather: false, WantsPlaces: true},
		},
		{
			name:       "no keywords and no place leaves both unset",
			text:       "hmm not sure yet",
			placeKnown: false,
			want:       Flags{},
		},
		{
			name:       "empty text with no place",
			text:       "",
			placeKnown: false,
			want:       Flags{},
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text, tt.placeKnown))
		})
	}
}

func TestClassifier_PlanTripOverride(t *testing.T) {
	c := NewClassifier()

	// "plan" and "trip" in one utterance force the sightseeing flag even
	// when the words are far apart.
	flags := c.Classify("plan my winter trip", true)
	assert.True(t, flags.WantsPlaces)

	flags = c.Classify("help me plan something for this trip please", false)
	assert.True(t, flags.WantsPlaces)

	// One of the pair alone still triggers sightseeing through the
	// keyword list, not the override.
	flags = c.Classify("plan my weekend", true)
	assert.True(t, flags.WantsPlaces)
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer()

	t.Run("place with both capabilities", func(t *testing.T) {
		intent := a.Analyze("I want to visit London, what's the weather and what can I see?")
		assert.Equal(t, "London", intent.Place)
		assert.True(t, intent.WantsWeather)
		assert.True(t, intent.WantsPlaces)
	})

	t.Run("bare place gets the sightseeing default", func(t *testing.T) {
		intent := a.Analyze("Berlin")
		assert.Equal(t, "Berlin", intent.Place)
		assert.False(t, intent.WantsWeather)
		assert.True(t, intent.WantsPlaces)
	})

	t.Run("no place means no flags", func(t *testing.T) {
		intent := a.Analyze("nothing concrete yet")
		assert.Empty(t, intent.Place)
		assert.False(t, intent.WantsWeather)
		assert.False(t, intent.WantsPlaces)
	})

	t.Run("plan my trip example", func(t *testing.T) {
		intent := a.Analyze("I'm going to Paris, let's plan my trip")
		assert.Equal(t, "Paris", intent.Place)
		assert.False(t, intent.WantsWeather)
		assert.True(t, intent.WantsPlaces)
	})
}
