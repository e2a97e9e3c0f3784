// pkg/vocabulary/schema.go
package vocabulary

// Vocabulary is the externalized word-list pack driving intent analysis.
// Any empty list falls back to the built-in default, so a pack may
// override a single list without restating the rest.
type Vocabulary struct {
	Version         string   `json:"version"`
	LeadInPhrases   []string `json:"leadInPhrases"`
	Delimiters      []string `json:"delimiters"`
	SkipWords       []string `json:"skipWords"`
	WeatherKeywords []string `json:"weatherKeywords"`
	PlacesKeywords  []string `json:"placesKeywords"`
}
