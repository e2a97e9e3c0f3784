// internal/intent/models.go
package intent

import "tourism-agent/pkg/vocabulary"

// Intent is the structured result of analyzing one utterance. It is
// produced once per query and never mutated afterwards. An empty Place
// means extraction failed.
type Intent struct {
	Place        string `json:"place"`
	WantsWeather bool   `json:"wantsWeather"`
	WantsPlaces  bool   `json:"wantsPlaces"`
}

// Analyzer composes the extractor and the classifier.
type Analyzer struct {
	extractor  *Extractor
	classifier *Classifier
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		extractor:  NewExtractor(),
		classifier: NewClassifier(),
	}
}

// NewAnalyzerFrom builds an Analyzer from an external vocabulary pack.
// Lists the pack leaves empty keep their built-in defaults.
func NewAnalyzerFrom(v *vocabulary.Vocabulary) *Analyzer {
	if v == nil {
		return NewAnalyzer()
	}
	return &Analyzer{
		extractor: newExtractorWith(
			orDefault(v.LeadInPhrases, DefaultLeadInPhrases),
			orDefault(v.Delimiters, DefaultDelimiters),
			orDefault(v.SkipWords, DefaultSkipWords),
		),
		classifier: newClassifierWith(
			orDefault(v.WeatherKeywords, DefaultWeatherKeywords),
			orDefault(v.PlacesKeywords, DefaultPlacesKeywords),
		),
	}
}

func orDefault(list, fallback []string) []string {
	if len(list) == 0 {
		return fallback
	}
	return list
}

// Analyze turns raw text into an Intent. Deterministic: the same text
// always yields the same record.
func (a *Analyzer) Analyze(text string) Intent {
	place := a.extractor.Extract(text)
	flags := a.classifier.Classify(text, place != "")
	return Intent{
		Place:        place,
		WantsWeather: flags.WantsWeather,
		WantsPlaces:  flags.WantsPlaces,
	}
}
