// internal/intent/extractor.go
package intent

import (
	"strings"
	"unicode"
)

// DefaultLeadInPhrases is the ordered list of lead-in phrases. Order is a
// contract: the first phrase found in the text wins even when a later one
// also matches elsewhere.
var DefaultLeadInPhrases = []string{
	"going to ",
	"go to ",
	"visit ",
	"in ",
	"to ",
	"travel to ",
	"trip to ",
	"headed to ",
	"flying to ",
}

// DefaultDelimiters stop place extraction. Checked in order against the
// current remainder, each match truncating it further.
var DefaultDelimiters = []string{
	",", "?", ".", "!", " and ", " what ", " let", " how", " when", " where",
}

// DefaultSkipWords are capitalized tokens that never name a place.
var DefaultSkipWords = []string{
	"I", "I'm", "What", "Where", "How", "When",
	"Can", "Could", "Should", "Would", "The",
}

const trailingPunctuation = ",.?!'\""

// Extractor pulls a candidate place name out of free text. The phrase,
// delimiter and skip lists are explicit data so precedence stays auditable.
type Extractor struct {
	phrases    []string
	delimiters []string
	skipWords  map[string]bool
}

func NewExtractor() *Extractor {
	return newExtractorWith(DefaultLeadInPhrases, DefaultDelimiters, DefaultSkipWords)
}

func newExtractorWith(phrases, delimiters, skipWords []string) *Extractor {
	skip := make(map[string]bool, len(skipWords))
	for _, w := range skipWords {
		skip[w] = true
	}
	return &Extractor{
		phrases:    phrases,
		delimiters: delimiters,
		skipWords:  skip,
	}
}

// Extract returns the place named in text, or "" when none is found.
// Matching is case-insensitive; the extracted text keeps its original case.
// An empty result is a normal outcome, not an error.
func (e *Extractor) Extract(text string) string {
	lower := strings.ToLower(text)
	padded := " " + lower + " "

	for _, phrase := range e.phrases {
		search := " " + phrase
		if !strings.Contains(padded, search) {
			continue
		}

		// Index against the unpadded text. When the phrase sits at the
		// very start it is only found via the pad, Index returns -1 and
		// -1+len(search) lands exactly past the unpadded phrase.
		idx := strings.Index(lower, search) + len(search)
		if idx >= len(text) {
			continue
		}

		rest := e.truncateAtDelimiters(text[idx:])
		if place := strings.TrimSpace(rest); place != "" {
			return place
		}
	}

	return e.capitalizedFallback(text)
}

func (e *Extractor) truncateAtDelimiters(s string) string {
	for _, d := range e.delimiters {
		if i := strings.Index(strings.ToLower(s), d); i >= 0 {
			s = s[:i]
		}
	}
	return s
}

// capitalizedFallback joins the capitalized tokens that survive the skip
// list. Multi-word non-place phrases can slip through here; that
// imprecision is part of the documented contract.
func (e *Extractor) capitalizedFallback(text string) string {
	var kept []string
	for _, word := range strings.Fields(text) {
		clean := strings.Trim(word, trailingPunctuation)
		if clean == "" || e.skipWords[clean] {
			continue
		}
		if unicode.IsUpper([]rune(clean)[0]) {
			kept = append(kept, clean)
		}
	}
	return strings.Join(kept, " ")
}
