// Package detector guesses the dominant natural language of a token stream.
package detector

import (
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"
)

// SampleTokens caps how many leading word tokens are handed to the language model.
const SampleTokens = 2000

// Languages is the candidate set. Keeping it small keeps model loading cheap.
var Languages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Czech,
}

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(Languages...).
			Build(),
	}
}

// DetectLanguage returns the lowercase language name (e.g. "english"), or ""
// when the sample is empty or no language is reliable.
func (d *Detector) DetectLanguage(tokens []string) string {
	sample := make([]string, 0, min(len(tokens), SampleTokens))
	for _, token := range tokens {
		if len(sample) == SampleTokens {
			break
		}
		if strings.IndexFunc(token, unicode.IsLetter) >= 0 {
			sample = append(sample, token)
		}
	}
	if len(sample) == 0 {
		return ""
	}
	text := strings.Join(sample, " ")

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.String())
}
