// Package language holds the registry of transcription languages and the
// per-language feature capabilities the service can advise on.
package language

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// Language is one supported transcription language.
type Language struct {
	Code      string `yaml:"code" json:"code"`
	Name      string `yaml:"name" json:"name"`
	Sentiment bool   `yaml:"sentiment" json:"sentiment"`
}

var (
	registry []Language
	byCode   map[string]Language
)

func init() {
	var doc struct {
		Languages []Language `yaml:"languages"`
	}
	if err := yaml.Unmarshal(languagesYAML, &doc); err != nil {
		panic(fmt.Sprintf("language: bad embedded registry: %v", err))
	}
	registry = doc.Languages
	byCode = make(map[string]Language, len(registry))
	for _, l := range registry {
		byCode[l.Code] = l
	}
}

// All returns the supported languages in registry order. The returned
// slice is a copy; callers may modify it freely.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the language for a code, reporting whether it is known.
func Lookup(code string) (Language, bool) {
	l, ok := byCode[code]
	return l, ok
}

// SupportsSentiment reports whether sentiment analysis is available for
// the given language code. Unknown codes do not support sentiment.
func SupportsSentiment(code string) bool {
	l, ok := byCode[code]
	return ok && l.Sentiment
}

// CheckSentimentCompatibility returns a user-facing warning when sentiment
// analysis is requested for a language that does not support it, and an
// empty string otherwise. It is a pure function of its arguments; no
// ambient state is consulted.
func CheckSentimentCompatibility(code string, sentimentRequested bool) string {
	if !sentimentRequested {
		return ""
	}
	l, ok := byCode[code]
	if !ok || l.Sentiment {
		return ""
	}
	return fmt.Sprintf("Sentiment analysis is not supported for %s. Please select an English variant or disable sentiment analysis.", l.Name)
}
