// Package models defines the raw transcription result document and the
// event payloads published by the service.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is a prerecorded transcription result as returned by the speech
// provider. Every field is optional: providers populate only what the
// requested features produce, so a missing field decodes to its zero value
// and is never treated as an error.
type Result struct {
	Channels   []Channel   `json:"channels,omitempty"`
	Utterances []Utterance `json:"utterances,omitempty"`
}

// Channel is one audio channel of the result. Only the first channel is
// ever consumed downstream.
type Channel struct {
	Alternatives     []Alternative `json:"alternatives,omitempty"`
	DetectedLanguage string        `json:"detected_language,omitempty"`
}

// Alternative is one transcription hypothesis for a channel. Only the first
// alternative is ever consumed downstream.
type Alternative struct {
	Transcript string       `json:"transcript,omitempty"`
	Summaries  []Summary    `json:"summaries,omitempty"`
	Topics     []TopicGroup `json:"topics,omitempty"`
	Entities   []Entity     `json:"entities,omitempty"`
	Intents    []Intent     `json:"intents,omitempty"`
	Sentiments []Sentiment  `json:"sentiments,omitempty"`
	Words      []Word       `json:"words,omitempty"`
}

// Summary is a generated summary of the transcript.
type Summary struct {
	Summary string `json:"summary,omitempty"`
}

// TopicGroup is one detected topic segment; each segment carries its own
// nested topic list.
type TopicGroup struct {
	Topics []Topic `json:"topics,omitempty"`
}

// Topic is a single detected topic.
type Topic struct {
	Topic string `json:"topic,omitempty"`
}

// Entity is a detected named entity. Label values are an open vocabulary,
// not a closed enumeration.
type Entity struct {
	Text       string  `json:"text,omitempty"`
	Label      string  `json:"label,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	StartWord  int     `json:"start_word,omitempty"`
	EndWord    int     `json:"end_word,omitempty"`
}

// Intent is a detected intent with its confidence.
type Intent struct {
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Sentiment is a sentiment annotation over a word span. Sentiment values
// are an open vocabulary, not a closed enumeration.
type Sentiment struct {
	Sentiment  string  `json:"sentiment,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Text       string  `json:"text,omitempty"`
	StartWord  int     `json:"start_word,omitempty"`
	EndWord    int     `json:"end_word,omitempty"`
}

// Word is a single recognized word with its timing in seconds.
type Word struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Utterance is one speaker-attributed span of the transcript, ordered by
// time within Result.Utterances.
type Utterance struct {
	Speaker    int    `json:"speaker"`
	Transcript string `json:"transcript"`
}

// FirstChannel returns the first channel, reporting whether one exists.
func (r *Result) FirstChannel() (*Channel, bool) {
	if r == nil || len(r.Channels) == 0 {
		return nil, false
	}
	return &r.Channels[0], true
}

// FirstAlternative returns the first alternative of the first channel,
// reporting whether one exists. Absence anywhere along the chain is not an
// error.
func (r *Result) FirstAlternative() (*Alternative, bool) {
	ch, ok := r.FirstChannel()
	if !ok || len(ch.Alternatives) == 0 {
		return nil, false
	}
	return &ch.Alternatives[0], true
}

// Words returns the word-level timings of the first alternative, or nil
// when none are present.
func (r *Result) Words() []Word {
	alt, ok := r.FirstAlternative()
	if !ok {
		return nil
	}
	return alt.Words
}

// Document pairs the decoded result with the raw bytes it was decoded
// from. The raw bytes are kept so the JSON export can reproduce the full
// provider payload, including fields the typed view does not model.
type Document struct {
	Raw    []byte
	Result Result
}

// ParseDocument decodes a raw provider payload. Unknown fields are
// ignored; only malformed JSON is an error.
func ParseDocument(data []byte) (*Document, error) {
	var res Result
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("parse result document: %w", err)
	}
	return &Document{Raw: data, Result: res}, nil
}
