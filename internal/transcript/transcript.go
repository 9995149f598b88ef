// Package transcript normalizes raw transcription results into a single
// canonical transcript view.
package transcript

// Entity is a named entity carried over from the result document.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	StartWord  int     `json:"startWord"`
	EndWord    int     `json:"endWord"`
}

// Intent is a detected intent carried over from the result document.
type Intent struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Sentiment is a sentiment annotation carried over from the result
// document.
type Sentiment struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Text       string  `json:"text"`
	StartWord  int     `json:"startWord"`
	EndWord    int     `json:"endWord"`
}

// Transcript is the normalized view of one result document. It is rebuilt
// wholesale for every document; fields from two documents are never mixed.
// A field the document does not carry stays at its zero value.
type Transcript struct {
	Transcript       string      `json:"transcript"`
	Summary          string      `json:"summary,omitempty"`
	Topics           []string    `json:"topics,omitempty"`
	DetectedLanguage string      `json:"detectedLanguage,omitempty"`
	Entities         []Entity    `json:"entities,omitempty"`
	Intents          []Intent    `json:"intents,omitempty"`
	Sentiments       []Sentiment `json:"sentiments,omitempty"`
	DiarizedTurns    []string    `json:"diarizedTurns,omitempty"`
}
