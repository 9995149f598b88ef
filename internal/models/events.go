package models

// Event type identifiers for published events.
const (
	EventTranscriptExtracted = "transcript.extracted"
	EventTranscriptExported  = "transcript.exported"
)

// TranscriptExtracted is published after a result document has been
// normalized into a transcript.
type TranscriptExtracted struct {
	EventType        string `json:"eventType"`
	RequestID        string `json:"requestId"`
	Timestamp        int64  `json:"timestamp"`
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
	WordCount        int    `json:"wordCount"`
	TurnCount        int    `json:"turnCount"`
	TopicCount       int    `json:"topicCount"`
}

// TranscriptExported is published after an export artifact has been
// produced and handed to the caller.
type TranscriptExported struct {
	EventType string `json:"eventType"`
	RequestID string `json:"requestId"`
	Timestamp int64  `json:"timestamp"`
	Format    string `json:"format"`
	Filename  string `json:"filename"`
	SizeBytes int    `json:"sizeBytes"`
}
