package events

import (
	"context"
	"testing"

	"github.com/Fezzo753/transcript-export-service/internal/models"
)

func TestNew_DisabledMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"disabled", &Config{Enabled: false, Brokers: []string{"localhost:9092"}}},
		{"no brokers", &Config{Enabled: true, Brokers: []string{}}},
		{"nil brokers", &Config{Enabled: true, Brokers: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.cfg)
			if p == nil {
				t.Fatal("expected non-nil publisher")
			}
			if p.enabled {
				t.Error("expected publisher to be disabled")
			}
			if p.writerExtracted != nil {
				t.Error("expected nil extracted writer when disabled")
			}
			if p.writerExported != nil {
				t.Error("expected nil exported writer when disabled")
			}
		})
	}
}

func TestNew_ConfigValues(t *testing.T) {
	cfg := &Config{
		Enabled:        false,
		Brokers:        []string{"localhost:9092"},
		TopicExtracted: "test.extracted",
		TopicExported:  "test.exported",
		Principal:      "test-principal",
	}

	p := New(cfg)

	if p.principal != "test-principal" {
		t.Errorf("expected principal 'test-principal', got %s", p.principal)
	}
	if p.topicExtracted != "test.extracted" {
		t.Errorf("expected topic extracted 'test.extracted', got %s", p.topicExtracted)
	}
	if p.topicExported != "test.exported" {
		t.Errorf("expected topic exported 'test.exported', got %s", p.topicExported)
	}
}

func TestPublisher_PublishExtracted_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})

	ev := models.TranscriptExtracted{
		EventType: models.EventTranscriptExtracted,
		RequestID: "req-1",
		Timestamp: 1710000000000,
		WordCount: 3,
	}
	if err := p.PublishExtracted(context.Background(), "req-1", ev); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisher_PublishExported_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})

	ev := models.TranscriptExported{
		EventType: models.EventTranscriptExported,
		RequestID: "req-1",
		Timestamp: 1710000000000,
		Format:    "srt",
		Filename:  "transcript-2024-03-17T09-45-30.srt",
	}
	if err := p.PublishExported(context.Background(), "req-1", ev); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestPublisher_Publish_InvalidJSON(t *testing.T) {
	p := New(&Config{Enabled: false})

	// Channels cannot be marshaled
	event := make(chan int)
	if err := p.PublishExtracted(context.Background(), "req-1", event); err == nil {
		t.Error("expected error for unmarshalable event")
	}
}

// Events that fail schema validation are dropped before any publish.
func TestPublisher_Publish_SchemaViolation(t *testing.T) {
	p := New(&Config{Enabled: false})

	// Missing required requestId
	ev := models.TranscriptExtracted{
		EventType: models.EventTranscriptExtracted,
		Timestamp: 1710000000000,
	}
	if err := p.PublishExtracted(context.Background(), "req-1", ev); err == nil {
		t.Error("expected schema validation error")
	}
}

func TestPublisher_Close_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})
	if err := p.Close(); err != nil {
		t.Errorf("expected no error closing disabled publisher, got %v", err)
	}
}
