// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/Fezzo753/transcript-export-service/internal/observability/metrics"
	"github.com/Fezzo753/transcript-export-service/internal/schema"
)

// Publisher publishes transcript lifecycle events to separate Kafka topics.
type Publisher struct {
	writerExtracted *kafka.Writer
	writerExported  *kafka.Writer
	principal       string
	topicExtracted  string
	topicExported   string
	enabled         bool
	metrics         *metrics.Metrics
	validator       *schema.Validator
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers        []string
	TopicExtracted string
	TopicExported  string
	Principal      string
	Enabled        bool
}

// New creates a new Kafka event publisher with separate topics for
// extraction and export events.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics
	v := schema.New()

	// Handle nil config case
	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled:   false,
			metrics:   m,
			validator: v,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:      cfg.Principal,
			topicExtracted: cfg.TopicExtracted,
			topicExported:  cfg.TopicExported,
			enabled:        false,
			metrics:        m,
			validator:      v,
		}
	}

	// Custom dialer with longer timeouts for DNS resolution in Kubernetes
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	writerExtracted := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicExtracted,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	writerExported := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicExported,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicExtracted", cfg.TopicExtracted).
		Str("topicExported", cfg.TopicExported).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerExtracted: writerExtracted,
		writerExported:  writerExported,
		principal:       cfg.Principal,
		topicExtracted:  cfg.TopicExtracted,
		topicExported:   cfg.TopicExported,
		enabled:         true,
		metrics:         m,
		validator:       v,
	}
}

// PublishExtracted publishes a transcript-extracted event.
func (p *Publisher) PublishExtracted(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerExtracted, p.topicExtracted, "extracted", key, event)
}

// PublishExported publishes a transcript-exported event.
func (p *Publisher) PublishExported(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerExported, p.topicExported, "exported", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	// Malformed events are dropped, never published. The request that
	// produced them is unaffected.
	if err := p.validator.Validate(eventType, payload); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("Event failed schema validation, dropping")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordKafkaPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordKafkaPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerExtracted != nil {
		if e := p.writerExtracted.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing extracted writer")
			err = e
		}
	}
	if p.writerExported != nil {
		if e := p.writerExported.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing exported writer")
			err = e
		}
	}
	return err
}
