// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "transcript_export"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Extraction metrics
	ExtractionsTotal   prometheus.Counter
	ExtractionDuration prometheus.Histogram

	// Export metrics
	ExportsTotal   *prometheus.CounterVec
	ExportErrors   *prometheus.CounterVec
	ExportBytes    *prometheus.HistogramVec
	ExportDuration *prometheus.HistogramVec

	// Result archive metrics
	ResultsArchived prometheus.Counter
	ArchiveErrors   prometheus.Counter

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ExtractionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Total number of result documents normalized into transcripts",
		}),
		ExtractionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extraction_duration_seconds",
			Help:      "Duration of transcript extraction in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),

		ExportsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Total number of export artifacts produced",
		}, []string{"format"}),
		ExportErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_errors_total",
			Help:      "Total number of failed export requests",
		}, []string{"format", "reason"}),
		ExportBytes: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_bytes",
			Help:      "Size of produced export artifacts in bytes",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}, []string{"format"}),
		ExportDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Duration of export rendering in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"format"}),

		ResultsArchived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_archived_total",
			Help:      "Total number of raw result documents archived to disk",
		}),
		ArchiveErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_errors_total",
			Help:      "Total number of failed archive writes",
		}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordExtraction records one completed extraction.
func (m *Metrics) RecordExtraction(durationSeconds float64) {
	m.ExtractionsTotal.Inc()
	m.ExtractionDuration.Observe(durationSeconds)
}

// RecordExport records one export request, successful or not.
func (m *Metrics) RecordExport(format string, sizeBytes int, err error, reason string, durationSeconds float64) {
	if err != nil {
		m.ExportErrors.WithLabelValues(format, reason).Inc()
		return
	}
	m.ExportsTotal.WithLabelValues(format).Inc()
	m.ExportBytes.WithLabelValues(format).Observe(float64(sizeBytes))
	m.ExportDuration.WithLabelValues(format).Observe(durationSeconds)
}

// RecordArchive records one archive write attempt.
func (m *Metrics) RecordArchive(err error) {
	if err != nil {
		m.ArchiveErrors.Inc()
		return
	}
	m.ResultsArchived.Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, durationSeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(durationSeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
