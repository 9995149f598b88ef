package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Fezzo753/transcript-export-service/internal/events"
	"github.com/Fezzo753/transcript-export-service/internal/export"
	"github.com/Fezzo753/transcript-export-service/internal/language"
	"github.com/Fezzo753/transcript-export-service/internal/models"
	"github.com/Fezzo753/transcript-export-service/internal/observability/logging"
	"github.com/Fezzo753/transcript-export-service/internal/observability/metrics"
	"github.com/Fezzo753/transcript-export-service/internal/service/store"
	"github.com/Fezzo753/transcript-export-service/internal/subtitle"
	"github.com/Fezzo753/transcript-export-service/internal/transcript"
)

// maxBodyBytes caps incoming result documents. Prerecorded results for
// hours of audio stay well under this.
const maxBodyBytes = 50 << 20

// Handler serves the transcript and export endpoints.
type Handler struct {
	Exporter  *export.Exporter
	Publisher *events.Publisher
	Archive   *store.Archive
	Metrics   *metrics.Metrics
}

// NewHandler wires the API handler. A nil metrics argument selects the
// global instance.
func NewHandler(exporter *export.Exporter, publisher *events.Publisher, archive *store.Archive, m *metrics.Metrics) *Handler {
	if m == nil {
		m = metrics.DefaultMetrics
	}
	return &Handler{
		Exporter:  exporter,
		Publisher: publisher,
		Archive:   archive,
		Metrics:   m,
	}
}

type transcriptResponse struct {
	Transcript transcript.Transcript `json:"transcript"`
	Warning    string                `json:"warning,omitempty"`
}

type errorResponse struct {
	Err string `json:"err"`
}

// Transcripts normalizes a raw result document into the canonical
// transcript view. Query parameters `language` and `sentiment` describe
// the originating transcription request so the response can carry a
// sentiment-compatibility warning.
func (h *Handler) Transcripts(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.readDocument(w, r)
	if !ok {
		return
	}

	start := time.Now()
	t := transcript.Extract(&doc.Result)
	h.Metrics.RecordExtraction(time.Since(start).Seconds())

	sentimentRequested, _ := strconv.ParseBool(r.URL.Query().Get("sentiment"))
	warning := language.CheckSentimentCompatibility(r.URL.Query().Get("language"), sentimentRequested)

	requestId := middleware.GetReqID(r.Context())
	h.publishExtracted(r, requestId, doc, t)

	writeJSON(w, http.StatusOK, transcriptResponse{Transcript: t, Warning: warning})
}

// Export renders one export artifact from a raw result document and
// returns it as a file download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	requestId := middleware.GetReqID(r.Context())
	logger := logging.WithExport(requestId, format)

	doc, ok := h.readDocument(w, r)
	if !ok {
		return
	}

	start := time.Now()
	var file export.File
	var err error
	switch format {
	case export.FormatJSON:
		file, err = h.Exporter.JSON(doc)
	case export.FormatTXT:
		file = h.Exporter.TXT(transcript.Extract(&doc.Result))
	case export.FormatSRT:
		file, err = h.Exporter.SRT(doc)
	case export.FormatVTT:
		file, err = h.Exporter.VTT(doc)
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Err: fmt.Sprintf("unknown export format %q", format)})
		return
	}

	if err != nil {
		if errors.Is(err, subtitle.ErrNoWordTimings) {
			// Precondition failure, not a server fault. No partial
			// output is delivered.
			h.Metrics.RecordExport(format, 0, err, "no_word_timings", 0)
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Err: subtitle.ErrNoWordTimings.Error()})
			return
		}
		h.Metrics.RecordExport(format, 0, err, "serialization", 0)
		logger.Error().Err(err).Msg("Export failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Err: "export failed"})
		return
	}
	h.Metrics.RecordExport(format, len(file.Content), nil, "", time.Since(start).Seconds())
	logger.Info().Str("filename", file.Filename).Int("bytes", len(file.Content)).Msg("Export produced")

	h.publishExported(r, requestId, format, file)

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

// Languages lists the supported transcription languages and their
// feature capabilities.
func (h *Handler) Languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]language.Language{
		"languages": language.All(),
	})
}

// readDocument reads and decodes the request body. On failure it writes
// the error response and returns ok=false.
func (h *Handler) readDocument(w http.ResponseWriter, r *http.Request) (*models.Document, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Err: "failed to read request body"})
		return nil, false
	}

	doc, err := models.ParseDocument(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Err: "invalid result document"})
		return nil, false
	}

	if h.Archive != nil && h.Archive.Enabled() {
		name, err := h.Archive.Save(doc.Raw)
		h.Metrics.RecordArchive(err)
		if err != nil {
			// Archiving is best effort and never fails the request.
			log.Error().Err(err).Msg("Failed to archive result document")
		} else {
			log.Debug().Str("file", name).Msg("Archived result document")
		}
	}

	return doc, true
}

func (h *Handler) publishExtracted(r *http.Request, requestId string, doc *models.Document, t transcript.Transcript) {
	if h.Publisher == nil {
		return
	}
	ev := models.TranscriptExtracted{
		EventType:        models.EventTranscriptExtracted,
		RequestID:        requestId,
		Timestamp:        time.Now().UnixMilli(),
		DetectedLanguage: t.DetectedLanguage,
		WordCount:        len(doc.Result.Words()),
		TurnCount:        len(t.DiarizedTurns),
		TopicCount:       len(t.Topics),
	}
	if err := h.Publisher.PublishExtracted(r.Context(), requestId, ev); err != nil {
		l := logging.WithRequest(requestId)
		l.Warn().Err(err).Msg("Failed to publish extracted event")
	}
}

func (h *Handler) publishExported(r *http.Request, requestId, format string, file export.File) {
	if h.Publisher == nil {
		return
	}
	ev := models.TranscriptExported{
		EventType: models.EventTranscriptExported,
		RequestID: requestId,
		Timestamp: time.Now().UnixMilli(),
		Format:    format,
		Filename:  file.Filename,
		SizeBytes: len(file.Content),
	}
	if err := h.Publisher.PublishExported(r.Context(), requestId, ev); err != nil {
		l := logging.WithRequest(requestId)
		l.Warn().Err(err).Msg("Failed to publish exported event")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
