package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Fezzo753/transcript-export-service/internal/events"
	"github.com/Fezzo753/transcript-export-service/internal/export"
	"github.com/Fezzo753/transcript-export-service/internal/language"
	"github.com/Fezzo753/transcript-export-service/internal/service/store"
)

const timedResult = `{
	"channels": [
		{
			"detected_language": "en",
			"alternatives": [
				{
					"transcript": "one two three",
					"words": [
						{"word": "one", "start": 0.0, "end": 0.4},
						{"word": "two", "start": 0.5, "end": 0.9},
						{"word": "three", "start": 1.0, "end": 1.4}
					]
				}
			]
		}
	],
	"utterances": [
		{"speaker": 0, "transcript": "one two"},
		{"speaker": 1, "transcript": "three"}
	]
}`

const untimedResult = `{"channels":[{"alternatives":[{"transcript":"one two three"}]}]}`

func newTestRouter() http.Handler {
	exporter := export.New(&export.Config{
		Now: func() time.Time {
			return time.Date(2024, 3, 17, 9, 45, 30, 0, time.UTC)
		},
	})
	publisher := events.New(&events.Config{Enabled: false})
	h := NewHandler(exporter, publisher, store.New(""), nil)
	return NewRouter(h)
}

func TestTranscripts(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/transcripts", strings.NewReader(timedResult))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var resp transcriptResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Transcript.Transcript != "one two three" {
		t.Errorf("transcript = %q", resp.Transcript.Transcript)
	}
	if resp.Transcript.DetectedLanguage != "en" {
		t.Errorf("detected language = %q", resp.Transcript.DetectedLanguage)
	}
	if len(resp.Transcript.DiarizedTurns) != 2 {
		t.Errorf("turns = %v", resp.Transcript.DiarizedTurns)
	}
	if resp.Warning != "" {
		t.Errorf("unexpected warning %q", resp.Warning)
	}
}

func TestTranscripts_SentimentWarning(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/transcripts?language=fr&sentiment=true", strings.NewReader(untimedResult))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp transcriptResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Warning, "French") {
		t.Errorf("expected a French sentiment warning, got %q", resp.Warning)
	}
}

func TestTranscripts_InvalidBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/transcripts", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestExport_SRT(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/exports/srt", strings.NewReader(timedResult))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("content type = %q, want text/plain", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".srt") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "1\n00:00:00,000 --> ") {
		t.Errorf("unexpected body start: %q", rec.Body.String()[:40])
	}
}

func TestExport_VTT(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/exports/vtt", strings.NewReader(timedResult))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "WEBVTT\n\n") {
		t.Errorf("expected WEBVTT header, got %q", rec.Body.String()[:20])
	}
}

func TestExport_MissingWordTimings(t *testing.T) {
	router := newTestRouter()

	for _, format := range []string{"srt", "vtt"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/exports/"+format, strings.NewReader(untimedResult))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status = %d, want 422", format, rec.Code)
		}
		var resp errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: decode response: %v", format, err)
		}
		if resp.Err != "word-level timestamps required" {
			t.Errorf("%s: err = %q", format, resp.Err)
		}
	}
}

func TestExport_JSONAndTXTWithoutTimings(t *testing.T) {
	router := newTestRouter()

	// JSON and TXT have no timing precondition.
	for _, format := range []string{"json", "txt"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/exports/"+format, strings.NewReader(untimedResult))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", format, rec.Code)
		}
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/exports/pdf", strings.NewReader(timedResult))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLanguages(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/languages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string][]language.Language
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp["languages"]) != 29 {
		t.Errorf("expected 29 languages, got %d", len(resp["languages"]))
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/v1/liveness", "/v1/readiness"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, rec.Code)
		}
	}
}
