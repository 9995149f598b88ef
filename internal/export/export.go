// Package export renders a transcription result into downloadable file
// artifacts: pretty-printed JSON, plain text, SRT, and WebVTT.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Fezzo753/transcript-export-service/internal/models"
	"github.com/Fezzo753/transcript-export-service/internal/subtitle"
	"github.com/Fezzo753/transcript-export-service/internal/transcript"
)

// MIME types attached to export artifacts. Subtitle formats are plain
// text from the delivery mechanism's perspective.
const (
	MIMEJSON = "application/json"
	MIMEText = "text/plain"
)

// Export format names, also used as filename extensions (without the dot).
const (
	FormatJSON = "json"
	FormatTXT  = "txt"
	FormatSRT  = "srt"
	FormatVTT  = "vtt"
)

// File is one export artifact, ready to hand to a delivery mechanism.
type File struct {
	Content  []byte
	Filename string
	MIMEType string
}

// Config holds exporter settings.
type Config struct {
	// CueSize is the number of words per subtitle cue. Zero means
	// subtitle.DefaultCueSize.
	CueSize int

	// Now supplies the timestamp embedded in filenames. Nil means
	// time.Now. Injectable for tests.
	Now func() time.Time
}

// Exporter produces export artifacts from result documents. Each call is
// a pure function of its input and the current time; nothing is retained
// between calls.
type Exporter struct {
	cueSize int
	now     func() time.Time
}

// New creates an Exporter. A nil config selects all defaults.
func New(cfg *Config) *Exporter {
	e := &Exporter{
		cueSize: subtitle.DefaultCueSize,
		now:     time.Now,
	}
	if cfg != nil {
		if cfg.CueSize > 0 {
			e.cueSize = cfg.CueSize
		}
		if cfg.Now != nil {
			e.now = cfg.Now
		}
	}
	return e
}

// JSON serializes the full raw result document with 2-space indentation.
// The output parses back to a document deep-equal to the original. Fails
// only when the payload is not valid JSON, which cannot happen for a
// document that decoded successfully.
func (e *Exporter) JSON(doc *models.Document) (File, error) {
	if doc == nil || len(doc.Raw) == 0 {
		return File{}, fmt.Errorf("export json: no result document")
	}
	var v any
	if err := json.Unmarshal(doc.Raw, &v); err != nil {
		return File{}, fmt.Errorf("export json: %w", err)
	}
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return File{}, fmt.Errorf("export json: %w", err)
	}
	return File{
		Content:  content,
		Filename: e.filename(FormatJSON),
		MIMEType: MIMEJSON,
	}, nil
}

// TXT emits the normalized transcript text verbatim.
func (e *Exporter) TXT(t transcript.Transcript) File {
	return File{
		Content:  []byte(t.Transcript),
		Filename: e.filename(FormatTXT),
		MIMEType: MIMEText,
	}
}

// SRT renders the document's word timings as SubRip captions. Returns
// subtitle.ErrNoWordTimings, with no partial output, when the document
// carries no words.
func (e *Exporter) SRT(doc *models.Document) (File, error) {
	cues, err := e.cues(doc)
	if err != nil {
		return File{}, err
	}

	var b strings.Builder
	for i, cue := range cues {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			subtitle.SRTTimestamp(cue.Start),
			subtitle.SRTTimestamp(cue.End),
			cue.Text,
		)
	}

	return File{
		Content:  []byte(b.String()),
		Filename: e.filename(FormatSRT),
		MIMEType: MIMEText,
	}, nil
}

// VTT renders the document's word timings as WebVTT captions. Unlike SRT,
// cues carry no numeric index lines. Returns subtitle.ErrNoWordTimings,
// with no partial output, when the document carries no words.
func (e *Exporter) VTT(doc *models.Document) (File, error) {
	cues, err := e.cues(doc)
	if err != nil {
		return File{}, err
	}

	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, cue := range cues {
		fmt.Fprintf(&b, "%s --> %s\n%s\n\n",
			subtitle.VTTTimestamp(cue.Start),
			subtitle.VTTTimestamp(cue.End),
			cue.Text,
		)
	}

	return File{
		Content:  []byte(b.String()),
		Filename: e.filename(FormatVTT),
		MIMEType: MIMEText,
	}, nil
}

func (e *Exporter) cues(doc *models.Document) ([]subtitle.Cue, error) {
	var words []models.Word
	if doc != nil {
		words = doc.Result.Words()
	}
	return subtitle.Segment(words, e.cueSize)
}

// filename builds "transcript-{timestamp}.{ext}". The timestamp is the
// current moment truncated to whole seconds, with ":" replaced by "-" so
// the name is safe on every filesystem.
func (e *Exporter) filename(ext string) string {
	ts := e.now().UTC().Truncate(time.Second).Format("2006-01-02T15:04:05")
	ts = strings.ReplaceAll(ts, ":", "-")
	return "transcript-" + ts + "." + ext
}
