package subtitle

import (
	"errors"
	"strings"

	"github.com/Fezzo753/transcript-export-service/internal/models"
)

// DefaultCueSize is the number of words per cue when the caller does not
// choose one.
const DefaultCueSize = 10

// ErrNoWordTimings reports that the result document carries no word-level
// timings, so no timed cues can be produced. Callers surface this as a
// user-facing precondition message, not a fatal error.
var ErrNoWordTimings = errors.New("word-level timestamps required")

// Cue is one subtitle cue: the start of its first word, the end of its
// last word, and the space-joined text between them.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// Segment groups timed words into cues of at most cueSize words, in input
// order. Boundaries are purely positional: a cue closes after every
// cueSize-th word or at the final word, regardless of silence gaps or
// punctuation. A non-positive cueSize falls back to DefaultCueSize.
// Returns ErrNoWordTimings when words is empty.
func Segment(words []models.Word, cueSize int) ([]Cue, error) {
	if len(words) == 0 {
		return nil, ErrNoWordTimings
	}
	if cueSize <= 0 {
		cueSize = DefaultCueSize
	}

	var cues []Cue
	var cur Cue
	var parts []string

	for i, w := range words {
		if len(parts) == 0 {
			cur.Start = w.Start
		}
		parts = append(parts, w.Word)
		cur.End = w.End

		if len(parts) == cueSize || i == len(words)-1 {
			cur.Text = strings.TrimSpace(strings.Join(parts, " "))
			cues = append(cues, cur)
			parts = parts[:0]
			cur = Cue{}
		}
	}

	return cues, nil
}
