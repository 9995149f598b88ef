package transcript

import (
	"fmt"

	"github.com/Fezzo753/transcript-export-service/internal/models"
)

// MergeUtterances collapses time-ordered speaker utterances into speaker
// turns, merging consecutive utterances from the same speaker into one
// turn. Each turn reads "Speaker {id}: {merged text}". Empty input yields
// a nil slice, never a slice holding an empty string.
func MergeUtterances(utterances []models.Utterance) []string {
	var turns []string

	// -1 is a sentinel that matches no real speaker id.
	currentSpeaker := -1
	currentText := ""

	for _, u := range utterances {
		if u.Speaker != currentSpeaker {
			if currentText != "" {
				turns = append(turns, currentText)
			}
			currentSpeaker = u.Speaker
			currentText = fmt.Sprintf("Speaker %d: %s", currentSpeaker, u.Transcript)
		} else {
			currentText += " " + u.Transcript
		}
	}

	if currentText != "" {
		turns = append(turns, currentText)
	}

	return turns
}
