package transcript

import (
	"github.com/Fezzo753/transcript-export-service/internal/models"
)

// Extract builds the canonical transcript from a raw result document.
// Only the first channel and first alternative are consulted. Absence of
// any field along the way is routine and yields that field's zero value;
// Extract never fails. Every call allocates fresh slices, so repeated
// extractions never accumulate state across documents.
func Extract(res *models.Result) Transcript {
	var t Transcript
	if res == nil {
		return t
	}

	if ch, ok := res.FirstChannel(); ok {
		t.DetectedLanguage = ch.DetectedLanguage
	}

	if alt, ok := res.FirstAlternative(); ok {
		t.Transcript = alt.Transcript

		if len(alt.Summaries) > 0 {
			t.Summary = alt.Summaries[0].Summary
		}

		// Each topic segment carries its own nested list; flatten them
		// in document order, duplicates included.
		for _, group := range alt.Topics {
			for _, topic := range group.Topics {
				t.Topics = append(t.Topics, topic.Topic)
			}
		}

		for _, e := range alt.Entities {
			t.Entities = append(t.Entities, Entity{
				Text:       e.Text,
				Label:      e.Label,
				Confidence: e.Confidence,
				StartWord:  e.StartWord,
				EndWord:    e.EndWord,
			})
		}

		for _, in := range alt.Intents {
			t.Intents = append(t.Intents, Intent{
				Intent:     in.Intent,
				Confidence: in.Confidence,
			})
		}

		for _, s := range alt.Sentiments {
			t.Sentiments = append(t.Sentiments, Sentiment{
				Sentiment:  s.Sentiment,
				Confidence: s.Confidence,
				Text:       s.Text,
				StartWord:  s.StartWord,
				EndWord:    s.EndWord,
			})
		}
	}

	t.DiarizedTurns = MergeUtterances(res.Utterances)

	return t
}
