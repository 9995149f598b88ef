// Package subtitle turns word-level timings into timed subtitle cues and
// renders timecodes in the SubRip and WebVTT grammars.
package subtitle

import (
	"fmt"
	"math"
)

// SRTTimestamp renders a seconds offset as a SubRip timecode,
// HH:MM:SS,mmm. Milliseconds are floored, every component is zero-padded,
// and hours past 99 keep their full width.
func SRTTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	millis := int((seconds - math.Floor(seconds)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// VTTTimestamp renders a seconds offset as a WebVTT timecode,
// HH:MM:SS.sss. The seconds remainder is rounded to three decimals and
// zero-padded to width six; a remainder that rounds up to 60 carries into
// the minute field rather than rendering "60.000".
func VTTTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60

	rem := seconds - float64(hours*3600+minutes*60)
	rem = math.Round(rem*1000) / 1000
	if rem >= 60 {
		rem -= 60
		minutes++
		if minutes == 60 {
			minutes = 0
			hours++
		}
	}

	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, rem)
}
