package stats

import (
	"github.com/gerunddev/notedoc/internal/convert"
)

// DefaultCharsPerMinute is the reading speed used for time estimates
const DefaultCharsPerMinute = 400

// Stats summarizes the size of a note
type Stats struct {
	CharCount      int
	ReadingMinutes int
}

// Compute returns statistics for stored note content in either format
func Compute(content string) Stats {
	return ComputeWithRate(content, DefaultCharsPerMinute)
}

// ComputeWithRate is Compute with a custom reading speed.
// A non-positive rate falls back to DefaultCharsPerMinute. Whitespace is
// whatever the block parser treats as a separator.
func ComputeWithRate(content string, charsPerMinute int) Stats {
	if charsPerMinute <= 0 {
		charsPerMinute = DefaultCharsPerMinute
	}

	count := 0
	for _, r := range convert.ToPlainText(content) {
		if !convert.IsSpace(r) {
			count++
		}
	}

	return Stats{
		CharCount:      count,
		ReadingMinutes: (count + charsPerMinute - 1) / charsPerMinute,
	}
}
