// Package summary composes the human-readable call summary from the
// extraction results. Composition is total: whatever goes wrong inside a
// strategy, the caller always gets a non-empty string, because a degraded
// summary beats a failed webhook acknowledgment.
package summary

import (
	"log/slog"
	"time"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

// Style selects the composition strategy.
type Style string

const (
	// StyleStructured produces the four-section labeled summary.
	StyleStructured Style = "structured"
	// StyleCompact produces a single professional paragraph.
	StyleCompact Style = "compact"
)

// fallbackSummary replaces the output when a strategy panics.
const fallbackSummary = "Travel inquiry and assistance discussion."

const emptyTranscriptSummary = "No conversation data available. Please complete a call to generate a summary."

type Composer struct {
	agency string
	style  Style
	logger *slog.Logger
	now    func() time.Time
}

func NewComposer(agency string, style Style, logger *slog.Logger) *Composer {
	if style != StyleCompact {
		style = StyleStructured
	}
	return &Composer{agency: agency, style: style, logger: logger, now: time.Now}
}

// Compose renders the summary for a finished call. booking may be nil.
// It never fails; internal faults degrade to a generic summary.
func (c *Composer) Compose(turns []transcript.Turn, booking *extract.BookingRecord) (out string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("summary composition failed, using fallback", "panic", r)
			if booking != nil {
				out = c.composeFromBooking(booking)
			} else {
				out = fallbackSummary
			}
		}
	}()

	switch c.style {
	case StyleCompact:
		return c.composeCompact(turns, booking)
	default:
		return c.composeStructured(turns, booking)
	}
}

// composeFromBooking is the last-resort path when only booking details
// are usable (empty transcript, or a strategy fault mid-composition).
func (c *Composer) composeFromBooking(booking *extract.BookingRecord) (out string) {
	defer func() {
		if recover() != nil {
			out = fallbackSummary
		}
	}()
	if c.style == StyleCompact {
		return compactFromBooking(booking)
	}
	return structuredFromBooking(booking)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
