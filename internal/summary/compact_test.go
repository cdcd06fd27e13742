package summary

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

func compactComposer() *Composer {
	return NewComposer(testAgency, StyleCompact, slog.Default())
}

func TestComposeCompact_FlightInquiry(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "I need a flight from bangalore to jeddah on december 15"},
		{Role: "assistant", Message: "Let me look that up for you."},
	}

	got := compactComposer().Compose(turns, nil)
	want := "Flight inquiry from Bangalore to Jeddah on december 15."
	if got != want {
		t.Errorf("compact summary = %q, want %q", got, want)
	}
}

func TestComposeCompact_AssistantKeywordsIgnored(t *testing.T) {
	// Only the user's words open a topic; assistant boilerplate about
	// flights must not produce a flight fragment.
	turns := []transcript.Turn{
		{Role: "assistant", Message: "We can search flights and hotels for you, just say the word."},
		{Role: "user", Message: "Not right now, thanks."},
	}

	got := compactComposer().Compose(turns, nil)
	if got != "Brief initial contact." {
		t.Errorf("compact summary = %q, want brief contact fallback", got)
	}
}

func TestComposeCompact_HotelInquiry(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "i am looking for a hotel in riyadh for three nights"},
	}

	got := compactComposer().Compose(turns, nil)
	if !strings.Contains(got, "Hotel accommodation inquiry for Riyadh") {
		t.Errorf("compact summary = %q", got)
	}
}

func TestComposeCompact_BookingClause(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "please book the flight from bangalore to jeddah"},
	}
	booking := &extract.BookingRecord{
		DepartureLocation: "Bangalore",
		Destination:       "Jeddah",
		DepartureDate:     "December 15",
		Airline:           "Saudia",
		BookingID:         "BK_20251007143000",
	}

	got := compactComposer().Compose(turns, booking)
	if !strings.Contains(got, "Booking completed - ") {
		t.Errorf("missing booking clause: %q", got)
	}
	if !strings.Contains(got, "One-way flight from Bangalore to Jeddah") {
		t.Errorf("missing trip clause: %q", got)
	}
	if !strings.Contains(got, "booking confirmation: BK_20251007143000") {
		t.Errorf("missing confirmation reference: %q", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("summary must end with a period: %q", got)
	}
}

func TestComposeCompact_EmptyTranscript(t *testing.T) {
	got := compactComposer().Compose(nil, nil)
	if got != emptyTranscriptSummary {
		t.Errorf("compact summary = %q", got)
	}
}

func TestComposeCompact_LongCallWithoutTopics(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "I mostly wanted to ask about your office hours, your cancellation policies, whether you handle corporate accounts, and how payments are processed for group reservations when several families are traveling together during the holiday season."},
	}

	got := compactComposer().Compose(turns, nil)
	if got != "Travel inquiry discussed." {
		t.Errorf("compact summary = %q", got)
	}
}

func TestCompose_NeverPanics(t *testing.T) {
	// A composition fault must degrade, not propagate.
	c := compactComposer()
	got := c.Compose([]transcript.Turn{{Role: "user"}}, nil)
	if got == "" {
		t.Error("compose must always return a non-empty summary")
	}
}
