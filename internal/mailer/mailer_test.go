package mailer

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

func TestBody_WithBookingDetails(t *testing.T) {
	m := New("smtp.example.com", 587, "user", "pass", "noreply@example.com", slog.Default())

	body := m.body(SummaryEmail{
		To:        "rahul@example.com",
		Name:      "Rahul",
		Summary:   "Flight inquiry from Bangalore to Jeddah.",
		Duration:  "3m 0s",
		Timestamp: "October 7, 2025 at 2:30 PM",
		Turns: []transcript.Turn{
			{Role: "user", Message: "I want to fly to Jeddah."},
		},
		Booking: &extract.BookingRecord{
			BookingID:         "BK_20251007143000",
			DepartureLocation: "Bangalore",
			Destination:       "Jeddah",
			DepartureDate:     "December 15",
			CabinClass:        "Economy",
			Passengers:        2,
			Price:             24500,
			Currency:          "₹",
		},
	})

	for _, want := range []string{
		"Hello Rahul,",
		"Reference:   BK_20251007143000",
		"Route:       Bangalore to Jeddah",
		"Departure:   December 15",
		"Travelers:   2",
		"Amount:      ₹24500",
		"Call duration: 3m 0s",
		"[USER] I want to fly to Jeddah.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Return:") {
		t.Errorf("one-way booking must not render a return line:\n%s", body)
	}
}

func TestBody_WithoutBooking(t *testing.T) {
	m := New("smtp.example.com", 587, "user", "pass", "noreply@example.com", slog.Default())

	body := m.body(SummaryEmail{
		Name:      "Traveler",
		Summary:   "Brief initial contact.",
		Timestamp: "October 7, 2025 at 2:30 PM",
	})

	if strings.Contains(body, "Booking details:") {
		t.Errorf("no booking must mean no booking block:\n%s", body)
	}
	if !strings.Contains(body, "Brief initial contact.") {
		t.Errorf("summary text missing:\n%s", body)
	}
}
