package extract

import (
	"log/slog"
	"testing"
	"time"

	"github.com/attar-travel/voicedesk/internal/transcript"
)

func testExtractor() *Extractor {
	e := NewExtractor(slog.Default())
	e.now = func() time.Time {
		return time.Date(2025, 10, 7, 14, 30, 0, 0, time.UTC)
	}
	return e
}

func TestBooking_FullExtraction(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "I want to book a flight from Bangalore to Jeddah."},
		{Role: "assistant", Message: "Saudia flight SV 865 departs 4:10 on December 15. Return January 5. Price is ₹24,500 for 2 passengers in economy class."},
		{Role: "assistant", Message: "Your booking is confirmed."},
	}

	rec, ok := testExtractor().Booking(turns, "")
	if !ok {
		t.Fatal("expected a booking to be extracted")
	}

	if rec.Airline != "Saudia" {
		t.Errorf("airline = %q", rec.Airline)
	}
	if rec.FlightNumber != "SV 865" {
		t.Errorf("flight number = %q", rec.FlightNumber)
	}
	if rec.DepartureLocation != "Bangalore" || rec.Destination != "Jeddah" {
		t.Errorf("route = %q -> %q", rec.DepartureLocation, rec.Destination)
	}
	if rec.DepartureDate != "December 15" {
		t.Errorf("departure date = %q", rec.DepartureDate)
	}
	if rec.ReturnDate != "January 5" {
		t.Errorf("return date = %q", rec.ReturnDate)
	}
	if rec.DepartureTime != "4:10" {
		t.Errorf("departure time = %q", rec.DepartureTime)
	}
	if rec.Price != 24500 {
		t.Errorf("price = %d", rec.Price)
	}
	if rec.Currency != DefaultCurrency {
		t.Errorf("currency = %q", rec.Currency)
	}
	if rec.Passengers != 2 {
		t.Errorf("passengers = %d", rec.Passengers)
	}
	if rec.CabinClass != "Economy" {
		t.Errorf("cabin class = %q", rec.CabinClass)
	}
	if rec.BookingID != "BK_20251007143000" {
		t.Errorf("booking id = %q", rec.BookingID)
	}
	if !rec.RoundTrip() {
		t.Error("expected round trip with a return date")
	}
}

func TestBooking_TranscriptReferenceWins(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "I booked a flight from Bangalore to Dubai."},
		{Role: "assistant", Message: "Your reference is PNR-123456."},
	}

	rec, ok := testExtractor().Booking(turns, "")
	if !ok {
		t.Fatal("expected a booking")
	}
	if rec.BookingID != "PNR-123456" {
		t.Errorf("expected transcript reference, got %q", rec.BookingID)
	}
}

func TestBooking_NoConfirmationKeyword(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "I am flying from Bangalore to Jeddah."},
		{Role: "assistant", Message: "Great choice of route."},
	}

	if rec, ok := testExtractor().Booking(turns, ""); ok {
		t.Errorf("expected no booking without confirmation keyword, got %+v", rec)
	}
}

func TestBooking_MissingLocations(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "user", Message: "Can you help with a booking?"},
		{Role: "assistant", Message: "Your reservation is confirmed."},
	}

	if rec, ok := testExtractor().Booking(turns, ""); ok {
		t.Errorf("expected no booking without locations, got %+v", rec)
	}
}

func TestBooking_ShortInquirySuppressed(t *testing.T) {
	turns := []transcript.Turn{
		{Role: "assistant", Message: "Welcome to Attar Travel! Are you planning a trip from Bangalore to Jeddah? We have booking options available."},
		{Role: "user", Message: "Just looking for now."},
	}

	if rec, ok := testExtractor().Booking(turns, ""); ok {
		t.Errorf("expected short inquiry to be suppressed, got %+v", rec)
	}
}

func TestBooking_LongConversationOverridesInquiryPhrase(t *testing.T) {
	filler := transcript.Turn{Role: "assistant", Message: "We compared several departure windows, seat selections, baggage allowances, meal preferences, airport transfer timings, travel insurance add-ons, visa processing requirements, cancellation policies, loyalty point accrual, and payment plan alternatives before settling on the final schedule that best matched the requested itinerary and overall budget for this particular journey."}
	turns := []transcript.Turn{
		{Role: "assistant", Message: "Welcome to Attar Travel! How can I help you today?"},
		{Role: "user", Message: "I want a flight from Bangalore to Jeddah."},
		filler, filler,
		{Role: "assistant", Message: "Your booking is confirmed."},
	}

	if _, ok := testExtractor().Booking(turns, ""); !ok {
		t.Error("expected long conversation with inquiry phrase to still produce a booking")
	}
}

func TestBooking_EmptyTranscript(t *testing.T) {
	if rec, ok := testExtractor().Booking(nil, "platform summary"); ok {
		t.Errorf("expected no booking for empty transcript, got %+v", rec)
	}
}

func TestCollectDates_OrderedByPosition(t *testing.T) {
	text := "Depart December 15, come back on 20/12/2025, or push it to January 5."
	dates := collectDates(text)

	want := []string{"December 15", "20/12/2025", "January 5"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d: %v", len(want), len(dates), dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestConfirmed(t *testing.T) {
	var rec *BookingRecord
	if rec.Confirmed() {
		t.Error("nil record must not be confirmed")
	}
	if !(&BookingRecord{BookingID: "BK_1"}).Confirmed() {
		t.Error("record with booking id must be confirmed")
	}
	if !(&BookingRecord{Status: "confirmed"}).Confirmed() {
		t.Error("record with confirmed status must be confirmed")
	}
	if (&BookingRecord{Status: "pending"}).Confirmed() {
		t.Error("pending record must not be confirmed")
	}
}
