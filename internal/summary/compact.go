package summary

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/patterns"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

// briefContactWordThreshold: below this the empty-fragment fallback is
// "Brief initial contact." rather than a topic sentence.
const briefContactWordThreshold = 30

var titleCaser = cases.Title(language.English)

// composeCompact renders one professional paragraph from the topics the
// user actually raised. Fragments are gated on user-only keywords so the
// assistant's boilerplate never produces content.
func (c *Composer) composeCompact(turns []transcript.Turn, booking *extract.BookingRecord) string {
	if len(turns) == 0 {
		if booking != nil {
			return compactFromBooking(booking)
		}
		return emptyTranscriptSummary
	}

	userText := strings.ToLower(transcript.UserText(turns))
	conversation := transcript.SpokenText(turns)

	userAskedFlights := patterns.ContainsAny(userText, patterns.UserFlightKeywords)
	userAskedHotels := patterns.ContainsAny(userText, patterns.UserHotelKeywords)

	var parts []string

	if userAskedFlights {
		origin := matchPlace(userText, patterns.CompactOriginREs, patterns.CompactOriginStopwordRE, 3)
		dest := matchPlace(userText, patterns.CompactDestREs, patterns.CompactDestStopwordRE, 3)
		date := firstGroupMatch(userText, patterns.CompactDateREs)

		if origin != "" && dest != "" {
			desc := fmt.Sprintf("Flight inquiry from %s to %s", titleCaser.String(origin), titleCaser.String(dest))
			if date != "" {
				desc += " on " + date
			}
			parts = append(parts, desc)
		} else {
			parts = append(parts, "Flight booking inquiry")
		}
	}

	if userAskedHotels {
		city := matchPlace(userText, patterns.CompactHotelCityREs, nil, 2)
		if city != "" {
			parts = append(parts, fmt.Sprintf("Hotel accommodation inquiry for %s", titleCaser.String(city)))
		} else {
			parts = append(parts, "Hotel accommodation inquiry")
		}
	}

	if booking != nil {
		var info []string
		if booking.DepartureLocation != "" && booking.Destination != "" {
			tripType := "One-way"
			if booking.RoundTrip() {
				tripType = "Round-trip"
			}
			info = append(info, fmt.Sprintf("%s flight from %s to %s", tripType, booking.DepartureLocation, booking.Destination))
		}
		if booking.DepartureDate != "" {
			info = append(info, fmt.Sprintf("departure date: %s", booking.DepartureDate))
		}
		if booking.Airline != "" {
			info = append(info, fmt.Sprintf("airline: %s", booking.Airline))
		}
		if booking.FlightNumber != "" {
			info = append(info, fmt.Sprintf("flight number: %s", booking.FlightNumber))
		}
		if booking.BookingID != "" {
			info = append(info, fmt.Sprintf("booking confirmation: %s", booking.BookingID))
		}
		if len(info) > 0 {
			parts = append(parts, "Booking completed - "+strings.Join(info, ", "))
		}
	}

	if len(parts) == 0 {
		switch {
		case transcript.WordCount(conversation) < briefContactWordThreshold:
			return "Brief initial contact."
		case userAskedFlights:
			return "Flight inquiry discussed."
		case userAskedHotels:
			return "Hotel inquiry discussed."
		default:
			return "Travel inquiry discussed."
		}
	}

	return strings.Join(parts, ". ") + "."
}

// matchPlace tries the recognizers in order and returns the first capture
// that, after stopword cleanup, still has content and at most maxWords words.
func matchPlace(text string, res []*regexp.Regexp, stopwords *regexp.Regexp, maxWords int) string {
	for _, re := range res {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		captured := strings.TrimSpace(m[1])
		if stopwords != nil {
			captured = strings.TrimSpace(stopwords.ReplaceAllString(captured, ""))
		}
		if captured != "" && len(strings.Fields(captured)) <= maxWords {
			return captured
		}
	}
	return ""
}

func firstGroupMatch(text string, res []*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// compactFromBooking renders the paragraph from booking details alone.
func compactFromBooking(booking *extract.BookingRecord) string {
	var parts []string
	if booking.DepartureLocation != "" && booking.Destination != "" {
		parts = append(parts, fmt.Sprintf("Flight inquiry from %s to %s", booking.DepartureLocation, booking.Destination))
	}
	if booking.DepartureDate != "" {
		parts = append(parts, fmt.Sprintf("departure date: %s", booking.DepartureDate))
	}

	var info []string
	if booking.Airline != "" {
		info = append(info, fmt.Sprintf("airline: %s", booking.Airline))
	}
	if booking.FlightNumber != "" {
		info = append(info, fmt.Sprintf("flight number: %s", booking.FlightNumber))
	}
	if booking.BookingID != "" {
		info = append(info, fmt.Sprintf("booking confirmation: %s", booking.BookingID))
	}
	if len(info) > 0 {
		parts = append(parts, "Booking completed - "+strings.Join(info, ", "))
	}

	if len(parts) == 0 {
		return "Flight booking discussion."
	}
	return strings.Join(parts, ". ") + "."
}
