package summary

import (
	"fmt"
	"strings"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/patterns"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

const maxKeyPoints = 5

// greetingWordThreshold: below this many words the conversation is
// treated as greeting-only in the structured strategy.
const greetingWordThreshold = 50

var greetingKeyPoints = []string{
	"Initial greeting and introduction to services",
	"Established contact with travel assistant",
	"Expressed interest in travel planning",
}

// composeStructured renders the four-section summary: main topic, key
// points, actions taken, next steps.
func (c *Composer) composeStructured(turns []transcript.Turn, booking *extract.BookingRecord) string {
	if len(turns) == 0 {
		if booking != nil {
			return structuredFromBooking(booking)
		}
		return emptyTranscriptSummary
	}

	customer := extract.Name(transcript.UserText(turns))
	conversation := transcript.SpokenText(turns)

	mainTopic := c.mainTopic(conversation, customer, booking)
	keyPoints := keyPoints(turns, booking)
	actions := c.actionsTaken(booking, customer)
	nextSteps := fmt.Sprintf("%s will receive a detailed email shortly with payment instructions and all booking details. No further assistance was requested at this time.", customer)

	var bullets strings.Builder
	for i, p := range keyPoints {
		if i > 0 {
			bullets.WriteString("\n")
		}
		bullets.WriteString("• " + p)
	}

	return fmt.Sprintf(`◆ Main Topic/Purpose of the call

%s

◆ Key Points Discussed

%s

◆ Actions Taken

%s

◆ Next Steps

%s`, mainTopic, bullets.String(), actions, nextSteps)
}

func (c *Composer) mainTopic(conversation, customer string, booking *extract.BookingRecord) string {
	if booking != nil {
		tripType := "one-way"
		if booking.RoundTrip() {
			tripType = "round-trip"
		}
		if booking.DepartureLocation != "" && booking.Destination != "" {
			return fmt.Sprintf("%s contacted %s and successfully booked a %s flight from %s to %s.",
				customer, c.agency, tripType, booking.DepartureLocation, booking.Destination)
		}
		return fmt.Sprintf("%s contacted %s and completed a flight booking.", customer, c.agency)
	}

	intents := extract.Intents(conversation)
	switch {
	case patterns.ContainsAny(conversation, patterns.TripPlanningKeywords):
		if patterns.ContainsAny(conversation, patterns.SaudiRegionKeywords) {
			return fmt.Sprintf("%s contacted %s to discuss multi-day trip planning and itinerary options for Saudi Arabia.", customer, c.agency)
		}
		return fmt.Sprintf("%s contacted %s to discuss trip planning and itinerary options.", customer, c.agency)
	case extract.HasIntent(intents, "flight"):
		return fmt.Sprintf("%s contacted %s to inquire about flight bookings and travel options.", customer, c.agency)
	case extract.HasIntent(intents, "hotel"):
		return fmt.Sprintf("%s contacted %s to discuss accommodation options.", customer, c.agency)
	case transcript.WordCount(conversation) < greetingWordThreshold:
		return fmt.Sprintf("Initial contact established with %s. %s was greeted and introduced to available travel services.", c.agency, customer)
	default:
		return fmt.Sprintf("%s contacted %s for travel assistance and information.", customer, c.agency)
	}
}

// keyPoints derives up to five bullet points. With a booking the points
// come from the record; otherwise from keyword scans, with trip-planning
// vocabulary checked first and suppressing the generic per-topic points.
func keyPoints(turns []transcript.Turn, booking *extract.BookingRecord) []string {
	var points []string

	if booking != nil {
		if booking.DepartureDate != "" {
			points = append(points, fmt.Sprintf("Selected departure date: %s", booking.DepartureDate))
		}
		if booking.ReturnDate != "" {
			points = append(points, fmt.Sprintf("Selected return date: %s", booking.ReturnDate))
		}
		points = append(points, fmt.Sprintf("Selected %s class", orDefault(booking.CabinClass, extract.DefaultCabinClass)))
		if booking.Passengers > 1 {
			points = append(points, fmt.Sprintf("Booking for %d passengers", booking.Passengers))
		}
		points = append(points,
			"Provided travel preferences and passenger details",
			"Confirmed flight details and pricing",
		)
	} else {
		conversation := transcript.AllText(turns)

		if patterns.ContainsAny(conversation, patterns.TripPlanningKeywords) {
			points = append(points, "Discussed multi-day trip planning and itinerary options")
			if patterns.ContainsAny(conversation, patterns.SaudiPlaceKeywords) {
				points = append(points, "Explored specific Saudi Arabia destinations and attractions")
			}
			if patterns.ContainsAny(conversation, patterns.ActivityKeywords) {
				points = append(points, "Discussed activities and experiences during the trip")
			}
			if patterns.ContainsAny(conversation, patterns.DurationKeywords) {
				points = append(points, "Reviewed trip duration and daily schedule options")
			}
		} else {
			if patterns.ContainsAny(conversation, patterns.FlightTalkKeywords) {
				points = append(points, "Inquired about flight options and availability")
			}
			if patterns.ContainsAny(conversation, patterns.DestinationTalkKeywords) {
				points = append(points, "Discussed potential travel destinations")
			}
			if patterns.ContainsAny(conversation, patterns.DateTalkKeywords) {
				points = append(points, "Asked about travel dates and timing")
			}
			if patterns.ContainsAny(conversation, patterns.PriceTalkKeywords) {
				points = append(points, "Inquired about pricing and costs")
			}
			if patterns.ContainsAny(conversation, patterns.CabinTalkKeywords) {
				points = append(points, "Discussed cabin class options")
			}
			if patterns.ContainsAny(conversation, patterns.HotelTalkKeywords) {
				points = append(points, "Asked about accommodation options")
			}
		}

		if len(points) == 0 || transcript.WordCount(conversation) < greetingWordThreshold {
			points = append([]string{}, greetingKeyPoints...)
		}
	}

	if len(points) > maxKeyPoints {
		points = points[:maxKeyPoints]
	}
	return points
}

func (c *Composer) actionsTaken(booking *extract.BookingRecord, customer string) string {
	if booking == nil {
		return "The conversation was an initial inquiry. Travel information and assistance were provided. No booking was completed during this call."
	}

	from := orDefault(booking.DepartureLocation, "departure city")
	to := orDefault(booking.Destination, "destination")
	class := orDefault(booking.CabinClass, extract.DefaultCabinClass)
	ref := booking.BookingID
	if ref == "" {
		ref = "BK_" + c.now().Format("20060102150405")
	}

	action := fmt.Sprintf("A reservation was successfully made for %s's flight from %s to %s in %s Class", customer, from, to, class)
	if booking.Passengers > 1 {
		action += fmt.Sprintf(" for %d passengers", booking.Passengers)
	}
	action += fmt.Sprintf(". The confirmation number #%s was provided.", ref)
	return action
}

// structuredFromBooking renders the four sections from booking details
// alone, for calls where no transcript arrived.
func structuredFromBooking(booking *extract.BookingRecord) string {
	tripType := "one-way"
	if booking.RoundTrip() {
		tripType = "round-trip"
	}
	return fmt.Sprintf(`◆ Main Topic/Purpose of the call

A %s flight booking from %s to %s.

◆ Key Points Discussed

• Selected departure date: %s
• Selected %s class
• Confirmed flight details and pricing

◆ Actions Taken

A flight reservation was successfully created with confirmation number #%s.

◆ Next Steps

Detailed booking confirmation and payment instructions will be sent via email shortly.`,
		tripType,
		booking.DepartureLocation,
		booking.Destination,
		orDefault(booking.DepartureDate, "TBD"),
		orDefault(booking.CabinClass, extract.DefaultCabinClass),
		orDefault(booking.BookingID, "PENDING"),
	)
}
