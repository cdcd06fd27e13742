// Package patterns is the recognizer table for booking extraction and
// summary composition. Everything here is data: compiled expressions and
// keyword lists, evaluated by the extract and summary packages in the
// declared order. Where a field has alternative phrasings, the slice
// order is the disambiguation priority.
package patterns

import (
	"regexp"
	"strings"
)

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

const ordinalDays = `first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|` +
	`eleventh|twelfth|thirteenth|fourteenth|fifteenth|sixteenth|seventeenth|eighteenth|nineteenth|twentieth|` +
	`twenty-first|twenty-second|twenty-third|twenty-fourth|twenty-fifth|twenty-sixth|twenty-seventh|twenty-eighth|twenty-ninth|` +
	`thirtieth|thirty-first`

// place matches a capitalised city name (one or two words) or a 3-letter
// IATA code; the enclosing expressions apply (?i) so spoken-transcript
// casing does not matter.
const place = `[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?|[A-Z]{3}`

// AirlineRE is the closed list of airlines the assistant quotes.
var AirlineRE = regexp.MustCompile(`(?i)(Air India|IndiGo|SpiceJet|Vistara|Emirates|Qatar Airways|Turkish Airlines|Saudi Airlines|Saudia|Flynas|Etihad|Lufthansa)`)

// FlightNumberRE matches carrier-code flight numbers like "AI 101" or "TK-123".
var FlightNumberRE = regexp.MustCompile(`\b([A-Z]{2}[\s-]?\d{2,4})\b`)

// RouteREs are the origin/destination phrasings, tried in order with the
// first match winning. Each has exactly two capture groups: origin, destination.
var RouteREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:from|leaving|departing from|traveling from|flying from)\s+(` + place + `)\s+(?:to|towards|destination|going to)\s+(` + place + `)`),
	regexp.MustCompile(`(?i)(` + place + `)\s+to\s+(` + place + `)`),
	regexp.MustCompile(`(?i)(?:origin|from|departure)[\s:]+(` + place + `)[,\s]+(?:destination|to|arrival)[\s:]+(` + place + `)`),
	regexp.MustCompile(`(?i)(?:flight|travel|go|trip)\s+from\s+(` + place + `)\s+(?:to|→)\s+(` + place + `)`),
}

// DateREs are the five date shapes. Unlike routes, dates are collected
// from ALL shapes and then ordered by position in the text.
var DateREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthNames + `)(?:\s+\d{4})?)\b`),
	regexp.MustCompile(`(?i)\b((?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?(?:\s+\d{4})?)\b`),
	regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`),
	regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
	regexp.MustCompile(`(?i)\b((?:` + monthNames + `)\s+(?:` + ordinalDays + `)(?:\s+\d{4})?)\b`),
}

// TimeRE matches clock times with an optional meridiem marker ("8:30 AM", "6:55a").
var TimeRE = regexp.MustCompile(`\b(\d{1,2}:\d{2}(?:\s*(?:AM|PM|am|pm|a|p))?)\b`)

// PriceRE requires a currency marker on either side of the number.
var PriceRE = regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR|rupees?)\s*(\d+(?:,\d+)?)|(\d+(?:,\d+)?)\s*(?:₹|Rs\.?|INR|rupees?)`)

// PassengerRE matches explicit traveller counts.
var PassengerRE = regexp.MustCompile(`(?i)(\d+)\s+(?:passenger|traveler|person|people)`)

// CabinRE matches the three known cabin classes.
var CabinRE = regexp.MustCompile(`(?i)\b(Economy|Business|First)\s+(?:Class|class)?`)

// BookingRefRE matches reference codes like "PNR-123456" or "BK_20250101".
var BookingRefRE = regexp.MustCompile(`\b([A-Z]{2,3}[-_]?\d{6,10})\b`)

// ConfirmationKeywords gate booking extraction: without at least one of
// these the conversation is treated as an inquiry, never a booking.
var ConfirmationKeywords = []string{
	"booked", "reserved", "confirmed", "confirmation", "booking",
	"reservation made", "successfully made", "your booking",
	"booking number", "confirmation number", "booking reference",
	"booking id", "pnr", "ticket",
}

// InquiryPhrases mark greeting/inquiry conversations; a short conversation
// containing one of these yields no booking even when locations matched.
var InquiryPhrases = []string{
	"planning to travel", "would you like", "can i help",
	"may i help", "how can i help", "welcome to", "are you planning",
}

// NameREs are the customer-name templates, tried in order.
var NameREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:my name is|I'm|this is|call me)\s+(\w+)`),
	regexp.MustCompile(`(?i)name\s+is\s+(\w+)`),
}

// NameDenylist holds generic words and assistant-identity words the name
// templates capture as false positives.
var NameDenylist = []string{
	"help", "me", "booking", "flight", "travel", "alex", "assistant", "atar", "attar",
}

// IntentKeywords is the topic classifier table; a conversation may match
// any number of buckets.
var IntentKeywords = []struct {
	Label string
	Words []string
}{
	{"flight", []string{"flight", "fly", "airplane", "airline"}},
	{"destination", []string{"going to", "travel to", "visit", "destination"}},
	{"hotel", []string{"hotel", "accommodation", "stay", "room"}},
	{"dates", []string{"when", "date", "day", "month", "tomorrow", "next week"}},
}

// Trip-planning vocabulary outranks the generic per-topic checks in the
// structured summary; see summary.keyPoints.
var TripPlanningKeywords = []string{
	"itinerary", "trip plan", "day plan", "day trip", "multi-day", "tour package", "visit", "sightseeing",
}

// SaudiRegionKeywords flag the region in the main-topic sentence.
var SaudiRegionKeywords = []string{"saudi", "riyadh", "jeddah", "mecca", "medina"}

// SaudiPlaceKeywords flag specific destinations in the key points.
var SaudiPlaceKeywords = []string{
	"riyadh", "jeddah", "mecca", "medina", "dammam", "edge of the world", "diriyah", "abha",
}

var ActivityKeywords = []string{"activity", "activities", "things to do", "what to see"}

var DurationKeywords = []string{"day", "days", "night", "nights"}

// Generic key-point buckets, checked only when no trip-planning vocabulary matched.
var (
	FlightTalkKeywords      = []string{"flight", "fly", "airplane"}
	DestinationTalkKeywords = []string{"destination", "going to", "travel to"}
	DateTalkKeywords        = []string{"date", "when", "day", "time"}
	PriceTalkKeywords       = []string{"price", "cost", "fare", "budget"}
	CabinTalkKeywords       = []string{"economy", "business", "first class"}
	HotelTalkKeywords       = []string{"hotel", "accommodation", "stay"}
)

// User-side topic gates for the compact summary: a fragment is emitted
// only when the USER raised the topic, not the assistant.
var (
	UserFlightKeywords = []string{"flight", "fly", "airplane", "airline", "book flight", "search flight", "find flight"}
	UserHotelKeywords  = []string{"hotel", "accommodation", "stay", "room", "book hotel", "search hotel", "find hotel"}
)

// Compact-summary sub-recognizers, run against lowercased user-only text.
var (
	CompactOriginREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:from|leaving|departing)\s+([a-z\s]+?)(?:\s+to|\s+on|\s+for|$)`),
		regexp.MustCompile(`(?i)flight\s+from\s+([a-z\s]+?)(?:\s+to|\s+on|$)`),
	}
	CompactDestREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:to|going to|traveling to|destination)\s+([a-z\s]+?)(?:\s+on|\s+for|\s+date|$)`),
		regexp.MustCompile(`(?i)flight.*?to\s+([a-z\s]+?)(?:\s+on|\s+for|$)`),
	}
	CompactDateREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:on|for|date)\s+([a-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		regexp.MustCompile(`(?i)((?:november|december|january|february|march|april|may|june|july|august|september|october)\s+\d{1,2})`),
	}
	CompactHotelCityREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)hotel\s+(?:in|at|for)\s+([a-z\s]+?)(?:\s+for|\s+on|$)`),
		regexp.MustCompile(`(?i)(?:stay|accommodation)\s+(?:in|at)\s+([a-z\s]+?)(?:\s+for|$)`),
	}
	CompactOriginStopwordRE = regexp.MustCompile(`(?i)\b(from|leaving|departing)\b`)
	CompactDestStopwordRE   = regexp.MustCompile(`(?i)\b(to|going|traveling|destination)\b`)
)

// ContainsAny reports whether text contains any of the given keywords as
// a case-insensitive substring.
func ContainsAny(text string, words []string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
