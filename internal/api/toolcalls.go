package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/attar-travel/voicedesk/internal/inventory"
)

const maxCards = 6

// Card is the widget card shape the platform renders natively.
type Card struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Footer   string       `json:"footer"`
	Buttons  []CardButton `json:"buttons"`
}

type CardButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// toolCallResult is the envelope the platform expects back. Result
// stays an empty string; the assistant phrases its own reply and the
// cards carry the data.
type toolCallResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
	Cards      []Card `json:"cards,omitempty"`
}

func (s *Server) handleToolCall(w http.ResponseWriter, tc toolCall) {
	s.logger.Info("tool call received", "function", tc.Name, "tool_call_id", tc.ID, "call_id", tc.CallID)

	switch tc.Name {
	case "search_flights":
		s.toolSearchFlights(w, tc)
	case "search_hotels":
		s.toolSearchHotels(w, tc)
	default:
		s.logger.Warn("unknown tool call", "function", tc.Name)
		writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: ""})
	}
}

func (s *Server) toolSearchFlights(w http.ResponseWriter, tc toolCall) {
	origin := strings.TrimSpace(paramString(tc.Parameters, "origin"))
	destination := strings.TrimSpace(paramString(tc.Parameters, "destination"))
	departureDate := normalizeDate(strings.TrimSpace(paramString(tc.Parameters, "departure_date")))

	if origin == "" || destination == "" {
		s.logger.Warn("flight search missing route", "origin", origin, "destination", destination)
		writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: ""})
		return
	}

	result := inventory.SearchFlights(origin, destination, departureDate)
	if !result.Success {
		s.logger.Info("no flights found", "origin", origin, "destination", destination)
		writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: ""})
		return
	}

	var cards []Card
	for _, f := range result.OutboundFlights {
		if len(cards) == maxCards {
			break
		}
		cards = append(cards, Card{
			Title:    fmt.Sprintf("%s → %s", f.Origin, f.Destination),
			Subtitle: fmt.Sprintf("%s | %s", f.Airline, f.FlightNumber),
			Footer:   fmt.Sprintf("%s - %s | %s%d | %s", f.DepartureTime, f.ArrivalTime, f.Currency, f.Price, f.Duration),
			Buttons: []CardButton{
				{Text: "Book Now", URL: fmt.Sprintf("https://booking.example.com/flight/%s", f.ID)},
			},
		})
	}

	s.flightCards.put(tc.CallID, cardEntry{Cards: cards, Timestamp: time.Now()})
	s.logger.Info("flight cards cached", "call_id", tc.CallID, "cards", len(cards))

	writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: "", Cards: cards})
}

func (s *Server) toolSearchHotels(w http.ResponseWriter, tc toolCall) {
	city := strings.TrimSpace(paramString(tc.Parameters, "city"))
	if city == "" {
		s.logger.Warn("hotel search missing city")
		writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: ""})
		return
	}

	result := inventory.SearchHotels(city)
	if !result.Success {
		s.logger.Info("no hotels found", "city", city)
		writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: ""})
		return
	}

	var cards []Card
	for _, h := range result.Hotels {
		if len(cards) == maxCards {
			break
		}
		cards = append(cards, Card{
			Title:    h.Name,
			Subtitle: fmt.Sprintf("%s %s | %s", strings.Repeat("*", h.Stars), h.Type, h.Location),
			Footer:   fmt.Sprintf("%s %d per night", h.Currency, h.PricePerNight),
			Buttons: []CardButton{
				{Text: "View on Google Maps", URL: h.GoogleMapsURL},
			},
		})
	}

	s.hotelCards.put(tc.CallID, cardEntry{Cards: cards, Timestamp: time.Now()})
	s.logger.Info("hotel cards cached", "call_id", tc.CallID, "cards", len(cards))

	writeToolResult(w, toolCallResult{ToolCallID: tc.ID, Result: "", Cards: cards})
}

func writeToolResult(w http.ResponseWriter, result toolCallResult) {
	writeJSON(w, http.StatusOK, map[string]any{
		"results": []toolCallResult{result},
	})
}

func paramString(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

var (
	compactDateRE = regexp.MustCompile(`^\d{8}$`)
	spokenDayRE   = regexp.MustCompile(`\b(\d{1,2})\b`)
)

// monthNumbers is ordered so that lookups are deterministic when the
// input mentions more than one month: the earliest calendar month wins,
// full names checked before their abbreviations.
var monthNumbers = []struct {
	name string
	num  string
}{
	{"january", "01"}, {"jan", "01"},
	{"february", "02"}, {"feb", "02"},
	{"march", "03"}, {"mar", "03"},
	{"april", "04"}, {"apr", "04"},
	{"may", "05"},
	{"june", "06"}, {"jun", "06"},
	{"july", "07"}, {"jul", "07"},
	{"august", "08"}, {"aug", "08"},
	{"september", "09"}, {"sep", "09"},
	{"october", "10"}, {"oct", "10"},
	{"november", "11"}, {"nov", "11"},
	{"december", "12"}, {"dec", "12"},
}

// normalizeDate turns the shapes the assistant produces (YYYYMMDD,
// spoken "January 15") into YYYY-MM-DD. Unparseable input falls back
// to a fixed demo date so the search still returns results.
func normalizeDate(date string) string {
	const fallback = "2025-12-20"
	if date == "" {
		return fallback
	}
	if compactDateRE.MatchString(date) {
		return date[0:4] + "-" + date[4:6] + "-" + date[6:8]
	}
	if len(date) >= 4 && isDigits(date[0:4]) {
		return date
	}

	lower := strings.ToLower(date)
	month := ""
	for _, m := range monthNumbers {
		if strings.Contains(lower, m.name) {
			month = m.num
			break
		}
	}
	day := spokenDayRE.FindString(lower)
	if month == "" || day == "" {
		return fallback
	}
	if len(day) == 1 {
		day = "0" + day
	}
	year := "2026"
	if month == "01" || month == "02" {
		year = "2025"
	}
	return year + "-" + month + "-" + day
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
