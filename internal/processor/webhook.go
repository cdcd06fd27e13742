package processor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

// Voice platforms deliver the end-of-call webhook in two shapes:
//
//	{"type": "call.ended", "call_id": ..., "data": {...}}
//	{"message": {"type": "end-of-call-report", "analysis": {...}, "artifact": {...}}}
//
// webhookPayload is a superset of both; Event normalizes them.
type webhookPayload struct {
	Type        string          `json:"type"`
	EventName   string          `json:"event"`
	CallIDCamel string          `json:"callId"`
	CallIDSnake string          `json:"call_id"`
	Timestamp   json.RawMessage `json:"timestamp"`
	Data        callData        `json:"data"`
	Metadata    callMetadata    `json:"metadata"`
	Message     reportMessage   `json:"message"`
}

type callData struct {
	Summary        string                 `json:"summary"`
	Transcript     []transcript.Turn      `json:"transcript"`
	Duration       json.RawMessage        `json:"duration"`
	EndedAt        json.RawMessage        `json:"endedAt"`
	Timestamp      json.RawMessage        `json:"timestamp"`
	CreatedAt      json.RawMessage        `json:"createdAt"`
	CustomerName   string                 `json:"customer_name"`
	CustomerEmail  string                 `json:"customer_email"`
	BookingDetails *extract.BookingRecord `json:"booking_details"`
}

type callMetadata struct {
	UserName       string                 `json:"user_name"`
	UserEmail      string                 `json:"user_email"`
	BookingDetails *extract.BookingRecord `json:"booking_details"`
}

type reportMessage struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	CallID    string          `json:"callId"`
	Duration  json.RawMessage `json:"duration"`
	EndedAt   json.RawMessage `json:"endedAt"`
	Timestamp json.RawMessage `json:"timestamp"`
	CreatedAt json.RawMessage `json:"createdAt"`
	Analysis  struct {
		Summary string `json:"summary"`
	} `json:"analysis"`
	Artifact struct {
		Messages []transcript.Turn `json:"messages"`
	} `json:"artifact"`
	Call struct {
		ID        string          `json:"id"`
		Duration  json.RawMessage `json:"duration"`
		EndedAt   json.RawMessage `json:"endedAt"`
		CreatedAt json.RawMessage `json:"createdAt"`
	} `json:"call"`
}

// Event is the normalized webhook, shape differences resolved.
type Event struct {
	Type            string
	CallID          string
	PlatformSummary string
	Turns           []transcript.Turn
	DurationSeconds int
	Timestamp       string
	UserName        string
	UserEmail       string
	// Booking carries an externally supplied record which skips
	// transcript extraction entirely.
	Booking *extract.BookingRecord
}

// DecodeEvent parses a raw webhook body into a normalized Event.
func DecodeEvent(body []byte) (Event, error) {
	var p webhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return Event{}, fmt.Errorf("decode webhook payload: %w", err)
	}

	evt := Event{Type: firstNonEmpty(p.Type, p.EventName, p.Message.Type)}
	evt.CallID = firstNonEmpty(p.CallIDCamel, p.CallIDSnake, p.Message.Call.ID, p.Message.CallID, p.Message.ID)

	var rawTimestamp json.RawMessage
	if evt.Type == "end-of-call-report" {
		evt.PlatformSummary = p.Message.Analysis.Summary
		evt.Turns = p.Message.Artifact.Messages
		evt.DurationSeconds = coerceSeconds(p.Message.Duration, p.Message.EndedAt, p.Message.Call.Duration, p.Message.Call.EndedAt)
		rawTimestamp = firstRaw(p.Message.Timestamp, p.Message.CreatedAt, p.Message.Call.CreatedAt)
	} else {
		evt.PlatformSummary = p.Data.Summary
		evt.Turns = p.Data.Transcript
		evt.DurationSeconds = coerceSeconds(p.Data.Duration, p.Data.EndedAt)
		rawTimestamp = firstRaw(p.Data.Timestamp, p.Data.CreatedAt, p.Timestamp)
	}
	evt.Timestamp = formatTimestamp(rawTimestamp)

	evt.UserName = firstNonEmpty(p.Metadata.UserName, p.Data.CustomerName)
	evt.UserEmail = firstNonEmpty(p.Metadata.UserEmail, p.Data.CustomerEmail)

	if p.Metadata.BookingDetails != nil {
		evt.Booking = p.Metadata.BookingDetails
	} else if p.Data.BookingDetails != nil {
		evt.Booking = p.Data.BookingDetails
	}

	return evt, nil
}

const timestampLayout = "January 2, 2006 at 3:04 PM"

// formatTimestamp renders a numeric Unix timestamp (milliseconds when
// above 1e12, otherwise seconds) as a readable date. Strings pass
// through unchanged.
func formatTimestamp(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n > 1e12 {
			n /= 1000
		}
		return time.Unix(int64(n), 0).Format(timestampLayout)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// coerceSeconds returns the first raw value that parses as a number,
// as whole seconds. Non-numeric candidates (ISO end timestamps) are
// skipped.
func coerceSeconds(candidates ...json.RawMessage) int {
	for _, raw := range candidates {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return int(n)
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				return int(v)
			}
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstRaw(values ...json.RawMessage) json.RawMessage {
	for _, v := range values {
		if len(v) > 0 && string(v) != "null" {
			return v
		}
	}
	return nil
}
