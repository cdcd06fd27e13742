package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/attar-travel/voicedesk/internal/mailer"
)

func (s *Server) callSummary(w http.ResponseWriter, r *http.Request) {
	callID := chi.URLParam(r, "callID")

	rec, ok := s.summaries.Get(callID)
	if !ok {
		writeError(w, http.StatusNotFound, "Call summary not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) latestCallSummary(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.summaries.Latest()
	if !ok {
		writeError(w, http.StatusNotFound, "No call summary available yet")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type sendSummaryRequest struct {
	CallID         string `json:"call_id"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`
}

// sendCallSummary re-sends the summary email for a stored call,
// optionally to a different recipient.
func (s *Server) sendCallSummary(w http.ResponseWriter, r *http.Request) {
	if s.mailer == nil {
		writeError(w, http.StatusServiceUnavailable, "email is not configured")
		return
	}

	var req sendSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, ok := s.summaries.Latest()
	if req.CallID != "" {
		rec, ok = s.summaries.Get(req.CallID)
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Call summary not found")
		return
	}

	to := req.RecipientEmail
	if to == "" {
		to = rec.CustomerEmail
	}
	if to == "" {
		writeError(w, http.StatusBadRequest, "recipient_email required")
		return
	}
	name := req.RecipientName
	if name == "" {
		name = rec.CustomerName
	}

	email := mailer.SummaryEmail{
		To:        to,
		Name:      name,
		Summary:   rec.Summary,
		Turns:     rec.Transcript,
		CallID:    rec.CallID,
		Timestamp: rec.Timestamp,
	}
	if rec.BookingConfirmed {
		email.Booking = rec.Booking
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	if err := s.mailer.SendCallSummary(ctx, email); err != nil {
		s.logger.Error("summary resend failed", "error", err, "to", to)
		writeError(w, http.StatusInternalServerError, "failed to send summary")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Summary sent to " + to,
	})
}
