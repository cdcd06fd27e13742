package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/attar-travel/voicedesk/internal/booking"
)

type bookingRequest struct {
	BookingType   string `json:"booking_type"`
	ItemID        string `json:"item_id"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	b, err := s.bookings.Create(req.BookingType, req.ItemID, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"booking": b,
	})
}

func (s *Server) bookingStatus(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("booking_reference")
	if reference == "" {
		writeError(w, http.StatusBadRequest, "booking_reference required")
		return
	}

	b, ok := s.bookings.Get(reference)
	if !ok {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"booking": b,
	})
}

func (s *Server) cancelBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingReference string `json:"booking_reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.BookingReference == "" {
		writeError(w, http.StatusBadRequest, "booking_reference required")
		return
	}

	b, err := s.bookings.Cancel(req.BookingReference)
	if err != nil {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"booking": b,
	})
}

func (s *Server) customerBookings(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "customerPhone")
	bookings := s.bookings.ByCustomer(phone)
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
	})
}
