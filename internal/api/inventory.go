package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/attar-travel/voicedesk/internal/inventory"
)

type flightSearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

func (s *Server) searchFlights(w http.ResponseWriter, r *http.Request) {
	var req flightSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination required")
		return
	}

	s.logger.Info("flight search", "origin", req.Origin, "destination", req.Destination)
	writeJSON(w, http.StatusOK, inventory.SearchFlights(req.Origin, req.Destination, req.DepartureDate))
}

func (s *Server) flightDetails(w http.ResponseWriter, r *http.Request) {
	flight, ok := inventory.FlightByID(chi.URLParam(r, "flightID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Flight not found")
		return
	}
	writeJSON(w, http.StatusOK, flight)
}

type hotelSearchRequest struct {
	City string `json:"city"`
}

func (s *Server) searchHotels(w http.ResponseWriter, r *http.Request) {
	var req hotelSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.City == "" {
		writeError(w, http.StatusBadRequest, "city required")
		return
	}

	s.logger.Info("hotel search", "city", req.City)
	writeJSON(w, http.StatusOK, inventory.SearchHotels(req.City))
}

func (s *Server) hotelDetails(w http.ResponseWriter, r *http.Request) {
	hotel, ok := inventory.HotelByID(chi.URLParam(r, "hotelID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}
