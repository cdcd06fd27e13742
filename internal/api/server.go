// Package api is the HTTP surface: the voice-platform webhook, the
// widget polling endpoints, and the booking/inventory REST endpoints.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/attar-travel/voicedesk/internal/booking"
	"github.com/attar-travel/voicedesk/internal/mailer"
	"github.com/attar-travel/voicedesk/internal/processor"
	"github.com/attar-travel/voicedesk/internal/summarycache"
)

type Server struct {
	router     *chi.Mux
	port       int
	processor  *processor.Processor
	bookings   *booking.Service
	summaries  summarycache.Store
	mailer     *mailer.Mailer // nil when SMTP is not configured
	agencyName string
	logger     *slog.Logger

	flightCards *cardCache
	hotelCards  *cardCache
}

func NewServer(port int, proc *processor.Processor, bookings *booking.Service, summaries summarycache.Store, m *mailer.Mailer, agencyName string, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:      router,
		port:        port,
		processor:   proc,
		bookings:    bookings,
		summaries:   summaries,
		mailer:      m,
		agencyName:  agencyName,
		logger:      logger,
		flightCards: newCardCache(),
		hotelCards:  newCardCache(),
	}

	router.Get("/", s.root)
	router.Get("/health", s.health)

	router.Post("/webhooks/voice", s.webhook)
	router.Post("/tool-calls", s.webhook) // platform alias

	router.Get("/api/call-summary/{callID}", s.callSummary)
	router.Get("/api/call-summary-latest", s.latestCallSummary)
	router.Post("/api/send-call-summary", s.sendCallSummary)

	router.Post("/api/search-flights", s.searchFlights)
	router.Get("/api/flight/{flightID}", s.flightDetails)
	router.Post("/api/search-hotels", s.searchHotels)
	router.Get("/api/hotel/{hotelID}", s.hotelDetails)

	router.Post("/api/create-booking", s.createBooking)
	router.Get("/api/booking-status", s.bookingStatus)
	router.Post("/api/cancel-booking", s.cancelBooking)
	router.Get("/api/customer-bookings/{customerPhone}", s.customerBookings)

	router.Get("/api/flight-cards/{callID}", s.flightCardLookup)
	router.Get("/api/hotel-cards/{callID}", s.hotelCardLookup)
	router.Post("/api/clear-cache", s.clearCardCaches)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "voicedesk",
		"agency":  s.agencyName,
		"status":  "running",
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"components": map[string]string{
			"summary_cache":   "ready",
			"booking_service": "ready",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
