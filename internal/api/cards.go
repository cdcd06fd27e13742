package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
)

// cardEntry is one tool-call result kept for widget polling.
type cardEntry struct {
	Cards     []Card
	Timestamp time.Time
}

// cardCache holds one entry per call id. The widget cannot always name
// its call id, so lookups accept "latest" and get the newest entry.
type cardCache struct {
	mu      sync.Mutex
	entries map[string]cardEntry
}

func newCardCache() *cardCache {
	return &cardCache{entries: make(map[string]cardEntry)}
}

func (c *cardCache) put(callID string, entry cardEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[callID] = entry
}

func (c *cardCache) get(callID string) (cardEntry, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if callID == "latest" {
		var newestID string
		var newest cardEntry
		for id, entry := range c.entries {
			if newestID == "" || entry.Timestamp.After(newest.Timestamp) {
				newestID, newest = id, entry
			}
		}
		if newestID == "" {
			return cardEntry{}, "", false
		}
		return newest, newestID, true
	}

	entry, ok := c.entries[callID]
	return entry, callID, ok
}

func (c *cardCache) clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]cardEntry)
	return n
}

func (s *Server) flightCardLookup(w http.ResponseWriter, r *http.Request) {
	s.cardLookup(w, r, s.flightCards)
}

func (s *Server) hotelCardLookup(w http.ResponseWriter, r *http.Request) {
	s.cardLookup(w, r, s.hotelCards)
}

func (s *Server) cardLookup(w http.ResponseWriter, r *http.Request, cache *cardCache) {
	callID := chi.URLParam(r, "callID")

	entry, actualID, ok := cache.get(callID)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"cards":   []Card{},
			"message": "No cards found for this call_id. Cards may not have been generated yet.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"cards":          entry.Cards,
		"cached_at":      entry.Timestamp.Unix(),
		"age_seconds":    time.Since(entry.Timestamp).Seconds(),
		"actual_call_id": actualID,
	})
}

// clearCardCaches lets the widget force a fresh start outside the
// call.started event.
func (s *Server) clearCardCaches(w http.ResponseWriter, r *http.Request) {
	flights := s.flightCards.clear()
	hotels := s.hotelCards.clear()
	s.logger.Info("card caches cleared", "flight_entries", flights, "hotel_entries", hotels)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"cleared_flights": flights,
		"cleared_hotels":  hotels,
	})
}
