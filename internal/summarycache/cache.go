// Package summarycache holds finished call summaries for widget and API
// retrieval. The cache is bounded with LRU eviction and keeps a separate
// "latest" slot for clients that do not know their call id; the latest
// slot survives eviction of its per-call entry.
package summarycache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

// FlightDetails is the widget-facing shape of the booked route.
type FlightDetails struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers"`
}

// Record is everything stored for one finished call.
type Record struct {
	CallID           string                 `json:"call_id,omitempty"`
	Summary          string                 `json:"summary"`
	FlightDetails    *FlightDetails         `json:"flight_details,omitempty"`
	BookingConfirmed bool                   `json:"booking_confirmed"`
	BookingID        string                 `json:"booking_id,omitempty"`
	Booking          *extract.BookingRecord `json:"booking_details,omitempty"`
	Transcript       []transcript.Turn      `json:"transcript"`
	Timestamp        string                 `json:"timestamp,omitempty"`
	CustomerName     string                 `json:"customer_name"`
	CustomerEmail    string                 `json:"customer_email,omitempty"`
	Duration         int                    `json:"duration,omitempty"`
}

// Store is the lookup the surrounding service exposes; tests substitute
// a fresh instance per case.
type Store interface {
	Get(callID string) (Record, bool)
	Put(callID string, rec Record)
	Latest() (Record, bool)
}

type Cache struct {
	entries *lru.Cache[string, Record]

	mu     sync.Mutex
	latest *Record
}

func New(size int) (*Cache, error) {
	entries, err := lru.New[string, Record](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) Get(callID string) (Record, bool) {
	return c.entries.Get(callID)
}

// Put stores the record under its call id and always updates the latest
// slot, last-writer-wins. A record without a call id only updates latest.
func (c *Cache) Put(callID string, rec Record) {
	if callID != "" {
		c.entries.Add(callID, rec)
	}
	c.mu.Lock()
	c.latest = &rec
	c.mu.Unlock()
}

func (c *Cache) Latest() (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.latest == nil {
		return Record{}, false
	}
	return *c.latest, true
}
