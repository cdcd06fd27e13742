// Package booking is the in-memory booking ledger. Bookings live for the
// process lifetime only; durability is out of scope.
package booking

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking types accepted by Create.
const (
	TypeFlight = "flight"
	TypeHotel  = "hotel"
)

type Booking struct {
	Reference     string    `json:"booking_reference"`
	Type          string    `json:"booking_type"`
	ItemID        string    `json:"item_id"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Service struct {
	logger *slog.Logger

	mu    sync.Mutex
	byRef map[string]*Booking
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		byRef:  make(map[string]*Booking),
	}
}

// Create registers a booking and confirms it immediately; the demo
// ledger has no payment step.
func (s *Service) Create(bookingType, itemID, customerPhone, customerEmail string) (*Booking, error) {
	if bookingType != TypeFlight && bookingType != TypeHotel {
		return nil, fmt.Errorf("unknown booking type %q", bookingType)
	}
	if itemID == "" {
		return nil, fmt.Errorf("item_id is required")
	}
	if customerPhone == "" {
		return nil, fmt.Errorf("customer_phone is required")
	}

	b := &Booking{
		Reference:     newReference(),
		Type:          bookingType,
		ItemID:        itemID,
		CustomerPhone: customerPhone,
		CustomerEmail: customerEmail,
		Status:        StatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.byRef[b.Reference] = b
	s.mu.Unlock()

	s.logger.Info("booking created",
		"reference", b.Reference,
		"type", b.Type,
		"item_id", b.ItemID,
	)
	return b, nil
}

// Get returns a booking by reference.
func (s *Service) Get(reference string) (*Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byRef[reference]
	if !ok {
		return nil, false
	}
	copied := *b
	return &copied, true
}

// Cancel marks a booking cancelled. It is idempotent once cancelled.
func (s *Service) Cancel(reference string) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byRef[reference]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", reference)
	}
	b.Status = StatusCancelled
	copied := *b
	return &copied, nil
}

// ByCustomer returns all bookings made with a phone number.
func (s *Service) ByCustomer(customerPhone string) []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Booking
	for _, b := range s.byRef {
		if b.CustomerPhone == customerPhone {
			out = append(out, *b)
		}
	}
	return out
}

// newReference derives a short human-quotable reference from a UUID.
func newReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK-" + id[:8]
}
