// Package events publishes processing events to NATS so downstream
// consumers (CRM sync, analytics) can react to finished calls.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects emitted by the processor.
const (
	SubjectCallProcessed    = "travel.call.processed"
	SubjectBookingExtracted = "travel.booking.extracted"
)

// CallProcessed is emitted after every webhook that produced a summary.
type CallProcessed struct {
	CallID           string `json:"call_id"`
	Summary          string `json:"summary"`
	BookingConfirmed bool   `json:"booking_confirmed"`
	ProcessedAt      string `json:"processed_at"`
}

// BookingExtracted is emitted only when the gates passed and a booking
// record was synthesised from the transcript.
type BookingExtracted struct {
	CallID      string `json:"call_id"`
	BookingID   string `json:"booking_id"`
	Customer    string `json:"customer_name"`
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Amount      int    `json:"amount"`
	Currency    string `json:"currency"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func Connect(ctx context.Context, url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

func (p *Publisher) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
