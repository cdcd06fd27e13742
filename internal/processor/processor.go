// Package processor orchestrates the end-of-call pipeline: decode the
// webhook, extract a booking from the transcript, compose the summary,
// cache it for the widget, and fan out email and events.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attar-travel/voicedesk/internal/events"
	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/mailer"
	"github.com/attar-travel/voicedesk/internal/summary"
	"github.com/attar-travel/voicedesk/internal/summarycache"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

type Processor struct {
	extractor   *extract.Extractor
	composer    *summary.Composer
	summaries   summarycache.Store
	mailer      *mailer.Mailer    // nil when SMTP is not configured
	events      *events.Publisher // nil when NATS is not configured
	agencyEmail string
	logger      *slog.Logger
	now         func() time.Time
}

func New(ext *extract.Extractor, composer *summary.Composer, summaries summarycache.Store, m *mailer.Mailer, pub *events.Publisher, agencyEmail string, logger *slog.Logger) *Processor {
	return &Processor{
		extractor:   ext,
		composer:    composer,
		summaries:   summaries,
		mailer:      m,
		events:      pub,
		agencyEmail: agencyEmail,
		logger:      logger,
		now:         time.Now,
	}
}

// Result is returned to the webhook caller so the widget can render
// the summary without a second round trip.
type Result struct {
	Summary  string
	Booking  *extract.BookingRecord
	CallID   string
	UserName string
}

// HandleCallEnded runs the full pipeline for one finished call.
func (p *Processor) HandleCallEnded(ctx context.Context, evt Event) (Result, error) {
	logger := p.logger.With("call_id", evt.CallID)
	logger.Info("processing call ended",
		"event", evt.Type,
		"turns", len(evt.Turns),
		"duration_seconds", evt.DurationSeconds,
	)

	booking := evt.Booking
	if booking != nil {
		logger.Info("booking details supplied in payload", "booking_id", booking.BookingID)
	} else {
		var ok bool
		booking, ok = p.extractor.Booking(evt.Turns, evt.PlatformSummary)
		if ok {
			logger.Info("booking extracted from transcript", "booking_id", booking.BookingID)
		}
	}

	composed := p.composer.Compose(evt.Turns, booking)

	userName := evt.UserName
	if userName == "" {
		userName = extract.Name(transcript.UserText(evt.Turns))
	}

	rec := summarycache.Record{
		CallID:           evt.CallID,
		Summary:          composed,
		BookingConfirmed: booking.Confirmed(),
		Booking:          booking,
		Transcript:       evt.Turns,
		Timestamp:        evt.Timestamp,
		CustomerName:     userName,
		CustomerEmail:    evt.UserEmail,
		Duration:         evt.DurationSeconds,
	}
	if booking != nil {
		rec.BookingID = booking.BookingID
		rec.FlightDetails = &summarycache.FlightDetails{
			Origin:      booking.DepartureLocation,
			Destination: booking.Destination,
			Date:        booking.DepartureDate,
			Passengers:  booking.Passengers,
		}
	}
	p.summaries.Put(evt.CallID, rec)

	p.sendEmail(rec)
	p.publish(rec)

	return Result{Summary: composed, Booking: booking, CallID: evt.CallID, UserName: userName}, nil
}

// sendEmail queues the summary email in the background. Every call is
// mailed; without a customer address it goes to the agency inbox.
func (p *Processor) sendEmail(rec summarycache.Record) {
	if p.mailer == nil {
		return
	}

	to := rec.CustomerEmail
	if to == "" {
		to = p.agencyEmail
		p.logger.Info("no customer email on call, sending to agency", "to", to)
	}
	if to == "" {
		return
	}

	email := mailer.SummaryEmail{
		To:        to,
		Name:      rec.CustomerName,
		Summary:   rec.Summary,
		Turns:     rec.Transcript,
		Duration:  formatDuration(rec.Duration),
		CallID:    rec.CallID,
		Timestamp: rec.Timestamp,
	}
	if rec.BookingConfirmed {
		email.Booking = rec.Booking
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := p.mailer.SendCallSummary(ctx, email); err != nil {
			p.logger.Error("summary email failed", "error", err, "to", to, "call_id", rec.CallID)
		}
	}()
}

func (p *Processor) publish(rec summarycache.Record) {
	if p.events == nil {
		return
	}

	err := p.events.Publish(events.SubjectCallProcessed, events.CallProcessed{
		CallID:           rec.CallID,
		Summary:          rec.Summary,
		BookingConfirmed: rec.BookingConfirmed,
		ProcessedAt:      p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Warn("publish call.processed failed", "error", err)
	}

	if !rec.BookingConfirmed || rec.Booking == nil {
		return
	}
	err = p.events.Publish(events.SubjectBookingExtracted, events.BookingExtracted{
		CallID:      rec.CallID,
		BookingID:   rec.Booking.BookingID,
		Customer:    rec.CustomerName,
		Departure:   rec.Booking.DepartureLocation,
		Destination: rec.Booking.Destination,
		Amount:      rec.Booking.Price,
		Currency:    rec.Booking.Currency,
	})
	if err != nil {
		p.logger.Warn("publish booking.extracted failed", "error", err)
	}
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
