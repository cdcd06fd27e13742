// Package mailer sends post-call summary emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/transcript"
)

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

func New(host string, port int, username, password, from string, logger *slog.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

// SummaryEmail carries everything the summary message template needs.
type SummaryEmail struct {
	To        string
	Name      string
	Summary   string
	Turns     []transcript.Turn
	Duration  string
	CallID    string
	Timestamp string
	Booking   *extract.BookingRecord
}

func (m *Mailer) SendCallSummary(ctx context.Context, email SummaryEmail) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	subject := fmt.Sprintf("Call Summary - %s", email.Timestamp)
	if email.Booking != nil {
		subject = fmt.Sprintf("Booking Confirmation %s - %s", email.Booking.BookingID, email.Timestamp)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, m.body(email))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send summary email: %w", err)
	}

	m.logger.Info("summary email sent", "to", email.To, "call_id", email.CallID)
	return nil
}

func (m *Mailer) body(email SummaryEmail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", email.Name)
	fmt.Fprintf(&b, "Here is the summary of your call on %s.\n\n", email.Timestamp)
	b.WriteString(email.Summary)
	b.WriteString("\n")

	if email.Booking != nil {
		bk := email.Booking
		b.WriteString("\nBooking details:\n")
		fmt.Fprintf(&b, "  Reference:   %s\n", bk.BookingID)
		fmt.Fprintf(&b, "  Route:       %s to %s\n", bk.DepartureLocation, bk.Destination)
		if bk.DepartureDate != "" {
			fmt.Fprintf(&b, "  Departure:   %s\n", bk.DepartureDate)
		}
		if bk.ReturnDate != "" {
			fmt.Fprintf(&b, "  Return:      %s\n", bk.ReturnDate)
		}
		fmt.Fprintf(&b, "  Cabin:       %s\n", bk.CabinClass)
		fmt.Fprintf(&b, "  Travelers:   %d\n", bk.Passengers)
		if bk.Price > 0 {
			fmt.Fprintf(&b, "  Amount:      %s%d\n", bk.Currency, bk.Price)
		}
	}

	if email.Duration != "" {
		fmt.Fprintf(&b, "\nCall duration: %s\n", email.Duration)
	}

	if len(email.Turns) > 0 {
		b.WriteString("\nTranscript:\n")
		for _, turn := range email.Turns {
			fmt.Fprintf(&b, "  [%s] %s\n", strings.ToUpper(turn.Role), turn.Body())
		}
	}

	b.WriteString("\nThank you for calling.\n")
	return b.String()
}
