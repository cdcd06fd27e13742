package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/attar-travel/voicedesk/internal/api"
	"github.com/attar-travel/voicedesk/internal/booking"
	"github.com/attar-travel/voicedesk/internal/config"
	"github.com/attar-travel/voicedesk/internal/events"
	"github.com/attar-travel/voicedesk/internal/extract"
	"github.com/attar-travel/voicedesk/internal/mailer"
	"github.com/attar-travel/voicedesk/internal/processor"
	"github.com/attar-travel/voicedesk/internal/summary"
	"github.com/attar-travel/voicedesk/internal/summarycache"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("voicedesk starting", "port", cfg.Port, "agency", cfg.AgencyName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Summary cache
	summaries, err := summarycache.New(cfg.SummaryCacheSize)
	if err != nil {
		slog.Error("failed to create summary cache", "error", err)
		os.Exit(1)
	}

	// Mailer (optional — calls are still processed, just not emailed)
	var m *mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, slog.Default())
		slog.Info("mailer ready", "host", cfg.SMTPHost, "port", cfg.SMTPPort)
	} else {
		slog.Warn("SMTP not configured — running without summary emails")
	}

	// NATS publisher (optional — no downstream consumers without it)
	var pub *events.Publisher
	if cfg.NatsURL != "" {
		pub, err = events.Connect(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without event publishing")
	}

	// Extraction and summary composition
	ext := extract.NewExtractor(slog.Default())
	composer := summary.NewComposer(cfg.AgencyName, summary.Style(cfg.SummaryStyle), slog.Default())

	// Processor — the main pipeline
	proc := processor.New(ext, composer, summaries, m, pub, cfg.AgencyEmail, slog.Default())

	// Booking ledger
	bookings := booking.NewService(slog.Default())

	// HTTP API
	srv := api.NewServer(cfg.Port, proc, bookings, summaries, m, cfg.AgencyName, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("voicedesk ready", "port", cfg.Port, "summary_style", cfg.SummaryStyle)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("voicedesk stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
