package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port             int
	LogLevel         string
	NatsURL          string
	NatsToken        string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	AgencyName       string
	AgencyEmail      string
	SummaryStyle     string
	SummaryCacheSize int
}

func Load() Config {
	return Config{
		Port:             envInt("VOICEDESK_PORT", 4000),
		LogLevel:         envStr("LOG_LEVEL", "info"),
		NatsURL:          envStr("NATS_URL", ""),
		NatsToken:        envStr("NATS_TOKEN", ""),
		SMTPHost:         envStr("SMTP_HOST", ""),
		SMTPPort:         envInt("SMTP_PORT", 587),
		SMTPUsername:     envStr("SMTP_USERNAME", ""),
		SMTPPassword:     envStr("SMTP_PASSWORD", ""),
		SMTPFrom:         envStr("SMTP_FROM", ""),
		AgencyName:       envStr("AGENCY_NAME", "Attar Travel Agency"),
		AgencyEmail:      envStr("AGENCY_EMAIL", "attartravel25@gmail.com"),
		SummaryStyle:     envStr("SUMMARY_STYLE", "structured"),
		SummaryCacheSize: envInt("SUMMARY_CACHE_SIZE", 256),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
