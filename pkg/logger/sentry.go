package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored in Sentry as a log entry.
	// Errors always create Sentry issues.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
	// Level is the lowest level written to stdout. The zero value is Info.
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// NewWithSentry creates a logger writing JSON to stdout at cfg.Level and, when a DSN is set,
// to Sentry as well. Initialization failures degrade to stdout only.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level})
	if cfg.DSN == "" {
		return slog.New(NewContextHandler(stdout, extractors...))
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	})
	if err != nil {
		slog.New(stdout).Error("sentry init failed, logging to stdout only", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(fanoutHandler{stdout, sentryHandler}, extractors...))
}

func sentryLogLevels(minLevel slog.Level) []slog.Level {
	var levels []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			levels = append(levels, l)
		}
	}
	return levels
}
