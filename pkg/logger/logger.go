package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config controls handler format, verbosity and optional Sentry reporting.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	SentryDSN         string `mapstructure:"sentry_dsn"`
	SentryEnvironment string `mapstructure:"sentry_environment"`
	// SentryTransport replaces the HTTP transport, e.g. with sentry.MockTransport in tests.
	SentryTransport sentry.Transport `mapstructure:"-"`

	// Output defaults to os.Stderr so command output on stdout stays clean.
	Output io.Writer `mapstructure:"-"`
}

// New builds a logger from cfg. Records go to cfg.Output as JSON (or text
// when Format is "text") and, if SentryDSN is set, to Sentry as well.
// Context extractors run on every record for both destinations.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	if cfg.SentryDSN != "" {
		if sentryHandler, err := newSentryHandler(cfg); err != nil {
			slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			handler = Fanout(handler, sentryHandler)
		}
	}

	return slog.New(newContextHandler(handler, extractors...))
}

// Flush waits up to timeout for buffered Sentry events and logs to be sent.
// Short-lived processes must call it before exiting. It reports false when
// the timeout was reached first or when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog levels.
// Anything else is treated as info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
