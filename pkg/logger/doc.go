// Package logger builds structured slog loggers for adminkit commands.
//
// Logs go to stderr by default so that command results written to stdout
// can be piped without filtering:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"}, logger.CommandExtractor)
//	ctx := logger.WithCommand(context.Background(), "slug")
//	log.InfoContext(ctx, "slugified labels", slog.Int("count", 3))
//	// time=... level=INFO msg="slugified labels" count=3 command=slug
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of the context on every log
// call. CommandExtractor is the one the CLI uses; callers can add their own.
// An attribute passed explicitly to the log call keeps its value; the extracted
// one with the same key is dropped.
//
// # Sentry Integration
//
// Setting Config.SentryDSN sends error records to Sentry as issues and keeps
// warnings as Sentry logs, in addition to the local handler. An empty DSN or a
// failed SDK initialization leaves only the local handler in place. The SDK
// sends in the background, so call Flush before the process exits:
//
//	defer logger.Flush(2 * time.Second)
//
// Fanout combines any set of handlers the same way New combines the local
// handler with Sentry.
//
// Use Discard where a logger is required but output is not wanted.
package logger
