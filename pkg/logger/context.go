package logger

import (
	"context"
	"log/slog"
)

type commandKey struct{}

// WithCommand stores the running command name in ctx.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// CommandFromContext returns the command name stored by WithCommand.
func CommandFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(commandKey{}).(string)
	return name, ok && name != ""
}

// CommandExtractor adds a "command" attribute when ctx carries one.
func CommandExtractor(ctx context.Context) (slog.Attr, bool) {
	if name, ok := CommandFromContext(ctx); ok {
		return slog.String("command", name), true
	}
	return slog.Attr{}, false
}
