package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/adminkit/pkg/logger"
)

// flushTimeout bounds how long the CLI waits for Sentry before exiting.
const flushTimeout = 2 * time.Second

// app carries state shared by subcommands once the root pre-run has loaded it.
type app struct {
	cfg *Config
	log *slog.Logger

	// sentryTransport overrides the Sentry HTTP transport when set.
	sentryTransport sentry.Transport
}

func newApp() *app {
	return &app{log: logger.Discard()}
}

// run executes root and reports a failed command through the logger, so it
// reaches Sentry when configured. Buffered events are flushed either way.
func run(ctx context.Context, root *cobra.Command, a *app) error {
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		logCtx := ctx
		if cmd != nil && cmd.Context() != nil {
			logCtx = cmd.Context()
		}
		a.log.ErrorContext(logCtx, "command failed", slog.Any("error", err))
	}
	if a.cfg != nil && a.cfg.Log.SentryDSN != "" {
		logger.Flush(flushTimeout)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	root := &cobra.Command{
		Use:           "adminkit",
		Short:         "Slug, grade and page-field helpers for the oversight admin",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			cfg.Log.Output = cmd.ErrOrStderr()
			cfg.Log.SentryTransport = a.sentryTransport

			a.cfg = cfg
			a.log = logger.New(cfg.Log, logger.CommandExtractor)
			cmd.SetContext(logger.WithCommand(cmd.Context(), cmd.CommandPath()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "json", "log format: json or text")

	root.AddCommand(newSlugCmd(a))
	root.AddCommand(newGradesCmd(a))
	root.AddCommand(newAutofillCmd(a))

	return root
}

// maxLineSize caps a single input line. Labels have no length limit of their
// own; this only stops a stream without newlines from growing without bound.
const maxLineSize = 64 << 20

// readLines returns every line of r, blank ones included, with trailing
// carriage returns removed, so output lines stay aligned with input lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
