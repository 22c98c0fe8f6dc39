package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/adminkit/pkg/slug"
)

func newSlugCmd(a *app) *cobra.Command {
	var (
		ascii     bool
		foldMarks bool
		maxLength int
	)

	cmd := &cobra.Command{
		Use:   "slug [label...]",
		Short: "Print the slug of each label (reads stdin when no labels are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.Slug
			if cmd.Flags().Changed("ascii") {
				sc.ASCII = ascii
			}
			if cmd.Flags().Changed("fold-marks") {
				sc.FoldMarks = foldMarks
			}
			if cmd.Flags().Changed("max-length") {
				if maxLength < 0 {
					return fmt.Errorf("--max-length must not be negative, got %d", maxLength)
				}
				sc.MaxLength = maxLength
			}

			labels := args
			if len(labels) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				labels = lines
			}

			opts := sc.Options()
			empty := 0
			for _, label := range labels {
				s := slug.Make(label, opts...)
				if s == "" {
					empty++
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			a.log.DebugContext(cmd.Context(), "slugified labels",
				slog.Int("count", len(labels)),
				slog.Int("empty", empty),
				slog.Bool("ascii", sc.ASCII),
			)
			if empty > 0 {
				a.log.WarnContext(cmd.Context(), "some labels produced an empty slug", slog.Int("empty", empty))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "use the legacy ASCII-only variant (no transliteration)")
	cmd.Flags().BoolVar(&foldMarks, "fold-marks", false, "strip combining marks not covered by the transliteration table")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "maximum slug length in bytes (0 = unlimited)")

	return cmd
}
