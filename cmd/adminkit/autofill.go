package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/adminkit/pkg/autofill"
)

func newAutofillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autofill",
		Short: "Print the slug and SEO title a detail page form should be filled with",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "category <label>",
		Short: "Fields for a category page, from the category label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := autofill.Category(args[0])
			if err != nil {
				return err
			}
			return a.printFields(cmd, f)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "category-id <id>",
		Short: "Fields for a category page, from the category id (legacy forms)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := autofill.CategoryID(args[0])
			if err != nil {
				return err
			}
			return a.printFields(cmd, f)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "committee <ocd-id> <name>",
		Short: "Fields for a committee page, from the committee's OCD id and name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := autofill.Committee(args[0], args[1])
			if err != nil {
				return err
			}
			return a.printFields(cmd, f)
		},
	})

	return cmd
}

func (a *app) printFields(cmd *cobra.Command, f autofill.Fields) error {
	a.log.DebugContext(cmd.Context(), "derived page fields", slog.String("slug", f.Slug))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	return nil
}
