package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/adminkit/pkg/grade"
)

func newGradesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Sort, compare and classify letter grades",
	}

	cmd.AddCommand(newGradesSortCmd(a))
	cmd.AddCommand(newGradesCompareCmd())
	cmd.AddCommand(newGradesClassCmd())
	cmd.AddCommand(newGradesProgressCmd())
	cmd.AddCommand(newGradesCongressCmd())

	return cmd
}

func newGradesSortCmd(a *app) *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort grades read from stdin, one per line, best first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grades, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}

			malformed := 0
			for _, g := range grades {
				if !grade.Valid(g) {
					malformed++
				}
			}
			if malformed > 0 {
				a.log.WarnContext(cmd.Context(), "malformed grades sorted after valid ones", slog.Int("malformed", malformed))
			}

			if desc {
				grade.SortDesc(grades)
			} else {
				grade.Sort(grades)
			}

			for _, g := range grades {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "sort worst first")
	return cmd
}

func newGradesCompareCmd() *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print -1, 0 or 1 as a orders before, with or after b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), grade.Comparator(desc)(args[0], args[1]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "use descending order")
	return cmd
}

func newGradesClassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "class <grade>",
		Short: "Print the rating CSS class of a grade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := grade.CSSClass(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), class)
			return nil
		},
	}
}

func newGradesProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <percent-max> <percent-passed>",
		Short: "Print the progress bar class for a committee's share of the congress pass rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			percentMax, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse percent-max: %w", err)
			}
			percentPassed, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse percent-passed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), grade.ProgressClass(percentMax, percentPassed))
			return nil
		},
	}
}

func newGradesCongressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "congress <number>",
		Short: "Print the heading label of a congress, e.g. 116th Congress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse congress number: %w", err)
			}
			if n <= 0 {
				return fmt.Errorf("congress number must be positive, got %d", n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), grade.CongressLabel(n))
			return nil
		},
	}
}
