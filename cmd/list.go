package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/aoc/internal/presentation"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Long: `List the registered day numbers in ascending order.

Examples:
  # One day per line
  aoc list

  # Include expected answers and input availability
  aoc list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.formatter(cmd, format)
			if err != nil {
				return err
			}
			return f.FormatDays(presentation.FromSolvers(a.days.List(), a.provider.Has))
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: text, json or yaml")
	return cmd
}
