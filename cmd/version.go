package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := a.project
			fmt.Fprintf(out, "%s %s\n", p.Title, p.Version)
			if p.Author != "" {
				fmt.Fprintf(out, "author: %s\n", p.Author)
			}
			if p.URL != "" {
				fmt.Fprintf(out, "url: %s\n", p.URL)
			}
			return nil
		},
	}
}
