package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/aoc/day"
	"github.com/zjrosen/aoc/internal/config"
	"github.com/zjrosen/aoc/internal/log"
	"github.com/zjrosen/aoc/internal/presentation"
	"github.com/zjrosen/aoc/internal/runner"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		dayNum    uint
		part      uint
		inputFile string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute requested solution(s)",
		Long: `Execute every registered day, or one day and optionally one part.

Examples:
  # All days, both parts
  aoc run

  # Day 5 only
  aoc run -d 5

  # Day 5 part 2 against a different input
  aoc run -d 5 -p 2 -f example.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Zero means unset in a Request, so explicit flag values are
			// checked here. A bad part is reported before anything else.
			req := runner.Request{InputFile: inputFile}
			if cmd.Flags().Changed("part") {
				req.Part = day.Part(part) //nolint:gosec // checked against 1 and 2
				if !req.Part.Valid() {
					a.reportRunError(cmd, req, fmt.Errorf("%w: %d", day.ErrInvalidPart, part))
					return ErrRunFailed
				}
			}
			if cmd.Flags().Changed("day") {
				if dayNum == 0 {
					a.reportRunError(cmd, req, fmt.Errorf("%w: 0", day.ErrNotFound))
					return ErrRunFailed
				}
				req.Day = int(dayNum) //nolint:gosec // day numbers are small
			}

			f, err := a.formatter(cmd, format)
			if err != nil {
				return err
			}

			sum, err := runner.New(a.days, a.provider).Run(cmd.Context(), req, f)
			if err != nil {
				a.reportRunError(cmd, req, err)
				return ErrRunFailed
			}

			log.Info(log.CatRun, "Run finished",
				"succeeded", sum.Succeeded, "failed", sum.Failed,
				"unknown", sum.Unknown, "skipped", sum.Skipped)
			if !sum.OK() {
				return ErrRunFailed
			}
			return nil
		},
	}

	cmd.Flags().UintVarP(&dayNum, "day", "d", 0, "indicate a specific day")
	cmd.Flags().UintVarP(&part, "part", "p", 0, "indicate a specific part (1 or 2)")
	cmd.Flags().StringVarP(&inputFile, "input-file", "f", "", "read the day's input from this file")
	cmd.Flags().StringVar(&format, "format", "", "output format: text, json or yaml")
	return cmd
}

func (a *app) reportRunError(cmd *cobra.Command, req runner.Request, err error) {
	stderr := cmd.ErrOrStderr()
	switch {
	case errors.Is(err, runner.ErrPartWithoutDay):
		fmt.Fprintln(stderr, "Cannot specify part without day!")
	case errors.Is(err, runner.ErrInputWithoutDay):
		fmt.Fprintln(stderr, "Cannot specify input file without day!")
	case errors.Is(err, day.ErrInvalidPart):
		fmt.Fprintln(stderr, "Invalid part value")
	case errors.Is(err, day.ErrNotFound):
		fmt.Fprintln(stderr, "Day not found!")
	default:
		fmt.Fprintf(stderr, "Day %02d: %v\n", req.Day, err)
	}
}

// formatter builds the output formatter; a --format flag overrides output.format.
func (a *app) formatter(cmd *cobra.Command, format string) (*presentation.Formatter, error) {
	out := a.cfg.Output
	if format != "" {
		out.Format = format
	}
	if err := config.ValidateOutput(out); err != nil {
		return nil, err
	}

	w := cmd.OutOrStdout()
	styles := presentation.NewStyles(presentation.NewRenderer(w, out.Color), a.cfg.Theme)
	return presentation.NewFormatter(w, out.Format, styles), nil
}
