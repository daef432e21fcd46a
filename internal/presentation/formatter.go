// Package presentation renders run results and day listings.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/aoc/internal/config"
	"github.com/zjrosen/aoc/internal/runner"
)

// continuation indents the second part line under "Day DD, ".
const continuation = "        "

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format string
	styles Styles
}

var _ runner.Reporter = (*Formatter)(nil)

// NewFormatter creates a new formatter. An empty format means text.
func NewFormatter(writer io.Writer, format string, styles Styles) *Formatter {
	if format == "" {
		format = config.FormatText
	}
	return &Formatter{
		writer: writer,
		format: format,
		styles: styles,
	}
}

// Report writes one day result. Text output uses the status line format
//
//	Day 05, Part 1: ✓ 1234
//	        Part 2: ? 5678
//
// JSON writes one object per line and YAML one document per day.
func (f *Formatter) Report(res runner.DayResult) error {
	switch f.format {
	case config.FormatJSON:
		return json.NewEncoder(f.writer).Encode(FromDayResult(res))
	case config.FormatYAML:
		if _, err := io.WriteString(f.writer, "---\n"); err != nil {
			return err
		}
		return f.encodeYAML(FromDayResult(res))
	}

	if res.Err != nil {
		_, err := fmt.Fprintf(f.writer, "Day %02d: %v\n", res.Day, res.Err)
		return err
	}

	for i, p := range res.Parts {
		prefix := fmt.Sprintf("Day %02d, ", res.Day)
		if i > 0 {
			prefix = continuation
		}
		if _, err := fmt.Fprintf(f.writer, "%sPart %d: %s %s\n", prefix, int(p.Part), f.styles.Glyph(p.Status), p.Value); err != nil {
			return err
		}
	}
	return nil
}

// FormatDays writes the day listing. Text output is one day number per line.
func (f *Formatter) FormatDays(days []DayDTO) error {
	switch f.format {
	case config.FormatJSON:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(days)
	case config.FormatYAML:
		return f.encodeYAML(days)
	}

	for _, d := range days {
		if _, err := fmt.Fprintln(f.writer, d.Day); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) encodeYAML(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
