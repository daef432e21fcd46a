package presentation

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/zjrosen/aoc/internal/config"
	"github.com/zjrosen/aoc/internal/runner"
)

// Styles colors the status glyphs.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Unknown lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w honoring the color mode.
// In auto mode the profile is detected from w, so non-terminal writers get
// plain text.
func NewRenderer(w io.Writer, colorMode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles builds glyph styles from the theme.
func NewStyles(r *lipgloss.Renderer, theme config.ThemeConfig) Styles {
	return Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color(theme.Success)).Bold(true),
		Failure: r.NewStyle().Foreground(lipgloss.Color(theme.Failure)).Bold(true),
		Unknown: r.NewStyle().Foreground(lipgloss.Color(theme.Unknown)),
	}
}

// Glyph renders the status symbol.
func (s Styles) Glyph(status runner.Status) string {
	switch status {
	case runner.StatusSuccess:
		return s.Success.Render(status.Glyph())
	case runner.StatusFailure:
		return s.Failure.Render(status.Glyph())
	default:
		return s.Unknown.Render(status.Glyph())
	}
}
