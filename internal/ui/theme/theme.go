package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Pass     lipgloss.Style
	Fail     lipgloss.Style
	Error    lipgloss.Style

	r *lipgloss.Renderer
}

// New builds the theme against r. A nil renderer uses lipgloss' default
// (stdout) renderer.
func New(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Help:     r.NewStyle().Faint(true),
		Card: r.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Pass:  r.NewStyle().Foreground(lipgloss.Color("2")),
		Fail:  r.NewStyle().Foreground(lipgloss.Color("1")),
		Error: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		r:     r,
	}
}

// Plain disables all color and attribute output on the theme's renderer.
func (t Theme) Plain() Theme {
	t.r.SetColorProfile(termenv.Ascii)
	return t
}

// Renderer exposes the renderer the styles were built with.
func (t Theme) Renderer() *lipgloss.Renderer {
	return t.r
}

// Mark returns a check or a cross.
func Mark(passed bool) string {
	if passed {
		return "✓"
	}
	return "✗"
}

// Verdict picks the pass or fail style.
func (t Theme) Verdict(passed bool) lipgloss.Style {
	if passed {
		return t.Pass
	}
	return t.Fail
}
