// Package report renders contrast reports for humans.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
	"github.com/aalvaropc/wcagcontrast/internal/ports"
	"github.com/aalvaropc/wcagcontrast/internal/ui/theme"
)

const largeTextNote = "Note: 'Large Text' is defined as 18pt (24px) or 14pt (18.5px) bold and larger"

// TextRenderer prints the ratio line and, when Verbose, the compliance
// breakdown with a legend. Colors are emitted only if w is a terminal and
// NoColor is unset.
type TextRenderer struct {
	Verbose bool
	NoColor bool
}

func (tr TextRenderer) Render(w io.Writer, r domain.Report) error {
	th := theme.New(lipgloss.NewRenderer(w))
	if tr.NoColor {
		th = th.Plain()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nContrast Ratio: %s\n", r.Compliance.Ratio)

	if tr.Verbose {
		b.WriteString("\nColors:\n")
		writeColorLine(&b, th, "Color 1", r.Foreground, r.ForegroundLuminance)
		writeColorLine(&b, th, "Color 2", r.Background, r.BackgroundLuminance)

		b.WriteString("\nWCAG Compliance:\n")
		for _, c := range domain.Criteria() {
			passed := r.Compliance.Passed(c)
			line := fmt.Sprintf("  %s: %s", CriterionLabel(c), theme.Mark(passed))
			b.WriteString(th.Verdict(passed).Render(line))
			b.WriteString("\n")
		}

		b.WriteString("\nWCAG Guidelines:\n")
		for _, c := range domain.Criteria() {
			fmt.Fprintf(&b, "  - %s: minimum %s contrast ratio\n", CriterionLabel(c), MinLabel(c))
		}

		b.WriteString("\n" + largeTextNote + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CriterionLabel renders "AA  Large Text", "AAA Normal Text", ...
func CriterionLabel(c domain.Criterion) string {
	size := "Normal"
	if c.TextSize == domain.TextLarge {
		size = "Large"
	}
	return fmt.Sprintf("%-3s %s Text", c.Level, size)
}

// MinLabel renders a threshold as "3:1" or "4.5:1".
func MinLabel(c domain.Criterion) string {
	return strconv.FormatFloat(c.Min, 'f', -1, 64) + ":1"
}

func writeColorLine(b *strings.Builder, th theme.Theme, label string, c domain.Color, lum float64) {
	swatch := th.Renderer().NewStyle().
		Background(lipgloss.Color(Colorful(c).Hex())).
		Render("  ")
	fmt.Fprintf(b, "  %s: %s %s  (%s)  luminance %.4f\n", label, swatch, c.Hex(), c.String(), lum)
}

// Colorful converts c for use with go-colorful.
func Colorful(c domain.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

var _ ports.ReportRenderer = TextRenderer{}
