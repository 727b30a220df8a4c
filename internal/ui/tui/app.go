package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
	"github.com/aalvaropc/wcagcontrast/internal/ui/report"
	"github.com/aalvaropc/wcagcontrast/internal/ui/theme"
	"github.com/aalvaropc/wcagcontrast/internal/usecase"
)

type model struct {
	theme theme.Theme
	deps  Deps
	uc    *usecase.CheckContrast

	inputs [2]textinput.Model
	focus  int

	evaluated bool
	report    domain.Report
	err       error
	toast     string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger))
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		theme: theme.New(nil),
		deps:  deps,
		uc:    usecase.NewCheckContrast(usecase.WithLogger(deps.Logger)),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("Color %d: ", i+1)
		ti.Placeholder = "#RRGGBB, #RGB or r,g,b"
		ti.CharLimit = 32
		ti.Width = 24
		ti.SetValue(strings.TrimSpace(deps.Initial[i]))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	return m
}

func (m model) values() [2]string {
	return [2]string{
		strings.TrimSpace(m.inputs[0].Value()),
		strings.TrimSpace(m.inputs[1].Value()),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.evaluate())
}

// evaluate is a no-op until both inputs hold something.
func (m model) evaluate() tea.Cmd {
	v := m.values()
	if v[0] == "" || v[1] == "" {
		return nil
	}
	return cmdEvaluate(m.uc, v)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		if msg.inputs != m.values() {
			// Stale: the user kept typing.
			return m, nil
		}
		m.evaluated = true
		m.report = msg.report
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down", "enter":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		}
	}

	before := m.values()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if m.values() != before {
		m.toast = ""
		v := m.values()
		if v[0] == "" || v[1] == "" {
			m.evaluated = false
			m.err = nil
		}
		return m, tea.Batch(cmd, m.evaluate())
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("wcagcontrast") + "\n" +
		m.theme.Subtitle.Render("WCAG 2.x contrast checker") + "\n"

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	body := b.String() + "\n" + m.resultView()
	help := m.theme.Help.Render("tab switch • esc quit")

	out := header + "\n" + m.theme.Card.Render(body) + "\n" + help
	if m.toast != "" {
		out += "\n" + m.theme.Error.Render(m.toast)
	}
	return wrap.Render(out)
}

func (m model) resultView() string {
	if m.err != nil {
		return m.theme.Error.Render(userMessage(m.err))
	}
	if !m.evaluated {
		return m.theme.Help.Render("Enter two colors to compare.")
	}

	r := m.report
	var b strings.Builder

	b.WriteString(swatch(r.Foreground) + " " + swatch(r.Background) + "  ")
	b.WriteString(m.theme.Title.Render("Contrast Ratio: " + r.Compliance.Ratio))
	b.WriteString("\n\n")

	for _, c := range domain.Criteria() {
		passed := r.Compliance.Passed(c)
		line := fmt.Sprintf("%s: %s", report.CriterionLabel(c), theme.Mark(passed))
		b.WriteString(m.theme.Verdict(passed).Render(line))
		b.WriteString("\n")
	}

	if !r.Compliance.AANormal {
		if s, ok := report.Suggest(r.Foreground, r.Background, domain.AANormalText.Min); ok {
			b.WriteString("\n")
			b.WriteString(m.theme.Help.Render(
				fmt.Sprintf("Try %s %s as color 1 for AA normal text", swatch(s), s.Hex()),
			))
		}
	}

	return b.String()
}

func swatch(c domain.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(report.Colorful(c).Hex())).
		Render("    ")
}
