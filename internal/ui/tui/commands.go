package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/wcagcontrast/internal/usecase"
)

func cmdEvaluate(uc *usecase.CheckContrast, inputs [2]string) tea.Cmd {
	return func() tea.Msg {
		rep, err := uc.Execute(context.Background(), inputs[0], inputs[1])
		return evaluatedMsg{inputs: inputs, report: rep, err: err}
	}
}
