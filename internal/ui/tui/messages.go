package tui

import "github.com/aalvaropc/wcagcontrast/internal/domain"

type evaluatedMsg struct {
	inputs [2]string
	report domain.Report
	err    error
}
