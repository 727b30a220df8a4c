package ports

import (
	"io"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

// ReportRenderer writes an evaluated color pair to an output stream.
type ReportRenderer interface {
	Render(w io.Writer, r domain.Report) error
}
