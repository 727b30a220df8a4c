package cli

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/wcagcontrast/internal/infra/reportfmt"
	"github.com/aalvaropc/wcagcontrast/internal/ports"
	"github.com/aalvaropc/wcagcontrast/internal/ui/report"
)

func rendererFor(format string, verbose, noColor bool) (ports.ReportRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "pretty", "":
		return report.TextRenderer{Verbose: verbose, NoColor: noColor}, nil
	case "json":
		return reportfmt.JSONRenderer{}, nil
	case "yaml", "yml":
		return reportfmt.YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (expected text|json|yaml)", format)
	}
}
