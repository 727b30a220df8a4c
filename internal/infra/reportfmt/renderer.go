package reportfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
	"github.com/aalvaropc/wcagcontrast/internal/ports"
)

type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, r domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(MapReport(r))
}

type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, r domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(MapReport(r)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

var (
	_ ports.ReportRenderer = JSONRenderer{}
	_ ports.ReportRenderer = YAMLRenderer{}
)
