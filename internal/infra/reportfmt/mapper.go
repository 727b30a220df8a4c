package reportfmt

import "github.com/aalvaropc/wcagcontrast/internal/domain"

func MapReport(r domain.Report) ReportDTO {
	criteria := domain.Criteria()
	out := ReportDTO{
		Color1:    mapColor(r.Foreground, r.ForegroundLuminance),
		Color2:    mapColor(r.Background, r.BackgroundLuminance),
		Ratio:     r.Ratio,
		RatioText: r.Compliance.Ratio,
		Compliance: ComplianceDTO{
			AALargeText:   r.Compliance.AALarge,
			AANormalText:  r.Compliance.AANormal,
			AAALargeText:  r.Compliance.AAALarge,
			AAANormalText: r.Compliance.AAANormal,
		},
		Criteria: make([]CriterionDTO, 0, len(criteria)),
	}

	for _, c := range criteria {
		out.Criteria = append(out.Criteria, CriterionDTO{
			Level:    string(c.Level),
			TextSize: string(c.TextSize),
			Min:      c.Min,
			Passed:   r.Compliance.Passed(c),
		})
	}
	return out
}

func mapColor(c domain.Color, lum float64) ColorDTO {
	return ColorDTO{
		Hex:       c.Hex(),
		RGB:       []int{int(c.R), int(c.G), int(c.B)},
		Luminance: lum,
	}
}
