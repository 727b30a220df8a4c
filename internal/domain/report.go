package domain

// Report is a full evaluation of one color pair.
type Report struct {
	Foreground Color
	Background Color

	ForegroundLuminance float64
	BackgroundLuminance float64

	Ratio      float64
	Compliance Compliance
}

// Evaluate runs luminance, contrast and compliance for a parsed pair.
func Evaluate(fg, bg Color) Report {
	lf := RelativeLuminance(fg)
	lb := RelativeLuminance(bg)
	ratio := ContrastRatioFromLuminance(lf, lb)

	return Report{
		Foreground:          fg,
		Background:          bg,
		ForegroundLuminance: lf,
		BackgroundLuminance: lb,
		Ratio:               ratio,
		Compliance:          EvaluateCompliance(ratio),
	}
}
