package domain

import "fmt"

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// TextSize distinguishes WCAG large text (18pt, or 14pt bold) from normal text.
type TextSize string

const (
	TextLarge  TextSize = "large"
	TextNormal TextSize = "normal"
)

// Criterion is a single minimum contrast requirement. Min is inclusive.
type Criterion struct {
	Level    Level
	TextSize TextSize
	Min      float64
}

// Fixed by WCAG 2.x (success criteria 1.4.3 and 1.4.6).
var (
	AALargeText   = Criterion{Level: LevelAA, TextSize: TextLarge, Min: 3.0}
	AANormalText  = Criterion{Level: LevelAA, TextSize: TextNormal, Min: 4.5}
	AAALargeText  = Criterion{Level: LevelAAA, TextSize: TextLarge, Min: 4.5}
	AAANormalText = Criterion{Level: LevelAAA, TextSize: TextNormal, Min: 7.0}
)

// Criteria returns the four criteria in display order.
func Criteria() []Criterion {
	return []Criterion{AALargeText, AANormalText, AAALargeText, AAANormalText}
}

// Met reports whether ratio satisfies the criterion.
func (c Criterion) Met(ratio float64) bool {
	return ratio >= c.Min
}

// Compliance is the pass/fail breakdown for one contrast ratio.
type Compliance struct {
	Ratio     string
	AALarge   bool
	AANormal  bool
	AAALarge  bool
	AAANormal bool
}

// EvaluateCompliance classifies ratio against the fixed WCAG thresholds.
func EvaluateCompliance(ratio float64) Compliance {
	return Compliance{
		Ratio:     FormatRatio(ratio),
		AALarge:   AALargeText.Met(ratio),
		AANormal:  AANormalText.Met(ratio),
		AAALarge:  AAALargeText.Met(ratio),
		AAANormal: AAANormalText.Met(ratio),
	}
}

// Passed returns the result for a given criterion.
func (c Compliance) Passed(cr Criterion) bool {
	switch cr {
	case AALargeText:
		return c.AALarge
	case AANormalText:
		return c.AANormal
	case AAALargeText:
		return c.AAALarge
	case AAANormalText:
		return c.AAANormal
	default:
		return false
	}
}

// FormatRatio renders a ratio as "4.50:1".
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}
