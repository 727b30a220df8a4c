package domain

import "math"

// WCAG 2.x relative luminance coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722

	linearBreakpoint = 0.03928
	ambientOffset    = 0.05
)

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return lumaR*r + lumaG*g + lumaB*b
}

func linearize(v float64) float64 {
	if v <= linearBreakpoint {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio of a and b, in [1, 21].
// The result does not depend on argument order.
func ContrastRatio(a, b Color) float64 {
	return ContrastRatioFromLuminance(RelativeLuminance(a), RelativeLuminance(b))
}

// ContrastRatioFromLuminance is ContrastRatio over precomputed luminances.
func ContrastRatioFromLuminance(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + ambientOffset) / (l2 + ambientOffset)
}
