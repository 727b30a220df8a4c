package report

import (
	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

const suggestSteps = 20

// Suggest nudges fg toward black or white (whichever contrasts more with bg),
// blending in CIE L*a*b* until the pair reaches min. The second return is false
// when even the extreme cannot reach min; the extreme is returned in that case.
func Suggest(fg, bg domain.Color, min float64) (domain.Color, bool) {
	if domain.ContrastRatio(fg, bg) >= min {
		return fg, true
	}

	target := domain.Black
	if domain.ContrastRatio(domain.White, bg) > domain.ContrastRatio(domain.Black, bg) {
		target = domain.White
	}

	from, to := Colorful(fg), Colorful(target)
	for step := 1; step <= suggestSteps; step++ {
		blend := from.BlendLab(to, float64(step)/suggestSteps).Clamped()
		r, g, b := blend.RGB255()
		cand := domain.Color{R: r, G: g, B: b}
		if domain.ContrastRatio(cand, bg) >= min {
			return cand, true
		}
	}
	return target, domain.ContrastRatio(target, bg) >= min
}
