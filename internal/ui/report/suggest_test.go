package report

import (
	"testing"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

func TestSuggest_AlreadyCompliant(t *testing.T) {
	got, ok := Suggest(domain.Black, domain.White, 4.5)
	if !ok || got != domain.Black {
		t.Fatalf("expected unchanged black, got %v (%v)", got, ok)
	}
}

func TestSuggest_DarkensOnLightBackground(t *testing.T) {
	fg := domain.Color{R: 255, G: 128, B: 0}
	got, ok := Suggest(fg, domain.White, 4.5)
	if !ok {
		t.Fatalf("expected a suggestion")
	}
	if r := domain.ContrastRatio(got, domain.White); r < 4.5 {
		t.Fatalf("suggestion %v only reaches %.2f", got, r)
	}
	if domain.RelativeLuminance(got) >= domain.RelativeLuminance(fg) {
		t.Fatalf("expected a darker color, got %v", got)
	}
}

func TestSuggest_LightensOnDarkBackground(t *testing.T) {
	bg := domain.Color{R: 17, G: 24, B: 39}
	fg := domain.Color{R: 60, G: 60, B: 60}
	got, ok := Suggest(fg, bg, 7)
	if !ok {
		t.Fatalf("expected a suggestion")
	}
	if r := domain.ContrastRatio(got, bg); r < 7 {
		t.Fatalf("suggestion %v only reaches %.2f", got, r)
	}
}

func TestSuggest_Unreachable(t *testing.T) {
	// Mid gray tops out well below 21:1 against either extreme.
	bg := domain.Color{R: 118, G: 118, B: 118}
	_, ok := Suggest(bg, bg, 21)
	if ok {
		t.Fatalf("expected 21:1 to be unreachable against mid gray")
	}
}
