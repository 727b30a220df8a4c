package reportfmt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

func TestMapReport_GrayOnWhite(t *testing.T) {
	r := domain.Evaluate(domain.Color{R: 128, G: 128, B: 128}, domain.White)
	got := MapReport(r)

	if got.RatioText != "3.95:1" {
		t.Fatalf("expected 3.95:1, got %q", got.RatioText)
	}
	if got.Color1.Hex != "#808080" || got.Color2.Hex != "#ffffff" {
		t.Fatalf("unexpected hex values: %q / %q", got.Color1.Hex, got.Color2.Hex)
	}
	if diff := cmp.Diff([]int{128, 128, 128}, got.Color1.RGB); diff != "" {
		t.Fatalf("rgb mismatch (-want +got):\n%s", diff)
	}

	want := ComplianceDTO{AALargeText: true}
	if diff := cmp.Diff(want, got.Compliance); diff != "" {
		t.Fatalf("compliance mismatch (-want +got):\n%s", diff)
	}
}

func TestMapReport_CriteriaMirrorCompliance(t *testing.T) {
	got := MapReport(domain.Evaluate(domain.White, domain.Black))

	want := []CriterionDTO{
		{Level: "AA", TextSize: "large", Min: 3.0, Passed: true},
		{Level: "AA", TextSize: "normal", Min: 4.5, Passed: true},
		{Level: "AAA", TextSize: "large", Min: 4.5, Passed: true},
		{Level: "AAA", TextSize: "normal", Min: 7.0, Passed: true},
	}
	if diff := cmp.Diff(want, got.Criteria); diff != "" {
		t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
	}
}
