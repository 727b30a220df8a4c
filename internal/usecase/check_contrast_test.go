package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

func TestCheckContrast_WhiteBlack(t *testing.T) {
	uc := NewCheckContrast()

	rep, err := uc.Execute(context.Background(), "#FFFFFF", "#000000")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.Compliance{Ratio: "21.00:1", AALarge: true, AANormal: true, AAALarge: true, AAANormal: true}
	if diff := cmp.Diff(want, rep.Compliance); diff != "" {
		t.Fatalf("compliance mismatch (-want +got):\n%s", diff)
	}
	if rep.Foreground != domain.White || rep.Background != domain.Black {
		t.Fatalf("unexpected parsed colors: %v / %v", rep.Foreground, rep.Background)
	}
}

func TestCheckContrast_GrayDecimalOnWhiteHex(t *testing.T) {
	rep, err := NewCheckContrast().Execute(context.Background(), "128,128,128", "#FFFFFF")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.Compliance{Ratio: "3.95:1", AALarge: true}
	if diff := cmp.Diff(want, rep.Compliance); diff != "" {
		t.Fatalf("compliance mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckContrast_OrderIndependent(t *testing.T) {
	uc := NewCheckContrast()
	a, err := uc.Execute(context.Background(), "#336699", "F0F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := uc.Execute(context.Background(), "F0F", "#336699")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Ratio != b.Ratio {
		t.Fatalf("expected symmetric ratio, got %v vs %v", a.Ratio, b.Ratio)
	}
}

func TestCheckContrast_InvalidSecondColor(t *testing.T) {
	_, err := NewCheckContrast().Execute(context.Background(), "#FFFFFF", "999,0,0")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError, got %T", err)
	}
	if oe.Arg != "color2" {
		t.Fatalf("expected arg color2, got %q", oe.Arg)
	}
	if !strings.Contains(err.Error(), "999,0,0") {
		t.Fatalf("expected input in error, got %v", err)
	}
}

func TestCheckContrast_FirstFailureWins(t *testing.T) {
	_, err := NewCheckContrast().Execute(context.Background(), "bogus", "also-bogus")
	var oe *domain.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if oe.Arg != "color1" || oe.Input != "bogus" {
		t.Fatalf("expected first argument to fail, got arg=%q input=%q", oe.Arg, oe.Input)
	}
}

func TestCheckContrast_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCheckContrast().Execute(ctx, "#FFFFFF", "#000000")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckContrast_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := NewCheckContrast(WithLogger(l)).Execute(context.Background(), "FFF", "000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"msg":"contrast.evaluated"`) {
		t.Fatalf("expected evaluation log line, got %s", out)
	}
	if !strings.Contains(out, `"ratio":21`) {
		t.Fatalf("expected ratio attribute, got %s", out)
	}
}
