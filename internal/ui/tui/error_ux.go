package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidFormat:
			msg := "Invalid color (use #RRGGBB, #RGB or r,g,b)"
			if label := argLabel(oe.Arg); label != "" {
				msg = label + ": " + msg
			}
			return msg

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}

	return "Unexpected error (see logs)"
}

func argLabel(arg string) string {
	switch strings.TrimSpace(arg) {
	case "color1":
		return "Color 1"
	case "color2":
		return "Color 2"
	default:
		return ""
	}
}
