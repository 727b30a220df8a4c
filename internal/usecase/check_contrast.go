package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aalvaropc/wcagcontrast/internal/domain"
)

type CheckContrast struct {
	log *slog.Logger
}

type CheckOption func(*CheckContrast)

func WithLogger(l *slog.Logger) CheckOption {
	return func(uc *CheckContrast) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewCheckContrast(opts ...CheckOption) *CheckContrast {
	uc := &CheckContrast{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute parses both inputs and evaluates the pair.
// Parse failures are returned as the parser's *domain.OpError, tagged with the
// argument position ("color1" or "color2").
func (uc *CheckContrast) Execute(ctx context.Context, color1, color2 string) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	fg, err := uc.parse("color1", color1)
	if err != nil {
		return domain.Report{}, err
	}
	bg, err := uc.parse("color2", color2)
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Evaluate(fg, bg)

	uc.log.Debug("contrast.evaluated",
		"color1", fg.Hex(),
		"color2", bg.Hex(),
		"luminance1", rep.ForegroundLuminance,
		"luminance2", rep.BackgroundLuminance,
		"ratio", rep.Ratio,
	)
	return rep, nil
}

func (uc *CheckContrast) parse(arg, input string) (domain.Color, error) {
	c, err := domain.ParseColor(input)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Arg = arg
		}
		uc.log.Debug("color.parse_failed", "arg", arg, "input", input, "err", err)
		return domain.Color{}, err
	}

	uc.log.Debug("color.parsed", "arg", arg, "input", input, "color", c.String())
	return c, nil
}
