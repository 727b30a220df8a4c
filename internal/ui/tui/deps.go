package tui

import (
	"log/slog"
)

type Deps struct {
	// Initial seeds the two inputs; either entry may be empty.
	Initial [2]string

	Logger *slog.Logger
	Debug  bool
}
