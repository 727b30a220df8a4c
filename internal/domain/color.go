package domain

import "fmt"

// Color is an 8-bit sRGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// String renders the color in the comma-separated form accepted by ParseColor.
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
