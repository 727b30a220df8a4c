package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var reHexDigits = regexp.MustCompile(`^(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ParseColor accepts #RRGGBB, RRGGBB, #RGB, RGB or "r,g,b".
//
// Hex is tried first when the input starts with '#' or is made only of 3 or 6
// hex digits. Decimal parsing is only attempted when a comma is present.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") || reHexDigits.MatchString(s) {
		return parseHex(s)
	}

	if strings.Contains(s, ",") {
		return parseDecimal(s)
	}

	return Color{}, invalidFormat(s)
}

func parseHex(s string) (Color, error) {
	digits := strings.TrimLeft(s, "#")
	if !reHexDigits.MatchString(digits) {
		return Color{}, invalidFormat(s)
	}

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, invalidFormat(s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func parseDecimal(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, invalidFormat(s)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return Color{}, invalidFormat(s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
