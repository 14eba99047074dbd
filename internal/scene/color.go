package scene

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a colour name ("teal", "white") or a hex string in the
// form RRGGBB or RRGGBBAA, with or without a leading '#'
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.NRGBA{}, errors.New("empty colour")
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint8
	a := uint8(255)

	switch len(hex) {
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("failed to parse colour %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("failed to parse colour %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
