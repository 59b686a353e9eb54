package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for colour text that is neither hex nor a known name
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG 1.1 colour name
// such as "lightgray" or "dodgerblue".
func ParseColor(text string) (color.Color, error) {
	value := strings.ToLower(strings.TrimSpace(text))
	if value == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidColor)
	}

	if !strings.HasPrefix(value, "#") {
		named, ok := colornames.Map[value]
		if !ok {
			return nil, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, text)
		}
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	hex := value[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%w: %q has wrong length", ErrInvalidColor, text)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidColor, text, err)
	}
	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

// FormatColor renders c as "#rrggbbaa"
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
