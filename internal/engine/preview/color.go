package preview

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// ParseHexColor parses "#rgb" or "#rrggbb" theme colors.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")

	var parts [3]string
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			parts[i] = string(hex[i]) + string(hex[i])
		}
	case 6:
		for i := 0; i < 3; i++ {
			parts[i] = hex[i*2 : i*2+2]
		}
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	var c Color
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		f := float32(v) / 255.0
		switch i {
		case 0:
			c.R = f
		case 1:
			c.G = f
		case 2:
			c.B = f
		}
	}
	return c, nil
}
