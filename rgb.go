package asciirender

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents a color in the RGB color space with 8-bit channels,
// where each channel ranges from 0 to 255. Colors are immutable once
// parsed.
type RGB struct {
	R, G, B uint8
}

// ToColor converts an RGB color to a color.RGBA for use with the
// standard library image types.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// String returns the color as a lowercase 6-digit hex token.
func (c RGB) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses a hexadecimal color token into an RGB color.
// The token may carry a leading '#' marker, which is stripped first.
// Three-digit shorthand is expanded by doubling each digit, so "f0a"
// parses the same as "ff00aa". Anything that is not 3 or 6 hex digits
// after stripping fails with ErrInvalidColorFormat.
func ParseHexColor(token string) (RGB, error) {
	hex := strings.TrimPrefix(token, "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		hex = b.String()
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, token)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, token)
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
