package asciirender

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimensions is a width/height pair of positive integers. Depending on
// context it describes either a pixel canvas or a character grid.
type Dimensions struct {
	Width, Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Presets maps resolution preset names to their canvas dimensions.
// The table is fixed; treat it as read-only.
var Presets = map[string]Dimensions{
	"1080p": {Width: 1920, Height: 1080},
	"720p":  {Width: 1280, Height: 720},
	"4k":    {Width: 3840, Height: 2160},
}

// PresetNames returns the known preset names for usage messages.
func PresetNames() []string {
	return []string{"1080p", "720p", "4k"}
}

// ResolvePreset looks up a named resolution preset. Unknown names fail
// with ErrInvalidResolutionFormat.
func ResolvePreset(name string) (Dimensions, error) {
	dims, ok := Presets[name]
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidResolutionFormat, name)
	}
	return dims, nil
}

// ParseResolution parses an explicit WIDTHxHEIGHT specification such as
// "1920x1080". The separator is case-insensitive and both halves must be
// positive integers; anything else fails with ErrInvalidResolutionFormat.
func ParseResolution(spec string) (Dimensions, error) {
	parts := strings.Split(strings.ToLower(spec), "x")
	if len(parts) != 2 {
		return Dimensions{}, fmt.Errorf("%w: %q (expected WIDTHxHEIGHT, e.g. 1920x1080)",
			ErrInvalidResolutionFormat, spec)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidResolutionFormat, spec)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %q", ErrInvalidResolutionFormat, spec)
	}
	if width <= 0 || height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %q (dimensions must be positive)",
			ErrInvalidResolutionFormat, spec)
	}

	return Dimensions{Width: width, Height: height}, nil
}
