package asciirender

import (
	"fmt"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// referenceGlyph is the glyph measured to derive the character cell.
// Any capital letter would do for a true monospace font; 'A' matches
// the behavior documented for the CLI. checkGlyph is a second, wider
// glyph used to verify the monospace assumption instead of silently
// trusting it.
const (
	referenceGlyph = "A"
	checkGlyph     = "M"
)

// CellMetrics holds the pixel size of one monospace character cell,
// plus the ascent from the cell top to the text baseline. Both Width
// and Height are at least 1 for any successfully created FontFace.
type CellMetrics struct {
	Width, Height int
	Ascent        int
}

// FontFace is a TrueType font bound to a specific point size. It owns
// no mutable state after creation and is safe to hold for the duration
// of a run.
type FontFace struct {
	ttf  *truetype.Font
	size int
	cell CellMetrics
}

// LoadFontFace loads a TrueType font from a file and measures its
// character cell at the given point size. Missing files, unsupported
// formats, and corrupt data all fail with an error wrapping ErrFontLoad.
func LoadFontFace(path string, size int) (*FontFace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontLoad, path, err)
	}
	face, err := FontFaceFromBytes(data, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return face, nil
}

// FontFaceFromBytes parses TTF data and measures its character cell at
// the given point size.
func FontFaceFromBytes(data []byte, size int) (*FontFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: invalid point size %d", ErrFontLoad, size)
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}

	cell, err := measureCell(ttf, size)
	if err != nil {
		return nil, err
	}

	return &FontFace{ttf: ttf, size: size, cell: cell}, nil
}

// Cell returns the per-character cell metrics of the face.
func (f *FontFace) Cell() CellMetrics {
	return f.cell
}

// Size returns the point size the face was created with.
func (f *FontFace) Size() int {
	return f.size
}

// measureCell renders the reference glyph's tight bounding box to find
// the cell width and height, then checks the advance of a second glyph
// against the first. Fonts where the reference glyph degenerates to an
// empty box, or where the two advances differ, are rejected: grid
// fitting would divide by zero or drift horizontally.
func measureCell(ttf *truetype.Font, size int) (CellMetrics, error) {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	bounds, refAdvance := font.BoundString(face, referenceGlyph)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if width < 1 || height < 1 {
		return CellMetrics{}, fmt.Errorf("%w: glyph %q measures %dx%d at %dpt",
			ErrDegenerateFontMetrics, referenceGlyph, width, height, size)
	}

	if checkAdvance := font.MeasureString(face, checkGlyph); checkAdvance != refAdvance {
		return CellMetrics{}, fmt.Errorf("%w: font is not monospace (%q and %q advance differently)",
			ErrDegenerateFontMetrics, referenceGlyph, checkGlyph)
	}

	// The bounding box sits above the baseline; -Min.Y is the ascent
	// needed to place the glyph top at the cell top when drawing.
	ascent := (-bounds.Min.Y).Ceil()

	return CellMetrics{Width: width, Height: height, Ascent: ascent}, nil
}
