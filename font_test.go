package asciirender

import (
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontFaceFromBytes(t *testing.T) {
	face, err := FontFaceFromBytes(gomono.TTF, 12)
	if err != nil {
		t.Fatalf("Failed to load bundled font: %v", err)
	}

	cell := face.Cell()
	if cell.Width < 1 || cell.Height < 1 {
		t.Errorf("Expected positive cell dimensions, got %dx%d", cell.Width, cell.Height)
	}
	if cell.Ascent < 1 || cell.Ascent > cell.Height {
		t.Errorf("Expected ascent in [1, %d], got %d", cell.Height, cell.Ascent)
	}
	if face.Size() != 12 {
		t.Errorf("Expected size 12, got %d", face.Size())
	}
}

// Larger point sizes must never shrink the measured cell.
func TestFontFaceCellScalesWithSize(t *testing.T) {
	small, err := FontFaceFromBytes(gomono.TTF, 8)
	if err != nil {
		t.Fatal(err)
	}
	large, err := FontFaceFromBytes(gomono.TTF, 32)
	if err != nil {
		t.Fatal(err)
	}

	if large.Cell().Width <= small.Cell().Width {
		t.Errorf("Expected wider cell at 32pt than 8pt, got %d vs %d",
			large.Cell().Width, small.Cell().Width)
	}
	if large.Cell().Height <= small.Cell().Height {
		t.Errorf("Expected taller cell at 32pt than 8pt, got %d vs %d",
			large.Cell().Height, small.Cell().Height)
	}
}

func TestFontFaceFromBytesInvalid(t *testing.T) {
	if _, err := FontFaceFromBytes([]byte("not a font"), 12); !errors.Is(err, ErrFontLoad) {
		t.Errorf("Expected ErrFontLoad for corrupt data, got %v", err)
	}
	if _, err := FontFaceFromBytes(gomono.TTF, 0); !errors.Is(err, ErrFontLoad) {
		t.Errorf("Expected ErrFontLoad for zero point size, got %v", err)
	}
	if _, err := FontFaceFromBytes(gomono.TTF, -4); !errors.Is(err, ErrFontLoad) {
		t.Errorf("Expected ErrFontLoad for negative point size, got %v", err)
	}
}

// Grid fitting assumes a fixed cell, so a proportional face must be
// rejected up front rather than drift across the canvas.
func TestFontFaceRejectsProportionalFont(t *testing.T) {
	if _, err := FontFaceFromBytes(goregular.TTF, 12); !errors.Is(err, ErrDegenerateFontMetrics) {
		t.Errorf("Expected ErrDegenerateFontMetrics for a proportional font, got %v", err)
	}
}

func TestLoadFontFaceMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.ttf")
	if _, err := LoadFontFace(missing, 12); !errors.Is(err, ErrFontLoad) {
		t.Errorf("Expected ErrFontLoad for missing file, got %v", err)
	}
}
