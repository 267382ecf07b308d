// Package asciirender converts a picture into a grid of ASCII
// characters sized to exactly fill a target pixel canvas, then
// rasterizes that grid into a PNG with a monospace TrueType font.
//
// The pipeline is strictly sequential: canvas resolution, font cell
// measurement, grid fitting, image preprocessing, ascii conversion,
// and rasterization each consume the previous stage's output. The
// preprocessing and conversion stages are narrow interfaces so callers
// can shell out to external tools (ImageMagick and
// ascii-image-converter, matching the CLI defaults) or run in-process.
package asciirender

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font/gofont/gomono"
)

// DefaultFontSize is the point size used when none is configured.
const DefaultFontSize = 12

// Renderer holds the configuration for one rendering pipeline. Create
// it with NewRenderer; the zero value is not usable.
type Renderer struct {
	Canvas   Dimensions
	FontPath string // empty means the bundled Go Mono face
	FontSize int
	FG, BG   RGB
	Braille  bool

	pre  Preprocessor
	conv Converter
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a Renderer targeting the given canvas. Defaults:
// bundled monospace font at 12pt, white text on black, non-braille
// conversion, external-tool preprocessing and conversion.
func NewRenderer(canvas Dimensions, opts ...RendererOption) *Renderer {
	r := &Renderer{
		Canvas:   canvas,
		FontSize: DefaultFontSize,
		FG:       RGB{255, 255, 255},
		BG:       RGB{0, 0, 0},
		pre:      MagickPreprocessor{},
		conv:     ExternalConverter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithFont sets the TTF font path and point size. An empty path keeps
// the bundled face.
func WithFont(path string, size int) RendererOption {
	return func(r *Renderer) {
		r.FontPath = path
		r.FontSize = size
	}
}

// WithColors sets the foreground and background colors.
func WithColors(fg, bg RGB) RendererOption {
	return func(r *Renderer) {
		r.FG = fg
		r.BG = bg
	}
}

// WithBraille selects braille patterns with dithering instead of the
// printable character set.
func WithBraille(braille bool) RendererOption {
	return func(r *Renderer) {
		r.Braille = braille
	}
}

// WithPreprocessor replaces the image preprocessing stage.
func WithPreprocessor(p Preprocessor) RendererOption {
	return func(r *Renderer) {
		r.pre = p
	}
}

// WithConverter replaces the ascii conversion stage.
func WithConverter(c Converter) RendererOption {
	return func(r *Renderer) {
		r.conv = c
	}
}

// loadFace loads the configured font, falling back to the bundled
// Go Mono face when no path is set.
func (r *Renderer) loadFace() (*FontFace, error) {
	if r.FontPath == "" {
		return FontFaceFromBytes(gomono.TTF, r.FontSize)
	}
	return LoadFontFace(r.FontPath, r.FontSize)
}

// Render runs the full pipeline on a source image and writes the
// rendered canvas to outputPath. Intermediate files live in a
// per-run temporary directory that is removed on every exit path.
func (r *Renderer) Render(inputPath, outputPath string) error {
	face, err := r.loadFace()
	if err != nil {
		return err
	}

	grid, err := FitGrid(r.Canvas, face.Cell())
	if err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "asciirender-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	prepped, err := r.pre.Preprocess(inputPath, r.Canvas, workDir)
	if err != nil {
		return err
	}

	art, err := r.conv.Convert(prepped, grid, r.Braille, workDir)
	if err != nil {
		return err
	}

	img, err := r.rasterize(art, face)
	if err != nil {
		return err
	}
	return SaveImage(img, outputPath)
}

// RenderArt renders an already-generated text grid, skipping the
// preprocessing and conversion stages, and writes the canvas to
// outputPath.
func (r *Renderer) RenderArt(art TextGrid, outputPath string) error {
	face, err := r.loadFace()
	if err != nil {
		return err
	}
	img, err := r.rasterize(art, face)
	if err != nil {
		return err
	}
	return SaveImage(img, outputPath)
}

func (r *Renderer) rasterize(art TextGrid, face *FontFace) (*image.RGBA, error) {
	return Rasterize(art, r.Canvas, face, r.FG, r.BG)
}
