package asciirender

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/golang/freetype"
	"golang.org/x/image/font"

	"github.com/pixelgrid/asciirender/imageutil"
)

// Rasterize draws a text grid onto a canvas-sized bitmap. The canvas is
// filled with the background color, then each row i is drawn starting
// at pixel (0, i*cellHeight) in the foreground color. There is no
// horizontal centering, wrapping, or clipping beyond the draw clip:
// rows are expected to fit because the grid was fitted to this canvas,
// but rows shorter than the column count (or a grid with fewer rows
// than fitted) are tolerated and simply leave background showing.
func Rasterize(art TextGrid, canvas Dimensions, face *FontFace, fg, bg RGB) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg.ToColor()), image.Point{}, draw.Src)

	cell := face.Cell()

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(face.ttf)
	ctx.SetFontSize(float64(face.size))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(fg.ToColor()))
	ctx.SetHinting(font.HintingFull)

	for i, line := range art {
		// DrawString positions text on its baseline; offset by the
		// cell ascent so the glyph tops align with the cell top.
		pt := freetype.Pt(0, i*cell.Height+cell.Ascent)
		if _, err := ctx.DrawString(line, pt); err != nil {
			return nil, fmt.Errorf("failed to draw row %d: %w", i, err)
		}
	}

	return img, nil
}

// SaveImage encodes a rendered canvas to the given path using the
// encoder selected by the file extension. Unknown extensions fail with
// ErrUnsupportedOutputFormat; filesystem failures with ErrOutputWrite.
func SaveImage(img image.Image, path string) error {
	if err := imageutil.SaveImage(img, path); err != nil {
		if errors.Is(err, imageutil.ErrUnsupportedFormat) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
