package asciirender

import (
	"strings"

	"github.com/pixelgrid/asciirender/imageutil"
)

// brailleDots maps a sample at (x, y) within a 2x4 cell to its bit in
// the braille pattern block (U+2800..U+28FF). The layout follows the
// Unicode dot numbering: dots 1-3 and 7 in the left column, 4-6 and 8
// in the right.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// encodeBraille renders an image as a grid of braille patterns. The
// image is resampled to two samples per cell column and four per cell
// row, converted to grayscale, Floyd-Steinberg dithered to one bit per
// sample, and packed 2x4 into braille runes.
func encodeBraille(img *imageutil.RGBAImage, grid Dimensions) TextGrid {
	sampled := imageutil.Resize(img, grid.Width*2, grid.Height*4, imageutil.InterpolationArea)
	gray := imageutil.ToGrayscale(sampled)
	bits := ditherToBits(gray)

	rows := make([]string, grid.Height)
	for gy := 0; gy < grid.Height; gy++ {
		var row strings.Builder
		row.Grow(grid.Width)
		for gx := 0; gx < grid.Width; gx++ {
			pattern := rune(0x2800)
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					if bits[gy*4+dy][gx*2+dx] {
						pattern |= brailleDots[dx][dy]
					}
				}
			}
			row.WriteRune(pattern)
		}
		rows[gy] = row.String()
	}
	return TextGrid(rows)
}

// ditherToBits thresholds a grayscale image to one bit per pixel with
// Floyd-Steinberg error diffusion. A set bit means the sample is bright
// enough to raise its braille dot.
func ditherToBits(gray *imageutil.GrayImage) [][]bool {
	width, height := gray.Width(), gray.Height()

	// Work in float to carry diffusion error without clamping loss.
	luma := make([][]float64, height)
	for y := 0; y < height; y++ {
		luma[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			luma[y][x] = float64(gray.GetGray(x, y))
		}
	}

	bits := make([][]bool, height)
	diffuse := func(y, x int, err, factor float64) {
		if y >= 0 && y < height && x >= 0 && x < width {
			luma[y][x] += err * factor
		}
	}

	for y := 0; y < height; y++ {
		bits[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			old := luma[y][x]
			var target float64
			if old >= 128 {
				bits[y][x] = true
				target = 255
			}
			err := old - target
			diffuse(y, x+1, err, 7.0/16.0)
			diffuse(y+1, x-1, err, 3.0/16.0)
			diffuse(y+1, x, err, 5.0/16.0)
			diffuse(y+1, x+1, err, 1.0/16.0)
		}
	}
	return bits
}
