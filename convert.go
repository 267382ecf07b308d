package asciirender

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/qeesung/image2ascii/convert"

	"github.com/pixelgrid/asciirender/imageutil"
)

// Converter maps a preprocessed image to a text grid of the requested
// column/row size. With braille set, the converter uses 2x4-dot braille
// patterns and dithers the source pixels before mapping, which packs
// eight samples into every cell instead of one. Failures are fatal to
// the run and are never retried.
type Converter interface {
	Convert(src string, grid Dimensions, braille bool, workDir string) (TextGrid, error)
}

// ExternalConverter shells out to the ascii-image-converter tool, which
// writes its text output to a file named after the input inside the
// given directory. The child process blocks the pipeline until it
// exits; there is no timeout.
type ExternalConverter struct {
	// Binary overrides the executable name, default
	// "ascii-image-converter".
	Binary string
}

func (c ExternalConverter) Convert(src string, grid Dimensions, braille bool, workDir string) (TextGrid, error) {
	binary := c.Binary
	if binary == "" {
		binary = "ascii-image-converter"
	}

	cmd := exec.Command(binary, converterArgs(src, grid, braille, workDir)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrConversionFailed, binary, err, output)
	}

	art, err := ReadTextGrid(convertedTextPath(src, workDir))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}
	return art, nil
}

// converterArgs builds the ascii-image-converter argument list for a
// fixed COLUMNS,ROWS conversion saved as text into dir.
func converterArgs(src string, grid Dimensions, braille bool, dir string) []string {
	args := []string{
		"--only-save",
		"--dimensions", fmt.Sprintf("%d,%d", grid.Width, grid.Height),
		"--save-txt", dir,
	}
	if braille {
		args = append(args, "--braille", "--dither")
	}
	return append(args, src)
}

// convertedTextPath is the output filename ascii-image-converter
// derives from its input: "<base>-ascii-art.txt" in the save directory.
func convertedTextPath(src, dir string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"-ascii-art.txt")
}

// PixelConverter converts in-process. Printable-character mode samples
// the image down to one luminance ramp character per cell; braille mode
// dithers the image at 2x4 samples per cell and emits braille patterns.
type PixelConverter struct{}

func (PixelConverter) Convert(src string, grid Dimensions, braille bool, workDir string) (TextGrid, error) {
	img, err := imageutil.LoadImage(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	if braille {
		return encodeBraille(img, grid), nil
	}

	opts := convert.DefaultOptions
	opts.FixedWidth = grid.Width
	opts.FixedHeight = grid.Height
	opts.FitScreen = false
	opts.Colored = false

	converter := convert.NewImageConverter()
	text := strings.TrimRight(converter.Image2ASCIIString(img.RGBA, &opts), "\n")
	return TextGrid(strings.Split(text, "\n")), nil
}
