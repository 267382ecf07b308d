package asciirender

import (
	"fmt"
	"image"
	"os/exec"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/pixelgrid/asciirender/imageutil"
)

// Preprocessor resizes and center-crops a source image to exactly the
// canvas dimensions, writing the result under workDir and returning its
// path. Implementations may shell out to an external tool or work
// in-process; failures are fatal to the run and are never retried.
type Preprocessor interface {
	Preprocess(src string, canvas Dimensions, workDir string) (string, error)
}

// MagickPreprocessor shells out to ImageMagick. The source is scaled so
// its shorter side matches the canvas ("^" fill geometry) and then
// center-cropped to the exact canvas extent. The child process blocks
// the pipeline until it exits; there is no timeout.
type MagickPreprocessor struct {
	// Binary overrides the executable name, default "magick".
	Binary string
}

func (p MagickPreprocessor) Preprocess(src string, canvas Dimensions, workDir string) (string, error) {
	binary := p.Binary
	if binary == "" {
		binary = "magick"
	}
	out := filepath.Join(workDir, "cropped.png")

	cmd := exec.Command(binary, magickArgs(src, canvas, out)...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: %s: %v: %s", ErrPreprocessFailed, binary, err, output)
	}
	return out, nil
}

// magickArgs builds the ImageMagick argument list for an aspect-fill
// resize followed by a center crop to the exact canvas size.
func magickArgs(src string, canvas Dimensions, out string) []string {
	geometry := canvas.String()
	return []string{
		src,
		"-resize", geometry + "^",
		"-gravity", "center",
		"-extent", geometry,
		out,
	}
}

// CoverPreprocessor is the in-process equivalent of MagickPreprocessor:
// Lanczos aspect-fill scaling followed by a center crop. With Sharpen
// set, a mild sharpening kernel runs after the crop, which helps keep
// edges visible once the converter collapses pixel blocks to characters.
type CoverPreprocessor struct {
	Sharpen bool
}

func (p CoverPreprocessor) Preprocess(src string, canvas Dimensions, workDir string) (string, error) {
	img, err := imageutil.LoadImage(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreprocessFailed, err)
	}

	covered := coverResize(img.RGBA, canvas)
	cropped := imageutil.CropCenter(imageutil.RGBAImageFromImage(covered), canvas.Width, canvas.Height)
	if p.Sharpen {
		cropped = imageutil.Sharpen(cropped)
	}

	out := filepath.Join(workDir, "cropped.png")
	if err := imageutil.SavePNG(cropped.RGBA, out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreprocessFailed, err)
	}
	return out, nil
}

// coverResize scales an image so that it covers the canvas in both
// axes, preserving aspect ratio. The longer relative side overflows and
// is trimmed by the subsequent center crop.
func coverResize(img image.Image, canvas Dimensions) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	scaleX := float64(canvas.Width) / float64(srcW)
	scaleY := float64(canvas.Height) / float64(srcH)
	scale := scaleX
	if scaleY > scale {
		scale = scaleY
	}

	width := int(float64(srcW)*scale + 0.5)
	height := int(float64(srcH)*scale + 0.5)
	if width < canvas.Width {
		width = canvas.Width
	}
	if height < canvas.Height {
		height = canvas.Height
	}

	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}
