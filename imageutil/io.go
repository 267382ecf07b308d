package imageutil

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/tiff" // Register TIFF decoder
)

// ErrUnsupportedFormat is returned by SaveImage when the output file
// extension does not map to a known encoder.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, and TIFF formats.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return RGBAImageFromImage(img), nil
}

// SaveImage saves an image to the specified path. The format is
// selected by file extension (png, jpg/jpeg, gif); any other extension
// fails with ErrUnsupportedFormat before the file is created.
func SaveImage(img image.Image, path string) error {
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
		}
	case ".gif":
		encode = func(f *os.File) error { return gif.Encode(f, img, nil) }
	default:
		return fmt.Errorf("%w: %q (expected .png, .jpg, or .gif)",
			ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return encode(f)
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, img)
}
