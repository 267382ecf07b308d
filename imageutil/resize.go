package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, a high-quality choice for
	// downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// CropCenter returns the centered width x height region of an image.
// A source smaller than the requested size in either axis is returned
// unchanged in that axis.
func CropCenter(img *RGBAImage, width, height int) *RGBAImage {
	srcW, srcH := img.Width(), img.Height()
	if width > srcW {
		width = srcW
	}
	if height > srcH {
		height = srcH
	}

	x0 := (srcW - width) / 2
	y0 := (srcH - height) / 2

	dst := NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dst.SetRGBA(x, y, img.RGBAAt(x0+x, y0+y))
		}
	}
	return dst
}
