package asciirender

import (
	"errors"

	"github.com/pixelgrid/asciirender/imageutil"
)

// Sentinel errors returned by the rendering pipeline. Callers can test
// for them with errors.Is; every one of them is fatal to a run.
var (
	ErrInvalidColorFormat      = errors.New("invalid color format")
	ErrInvalidResolutionFormat = errors.New("invalid resolution format")
	ErrFontLoad                = errors.New("failed to load font")
	ErrDegenerateFontMetrics   = errors.New("degenerate font metrics")
	ErrCanvasTooSmall          = errors.New("canvas smaller than one character cell")
	ErrPreprocessFailed        = errors.New("image preprocessing failed")
	ErrConversionFailed        = errors.New("ascii conversion failed")
	ErrOutputWrite             = errors.New("failed to write output")
)

// ErrUnsupportedOutputFormat is reported when the output file extension
// does not map to a known image encoder.
var ErrUnsupportedOutputFormat = imageutil.ErrUnsupportedFormat
