// Command ascii-img-render renders a source image as ASCII art onto a
// fixed-resolution PNG. The image is resized and center-cropped to the
// target canvas, converted to a character grid sized so the grid
// exactly tiles the canvas for the chosen font, and rasterized character
// row by character row.
//
//	ascii-img-render -i photo.jpg -p 1080p -o ascii_bg.png
//	ascii-img-render -i photo.jpg -r 1280x720 -f Terminus.ttf -s 24 -c ff0000 -B 000000 -o ascii_bg.png
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/pixelgrid/asciirender"
)

func main() {
	input := flag.StringP("input", "i", "", "input image path (required)")
	preset := flag.StringP("preset", "p", "", "resolution preset: "+strings.Join(asciirender.PresetNames(), ", "))
	resolution := flag.StringP("resolution", "r", "", "custom resolution WIDTHxHEIGHT (e.g. 1920x1080)")
	fontPath := flag.StringP("font", "f", "", "path to TTF font file (default: bundled monospace font)")
	fontSize := flag.IntP("size", "s", asciirender.DefaultFontSize, "font size in pts")
	fgHex := flag.StringP("color", "c", "ffffff", "text color in RRGGBB or RGB format (without \"#\")")
	bgHex := flag.StringP("bg", "B", "000000", "background color in RRGGBB or RGB format (without \"#\")")
	braille := flag.BoolP("braille", "b", false, "use braille rendering with dithering")
	output := flag.StringP("output", "o", "", "output PNG file path (required)")
	flag.Parse()

	if *input == "" || *output == "" {
		fatal("both --input and --output are required")
	}
	if (*preset == "") == (*resolution == "") {
		fatal("exactly one of --preset or --resolution must be given")
	}

	// Input must exist and be a regular file before anything runs.
	info, err := os.Stat(*input)
	if err != nil {
		fatal("input file %s not found", *input)
	}
	if !info.Mode().IsRegular() {
		fatal("%s is not a file", *input)
	}

	var canvas asciirender.Dimensions
	if *preset != "" {
		canvas, err = asciirender.ResolvePreset(*preset)
	} else {
		canvas, err = asciirender.ParseResolution(*resolution)
	}
	if err != nil {
		fatal("%v", err)
	}

	fg, err := asciirender.ParseHexColor(*fgHex)
	if err != nil {
		fatal("%v", err)
	}
	bg, err := asciirender.ParseHexColor(*bgHex)
	if err != nil {
		fatal("%v", err)
	}

	outputPath, err := resolveOutputPath(*output)
	if err != nil {
		fatal("%v", err)
	}

	r := asciirender.NewRenderer(canvas,
		asciirender.WithFont(*fontPath, *fontSize),
		asciirender.WithColors(fg, bg),
		asciirender.WithBraille(*braille),
	)

	if err := r.Render(*input, outputPath); err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Successfully saved at %s\n", outputPath)
}

// resolveOutputPath validates the output location before any rendering
// work happens. A missing parent directory and an output path that is
// an existing directory are both fatal; an unwritable parent falls back
// to the current working directory with a warning, the one recoverable
// input error.
func resolveOutputPath(path string) (string, error) {
	parent := filepath.Dir(path)

	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return "", fmt.Errorf("output directory %s does not exist", parent)
	}

	if !dirWritable(parent) {
		fallback := filepath.Join(".", filepath.Base(path))
		fmt.Fprintf(os.Stderr,
			"No write permission in %s, saving to current directory instead: %s\n",
			parent, fallback)
		path = fallback
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", fmt.Errorf("invalid path: %s is a directory", path)
	}

	return path, nil
}

// dirWritable probes write permission by creating and removing a
// temporary file, which works uniformly across platforms.
func dirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".ascii-img-render-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
