package asciirender

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/pixelgrid/asciirender/imageutil"
)

func TestMagickArgs(t *testing.T) {
	got := magickArgs("in.jpg", Dimensions{1280, 720}, "/tmp/work/cropped.png")
	want := []string{
		"in.jpg",
		"-resize", "1280x720^",
		"-gravity", "center",
		"-extent", "1280x720",
		"/tmp/work/cropped.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("magickArgs = %v, want %v", got, want)
	}
}

func TestMagickPreprocessorFailure(t *testing.T) {
	p := MagickPreprocessor{Binary: "definitely-not-a-real-binary"}
	_, err := p.Preprocess("in.jpg", Dimensions{100, 100}, t.TempDir())
	if !errors.Is(err, ErrPreprocessFailed) {
		t.Errorf("Expected ErrPreprocessFailed, got %v", err)
	}
}

// A fake magick that copies its input to its output exercises the full
// shell-out path without requiring ImageMagick.
func TestMagickPreprocessorFakeBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}
	binDir := t.TempDir()
	fake := filepath.Join(binDir, "magick")
	script := "#!/bin/sh\n" +
		"src=$1\n" +
		"for out; do :; done\n" +
		"cp \"$src\" \"$out\"\n"
	if err := os.WriteFile(fake, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	workDir := t.TempDir()
	src := filepath.Join(workDir, "src.png")
	img := imageutil.CreateSolidImage(8, 8, imageutil.RGB{R: 200, G: 100, B: 50})
	if err := imageutil.SavePNG(img.RGBA, src); err != nil {
		t.Fatal(err)
	}

	p := MagickPreprocessor{Binary: fake}
	out, err := p.Preprocess(src, Dimensions{8, 8}, workDir)
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Expected preprocessed output at %s: %v", out, err)
	}
}

func TestCoverPreprocessor(t *testing.T) {
	workDir := t.TempDir()
	src := filepath.Join(workDir, "src.png")
	// A wide source forces the crop to trim the horizontal overflow.
	img := imageutil.CreateGradientImage(200, 50)
	if err := imageutil.SavePNG(img.RGBA, src); err != nil {
		t.Fatal(err)
	}

	canvas := Dimensions{Width: 60, Height: 40}
	out, err := CoverPreprocessor{}.Preprocess(src, canvas, workDir)
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	cropped, err := imageutil.LoadImage(out)
	if err != nil {
		t.Fatalf("Failed to load preprocessed output: %v", err)
	}
	if cropped.Width() != canvas.Width || cropped.Height() != canvas.Height {
		t.Errorf("Expected %s output, got %dx%d", canvas, cropped.Width(), cropped.Height())
	}
}

func TestCoverPreprocessorMissingSource(t *testing.T) {
	_, err := CoverPreprocessor{}.Preprocess(
		filepath.Join(t.TempDir(), "missing.png"), Dimensions{10, 10}, t.TempDir())
	if !errors.Is(err, ErrPreprocessFailed) {
		t.Errorf("Expected ErrPreprocessFailed, got %v", err)
	}
}

func TestCoverPreprocessorSharpen(t *testing.T) {
	workDir := t.TempDir()
	src := filepath.Join(workDir, "src.png")
	img := imageutil.CreateCheckerboardImage(64, 64, 8)
	if err := imageutil.SavePNG(img.RGBA, src); err != nil {
		t.Fatal(err)
	}

	canvas := Dimensions{Width: 32, Height: 32}
	out, err := CoverPreprocessor{Sharpen: true}.Preprocess(src, canvas, workDir)
	if err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	sharpened, err := imageutil.LoadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if sharpened.Width() != canvas.Width || sharpened.Height() != canvas.Height {
		t.Errorf("Expected %s output, got %dx%d", canvas, sharpened.Width(), sharpened.Height())
	}
}
