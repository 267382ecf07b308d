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

func TestConverterArgs(t *testing.T) {
	got := converterArgs("cropped.png", Dimensions{160, 45}, false, "/tmp/work")
	want := []string{
		"--only-save",
		"--dimensions", "160,45",
		"--save-txt", "/tmp/work",
		"cropped.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("converterArgs = %v, want %v", got, want)
	}
}

func TestConverterArgsBraille(t *testing.T) {
	got := converterArgs("cropped.png", Dimensions{80, 24}, true, "/w")
	want := []string{
		"--only-save",
		"--dimensions", "80,24",
		"--save-txt", "/w",
		"--braille", "--dither",
		"cropped.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("converterArgs = %v, want %v", got, want)
	}
}

func TestConvertedTextPath(t *testing.T) {
	cases := []struct {
		src, dir, want string
	}{
		{"/work/cropped.png", "/work", filepath.Join("/work", "cropped-ascii-art.txt")},
		{"/work/cropped", "/work", filepath.Join("/work", "cropped-ascii-art.txt")},
		{"photo.jpeg", "/out", filepath.Join("/out", "photo-ascii-art.txt")},
	}
	for _, c := range cases {
		if got := convertedTextPath(c.src, c.dir); got != c.want {
			t.Errorf("convertedTextPath(%q, %q) = %q, want %q", c.src, c.dir, got, c.want)
		}
	}
}

func TestExternalConverterFailure(t *testing.T) {
	c := ExternalConverter{Binary: "definitely-not-a-real-binary"}
	_, err := c.Convert("in.png", Dimensions{10, 5}, false, t.TempDir())
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("Expected ErrConversionFailed, got %v", err)
	}
}

// A fake converter that writes the expected text file exercises the
// full shell-out and output-discovery path.
func TestExternalConverterFakeBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}
	binDir := t.TempDir()
	fake := filepath.Join(binDir, "ascii-image-converter")
	script := "#!/bin/sh\n" +
		"dir=\n" +
		"prev=\n" +
		"for arg; do\n" +
		"  if [ \"$prev\" = --save-txt ]; then dir=$arg; fi\n" +
		"  prev=$arg\n" +
		"  src=$arg\n" +
		"done\n" +
		"base=$(basename \"$src\")\n" +
		"base=${base%.*}\n" +
		"printf '##\\n..\\n' > \"$dir/$base-ascii-art.txt\"\n"
	if err := os.WriteFile(fake, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	workDir := t.TempDir()
	art, err := ExternalConverter{Binary: fake}.Convert(
		filepath.Join(workDir, "cropped.png"), Dimensions{2, 2}, false, workDir)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if art.Rows() != 2 || art[0] != "##" || art[1] != ".." {
		t.Errorf("Unexpected grid: %q", art)
	}
}

func TestPixelConverter(t *testing.T) {
	workDir := t.TempDir()
	src := filepath.Join(workDir, "img.png")
	img := imageutil.CreateGradientImage(100, 40)
	if err := imageutil.SavePNG(img.RGBA, src); err != nil {
		t.Fatal(err)
	}

	grid := Dimensions{Width: 20, Height: 8}
	art, err := PixelConverter{}.Convert(src, grid, false, workDir)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if art.Rows() != grid.Height {
		t.Errorf("Expected %d rows, got %d", grid.Height, art.Rows())
	}
}

func TestPixelConverterBraille(t *testing.T) {
	workDir := t.TempDir()
	src := filepath.Join(workDir, "img.png")
	img := imageutil.CreateCheckerboardImage(64, 64, 8)
	if err := imageutil.SavePNG(img.RGBA, src); err != nil {
		t.Fatal(err)
	}

	grid := Dimensions{Width: 16, Height: 8}
	art, err := PixelConverter{}.Convert(src, grid, true, workDir)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if art.Rows() != grid.Height {
		t.Fatalf("Expected %d rows, got %d", grid.Height, art.Rows())
	}
	for i, row := range art {
		if got := len([]rune(row)); got != grid.Width {
			t.Errorf("Row %d: expected %d columns, got %d", i, grid.Width, got)
		}
	}
}

func TestPixelConverterMissingSource(t *testing.T) {
	_, err := PixelConverter{}.Convert(
		filepath.Join(t.TempDir(), "missing.png"), Dimensions{4, 4}, false, t.TempDir())
	if !errors.Is(err, ErrConversionFailed) {
		t.Errorf("Expected ErrConversionFailed, got %v", err)
	}
}
