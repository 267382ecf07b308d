package asciirender

import (
	"fmt"
	"os"
	"strings"
)

// TextGrid is an ordered sequence of text rows produced by an ascii
// converter. Every row is intended to have the same printable length,
// though the rasterizer tolerates short rows and missing trailing rows.
type TextGrid []string

// Rows returns the number of rows in the grid.
func (g TextGrid) Rows() int {
	return len(g)
}

// ReadTextGrid reads a newline-terminated ascii art file into a
// TextGrid. Trailing newlines are stripped first so a terminating
// newline never becomes an empty drawn row.
func ReadTextGrid(path string) (TextGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimRight(string(data), "\n")
	return TextGrid(strings.Split(text, "\n")), nil
}

// FitGrid computes the character grid that covers a pixel canvas with
// cells of the given size. The division floors: any remainder strip at
// the right or bottom edge stays background-colored, the grid is never
// scaled to fill it. A canvas smaller than one cell in either axis
// fails with ErrCanvasTooSmall.
func FitGrid(canvas Dimensions, cell CellMetrics) (Dimensions, error) {
	if cell.Width < 1 || cell.Height < 1 {
		return Dimensions{}, fmt.Errorf("%w: cell is %dx%d",
			ErrDegenerateFontMetrics, cell.Width, cell.Height)
	}

	grid := Dimensions{
		Width:  canvas.Width / cell.Width,
		Height: canvas.Height / cell.Height,
	}
	if grid.Width == 0 || grid.Height == 0 {
		return Dimensions{}, fmt.Errorf("%w: canvas %s, cell %dx%d",
			ErrCanvasTooSmall, canvas, cell.Width, cell.Height)
	}
	return grid, nil
}
