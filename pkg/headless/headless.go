// Package headless contains the subprograms that render a view tree without
// running a terminal host: printing a single frame, and replaying a journal.
package headless

import (
	"fmt"
	"io"
	"os"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/sys"
)

// DefaultSize is the frame size used when it can't be determined otherwise.
var DefaultSize = layout.Sz(80, 24)

// Writes the grid to f. Terminals get the styled rendition.
func printGrid(f *os.File, g *paint.Grid) error {
	var s string
	if sys.IsATTY(f.Fd()) {
		s = g.TTYString()
	} else {
		s = g.String()
	}
	_, err := io.WriteString(f, s)
	return err
}

func parseSize(s string) (layout.Size, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return layout.Size{}, fmt.Errorf("bad -size %q, want WxH", s)
	}
	return layout.Sz(float64(w), float64(h)), nil
}

// Size of the terminal f, or DefaultSize.
func termSize(f *os.File) layout.Size {
	row, col := sys.WinSize(f)
	if row <= 0 || col <= 0 {
		return DefaultSize
	}
	return layout.Sz(float64(col), float64(row))
}

func rasterize(scene *paint.Scene, size layout.Size) *paint.Grid {
	return paint.Rasterize(scene, int(size.W), int(size.H))
}
