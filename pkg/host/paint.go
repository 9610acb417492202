package host

import (
	"github.com/gdamore/tcell/v2"

	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/ui"
)

func convertColor(c ui.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	if i, ok := ui.PaletteIndex(c); ok {
		return tcell.PaletteColor(i)
	}
	if r, g, b, ok := ui.RGB(c); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func convertStyle(s ui.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background)).
		Bold(s.Bold).
		Dim(s.Dim).
		Italic(s.Italic).
		Underline(s.Underlined).
		Blink(s.Blink).
		Reverse(s.Inverse)
}

// Copies g onto the screen. The second half of a wide character is left to
// the screen.
func drawGrid(s tcell.Screen, g *paint.Grid) {
	for y, line := range g.Lines {
		for x, cell := range line {
			if cell.Text == "" {
				continue
			}
			rs := []rune(cell.Text)
			s.SetContent(x, y, rs[0], rs[1:], convertStyle(cell.Style))
		}
	}
}

type titleSetter interface{ SetTitle(string) }

// Sets the terminal title, if the screen supports it.
func setTitle(s tcell.Screen, title string) bool {
	if ts, ok := s.(titleSetter); ok {
		ts.SetTitle(title)
		return true
	}
	return false
}
