package paint

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/ui"
)

// Cell is one column of one line of a Grid. A wide character occupies its
// own cell plus a following cell with empty Text.
type Cell struct {
	Text  string
	Style ui.Style
}

// Grid is a scene rasterized into character cells, one unit of the scene per
// cell.
type Grid struct {
	Width, Height int
	Lines         [][]Cell
}

// TextWidth returns the number of cells text occupies.
func TextWidth(text string) int { return runewidth.StringWidth(text) }

// NewGrid returns a grid filled with blank cells.
func NewGrid(w, h int) *Grid {
	g := &Grid{Width: w, Height: h, Lines: make([][]Cell, h)}
	for i := range g.Lines {
		line := make([]Cell, w)
		for j := range line {
			line[j].Text = " "
		}
		g.Lines[i] = line
	}
	return g
}

// Rasterize paints scene onto a new grid of the given size. Operations are
// applied in order; a cell belongs to a shape if the center of the cell is
// inside it.
func Rasterize(scene *Scene, w, h int) *Grid {
	g := NewGrid(w, h)
	if scene != nil {
		for _, op := range scene.Ops {
			op.rasterize(g)
		}
	}
	return g
}

// Returns the range of cell indices whose centers are in [lo, hi).
func cellSpan(lo, hi float64, limit int) (int, int) {
	from := int(math.Ceil(lo - 0.5))
	to := int(math.Ceil(hi - 0.5))
	return max(from, 0), min(to, limit)
}

func (g *Grid) fill(x, y int, c ui.Color) {
	cell := &g.Lines[y][x]
	cell.Text = " "
	cell.Style = ui.Style{Background: c}
}

func (op FillRect) rasterize(g *Grid) {
	x0, x1 := cellSpan(op.Rect.Min.X, op.Rect.Max.X, g.Width)
	y0, y1 := cellSpan(op.Rect.Min.Y, op.Rect.Max.Y, g.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.fill(x, y, op.Color)
		}
	}
}

func (op StrokeRect) rasterize(g *Grid) {
	x0, x1 := cellSpan(op.Rect.Min.X, op.Rect.Max.X, g.Width)
	y0, y1 := cellSpan(op.Rect.Min.Y, op.Rect.Max.Y, g.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if y == y0 || y == y1-1 || x == x0 || x == x1-1 {
				g.fill(x, y, op.Color)
			}
		}
	}
}

func (op FillCircle) rasterize(g *Grid) {
	b := op.Bounds()
	x0, x1 := cellSpan(b.Min.X, b.Max.X, g.Width)
	y0, y1 := cellSpan(b.Min.Y, b.Max.Y, g.Height)
	r2 := op.Radius * op.Radius
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx, dy := float64(x)+0.5-op.Center.X, float64(y)+0.5-op.Center.Y
			if dx*dx+dy*dy <= r2 {
				g.fill(x, y, op.Color)
			}
		}
	}
}

func (op Text) rasterize(g *Grid) {
	y := int(math.Floor(op.Pos.Y))
	if y < 0 || y >= g.Height {
		return
	}
	x := int(math.Floor(op.Pos.X))
	for _, r := range op.Text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= g.Width {
			style := op.Style
			if style.Background == nil {
				style.Background = g.Lines[y][x].Style.Background
			}
			g.Lines[y][x] = Cell{string(r), style}
			for i := 1; i < w; i++ {
				g.Lines[y][x+i] = Cell{"", style}
			}
		}
		x += w
	}
}

// At returns the cell at p, in scene coordinates.
func (g *Grid) At(p layout.Point) (Cell, bool) {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Cell{}, false
	}
	return g.Lines[y][x], true
}

// String returns the text of the grid, one line per row, with trailing spaces
// removed.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, line := range g.Lines {
		var lb strings.Builder
		for _, cell := range line {
			lb.WriteString(cell.Text)
		}
		sb.WriteString(strings.TrimRight(lb.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TTYString returns a text representation of the grid. It uses box drawing
// characters to represent the border of the grid, and embeds SGR sequences to
// represent the style of the text.
func (g *Grid) TTYString() string {
	if g == nil {
		return "nil"
	}
	sb := new(strings.Builder)
	fmt.Fprintf(sb, "Width = %d, Height = %d\n", g.Width, g.Height)
	// Top border
	sb.WriteString("┌" + strings.Repeat("─", g.Width) + "┐\n")
	for _, line := range g.Lines {
		// Left border
		sb.WriteRune('│')
		// Content
		lastStyle := ""
		for _, cell := range line {
			style := cell.Style.SGR()
			if style != lastStyle {
				switch {
				case lastStyle == "":
					sb.WriteString("\033[" + style + "m")
				case style == "":
					sb.WriteString("\033[m")
				default:
					sb.WriteString("\033[;" + style + "m")
				}
				lastStyle = style
			}
			sb.WriteString(cell.Text)
		}
		if lastStyle != "" {
			sb.WriteString("\033[m")
		}
		// Right border and newline
		sb.WriteString("│\n")
	}
	// Bottom border
	sb.WriteString("└" + strings.Repeat("─", g.Width) + "┘\n")
	return sb.String()
}
