package paint

import (
	"strings"
	"testing"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/ui"
)

func TestScene_Append(t *testing.T) {
	child := NewScene()
	child.FillRect(layout.Sz(2, 1).Rect(), ui.Red)
	child.Text(layout.Pt(0, 0), "hi", ui.Style{})

	s := NewScene()
	s.Append(child, layout.V(3, 4))
	s.Append(nil, layout.V(1, 1))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if got := s.Ops[0].(FillRect).Rect; got != layout.RectAt(layout.Pt(3, 4), layout.Sz(2, 1)) {
		t.Errorf("translated rect = %v", got)
	}
	if got := s.Ops[1].(Text).Pos; got != layout.Pt(3, 4) {
		t.Errorf("translated text position = %v", got)
	}
	if got := child.Ops[0].(FillRect).Rect.Min; got != layout.Pt(0, 0) {
		t.Errorf("Append modified the child scene: %v", got)
	}
	if got := s.Bounds(); got != layout.RectAt(layout.Pt(3, 4), layout.Sz(2, 1)) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestRasterize_Text(t *testing.T) {
	s := NewScene()
	s.Text(layout.Pt(1, 0), "abc", ui.Style{})
	s.Text(layout.Pt(0, 1), "你好", ui.Style{})
	s.Text(layout.Pt(3, 2), "overflow", ui.Style{})
	s.Text(layout.Pt(0, 5), "offscreen", ui.Style{})
	g := Rasterize(s, 5, 3)
	want := " abc\n你好\n   ov\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRasterize_Shapes(t *testing.T) {
	s := NewScene()
	s.FillRect(layout.RectAt(layout.Pt(0, 0), layout.Sz(4, 3)), ui.Blue)
	s.FillCircle(layout.Pt(2, 1.5), 0.8, ui.Red)
	s.Text(layout.Pt(0, 0), "x", ui.Style{Foreground: ui.White})
	g := Rasterize(s, 5, 3)

	cell, _ := g.At(layout.Pt(3, 2))
	if cell.Style.Background != ui.Blue {
		t.Errorf("rect cell background = %v, want blue", cell.Style.Background)
	}
	cell, _ = g.At(layout.Pt(1.5, 1.5))
	if cell.Style.Background != ui.Red {
		t.Errorf("circle cell background = %v, want red", cell.Style.Background)
	}
	cell, _ = g.At(layout.Pt(4, 0))
	if cell.Style.Background != nil {
		t.Errorf("cell outside shapes has background %v", cell.Style.Background)
	}
	cell, _ = g.At(layout.Pt(0, 0))
	if cell.Text != "x" || cell.Style.Background != ui.Blue || cell.Style.Foreground != ui.White {
		t.Errorf("text cell = %+v", cell)
	}
	if _, ok := g.At(layout.Pt(-1, 0)); ok {
		t.Errorf("At outside the grid succeeded")
	}
}

func TestRasterize_Stroke(t *testing.T) {
	s := NewScene()
	s.StrokeRect(layout.RectAt(layout.Pt(0, 0), layout.Sz(3, 3)), ui.Green)
	g := Rasterize(s, 3, 3)
	if cell, _ := g.At(layout.Pt(1, 1)); cell.Style.Background != nil {
		t.Errorf("stroke filled the inside")
	}
	if cell, _ := g.At(layout.Pt(1, 0)); cell.Style.Background != ui.Green {
		t.Errorf("stroke missed the edge")
	}
}

func TestGrid_TTYString(t *testing.T) {
	s := NewScene()
	s.Text(layout.Pt(0, 0), "ab", ui.Style{Bold: true})
	got := Rasterize(s, 3, 1).TTYString()
	want := "Width = 3, Height = 1\n" +
		"┌───┐\n" +
		"│\033[1mab\033[m │\n" +
		"└───┘\n"
	if got != want {
		t.Errorf("TTYString() =\n%s\nwant\n%s", got, want)
	}
	if !strings.HasPrefix((*Grid)(nil).TTYString(), "nil") {
		t.Errorf("TTYString of nil grid")
	}
}
