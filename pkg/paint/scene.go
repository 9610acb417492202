// Package paint describes what a view tree draws, independent of how it ends
// up on a screen.
//
// A Scene is a list of drawing operations in the coordinate space of the node
// that produced it. Composite nodes build their scene by appending the scenes
// of their children, translated by the children's offsets.
package paint

import (
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/ui"
)

// Op is a drawing operation.
type Op interface {
	// Translated returns the operation moved by v.
	Translated(v layout.Vec) Op
	// Bounds returns the area the operation may touch.
	Bounds() layout.Rect
	rasterize(g *Grid)
}

// FillRect paints a rectangle.
type FillRect struct {
	Rect  layout.Rect
	Color ui.Color
}

func (op FillRect) Translated(v layout.Vec) Op {
	op.Rect = op.Rect.Translate(v)
	return op
}

func (op FillRect) Bounds() layout.Rect { return op.Rect }

// StrokeRect paints the outline of a rectangle.
type StrokeRect struct {
	Rect  layout.Rect
	Color ui.Color
}

func (op StrokeRect) Translated(v layout.Vec) Op {
	op.Rect = op.Rect.Translate(v)
	return op
}

func (op StrokeRect) Bounds() layout.Rect { return op.Rect }

// FillCircle paints a disk.
type FillCircle struct {
	Center layout.Point
	Radius float64
	Color  ui.Color
}

func (op FillCircle) Translated(v layout.Vec) Op {
	op.Center = op.Center.Add(v)
	return op
}

func (op FillCircle) Bounds() layout.Rect {
	return layout.RectAround(op.Center, layout.Sz(2*op.Radius, 2*op.Radius))
}

// Text paints a single line of text with its top-left corner at Pos.
type Text struct {
	Pos   layout.Point
	Text  string
	Style ui.Style
}

func (op Text) Translated(v layout.Vec) Op {
	op.Pos = op.Pos.Add(v)
	return op
}

func (op Text) Bounds() layout.Rect {
	return layout.RectAt(op.Pos, layout.Sz(float64(TextWidth(op.Text)), 1))
}

// Scene is an ordered list of operations. Later operations paint over
// earlier ones. The zero value is an empty scene ready to use.
type Scene struct {
	Ops []Op
}

// NewScene returns an empty scene.
func NewScene() *Scene { return &Scene{} }

// Add appends operations to the scene.
func (s *Scene) Add(ops ...Op) { s.Ops = append(s.Ops, ops...) }

func (s *Scene) FillRect(r layout.Rect, c ui.Color) { s.Add(FillRect{r, c}) }

func (s *Scene) StrokeRect(r layout.Rect, c ui.Color) { s.Add(StrokeRect{r, c}) }

func (s *Scene) FillCircle(center layout.Point, radius float64, c ui.Color) {
	s.Add(FillCircle{center, radius, c})
}

func (s *Scene) Text(p layout.Point, text string, st ui.Style) { s.Add(Text{p, text, st}) }

// Append adds the operations of other, translated by off. A nil other is
// treated as empty.
func (s *Scene) Append(other *Scene, off layout.Vec) {
	if other == nil {
		return
	}
	for _, op := range other.Ops {
		if off.IsZero() {
			s.Ops = append(s.Ops, op)
		} else {
			s.Ops = append(s.Ops, op.Translated(off))
		}
	}
}

// Len returns the number of operations.
func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Ops)
}

// Bounds returns the smallest rectangle containing the bounds of every
// operation.
func (s *Scene) Bounds() layout.Rect {
	var b layout.Rect
	for i, op := range s.Ops {
		ob := op.Bounds()
		if i == 0 {
			b = ob
			continue
		}
		b.Min.X = min(b.Min.X, ob.Min.X)
		b.Min.Y = min(b.Min.Y, ob.Min.Y)
		b.Max.X = max(b.Max.X, ob.Max.X)
		b.Max.Y = max(b.Max.Y, ob.Max.Y)
	}
	return b
}
