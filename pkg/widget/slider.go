package widget

import (
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// HSlider is a horizontal slider for a value in [0, 1] bound to b. It spans
// the width it is given. Dragging across the whole width moves the value from
// one end to the other.
func HSlider(b rt.Binding[float64]) rt.Node { return slider(b, false) }

// VSlider is a vertical slider. The value grows upwards.
func VSlider(b rt.Binding[float64]) rt.Node { return slider(b, true) }

func slider(b rt.Binding[float64], vertical bool) rt.Node {
	return rt.WithState(func() float64 { return 0 }, func(length rt.State[float64], c *rt.Context) rt.Node {
		l := length.Get(c)
		v := b.Get(c)
		track := themed(func(th ui.Theme, c *rt.Context) rt.Node {
			return &bar{vertical: vertical, draw: func(r layout.Rect) *paint.Scene {
				return drawSlider(r, v, vertical, th)
			}}
		})
		measured := rt.Geom(track, func(c *rt.Context, size layout.Size) {
			if vertical {
				length.Set(c, size.H)
			} else {
				length.Set(c, size.W)
			}
		})
		return rt.DragBinding(measured, b, func(v *float64, d layout.Vec) {
			if l <= 0 {
				return
			}
			if vertical {
				*v = clamp(*v-d.Y/l, 0, 1)
			} else {
				*v = clamp(*v+d.X/l, 0, 1)
			}
		})
	})
}

func drawSlider(r layout.Rect, v float64, vertical bool, th ui.Theme) *paint.Scene {
	s := paint.NewScene()
	s.FillRect(r, th.Control)
	if vertical {
		filled := r.Height() * v
		s.FillRect(layout.Rect{Min: layout.Pt(r.Min.X, r.Max.Y-filled), Max: r.Max}, th.Highlight)
		y := clamp(r.Max.Y-filled, r.Min.Y, r.Max.Y-1)
		s.FillRect(layout.RectAt(layout.Pt(r.Min.X, y), layout.Sz(r.Width(), 1)), th.Thumb)
	} else {
		filled := r.Width() * v
		s.FillRect(layout.Rect{Min: r.Min, Max: layout.Pt(r.Min.X+filled, r.Max.Y)}, th.Highlight)
		x := clamp(r.Min.X+filled, r.Min.X, r.Max.X-1)
		s.FillRect(layout.RectAt(layout.Pt(x, r.Min.Y), layout.Sz(1, r.Height())), th.Thumb)
	}
	return s
}
