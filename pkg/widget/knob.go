package widget

import (
	"fmt"
	"math"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// KnobTravel is how far a drag has to go, right or up, to turn a Knob from 0
// to 1.
const KnobTravel = 20

// KnobSize is the size of a Knob.
var KnobSize = layout.Sz(7, 3)

// Knob is a dial for a value in [0, 1] bound to b. Dragging right or up turns
// it up.
func Knob(b rt.Binding[float64]) rt.Node {
	return rt.WithContext(func(c *rt.Context) rt.Node {
		v := b.Get(c)
		face := themed(func(th ui.Theme, c *rt.Context) rt.Node {
			return rt.Sized(rt.Canvas(func(c *rt.Context, r layout.Rect) *paint.Scene {
				s := paint.NewScene()
				radius := min(r.Width(), r.Height()) / 2
				s.FillCircle(r.Center(), radius, th.Control)
				// The dial goes from 7 o'clock to 5 o'clock.
				angle := math.Pi*0.75 + v*math.Pi*1.5
				tip := r.Center().Add(layout.V(math.Cos(angle), math.Sin(angle)).Scale(radius))
				s.FillRect(layout.RectAround(tip, layout.Sz(1, 1)), th.Thumb)
				label := fmt.Sprintf("%d%%", int(math.Round(v*100)))
				s.Text(layout.Pt(r.Center().X-float64(paint.TextWidth(label))/2, r.Center().Y),
					label, ui.Style{Foreground: th.Text})
				return s
			}), KnobSize)
		})
		return rt.DragBinding(face, b, func(v *float64, d layout.Vec) {
			*v = clamp(*v+(d.X-d.Y)/KnobTravel, 0, 1)
		})
	})
}
