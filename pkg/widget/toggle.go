package widget

import (
	"time"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// ToggleDuration is the time the knob of a Toggle takes to move across.
const ToggleDuration = 150 * time.Millisecond

// ToggleSize is the size of a Toggle.
var ToggleSize = layout.Sz(4, 1)

// Toggle is a switch bound to b. Tapping it flips the value; the knob slides
// to its new side over ToggleDuration.
func Toggle(b rt.Binding[bool]) rt.Node {
	return rt.WithContext(func(c *rt.Context) rt.Node {
		on := b.Get(c)
		return rt.WithState(func() float64 { return knobTarget(on) }, func(pos rt.State[float64], c *rt.Context) rt.Node {
			x := pos.Get(c)
			face := themed(func(th ui.Theme, c *rt.Context) rt.Node {
				return rt.Sized(rt.Canvas(func(c *rt.Context, r layout.Rect) *paint.Scene {
					s := paint.NewScene()
					track := th.Control
					if on {
						track = th.Highlight
					}
					s.FillRect(r, track)
					kx := r.Min.X + x*(r.Width()-1)
					s.FillRect(layout.RectAt(layout.Pt(kx, r.Min.Y), layout.Sz(1, r.Height())), th.Thumb)
					return s
				}), ToggleSize)
			})
			return rt.Anim(rt.Tap(face, func(c *rt.Context) { *b.Mut(c) = !on }),
				func(c *rt.Context, dt time.Duration) {
					target := knobTarget(on)
					if x == target {
						return
					}
					step := float64(dt) / float64(ToggleDuration)
					if x < target {
						pos.Set(c, min(x+step, target))
					} else {
						pos.Set(c, max(x-step, target))
					}
				})
		})
	})
}

func knobTarget(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
