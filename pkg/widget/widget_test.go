package widget

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

func drag(c *rt.Context, root rt.Node, from layout.Point, by layout.Vec) {
	to := from.Add(by)
	c.Process(root, rt.TouchBegin{Slot: 0, Pos: from})
	c.Process(root, rt.TouchMove{Slot: 0, Pos: to, Delta: by})
	c.Process(root, rt.TouchEnd{Slot: 0, Pos: to})
}

func withValue[S any](init S, body func(b rt.State[S]) rt.Node) (rt.Node, *rt.State[S]) {
	var s rt.State[S]
	return rt.WithState(func() S { return init }, func(st rt.State[S], c *rt.Context) rt.Node {
		s = st
		return body(st)
	}), &s
}

func TestHSlider_Drag(t *testing.T) {
	root, v := withValue(0.5, func(b rt.State[float64]) rt.Node { return HSlider(b) })
	c := rt.NewContext()
	size := layout.Sz(400, 1)
	c.Render(root, size)

	drag(c, root, layout.Pt(200, 0.5), layout.V(50, 0))
	assert.Equal(t, 0.625, v.Get(c))

	c.Update(root, size)
	c.Render(root, size)
	drag(c, root, layout.Pt(200, 0.5), layout.V(1000, 0))
	assert.Equal(t, 1.0, v.Get(c))

	drag(c, root, layout.Pt(200, 0.5), layout.V(-2000, 0))
	assert.Equal(t, 0.0, v.Get(c))
}

func TestVSlider_UpIncreases(t *testing.T) {
	root, v := withValue(0.0, func(b rt.State[float64]) rt.Node { return VSlider(b) })
	c := rt.NewContext()
	c.Render(root, layout.Sz(1, 40))
	drag(c, root, layout.Pt(0.5, 30), layout.V(0, -10))
	assert.Equal(t, 0.25, v.Get(c))
}

func TestSlider_Paints(t *testing.T) {
	root, _ := withValue(0.5, func(b rt.State[float64]) rt.Node { return HSlider(b) })
	c := rt.NewContext()
	g := paint.Rasterize(c.Render(root, layout.Sz(10, 1)), 10, 1)
	th := ui.DefaultTheme()
	cell, _ := g.At(layout.Pt(2, 0))
	assert.Equal(t, th.Highlight, cell.Style.Background)
	cell, _ = g.At(layout.Pt(5, 0))
	assert.Equal(t, th.Thumb, cell.Style.Background)
	cell, _ = g.At(layout.Pt(8, 0))
	assert.Equal(t, th.Control, cell.Style.Background)
}

func TestToggle_FlipsAndAnimates(t *testing.T) {
	root, on := withValue(false, func(b rt.State[bool]) rt.Node { return Toggle(b) })
	c := rt.NewContext(rt.WithFrameInterval(50 * time.Millisecond))
	size := ToggleSize
	c.Render(root, size)

	c.Process(root, rt.TouchBegin{Slot: 0, Pos: layout.Pt(1, 0.5)})
	c.Process(root, rt.TouchEnd{Slot: 0, Pos: layout.Pt(1, 0.5)})
	assert.True(t, on.Get(c))

	knob := func() float64 {
		g := paint.Rasterize(c.Render(root, size), 4, 1)
		for x := 0; x < 4; x++ {
			if cell, _ := g.At(layout.Pt(float64(x), 0)); cell.Style.Background == ui.DefaultTheme().Thumb {
				return float64(x)
			}
		}
		return -1
	}
	assert.Equal(t, 0.0, knob())
	for i := 0; i < 3; i++ {
		c.Update(root, size)
	}
	assert.Equal(t, 3.0, knob())
	// Stays put once there.
	assert.False(t, c.Update(root, size))
}

func TestButton(t *testing.T) {
	n := 0
	root := Button("OK", func(*rt.Context) { n++ })
	c := rt.NewContext()
	g := paint.Rasterize(c.Render(root, layout.Sz(10, 1)), 10, 1)
	assert.Equal(t, " OK\n", g.String())

	c.Process(root, rt.TouchBegin{Slot: 0, Pos: layout.Pt(0.5, 0.5)})
	c.Process(root, rt.TouchEnd{Slot: 0, Pos: layout.Pt(3.5, 0.5)})
	assert.Equal(t, 1, n)

	c.Process(root, rt.TouchBegin{Slot: 0, Pos: layout.Pt(6, 0.5)})
	c.Process(root, rt.TouchEnd{Slot: 0, Pos: layout.Pt(6, 0.5)})
	assert.Equal(t, 1, n)
}

func TestText_Size(t *testing.T) {
	c := rt.NewContext()
	c.Render(Text("ab\n你好吗"), layout.Sz(100, 100))
	assert.Equal(t, layout.Sz(6, 2), c.Box(ident.Path{0, 0}).Rect.Size())
}

func TestWithTheme(t *testing.T) {
	th := ui.DefaultTheme()
	th.Control = ui.Magenta
	c := rt.NewContext()
	g := paint.Rasterize(c.Render(WithTheme(Rectangle(ui.Red), th), layout.Sz(2, 1)), 2, 1)
	cell, _ := g.At(layout.Pt(0, 0))
	assert.Equal(t, ui.Red, cell.Style.Background)

	root, _ := withValue(0.0, func(b rt.State[float64]) rt.Node { return HSlider(b) })
	g = paint.Rasterize(c.Render(WithTheme(root, th), layout.Sz(4, 1)), 4, 1)
	cell, _ = g.At(layout.Pt(3, 0))
	assert.Equal(t, ui.Magenta, cell.Style.Background)
}

func TestCircle_HitTest(t *testing.T) {
	c := rt.NewContext()
	root := Circle(ui.Blue)
	c.Render(root, layout.Sz(10, 10))
	_, ok := c.HitTest(root, layout.Pt(5, 5))
	assert.True(t, ok)
	_, ok = c.HitTest(root, layout.Pt(0.5, 0.5))
	assert.False(t, ok)
}

func TestKnob(t *testing.T) {
	root, v := withValue(0.5, func(b rt.State[float64]) rt.Node { return Knob(b) })
	c := rt.NewContext()
	c.Render(root, layout.Sz(20, 20))
	drag(c, root, layout.Pt(3, 1), layout.V(0, -5))
	assert.Equal(t, 0.75, v.Get(c))
	drag(c, root, layout.Pt(3, 1), layout.V(-40, 0))
	assert.Equal(t, 0.0, v.Get(c))
}
