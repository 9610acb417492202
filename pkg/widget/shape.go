package widget

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// Rectangle fills all the space it is given with color.
func Rectangle(color ui.Color) rt.Node { return &shape{color: color} }

// Circle draws the largest circle that fits in the space it is given.
func Circle(color ui.Color) rt.Node { return &shape{color: color, circle: true} }

type shape struct {
	color  ui.Color
	circle bool
}

func (n *shape) Draw(p *ident.Path, c *rt.Context) *paint.Scene {
	r := c.Box(*p).Rect
	s := paint.NewScene()
	if n.circle {
		s.FillCircle(r.Center(), min(r.Width(), r.Height())/2, n.color)
	} else {
		s.FillRect(r, n.color)
	}
	return s
}

func (n *shape) Layout(p *ident.Path, c *rt.Context, size layout.Size) layout.Size {
	c.SetRect(*p, size.Rect())
	return size
}

func (n *shape) Process(rt.Event, *ident.Path, *rt.Context, *[]rt.Action) {}

func (n *shape) HitTest(p *ident.Path, pt layout.Point, c *rt.Context) (ident.NodeID, bool) {
	if !n.circle {
		return c.HitRect(*p, pt)
	}
	r := c.Box(*p).Rect
	d := r.Center().To(pt)
	radius := min(r.Width(), r.Height()) / 2
	if d.X*d.X+d.Y*d.Y <= radius*radius {
		return c.ID(*p), true
	}
	return ident.None, false
}

func (n *shape) Commands(*ident.Path, *rt.Context, *[]rt.CommandInfo) {}

func (n *shape) GC(p *ident.Path, c *rt.Context, live ident.Set) { live.Add(c.ID(*p)) }

func (n *shape) Flexible() bool { return false }

// bar is a track one cell thick that spans the main axis of the space it is
// given.
type bar struct {
	rt.Leaf
	vertical bool
	draw     func(r layout.Rect) *paint.Scene
}

func (n *bar) Draw(p *ident.Path, c *rt.Context) *paint.Scene {
	return n.draw(c.Box(*p).Rect)
}

func (n *bar) Layout(p *ident.Path, c *rt.Context, size layout.Size) layout.Size {
	if n.vertical {
		size.W = 1
	} else {
		size.H = 1
	}
	c.SetRect(*p, size.Rect())
	return size
}

func (n *bar) HitTest(p *ident.Path, pt layout.Point, c *rt.Context) (ident.NodeID, bool) {
	return c.HitRect(*p, pt)
}

func (n *bar) GC(p *ident.Path, c *rt.Context, live ident.Set) { live.Add(c.ID(*p)) }
