package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/ui"
)

// KeyPressed calls f for every key pressed. The KeyDown events are not passed
// on to child.
func KeyPressed(child Node, f func(c *Context, k ui.Key)) Node {
	return &keyView{wrap{child}, f, false}
}

// KeyReleased is like KeyPressed, but for KeyUp events.
func KeyReleased(child Node, f func(c *Context, k ui.Key)) Node {
	return &keyView{wrap{child}, f, true}
}

type keyView struct {
	wrap
	f  func(*Context, ui.Key)
	up bool
}

func (n *keyView) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	switch e := e.(type) {
	case KeyDown:
		if !n.up {
			n.f(c, e.Key)
			return
		}
	case KeyUp:
		if n.up {
			n.f(c, e.Key)
			return
		}
	}
	n.wrap.Process(e, p, c, actions)
}

// Focus builds its child with whether it has keyboard focus. A touch on the
// child focuses it; Escape or a touch elsewhere removes the focus.
func Focus(body func(focused bool) Node) Node { return &focus{body} }

type focus struct {
	body func(bool) Node
}

func (n *focus) child(p *ident.Path, c *Context) (ident.NodeID, wrap) {
	id := c.ID(*p)
	return id, wrap{n.body(c.focused == id)}
}

func (n *focus) Draw(p *ident.Path, c *Context) *paint.Scene {
	_, w := n.child(p, c)
	return w.Draw(p, c)
}

func (n *focus) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	_, w := n.child(p, c)
	return w.Layout(p, c, size)
}

func (n *focus) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	id, w := n.child(p, c)
	switch e := e.(type) {
	case TouchBegin:
		if _, ok := w.HitTest(p, e.Pos, c); ok {
			if c.focused != id {
				c.focused = id
				c.MarkDirty()
			}
		} else if c.focused == id {
			c.focused = ident.None
			c.MarkDirty()
		}
	case KeyDown:
		if e.Key == ui.K(ui.Escape) && c.focused == id {
			c.focused = ident.None
			c.MarkDirty()
			return
		}
	}
	w.Process(e, p, c, actions)
}

func (n *focus) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	_, w := n.child(p, c)
	return w.HitTest(p, pt, c)
}

func (n *focus) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	_, w := n.child(p, c)
	w.Commands(p, c, cmds)
}

func (n *focus) GC(p *ident.Path, c *Context, live ident.Set) {
	id, w := n.child(p, c)
	live.Add(id)
	w.GC(p, c, live)
}

func (n *focus) Flexible() bool { return false }
