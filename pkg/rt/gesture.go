package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
)

// A gesture claims a touch slot on TouchBegin, but only when the slot is
// free and the touch hits its child. Since containers dispatch to their last
// child first, the topmost gesture under a touch is the one that gets it.
func claim(e TouchBegin, p *ident.Path, c *Context, child wrap) (ident.NodeID, bool) {
	if !validSlot(e.Slot) || c.touches[e.Slot] != ident.None {
		return ident.None, false
	}
	if _, ok := child.HitTest(p, e.Pos, c); !ok {
		return ident.None, false
	}
	id := c.ID(*p)
	c.touches[e.Slot] = id
	c.starts[e.Slot] = e.Pos
	c.prevPos[e.Slot] = e.Pos
	return id, true
}

// owns reports whether the node at p holds slot.
func owns(slot int, p *ident.Path, c *Context) bool {
	return validSlot(slot) && c.touches[slot] != ident.None && c.touches[slot] == c.ID(*p)
}

func release(slot int, c *Context) { c.touches[slot] = ident.None }

// Tap calls f when a touch that started on child ends on it.
func Tap(child Node, f func(c *Context)) Node {
	return &tap{wrap{child}, func(c *Context, _ layout.Point, _ *[]Action) { f(c) }}
}

// TapAction emits a when a touch that started on child ends on it.
func TapAction(child Node, a Action) Node {
	return &tap{wrap{child}, func(_ *Context, _ layout.Point, actions *[]Action) {
		*actions = append(*actions, a)
	}}
}

// TapP is like Tap, but also passes the position of the touch in the
// coordinates of child.
func TapP(child Node, f func(c *Context, pt layout.Point)) Node {
	return &tap{wrap{child}, func(c *Context, pt layout.Point, _ *[]Action) { f(c, pt) }}
}

type tap struct {
	wrap
	f func(*Context, layout.Point, *[]Action)
}

func (n *tap) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	switch e := e.(type) {
	case TouchBegin:
		claim(e, p, c, n.wrap)
	case TouchMove:
		if owns(e.Slot, p, c) {
			c.prevPos[e.Slot] = e.Pos
		}
	case TouchEnd:
		if !owns(e.Slot, p, c) {
			return
		}
		release(e.Slot, c)
		if _, ok := n.wrap.HitTest(p, e.Pos, c); ok {
			n.f(c, e.Pos, actions)
		}
	default:
		n.wrap.Process(e, p, c, actions)
	}
}

// TouchPhase distinguishes the calls made by a Touch gesture.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchEnded
)

// TouchInfo is passed to the callback of Touch.
type TouchInfo struct {
	Phase TouchPhase
	Slot  int
	Pos   layout.Point
}

// Touch calls f when a touch begins on child and again when it ends,
// wherever that is.
func Touch(child Node, f func(c *Context, t TouchInfo)) Node {
	return &touch{wrap{child}, f}
}

type touch struct {
	wrap
	f func(*Context, TouchInfo)
}

func (n *touch) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	switch e := e.(type) {
	case TouchBegin:
		if _, ok := claim(e, p, c, n.wrap); ok {
			n.f(c, TouchInfo{TouchBegan, e.Slot, e.Pos})
		}
	case TouchMove:
		if owns(e.Slot, p, c) {
			c.prevPos[e.Slot] = e.Pos
		}
	case TouchEnd:
		if owns(e.Slot, p, c) {
			release(e.Slot, c)
			n.f(c, TouchInfo{TouchEnded, e.Slot, e.Pos})
		}
	default:
		n.wrap.Process(e, p, c, actions)
	}
}

// GestureState is the phase of a drag.
type GestureState int

const (
	Began GestureState = iota
	Changed
	Ended
)

func (s GestureState) String() string {
	switch s {
	case Began:
		return "began"
	case Changed:
		return "changed"
	}
	return "ended"
}

// DragInfo is passed to the callback of Drag.
type DragInfo struct {
	State GestureState
	// Position of the touch, in the coordinates of the dragged node.
	Pos layout.Point
	// Where the touch began.
	Start layout.Point
	// Movement carried by the TouchMove event. Zero for Began and Ended.
	Delta layout.Vec
}

// DragNode is the node returned by Drag and its variants.
type DragNode struct {
	wrap
	f    func(*Context, DragInfo)
	grab bool
}

// Drag calls f as a touch that began on child moves, and when it ends.
func Drag(child Node, f func(c *Context, d DragInfo)) *DragNode {
	return &DragNode{wrap: wrap{child}, f: f}
}

// DragP is like Drag, but only reports the position of the touch while it
// is down.
func DragP(child Node, f func(c *Context, pt layout.Point)) *DragNode {
	return Drag(child, func(c *Context, d DragInfo) {
		if d.State != Ended {
			f(c, d.Pos)
		}
	})
}

// DragBinding is like Drag, but gives f a pointer to the value behind b
// along with the movement of the touch.
func DragBinding[S any](child Node, b Binding[S], f func(v *S, delta layout.Vec)) *DragNode {
	return Drag(child, func(c *Context, d DragInfo) {
		if d.State == Changed {
			f(b.Mut(c), d.Delta)
		}
	})
}

// GrabCursor returns a copy of the node that asks the backend to keep the
// cursor in place while dragging. Only the Delta of TouchMove events then
// reflects the movement.
func (n *DragNode) GrabCursor() *DragNode {
	m := *n
	m.grab = true
	return &m
}

func (n *DragNode) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	switch e := e.(type) {
	case TouchBegin:
		if _, ok := claim(e, p, c, n.wrap); ok {
			c.grabCursor = n.grab
			n.f(c, DragInfo{Began, e.Pos, e.Pos, layout.Vec{}})
		}
	case TouchMove:
		if !owns(e.Slot, p, c) {
			return
		}
		c.prevPos[e.Slot] = e.Pos
		n.f(c, DragInfo{Changed, e.Pos, c.starts[e.Slot], e.Delta})
	case TouchEnd:
		if !owns(e.Slot, p, c) {
			return
		}
		release(e.Slot, c)
		c.grabCursor = false
		n.f(c, DragInfo{Ended, e.Pos, c.starts[e.Slot], layout.Vec{}})
	default:
		n.wrap.Process(e, p, c, actions)
	}
}

// Hover calls f with whether the pointer is over child as it moves with no
// button pressed, and when a touch ends.
func Hover(child Node, f func(c *Context, inside bool)) Node {
	return &hover{wrap{child}, f}
}

type hover struct {
	wrap
	f func(*Context, bool)
}

func (n *hover) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	switch e := e.(type) {
	case TouchMove:
		if c.mouseButton == NoButton {
			_, inside := n.wrap.HitTest(p, e.Pos, c)
			n.f(c, inside)
		}
	case TouchEnd:
		_, inside := n.wrap.HitTest(p, e.Pos, c)
		n.f(c, inside)
	}
	n.wrap.Process(e, p, c, actions)
}
