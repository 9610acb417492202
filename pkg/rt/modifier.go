package rt

import (
	"time"

	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
)

// wrap implements Node by delegating to a single child at selector 0. Nodes
// that modify one aspect of their child embed it and override the rest.
type wrap struct{ child Node }

func (w wrap) Draw(p *ident.Path, c *Context) *paint.Scene {
	p.Push(0)
	defer p.Pop()
	return w.child.Draw(p, c)
}

func (w wrap) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	p.Push(0)
	defer p.Pop()
	return w.child.Layout(p, c, size)
}

func (w wrap) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	p.Push(0)
	defer p.Pop()
	w.child.Process(e, p, c, actions)
}

func (w wrap) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	p.Push(0)
	defer p.Pop()
	return w.child.HitTest(p, pt, c)
}

func (w wrap) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	p.Push(0)
	defer p.Pop()
	w.child.Commands(p, c, cmds)
}

func (w wrap) GC(p *ident.Path, c *Context, live ident.Set) {
	p.Push(0)
	defer p.Pop()
	w.child.GC(p, c, live)
}

func (w wrap) Flexible() bool { return w.child.Flexible() }

// Empty returns a node that draws nothing and takes no space.
func Empty() Node { return empty{} }

type empty struct{ Leaf }

func (empty) Draw(*ident.Path, *Context) *paint.Scene                { return paint.NewScene() }
func (empty) Layout(*ident.Path, *Context, layout.Size) layout.Size { return layout.Size{} }

// Spacer returns a flexible node that draws nothing. In a stack it takes up
// whatever space the other children leave.
func Spacer() Node { return spacer{} }

type spacer struct{ empty }

func (spacer) Flexible() bool { return true }

// Flex makes child flexible.
func Flex(child Node) Node { return flex{wrap{child}} }

type flex struct{ wrap }

func (flex) Flexible() bool { return true }

// DefaultPadding is the padding used by PaddingAuto.
const DefaultPadding = 1

// Padding surrounds child with n units of space on every side.
func Padding(child Node, n float64) Node { return PaddingLTRB(child, n, n, n, n) }

// PaddingAuto surrounds child with DefaultPadding.
func PaddingAuto(child Node) Node { return Padding(child, DefaultPadding) }

// PaddingXY surrounds child with x units of space on the left and right, and
// y units on the top and bottom.
func PaddingXY(child Node, x, y float64) Node { return PaddingLTRB(child, x, y, x, y) }

// PaddingLTRB surrounds child with space given separately for each side.
func PaddingLTRB(child Node, left, top, right, bottom float64) Node {
	return &padding{wrap{child}, left, top, right, bottom}
}

type padding struct {
	wrap
	left, top, right, bottom float64
}

func (n *padding) off() layout.Vec { return layout.V(n.left, n.top) }

func (n *padding) Draw(p *ident.Path, c *Context) *paint.Scene {
	s := paint.NewScene()
	s.Append(n.wrap.Draw(p, c), n.off())
	return s
}

func (n *padding) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	dw, dh := n.left+n.right, n.top+n.bottom
	return n.wrap.Layout(p, c, size.Shrink(dw, dh)).Grow(dw, dh)
}

func (n *padding) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	n.wrap.Process(Translate(e, n.off().Neg()), p, c, actions)
}

func (n *padding) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	return n.wrap.HitTest(p, pt.Sub(n.off()), c)
}

// Offset moves child by v without affecting its layout.
func Offset(child Node, v layout.Vec) Node { return &offset{wrap{child}, v} }

type offset struct {
	wrap
	v layout.Vec
}

func (n *offset) Draw(p *ident.Path, c *Context) *paint.Scene {
	s := paint.NewScene()
	s.Append(n.wrap.Draw(p, c), n.v)
	return s
}

func (n *offset) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	n.wrap.Process(Translate(e, n.v.Neg()), p, c, actions)
}

func (n *offset) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	return n.wrap.HitTest(p, pt.Sub(n.v), c)
}

// Sized lays out child within size and takes exactly size, whatever the
// child takes.
func Sized(child Node, size layout.Size) Node { return &sized{wrap{child}, size} }

type sized struct {
	wrap
	size layout.Size
}

func (n *sized) Layout(p *ident.Path, c *Context, _ layout.Size) layout.Size {
	n.wrap.Layout(p, c, n.size)
	return n.size
}

func (n *sized) Flexible() bool { return false }

// Background draws bg behind child, laid out at the size of child. Hits go
// to the background.
func Background(child, bg Node) Node { return &background{child, bg} }

type background struct{ child, bg Node }

func (n *background) Draw(p *ident.Path, c *Context) *paint.Scene {
	p.Push(1)
	s := n.bg.Draw(p, c)
	p.Pop()
	p.Push(0)
	s.Append(n.child.Draw(p, c), layout.Vec{})
	p.Pop()
	return s
}

func (n *background) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	p.Push(0)
	childSize := n.child.Layout(p, c, size)
	p.Pop()
	p.Push(1)
	n.bg.Layout(p, c, childSize)
	p.Pop()
	return childSize
}

func (n *background) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	p.Push(0)
	n.child.Process(e, p, c, actions)
	p.Pop()
	p.Push(1)
	n.bg.Process(e, p, c, actions)
	p.Pop()
}

func (n *background) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	p.Push(1)
	defer p.Pop()
	return n.bg.HitTest(p, pt, c)
}

func (n *background) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	p.Push(0)
	n.child.Commands(p, c, cmds)
	p.Pop()
	p.Push(1)
	n.bg.Commands(p, c, cmds)
	p.Pop()
}

func (n *background) GC(p *ident.Path, c *Context, live ident.Set) {
	p.Push(0)
	n.child.GC(p, c, live)
	p.Pop()
	p.Push(1)
	n.bg.GC(p, c, live)
	p.Pop()
}

func (n *background) Flexible() bool { return n.child.Flexible() }

// Geom calls f with the size of child every time it is drawn.
func Geom(child Node, f func(c *Context, size layout.Size)) Node { return &geom{wrap{child}, f} }

type geom struct {
	wrap
	f func(*Context, layout.Size)
}

func (n *geom) Draw(p *ident.Path, c *Context) *paint.Scene {
	n.f(c, c.Box(*p).Rect.Size())
	return n.wrap.Draw(p, c)
}

func (n *geom) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	childSize := n.wrap.Layout(p, c, size)
	c.SetRect(*p, childSize.Rect())
	return childSize
}

func (n *geom) GC(p *ident.Path, c *Context, live ident.Set) {
	live.Add(c.ID(*p))
	n.wrap.GC(p, c, live)
}

// Canvas returns a node that takes all available space and draws with f,
// which receives the rectangle of the node.
func Canvas(f func(c *Context, r layout.Rect) *paint.Scene) Node { return &canvas{f: f} }

type canvas struct {
	Leaf
	f func(*Context, layout.Rect) *paint.Scene
}

func (n *canvas) Draw(p *ident.Path, c *Context) *paint.Scene {
	return n.f(c, c.Box(*p).Rect)
}

func (n *canvas) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	c.SetRect(*p, size.Rect())
	return size
}

func (n *canvas) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	return c.HitRect(*p, pt)
}

func (n *canvas) GC(p *ident.Path, c *Context, live ident.Set) { live.Add(c.ID(*p)) }

// Title sets the window title whenever child is drawn.
func Title(child Node, title string) Node { return &titleNode{wrap{child}, title} }

type titleNode struct {
	wrap
	title string
}

func (n *titleNode) Draw(p *ident.Path, c *Context) *paint.Scene {
	s := n.wrap.Draw(p, c)
	c.windowTitle = n.title
	return s
}

// Fullscreen asks the backend to go fullscreen whenever child is drawn.
func Fullscreen(child Node) Node { return &fullscreenNode{wrap{child}} }

type fullscreenNode struct{ wrap }

func (n *fullscreenNode) Draw(p *ident.Path, c *Context) *paint.Scene {
	s := n.wrap.Draw(p, c)
	c.fullscreen = true
	return s
}

// Anim calls f once per frame, with the frame duration, before passing the
// tick on to child.
func Anim(child Node, f func(c *Context, dt time.Duration)) Node { return &animNode{wrap{child}, f} }

type animNode struct {
	wrap
	f func(*Context, time.Duration)
}

func (n *animNode) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	if tick, ok := e.(AnimTick); ok {
		n.f(c, tick.DT)
	}
	n.wrap.Process(e, p, c, actions)
}

func (n *animNode) GC(p *ident.Path, c *Context, live ident.Set) {
	live.Add(c.ID(*p))
	n.wrap.GC(p, c, live)
}
