package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
)

// Orientation is the direction in which a container arranges its children.
type Orientation int

const (
	// Horizontal containers place children left to right.
	Horizontal Orientation = iota
	// Vertical containers place children top to bottom.
	Vertical
	// Z containers stack children on top of each other, later ones on top.
	Z
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "z"
}

// HStack arranges children left to right.
func HStack(children ...Node) Node { return newStack(Horizontal, children) }

// VStack arranges children top to bottom.
func VStack(children ...Node) Node { return newStack(Vertical, children) }

// ZStack arranges children on top of each other, each laid out at the full
// available size. Later children are drawn above and receive input before
// earlier ones.
func ZStack(children ...Node) Node { return newStack(Z, children) }

func newStack(o Orientation, children []Node) *stack {
	sels := make([]uint64, len(children))
	for i := range sels {
		sels[i] = ident.IndexSelector(i)
	}
	return &stack{o, children, sels}
}

// List arranges one node per item top to bottom. Each child is identified by
// the key of its item rather than its position, so its state follows the
// item when items are inserted, removed or reordered.
func List[T any, K comparable](items []T, key func(T) K, view func(T) Node) Node {
	return newList(Vertical, items, key, view)
}

// HList is like List, but arranges children left to right.
func HList[T any, K comparable](items []T, key func(T) K, view func(T) Node) Node {
	return newList(Horizontal, items, key, view)
}

// ZList is like List, but stacks children on top of each other.
func ZList[T any, K comparable](items []T, key func(T) K, view func(T) Node) Node {
	return newList(Z, items, key, view)
}

func newList[T any, K comparable](o Orientation, items []T, key func(T) K, view func(T) Node) *stack {
	s := &stack{o, make([]Node, len(items)), make([]uint64, len(items))}
	for i, item := range items {
		s.children[i] = view(item)
		s.sels[i] = ident.KeySelector(key(item))
	}
	return s
}

type stack struct {
	o        Orientation
	children []Node
	sels     []uint64
}

func (n *stack) Draw(p *ident.Path, c *Context) *paint.Scene {
	s := paint.NewScene()
	for i, child := range n.children {
		p.Push(n.sels[i])
		s.Append(child.Draw(p, c), c.Box(*p).Offset)
		p.Pop()
	}
	return s
}

// main and cross return the extents of a size along the main and cross axes.
func (n *stack) main(s layout.Size) float64 {
	if n.o == Vertical {
		return s.H
	}
	return s.W
}

func (n *stack) cross(s layout.Size) float64 {
	if n.o == Vertical {
		return s.W
	}
	return s.H
}

func (n *stack) size(main, cross float64) layout.Size {
	if n.o == Vertical {
		return layout.Sz(cross, main)
	}
	return layout.Sz(main, cross)
}

func (n *stack) vec(main, cross float64) layout.Vec {
	if n.o == Vertical {
		return layout.V(cross, main)
	}
	return layout.V(main, cross)
}

func (n *stack) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	if len(n.children) == 0 {
		c.SetRect(*p, layout.Rect{})
		return layout.Size{}
	}
	if n.o == Z {
		return n.layoutZ(p, c, size)
	}

	share := n.main(size) / float64(len(n.children))
	sizes := make([]layout.Size, len(n.children))
	items := make([]layout.Item, len(n.children))
	for i, child := range n.children {
		if child.Flexible() {
			items[i] = layout.Flex
			continue
		}
		p.Push(n.sels[i])
		sizes[i] = child.Layout(p, c, n.size(share, n.cross(size)))
		p.Pop()
		items[i] = layout.Fixed(n.main(sizes[i]))
	}

	intervals, flex, length := layout.Pack(n.main(size), items)

	for i, child := range n.children {
		if !child.Flexible() {
			continue
		}
		p.Push(n.sels[i])
		sizes[i] = child.Layout(p, c, n.size(flex, n.cross(size)))
		p.Pop()
	}

	crossMax := 0.0
	for _, s := range sizes {
		crossMax = max(crossMax, n.cross(s))
	}
	for i := range n.children {
		p.Push(n.sels[i])
		c.SetOffset(*p, n.vec(intervals[i].Start, (crossMax-n.cross(sizes[i]))/2))
		p.Pop()
	}

	total := n.size(length, crossMax)
	c.SetRect(*p, total.Rect())
	return total
}

// Z containers don't pack: every child gets the whole of size at the origin,
// and so does the container.
func (n *stack) layoutZ(p *ident.Path, c *Context, size layout.Size) layout.Size {
	for i, child := range n.children {
		p.Push(n.sels[i])
		child.Layout(p, c, size)
		c.SetOffset(*p, layout.Vec{})
		p.Pop()
	}
	c.SetRect(*p, size.Rect())
	return size
}

func (n *stack) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	for i := len(n.children) - 1; i >= 0; i-- {
		p.Push(n.sels[i])
		n.children[i].Process(Translate(e, c.Box(*p).Offset.Neg()), p, c, actions)
		p.Pop()
	}
}

func (n *stack) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	hit, found := ident.None, false
	for i, child := range n.children {
		p.Push(n.sels[i])
		if id, ok := child.HitTest(p, pt.Sub(c.Box(*p).Offset), c); ok {
			hit, found = id, true
		}
		p.Pop()
	}
	return hit, found
}

func (n *stack) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	for i, child := range n.children {
		p.Push(n.sels[i])
		child.Commands(p, c, cmds)
		p.Pop()
	}
}

func (n *stack) GC(p *ident.Path, c *Context, live ident.Set) {
	live.Add(c.ID(*p))
	for i, child := range n.children {
		p.Push(n.sels[i])
		live.Add(c.ID(*p))
		child.GC(p, c, live)
		p.Pop()
	}
}

func (n *stack) Flexible() bool { return false }
