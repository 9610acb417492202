package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
)

// Cond shows ifTrue when cond holds and ifFalse otherwise. The branches have
// distinct identities: the state of a branch is collected while the other
// one is shown.
func Cond(cond bool, ifTrue, ifFalse Node) Node {
	if ifFalse == nil {
		ifFalse = Empty()
	}
	return &condNode{cond, ifTrue, ifFalse}
}

// If shows child when cond holds and nothing otherwise.
func If(cond bool, child Node) Node { return Cond(cond, child, nil) }

type condNode struct {
	cond            bool
	ifTrue, ifFalse Node
}

func (n *condNode) branch(p *ident.Path) Node {
	if n.cond {
		p.Push(0)
		return n.ifTrue
	}
	p.Push(1)
	return n.ifFalse
}

func (n *condNode) Draw(p *ident.Path, c *Context) *paint.Scene {
	child := n.branch(p)
	defer p.Pop()
	return child.Draw(p, c)
}

func (n *condNode) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	child := n.branch(p)
	defer p.Pop()
	return child.Layout(p, c, size)
}

func (n *condNode) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	child := n.branch(p)
	defer p.Pop()
	child.Process(e, p, c, actions)
}

func (n *condNode) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	child := n.branch(p)
	defer p.Pop()
	return child.HitTest(p, pt, c)
}

func (n *condNode) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	child := n.branch(p)
	defer p.Pop()
	child.Commands(p, c, cmds)
}

func (n *condNode) GC(p *ident.Path, c *Context, live ident.Set) {
	child := n.branch(p)
	defer p.Pop()
	child.GC(p, c, live)
}

func (n *condNode) Flexible() bool {
	if n.cond {
		return n.ifTrue.Flexible()
	}
	return n.ifFalse.Flexible()
}

// Any erases the concrete type of child. The selector of the child is
// derived from its dynamic type, so replacing it with a node of another type
// starts over with fresh state.
func Any(child Node) Node { return anyNode{child} }

type anyNode struct{ child Node }

func (n anyNode) push(p *ident.Path) { p.Push(ident.TypeSelector(n.child)) }

func (n anyNode) Draw(p *ident.Path, c *Context) *paint.Scene {
	n.push(p)
	defer p.Pop()
	return n.child.Draw(p, c)
}

func (n anyNode) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	n.push(p)
	defer p.Pop()
	return n.child.Layout(p, c, size)
}

func (n anyNode) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	n.push(p)
	defer p.Pop()
	n.child.Process(e, p, c, actions)
}

func (n anyNode) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	n.push(p)
	defer p.Pop()
	return n.child.HitTest(p, pt, c)
}

func (n anyNode) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	n.push(p)
	defer p.Pop()
	n.child.Commands(p, c, cmds)
}

func (n anyNode) GC(p *ident.Path, c *Context, live ident.Set) {
	n.push(p)
	defer p.Pop()
	n.child.GC(p, c, live)
}

func (n anyNode) Flexible() bool { return n.child.Flexible() }
