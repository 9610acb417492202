package rt

import (
	"src.retk.dev/pkg/env"
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
)

// WithEnv returns a node whose child is built from the current environment
// value of type S. If there is none, the value returned by def is stored and
// used.
func WithEnv[S any](def func() S, body func(v S, c *Context) Node) Node {
	return &envNode[S]{def, body}
}

type envNode[S any] struct {
	def  func() S
	body func(S, *Context) Node
}

func (n *envNode[S]) child(c *Context) Node { return n.body(env.Init(c.env, n.def), c) }

func (n *envNode[S]) Draw(p *ident.Path, c *Context) *paint.Scene {
	child := n.child(c)
	p.Push(0)
	defer p.Pop()
	return child.Draw(p, c)
}

func (n *envNode[S]) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	child := n.child(c)
	p.Push(0)
	defer p.Pop()
	return child.Layout(p, c, size)
}

func (n *envNode[S]) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	child := n.child(c)
	p.Push(0)
	defer p.Pop()
	child.Process(e, p, c, actions)
}

func (n *envNode[S]) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	child := n.child(c)
	p.Push(0)
	defer p.Pop()
	return child.HitTest(p, pt, c)
}

func (n *envNode[S]) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	child := n.child(c)
	p.Push(0)
	defer p.Pop()
	child.Commands(p, c, cmds)
}

func (n *envNode[S]) GC(p *ident.Path, c *Context, live ident.Set) {
	live.Add(c.ID(*p))
	child := n.child(c)
	p.Push(0)
	defer p.Pop()
	child.GC(p, c, live)
}

func (n *envNode[S]) Flexible() bool { return false }

// SetEnv returns a node that makes v the environment value of type S for
// every pass over child.
func SetEnv[S any](child Node, v S) Node {
	return &setEnvNode[S]{wrap{child}, v}
}

type setEnvNode[S any] struct {
	wrap
	v S
}

func (n *setEnvNode[S]) scope(c *Context) func() {
	prev, had := env.Set(c.env, n.v)
	return func() { env.Restore(c.env, prev, had) }
}

func (n *setEnvNode[S]) Draw(p *ident.Path, c *Context) *paint.Scene {
	defer n.scope(c)()
	return n.wrap.Draw(p, c)
}

func (n *setEnvNode[S]) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	defer n.scope(c)()
	return n.wrap.Layout(p, c, size)
}

func (n *setEnvNode[S]) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	defer n.scope(c)()
	n.wrap.Process(e, p, c, actions)
}

func (n *setEnvNode[S]) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	defer n.scope(c)()
	return n.wrap.HitTest(p, pt, c)
}

func (n *setEnvNode[S]) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	defer n.scope(c)()
	n.wrap.Commands(p, c, cmds)
}

func (n *setEnvNode[S]) GC(p *ident.Path, c *Context, live ident.Set) {
	defer n.scope(c)()
	n.wrap.GC(p, c, live)
}

// Env returns the current environment value of type S.
func Env[S any](c *Context) (S, bool) { return env.Lookup[S](c.env) }
