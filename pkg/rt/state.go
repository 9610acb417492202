package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/state"
)

// Binding is a reference to a value that lives in a Context.
type Binding[S any] interface {
	Get(c *Context) S
	Mut(c *Context) *S
}

// State is a handle to the state of a node created with WithState. It is a
// plain value and may be freely copied into closures.
type State[S any] struct {
	id ident.NodeID
}

// StateAt returns the handle of the state of id. It is mostly useful in
// tests; views get their handles from WithState.
func StateAt[S any](id ident.NodeID) State[S] { return State[S]{id} }

// ID returns the NodeID that owns the state.
func (s State[S]) ID() ident.NodeID { return s.id }

// Get returns the current value. It panics if the node has no state or if
// the state has a different type.
func (s State[S]) Get(c *Context) S {
	v, err := state.Get[S](c.state, s.id)
	if err != nil {
		panic(err)
	}
	return v
}

// Mut returns a pointer through which the state can be modified, and marks
// the state dirty. It panics like Get.
func (s State[S]) Mut(c *Context) *S {
	p, err := state.Mut[S](c.state, s.id)
	if err != nil {
		panic(err)
	}
	return p
}

// Set replaces the value and marks the state dirty.
func (s State[S]) Set(c *Context, v S) { *s.Mut(c) = v }

// Setter returns a function that sets the state.
func (s State[S]) Setter() func(c *Context, v S) {
	return func(c *Context, v S) { s.Set(c, v) }
}

// WithState returns a node that owns a value of type S, initialized with
// init the first time the node is visited. The child is built by body on
// every pass.
//
// The layout of the child is cached. It is only recomputed when state read
// by the subtree, or by any enclosing WithState, has been modified.
func WithState[S any](init func() S, body func(s State[S], c *Context) Node) Node {
	return &stateNode[S]{init, body}
}

type stateNode[S any] struct {
	init func() S
	body func(State[S], *Context) Node
}

func (n *stateNode[S]) child(p *ident.Path, c *Context) (ident.NodeID, Node) {
	id := c.ID(*p)
	state.Init(c.state, id, n.init)
	return id, n.body(State[S]{id}, c)
}

func (n *stateNode[S]) Draw(p *ident.Path, c *Context) *paint.Scene {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	return child.Draw(p, c)
}

func (n *stateNode[S]) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	id := c.ID(*p)
	state.Init(c.state, id, n.init)

	dirty, recorded := c.deps.AnyDirty(id, c.state.IsDirty)
	if box, ok := c.cache.Lookup(*p); ok && recorded && !dirty {
		return box.Rect.Size()
	}

	c.deps.Push(id)
	child := n.body(State[S]{id}, c)
	p.Push(0)
	childSize := child.Layout(p, c, size)
	deps := c.deps.Scope()
	live := make(ident.Set)
	child.GC(p, c, live)
	deps = append(deps, live.Sorted()...)
	p.Pop()
	c.deps.Pop()

	c.deps.Record(id, deps)
	c.SetRect(*p, childSize.Rect())
	return childSize
}

func (n *stateNode[S]) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	child.Process(e, p, c, actions)
}

func (n *stateNode[S]) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	return child.HitTest(p, pt, c)
}

func (n *stateNode[S]) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	child.Commands(p, c, cmds)
}

func (n *stateNode[S]) GC(p *ident.Path, c *Context, live ident.Set) {
	id, child := n.child(p, c)
	live.Add(id)
	p.Push(0)
	defer p.Pop()
	child.GC(p, c, live)
}

func (n *stateNode[S]) Flexible() bool { return false }

// WithContext returns a node whose child is built from the Context on every
// pass.
func WithContext(body func(c *Context) Node) Node {
	return WithState(func() struct{} { return struct{}{} },
		func(_ State[struct{}], c *Context) Node { return body(c) })
}

// Map mirrors an outside value into local state. On every pass the local
// state is reset to value; when processing an event modifies it, set is
// called with the new value so that the owner can store it.
func Map[S any](value S, set func(c *Context, v S), body func(s State[S], c *Context) Node) Node {
	return &mapNode[S]{value, set, body}
}

type mapNode[S any] struct {
	value S
	set   func(*Context, S)
	body  func(State[S], *Context) Node
}

func (n *mapNode[S]) child(p *ident.Path, c *Context) (ident.NodeID, Node) {
	id := c.ID(*p)
	state.Set(c.state, id, n.value)
	return id, n.body(State[S]{id}, c)
}

func (n *mapNode[S]) Draw(p *ident.Path, c *Context) *paint.Scene {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	return child.Draw(p, c)
}

func (n *mapNode[S]) Layout(p *ident.Path, c *Context, size layout.Size) layout.Size {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	return child.Layout(p, c, size)
}

func (n *mapNode[S]) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	id, child := n.child(p, c)
	p.Push(0)
	child.Process(e, p, c, actions)
	p.Pop()
	if c.state.IsDirty(id) {
		n.set(c, State[S]{id}.Get(c))
	}
}

func (n *mapNode[S]) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	return child.HitTest(p, pt, c)
}

func (n *mapNode[S]) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	_, child := n.child(p, c)
	p.Push(0)
	defer p.Pop()
	child.Commands(p, c, cmds)
}

func (n *mapNode[S]) GC(p *ident.Path, c *Context, live ident.Set) {
	id, child := n.child(p, c)
	live.Add(id)
	p.Push(0)
	defer p.Pop()
	child.GC(p, c, live)
}

func (n *mapNode[S]) Flexible() bool { return false }
