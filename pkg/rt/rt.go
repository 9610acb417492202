// Package rt is the runtime of a retained view tree.
//
// An application describes its UI as a tree of Node values that is rebuilt on
// every pass. The runtime gives that throwaway tree a memory: nodes are
// identified by their path from the root, state and layout are stored in a
// Context keyed by those identities, and a stateful subtree is only laid out
// again when state it depends on changes.
//
// Every pass over the tree is a synchronous depth-first walk driven by one of
// the Context's entry points: Process for input events, Update once per frame
// and Render when a new picture is needed.
package rt

import (
	"errors"

	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/ui"
)

// Node is an element of a view tree.
//
// Each method receives the path of the node. Composite nodes push a selector
// for each child before recursing into it and pop it afterwards, so that path
// is the same when a method returns as when it was called.
type Node interface {
	// Draw returns the scene of the node in its own coordinates.
	Draw(p *ident.Path, c *Context) *paint.Scene
	// Layout lays out the node within the given available size and returns
	// the size it actually takes.
	Layout(p *ident.Path, c *Context, size layout.Size) layout.Size
	// Process handles an event, whose positions are in the node's own
	// coordinates. Actions emitted by handlers are appended to actions.
	Process(e Event, p *ident.Path, c *Context, actions *[]Action)
	// HitTest returns the topmost node under pt.
	HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool)
	// Commands appends the menu commands declared in the subtree.
	Commands(p *ident.Path, c *Context, cmds *[]CommandInfo)
	// GC adds to live the ids of the nodes in the subtree that own state or
	// layout records.
	GC(p *ident.Path, c *Context, live ident.Set)
	// Flexible reports whether the node takes whatever space is left over in
	// a stack.
	Flexible() bool
}

// Leaf provides no-op implementations of the Node methods that leaf nodes
// typically don't need. Embed it and implement Draw and Layout.
type Leaf struct{}

func (Leaf) Process(Event, *ident.Path, *Context, *[]Action) {}

func (Leaf) HitTest(*ident.Path, layout.Point, *Context) (ident.NodeID, bool) {
	return ident.None, false
}

func (Leaf) Commands(*ident.Path, *Context, *[]CommandInfo) {}

func (Leaf) GC(*ident.Path, *Context, ident.Set) {}

func (Leaf) Flexible() bool { return false }

// Action is a value emitted by an event handler. Ancestors can intercept
// actions of a given type with Handle; actions that reach the root are
// reported as unhandled.
type Action = any

// NoAction is the action of handlers that have nothing to report. It is
// never reported as unhandled.
type NoAction struct{}

func isUnit(a Action) bool {
	if a == nil {
		return true
	}
	_, ok := a.(NoAction)
	return ok
}

// CommandInfo describes a command declared with Command, for building menus.
type CommandInfo struct {
	Name string
	Key  *ui.Key
}

// ErrPathImbalance is the value panicked with when a pass doesn't leave the
// path as it found it. It indicates a bug in a Node implementation.
var ErrPathImbalance = errors.New("path push/pop imbalance")
