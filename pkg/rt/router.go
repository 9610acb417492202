package rt

import (
	"fmt"

	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
)

// Process runs one pass of e through the tree rooted at root. Positions in e
// are in window coordinates.
func (c *Context) Process(root Node, e Event) {
	e = Translate(e, c.rootOffset.Neg())
	if m, ok := e.(ModsChanged); ok {
		c.mods = m.Mod
	}
	var actions []Action
	p := ident.Root()
	root.Process(e, &p, c, &actions)
	assertRoot(p)
	for _, a := range actions {
		if isUnit(a) {
			continue
		}
		c.unhandled++
		c.logger.V(1).Info("unhandled action", "type", fmt.Sprintf("%T", a))
	}
}

// Commands returns the commands declared in the tree, in declaration order.
func (c *Context) Commands(root Node) []CommandInfo {
	var cmds []CommandInfo
	p := ident.Root()
	root.Commands(&p, c, &cmds)
	assertRoot(p)
	return cmds
}

// Invoke runs the command called name, as if it had been chosen from a menu.
func (c *Context) Invoke(root Node, name string) {
	c.logger.V(1).Info("invoke", "command", name)
	c.Process(root, Invoked{name})
}

// HitTest returns the topmost node under pt, in window coordinates.
func (c *Context) HitTest(root Node, pt layout.Point) (ident.NodeID, bool) {
	p := ident.Root()
	id, ok := root.HitTest(&p, pt.Sub(c.rootOffset), c)
	assertRoot(p)
	return id, ok
}

func assertRoot(p ident.Path) {
	if len(p) != 1 {
		panic(ErrPathImbalance)
	}
}
