package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
)

// Update advances the tree by one frame. It sends an AnimTick through the
// tree, then, if any state changed since the last Update, collects the
// records of nodes no longer in the tree and lays it out again. It reports
// whether a relayout happened, in which case the host should Render.
func (c *Context) Update(root Node, size layout.Size) bool {
	c.checkSize(size)
	c.Process(root, AnimTick{c.frameInterval})

	if !c.state.Dirty() {
		return false
	}

	live := make(ident.Set)
	p := ident.Root()
	root.GC(&p, c, live)
	assertRoot(p)

	c.state.Retain(live)
	c.cache.Retain(func(key string) bool {
		id, ok := c.ids.LookupKey(key)
		return ok && live.Has(id)
	})
	c.deps.Retain(live)

	c.layout(root, size)
	c.state.ClearDirty()
	c.logger.V(2).Info("relayout", "stats", c.Stats().String())
	return true
}

// Render lays out the tree at size and returns its scene. State modified
// while rendering doesn't cause a relayout on the next Update.
func (c *Context) Render(root Node, size layout.Size) *paint.Scene {
	c.checkSize(size)
	defer c.state.Suspend()()
	c.layout(root, size)
	c.rootOffset = layout.Vec{}
	p := ident.Root()
	s := root.Draw(&p, c)
	assertRoot(p)
	return s
}

func (c *Context) layout(root Node, size layout.Size) {
	p := ident.Root()
	root.Layout(&p, c, size)
	assertRoot(p)
}

// checkSize forgets all dependency records when the window is resized, so
// that every stateful node is laid out again.
func (c *Context) checkSize(size layout.Size) {
	if size != c.windowSize {
		c.deps.Clear()
		c.windowSize = size
	}
}
