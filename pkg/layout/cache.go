package layout

import (
	"src.retk.dev/pkg/ident"
)

// Box is the layout record of one path: the rectangle of its content, in its
// own coordinates, and its offset within its parent.
type Box struct {
	Rect   Rect
	Offset Vec
}

// Cache stores a Box per path. Boxes survive between frames until pruned.
type Cache struct {
	boxes map[string]Box
}

// NewCache returns an empty Cache.
func NewCache() *Cache { return &Cache{boxes: make(map[string]Box)} }

// Get returns the box of p, or the zero Box if there is none.
func (c *Cache) Get(p ident.Path) Box { return c.boxes[p.Key()] }

// Lookup returns the box of p and whether it exists.
func (c *Cache) Lookup(p ident.Path) (Box, bool) {
	b, ok := c.boxes[p.Key()]
	return b, ok
}

// Update replaces the box of p.
func (c *Cache) Update(p ident.Path, b Box) { c.boxes[p.Key()] = b }

// SetOffset sets the offset of p, keeping its rectangle.
func (c *Cache) SetOffset(p ident.Path, off Vec) {
	key := p.Key()
	b := c.boxes[key]
	b.Offset = off
	c.boxes[key] = b
}

// Retain drops every box whose key doesn't satisfy keep. Keys are as returned
// by ident.Path.Key.
func (c *Cache) Retain(keep func(key string) bool) {
	for key := range c.boxes {
		if !keep(key) {
			delete(c.boxes, key)
		}
	}
}

// Len returns the number of boxes.
func (c *Cache) Len() int { return len(c.boxes) }
