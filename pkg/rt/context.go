package rt

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"src.retk.dev/pkg/env"
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/state"
	"src.retk.dev/pkg/ui"
)

// DefaultFrameInterval is the frame duration carried by AnimTick unless set
// with WithFrameInterval.
const DefaultFrameInterval = time.Second / 60

// Context holds everything that survives between passes over a view tree.
// It is not safe for concurrent use; it belongs to the goroutine that drives
// the passes.
type Context struct {
	ids   *ident.Allocator
	state *state.Store
	env   *env.Store
	cache *layout.Cache
	deps  *layout.Deps

	// Which node each touch slot is interacting with.
	touches [NumTouches]ident.NodeID
	// Where each touch started.
	starts [NumTouches]layout.Point
	// Last known position of each touch.
	prevPos [NumTouches]layout.Point

	mouseButton MouseButton
	mods        ui.Mod
	focused     ident.NodeID
	grabCursor  bool

	windowTitle string
	fullscreen  bool
	windowSize  layout.Size
	rootOffset  layout.Vec

	frameInterval time.Duration
	logger        logr.Logger
	unhandled     int
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithFrameInterval sets the duration carried by AnimTick events.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Context) { c.frameInterval = d }
}

// WithTitle sets the initial window title.
func WithTitle(title string) Option {
	return func(c *Context) { c.windowTitle = title }
}

// NewContext returns a Context with empty stores.
func NewContext(opts ...Option) *Context {
	c := &Context{
		ids:           ident.NewAllocator(),
		state:         state.NewStore(),
		env:           env.NewStore(),
		cache:         layout.NewCache(),
		deps:          layout.NewDeps(),
		windowTitle:   "retk",
		frameInterval: DefaultFrameInterval,
		logger:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the NodeID of the node at p, allocating one if needed.
func (c *Context) ID(p ident.Path) ident.NodeID { return c.ids.Register(p) }

// Box returns the layout record of p.
func (c *Context) Box(p ident.Path) layout.Box { return c.cache.Get(p) }

// SetRect sets the content rectangle of p, keeping its offset.
func (c *Context) SetRect(p ident.Path, r layout.Rect) {
	b := c.cache.Get(p)
	b.Rect = r
	c.cache.Update(p, b)
}

// SetOffset sets the offset of p within its parent.
func (c *Context) SetOffset(p ident.Path, off layout.Vec) { c.cache.SetOffset(p, off) }

// HitRect is a HitTest implementation for nodes that are hit anywhere inside
// the rectangle stored with SetRect.
func (c *Context) HitRect(p ident.Path, pt layout.Point) (ident.NodeID, bool) {
	if c.cache.Get(p).Rect.Contains(pt) {
		return c.ID(p), true
	}
	return ident.None, false
}

// MarkDirty requests a relayout on the next Update without changing any
// state.
func (c *Context) MarkDirty() { c.state.MarkDirty() }

// Dirty reports whether state changed since the last Update.
func (c *Context) Dirty() bool { return c.state.Dirty() }

// Touch returns the node that owns a touch slot.
func (c *Context) Touch(slot int) ident.NodeID {
	if !validSlot(slot) {
		return ident.None
	}
	return c.touches[slot]
}

// TouchStart returns where the touch in a slot started, in the coordinates of
// the node that owns it.
func (c *Context) TouchStart(slot int) layout.Point {
	if !validSlot(slot) {
		return layout.Point{}
	}
	return c.starts[slot]
}

// TouchPos returns the last position of the touch in a slot, in the
// coordinates of the node that owns it.
func (c *Context) TouchPos(slot int) layout.Point {
	if !validSlot(slot) {
		return layout.Point{}
	}
	return c.prevPos[slot]
}

// MouseButton returns the mouse button of the event being processed.
func (c *Context) MouseButton() MouseButton { return c.mouseButton }

// SetMouseButton is called by backends before sending touch events caused by
// the mouse.
func (c *Context) SetMouseButton(b MouseButton) { c.mouseButton = b }

// Mods returns the modifier keys currently held.
func (c *Context) Mods() ui.Mod { return c.mods }

// Focused returns the node with keyboard focus, or ident.None.
func (c *Context) Focused() ident.NodeID { return c.focused }

// GrabCursor reports whether a drag asked for the cursor to be locked in
// place.
func (c *Context) GrabCursor() bool { return c.grabCursor }

// WindowTitle returns the title set by the last Title node drawn.
func (c *Context) WindowTitle() string { return c.windowTitle }

// Fullscreen reports whether a Fullscreen node has been drawn.
func (c *Context) Fullscreen() bool { return c.fullscreen }

// WindowSize returns the size passed to the last Update or Render.
func (c *Context) WindowSize() layout.Size { return c.windowSize }

// SetRootOffset sets an offset subtracted from positions of events given to
// Process. It is reset by Render.
func (c *Context) SetRootOffset(v layout.Vec) { c.rootOffset = v }

// FrameInterval returns the duration carried by AnimTick events.
func (c *Context) FrameInterval() time.Duration { return c.frameInterval }

// Logger returns the logger of the Context.
func (c *Context) Logger() logr.Logger { return c.logger }

// UnhandledActions returns the number of actions that reached the root
// without being handled.
func (c *Context) UnhandledActions() int { return c.unhandled }

// Stats describes the sizes of the stores of a Context.
type Stats struct {
	IDs, States, Boxes, Deps int
}

// Stats returns the current store sizes.
func (c *Context) Stats() Stats {
	return Stats{c.ids.Len(), c.state.Len(), c.cache.Len(), c.deps.Len()}
}

func (s Stats) String() string {
	return fmt.Sprintf("ids=%d states=%d boxes=%d deps=%d", s.IDs, s.States, s.Boxes, s.Deps)
}
