// Package host runs a view tree in a terminal, using tcell for input and
// output.
//
// A Host owns the rt.Context of its tree. Input polling, the frame ticker and
// menu requests run in their own goroutines, but everything they produce is
// funneled through one channel into the goroutine running the frame loop,
// which is the only one that touches the Context.
package host

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"src.retk.dev/pkg/journal"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/menu"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// ErrStopped is returned by the menu methods of a Host whose frame loop has
// exited.
var ErrStopped = errors.New("host stopped")

// Config configures a Host.
type Config struct {
	// Time between frames. Defaults to rt.DefaultFrameInterval.
	FrameInterval time.Duration
	// Whether to report mouse events.
	Mouse bool
	// Defaults to logr.Discard().
	Logger logr.Logger
	// If not nil, every input is recorded in it.
	Journal *journal.Journal
	// If not nil, the menu bridge is served on it.
	Menu net.Listener
}

// Host drives a view tree on a tcell screen.
type Host struct {
	cfg    Config
	screen tcell.Screen
	root   rt.Node
	c      *rt.Context
	logger logr.Logger

	size    layout.Size
	start   time.Time
	damaged bool
	title   string

	// Mouse state. The mouse always uses touch slot 0.
	pressed bool
	pointer layout.Point
	mods    ui.Mod

	inbox chan any
	done  chan struct{}
}

type tick struct{}

type request func()

// New creates a Host for root on screen, which must already be initialized.
// The options are passed to rt.NewContext after the ones derived from cfg.
func New(screen tcell.Screen, root rt.Node, cfg Config, opts ...rt.Option) *Host {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = rt.DefaultFrameInterval
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}
	opts = append([]rt.Option{
		rt.WithLogger(cfg.Logger),
		rt.WithFrameInterval(cfg.FrameInterval),
	}, opts...)
	return &Host{
		cfg:    cfg,
		screen: screen,
		root:   root,
		c:      rt.NewContext(opts...),
		logger: cfg.Logger,
		inbox:  make(chan any),
		done:   make(chan struct{}),
	}
}

// Context returns the Context of the view tree. It must only be used from
// the goroutine running Run, or when Run is not running.
func (h *Host) Context() *rt.Context { return h.c }

// Size returns the current screen size.
func (h *Host) Size() layout.Size { return h.size }

// Run runs the frame loop until ctx is done or QuitKey is pressed. It
// finalizes the screen before returning. Run must be called at most once.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		// Unblocks PollEvent.
		h.screen.Fini()
		return nil
	})
	g.Go(func() error { return h.poll(ctx) })
	g.Go(func() error { return h.tick(ctx) })
	if h.cfg.Menu != nil {
		g.Go(func() error {
			err := menu.Serve(ctx, h.cfg.Menu, h, h.logger)
			if err != nil {
				return fmt.Errorf("menu: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return h.loop(ctx)
	})
	return g.Wait()
}

func (h *Host) poll(ctx context.Context) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case h.inbox <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Host) tick(ctx context.Context) error {
	t := time.NewTicker(h.cfg.FrameInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			select {
			case h.inbox <- tick{}:
			case <-ctx.Done():
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Host) loop(ctx context.Context) error {
	defer close(h.done)
	h.init()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-h.inbox:
			switch m := m.(type) {
			case tick:
				h.frame()
			case request:
				m()
			case tcell.Event:
				if h.handle(m) {
					h.logger.V(1).Info("quit")
					return nil
				}
			}
		}
	}
}

func (h *Host) init() {
	h.start = time.Now()
	h.screen.HideCursor()
	if h.cfg.Mouse {
		h.screen.EnableMouse()
	}
	h.resize(h.screen.Size())
	h.frame()
}

// Handles one input event and reports whether it asks to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()
	case *tcell.EventKey:
		h.setMods(ev.Modifiers())
		key := convertKey(ev.Key(), ev.Rune(), ev.Modifiers())
		if key == QuitKey {
			return true
		}
		if name, ok := h.hotkey(key); ok {
			h.invoke(name)
		} else {
			h.process(rt.KeyDown{Key: key})
		}
	case *tcell.EventMouse:
		h.setMods(ev.Modifiers())
		x, y := ev.Position()
		h.mouse(ev.Buttons(), cellCenter(x, y))
	}
	return false
}

func (h *Host) mouse(b tcell.ButtonMask, pos layout.Point) {
	btn := convertButton(b)
	delta := h.pointer.To(pos)
	moved := pos != h.pointer
	h.pointer = pos
	switch {
	case btn != rt.NoButton && !h.pressed:
		h.pressed = true
		h.c.SetMouseButton(btn)
		h.process(rt.TouchBegin{Slot: 0, Pos: pos})
	case btn == rt.NoButton && h.pressed:
		if moved {
			h.process(rt.TouchMove{Slot: 0, Pos: pos, Delta: delta})
		}
		h.process(rt.TouchEnd{Slot: 0, Pos: pos})
		h.pressed = false
		h.c.SetMouseButton(rt.NoButton)
	case moved:
		h.process(rt.TouchMove{Slot: 0, Pos: pos, Delta: delta})
	}
}

func (h *Host) setMods(m tcell.ModMask) {
	if mod := convertMods(m); mod != h.mods {
		h.mods = mod
		h.process(rt.ModsChanged{Mod: mod})
	}
}

func (h *Host) hotkey(key ui.Key) (string, bool) {
	for _, cmd := range h.c.Commands(h.root) {
		if cmd.Key != nil && *cmd.Key == key {
			return cmd.Name, true
		}
	}
	return "", false
}

// Invokes the named command, reporting whether the tree has it.
func (h *Host) invoke(name string) bool {
	for _, cmd := range h.c.Commands(h.root) {
		if cmd.Name == name {
			h.record(rt.Invoked{Name: name})
			h.c.Invoke(h.root, name)
			return true
		}
	}
	return false
}

func (h *Host) process(e rt.Event) {
	h.record(e)
	h.c.Process(h.root, e)
}

func (h *Host) resize(w, ht int) {
	size := layout.Sz(float64(w), float64(ht))
	if size == h.size {
		return
	}
	h.size = size
	h.damaged = true
	h.logger.V(1).Info("resize", "width", w, "height", ht)
	h.record(journal.Resize{Size: size})
}

func (h *Host) record(v any) {
	if h.cfg.Journal == nil {
		return
	}
	if _, err := h.cfg.Journal.Record(time.Since(h.start), v); err != nil {
		h.logger.Error(err, "cannot record input")
	}
}

// Runs one frame: an Update, followed by a redraw if anything changed.
func (h *Host) frame() {
	if !h.c.Update(h.root, h.size) && !h.damaged {
		return
	}
	h.damaged = false
	h.draw()
}

func (h *Host) draw() {
	scene := h.c.Render(h.root, h.size)
	drawGrid(h.screen, paint.Rasterize(scene, int(h.size.W), int(h.size.H)))
	if title := h.c.WindowTitle(); title != h.title {
		h.title = title
		if !setTitle(h.screen, title) {
			h.logger.V(2).Info("screen can't set title", "title", title)
		}
	}
	h.screen.Show()
}

// Runs f on the frame loop goroutine and waits for it.
func (h *Host) do(ctx context.Context, f func()) error {
	done := make(chan struct{})
	select {
	case h.inbox <- request(func() { f(); close(done) }):
	case <-h.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-done
	return nil
}

// Commands implements menu.Dispatcher.
func (h *Host) Commands(ctx context.Context) ([]menu.Command, error) {
	var cmds []menu.Command
	err := h.do(ctx, func() {
		for _, ci := range h.c.Commands(h.root) {
			cmd := menu.Command{Name: ci.Name}
			if ci.Key != nil {
				cmd.Key = ci.Key.String()
			}
			cmds = append(cmds, cmd)
		}
	})
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

// Invoke implements menu.Dispatcher.
func (h *Host) Invoke(ctx context.Context, name string) error {
	var found bool
	if err := h.do(ctx, func() { found = h.invoke(name) }); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no command %s", name)
	}
	return nil
}

// WindowState implements menu.Dispatcher.
func (h *Host) WindowState(ctx context.Context) (menu.WindowState, error) {
	var ws menu.WindowState
	err := h.do(ctx, func() {
		ws = menu.WindowState{
			Title:      h.c.WindowTitle(),
			Fullscreen: h.c.Fullscreen(),
			Width:      int(h.size.W),
			Height:     int(h.size.H),
		}
	})
	return ws, err
}

// Close closes the journal and the menu listener of the Host, if any.
func (h *Host) Close() error {
	var err error
	if h.cfg.Journal != nil {
		err = multierr.Append(err, h.cfg.Journal.Close())
	}
	if h.cfg.Menu != nil {
		if cerr := h.cfg.Menu.Close(); !errors.Is(cerr, net.ErrClosed) {
			err = multierr.Append(err, cerr)
		}
	}
	return err
}
