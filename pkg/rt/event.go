package rt

import (
	"time"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/ui"
)

// NumTouches is the number of touch slots. Each simultaneous touch, or the
// mouse pointer, occupies one slot identified by its index.
const NumTouches = 16

// Event is an input to Process. The concrete types are listed below.
type Event interface{ isEvent() }

// TouchBegin is sent when a touch starts or a mouse button is pressed.
type TouchBegin struct {
	Slot int
	Pos  layout.Point
}

// TouchMove is sent when a touch or the mouse pointer moves. Delta is the
// movement since the previous event in the same slot.
type TouchMove struct {
	Slot  int
	Pos   layout.Point
	Delta layout.Vec
}

// TouchEnd is sent when a touch ends or a mouse button is released.
type TouchEnd struct {
	Slot int
	Pos  layout.Point
}

// KeyDown is sent when a key is pressed.
type KeyDown struct{ Key ui.Key }

// KeyUp is sent when a key is released. Not all backends can report this.
type KeyUp struct{ Key ui.Key }

// ModsChanged is sent when the set of pressed modifier keys changes.
type ModsChanged struct{ Mod ui.Mod }

// Invoked is sent when a command is chosen from a menu or through its hotkey.
type Invoked struct{ Name string }

// AnimTick is sent once per frame by Update. DT is the duration of a frame.
type AnimTick struct{ DT time.Duration }

func (TouchBegin) isEvent()  {}
func (TouchMove) isEvent()   {}
func (TouchEnd) isEvent()    {}
func (KeyDown) isEvent()     {}
func (KeyUp) isEvent()       {}
func (ModsChanged) isEvent() {}
func (Invoked) isEvent()     {}
func (AnimTick) isEvent()    {}

// Translate returns e with its position, if it has one, moved by v.
func Translate(e Event, v layout.Vec) Event {
	if v.IsZero() {
		return e
	}
	switch e := e.(type) {
	case TouchBegin:
		e.Pos = e.Pos.Add(v)
		return e
	case TouchMove:
		e.Pos = e.Pos.Add(v)
		return e
	case TouchEnd:
		e.Pos = e.Pos.Add(v)
		return e
	}
	return e
}

func validSlot(slot int) bool { return 0 <= slot && slot < NumTouches }

// MouseButton identifies a mouse button.
type MouseButton int

const (
	NoButton MouseButton = iota
	LeftButton
	RightButton
	MiddleButton
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	case MiddleButton:
		return "middle"
	}
	return "none"
}
