package host

import (
	"github.com/gdamore/tcell/v2"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// QuitKey stops Run.
var QuitKey = ui.K('q', ui.Ctrl)

var specialKeys = map[tcell.Key]ui.Key{
	tcell.KeyEnter:      ui.K(ui.Enter),
	tcell.KeyTab:        ui.K(ui.Tab),
	tcell.KeyBacktab:    ui.K(ui.Tab, ui.Shift),
	tcell.KeyBackspace:  ui.K(ui.Backspace),
	tcell.KeyBackspace2: ui.K(ui.Backspace),
	tcell.KeyEscape:     ui.K(ui.Escape),

	tcell.KeyUp:    ui.K(ui.Up),
	tcell.KeyDown:  ui.K(ui.Down),
	tcell.KeyRight: ui.K(ui.Right),
	tcell.KeyLeft:  ui.K(ui.Left),

	tcell.KeyHome:   ui.K(ui.Home),
	tcell.KeyEnd:    ui.K(ui.End),
	tcell.KeyPgUp:   ui.K(ui.PageUp),
	tcell.KeyPgDn:   ui.K(ui.PageDown),
	tcell.KeyInsert: ui.K(ui.Insert),
	tcell.KeyDelete: ui.K(ui.Delete),

	tcell.KeyF1:  ui.K(ui.F1),
	tcell.KeyF2:  ui.K(ui.F2),
	tcell.KeyF3:  ui.K(ui.F3),
	tcell.KeyF4:  ui.K(ui.F4),
	tcell.KeyF5:  ui.K(ui.F5),
	tcell.KeyF6:  ui.K(ui.F6),
	tcell.KeyF7:  ui.K(ui.F7),
	tcell.KeyF8:  ui.K(ui.F8),
	tcell.KeyF9:  ui.K(ui.F9),
	tcell.KeyF10: ui.K(ui.F10),
	tcell.KeyF11: ui.K(ui.F11),
	tcell.KeyF12: ui.K(ui.F12),
}

func convertMods(m tcell.ModMask) ui.Mod {
	var mod ui.Mod
	if m&tcell.ModShift != 0 {
		mod |= ui.Shift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ui.Alt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ui.Ctrl
	}
	if m&tcell.ModMeta != 0 {
		mod |= ui.Cmd
	}
	return mod
}

// Converts a tcell key event to a ui.Key. Shift is only kept for keys that
// don't produce a rune of their own.
func convertKey(k tcell.Key, r rune, m tcell.ModMask) ui.Key {
	mod := convertMods(m)
	if key, ok := specialKeys[k]; ok {
		key.Mod |= mod
		return key
	}
	mod &^= ui.Shift
	switch {
	case k == tcell.KeyCtrlSpace:
		return ui.K(' ', mod|ui.Ctrl)
	case tcell.KeyCtrlA <= k && k <= tcell.KeyCtrlZ:
		return ui.K('a'+rune(k-tcell.KeyCtrlA), mod|ui.Ctrl)
	}
	return ui.K(r, mod)
}

func convertButton(b tcell.ButtonMask) rt.MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return rt.LeftButton
	case b&tcell.Button2 != 0:
		return rt.RightButton
	case b&tcell.Button3 != 0:
		return rt.MiddleButton
	}
	return rt.NoButton
}

// Cells are one unit wide; pointer positions are at the center of the cell.
func cellCenter(x, y int) layout.Point {
	return layout.Pt(float64(x)+0.5, float64(y)+0.5)
}
