package ui

import (
	"testing"

	"src.retk.dev/pkg/tt"
)

func TestK(t *testing.T) {
	tt.Test(t, tt.Fn("K", K), tt.Table{
		tt.Args('a').Rets(Key{'a', 0}),
		tt.Args('a', Alt).Rets(Key{'a', Alt}),
		tt.Args('a', Alt, Ctrl).Rets(Key{'a', Alt | Ctrl}),
	})
}

func TestKey_String(t *testing.T) {
	tt.Test(t, tt.Fn("String", Key.String), tt.Table{
		tt.Args(K('a')).Rets("a"),
		tt.Args(K('a', Alt)).Rets("Alt-a"),
		tt.Args(K('a', Ctrl, Alt, Shift)).Rets("Ctrl-Alt-Shift-a"),
		tt.Args(K('q', Cmd)).Rets("Cmd-q"),
		tt.Args(K(Tab)).Rets("Tab"),
		tt.Args(K(Escape)).Rets("Escape"),
		tt.Args(K(F1)).Rets("F1"),
		tt.Args(K(PageDown)).Rets("PageDown"),
		tt.Args(K(-1)).Rets("(bad function key -1)"),
		tt.Args(K(-2000)).Rets("(bad function key -2000)"),
	})
}

var parseKeyTests = []struct {
	s       string
	wantKey Key
	wantErr string
}{
	{s: "x", wantKey: K('x')},
	{s: "Tab", wantKey: K(Tab)},
	{s: "F1", wantKey: K(F1)},
	{s: "Escape", wantKey: K(Escape)},

	// Alt- keys are case-sensitive.
	{s: "a-x", wantKey: Key{'x', Alt}},
	{s: "a-X", wantKey: Key{'X', Alt}},

	// Ctrl- keys are case-insensitive.
	{s: "C-x", wantKey: Key{'X', Ctrl}},
	{s: "C-X", wantKey: Key{'X', Ctrl}},

	// + is the same as -.
	{s: "C+X", wantKey: Key{'X', Ctrl}},
	{s: "Cmd+q", wantKey: Key{'q', Cmd}},

	// Full names and alternative names can also be used.
	{s: "M-x", wantKey: Key{'x', Alt}},
	{s: "Meta-x", wantKey: Key{'x', Alt}},

	// Multiple modifiers can appear in any order.
	{s: "Alt-Ctrl-Delete", wantKey: Key{Delete, Alt | Ctrl}},
	{s: "Ctrl-Alt-Delete", wantKey: Key{Delete, Alt | Ctrl}},

	// Ctrl-I and Ctrl-J are normalized to Tab and Enter.
	{s: "Ctrl-I", wantKey: K(Tab)},
	{s: "Ctrl-J", wantKey: K(Enter)},

	// A trailing - is the key itself.
	{s: "Ctrl--", wantKey: Key{'-', Ctrl}},

	// Errors.
	{s: "F123", wantErr: "bad key: F123"},
	{s: "Hyper-X", wantErr: "bad modifier: Hyper"},
}

func TestParseKey(t *testing.T) {
	for _, test := range parseKeyTests {
		key, err := ParseKey(test.s)
		if key != test.wantKey {
			t.Errorf("ParseKey(%q) => %v, want %v", test.s, key, test.wantKey)
		}
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("ParseKey(%q) => error %v, want nil", test.s, err)
			}
		} else {
			if err == nil || err.Error() != test.wantErr {
				t.Errorf("ParseKey(%q) => error %v, want error with message %q",
					test.s, err, test.wantErr)
			}
		}
	}
}

var colorStringTests = []struct {
	color Color
	str   string
}{
	{Red, "red"},
	{BrightRed, "bright-red"},
	{XTerm256Color(30), "color30"},
	{TrueColor(0x33, 0x44, 0x55), "#334455"},
}

func TestColorString(t *testing.T) {
	for _, test := range colorStringTests {
		if s := test.color.String(); s != test.str {
			t.Errorf("%v.String() -> %q, want %q", test.color, s, test.str)
		}
		if c := ParseColor(test.str); c != test.color {
			t.Errorf("ParseColor(%q) -> %v, want %v", test.str, c, test.color)
		}
	}
	if c := ParseColor("chartreuse"); c != nil {
		t.Errorf("ParseColor of unknown name returned %v", c)
	}
}

func TestPaletteIndexAndRGB(t *testing.T) {
	tt.Test(t, tt.Fn("PaletteIndex", PaletteIndex), tt.Table{
		tt.Args(Red).Rets(1, true),
		tt.Args(BrightRed).Rets(9, true),
		tt.Args(XTerm256Color(200)).Rets(200, true),
		tt.Args(TrueColor(1, 2, 3)).Rets(0, false),
	})
	tt.Test(t, tt.Fn("RGB", RGB), tt.Table{
		tt.Args(TrueColor(1, 2, 3)).Rets(uint8(1), uint8(2), uint8(3), true),
		tt.Args(Red).Rets(uint8(0), uint8(0), uint8(0), false),
	})
}

func TestStyle_SGR(t *testing.T) {
	tt.Test(t, tt.Fn("SGR", Style.SGR), tt.Table{
		tt.Args(Style{}).Rets(""),
		tt.Args(Style{Bold: true, Inverse: true}).Rets("1;7"),
		tt.Args(Style{}.Fg(Red).Bg(BrightBlue)).Rets("31;104"),
		tt.Args(Style{Foreground: XTerm256Color(30)}).Rets("38;5;30"),
		tt.Args(Style{Background: TrueColor(30, 40, 50)}).Rets("48;2;30;40;50"),
	})
}
