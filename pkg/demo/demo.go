// Package demo contains the view tree run by the retk command, a small
// gallery of the built-in widgets.
package demo

import (
	"fmt"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
	"src.retk.dev/pkg/widget"
)

// Names of the commands declared by View.
const (
	CmdIncrement = "Increment"
	CmdReset     = "Reset counter"
	CmdAddItem   = "Add item"
	CmdClear     = "Clear items"
)

type item struct {
	id   int
	name string
}

type list struct {
	items []item
	next  int
}

func newList() list {
	return list{items: []item{{1, "apples"}, {2, "pears"}, {3, "plums"}}, next: 4}
}

type removeItem struct{ id int }

// View returns the demo view.
func View() rt.Node {
	return rt.Title(rt.WithState(func() int { return 0 }, func(count rt.State[int], c *rt.Context) rt.Node {
		return rt.WithState(newList, func(l rt.State[list], c *rt.Context) rt.Node {
			body := rt.PaddingAuto(rt.VStack(
				widget.StyledText("retk demo", ui.Style{Bold: true}),
				counterRow(count, c),
				sliderRow(),
				toggleRow(),
				knobRow(),
				itemList(l, c),
			))
			return rt.CommandGroup(body,
				rt.Cmd{Name: CmdIncrement, Key: key('+'), Func: func(c *rt.Context) { *count.Mut(c)++ }},
				rt.Cmd{Name: CmdReset, Key: key('r', ui.Ctrl), Func: func(c *rt.Context) { count.Set(c, 0) }},
				rt.Cmd{Name: CmdAddItem, Key: key('a', ui.Ctrl), Func: func(c *rt.Context) {
					m := l.Mut(c)
					m.items = append(m.items, item{m.next, fmt.Sprintf("item %d", m.next)})
					m.next++
				}},
				rt.Cmd{Name: CmdClear, Func: func(c *rt.Context) { l.Mut(c).items = nil }},
			)
		})
	}), "retk demo")
}

func key(r rune, mods ...ui.Mod) *ui.Key {
	k := ui.K(r, mods...)
	return &k
}

func counterRow(count rt.State[int], c *rt.Context) rt.Node {
	return rt.HStack(
		widget.Button("-", func(c *rt.Context) { *count.Mut(c)-- }),
		widget.Text(fmt.Sprintf("count: %d", count.Get(c))),
		widget.Button("+", func(c *rt.Context) { *count.Mut(c)++ }),
	)
}

func sliderRow() rt.Node {
	return rt.WithState(func() float64 { return 0.5 }, func(v rt.State[float64], c *rt.Context) rt.Node {
		return rt.HStack(
			widget.Text(fmt.Sprintf("volume %3.0f%%", v.Get(c)*100)),
			rt.Sized(widget.HSlider(v), layout.Sz(20, 1)),
		)
	})
}

func toggleRow() rt.Node {
	return rt.WithState(func() bool { return false }, func(on rt.State[bool], c *rt.Context) rt.Node {
		label := "muted: no"
		if on.Get(c) {
			label = "muted: yes"
		}
		return rt.HStack(widget.Text(label), widget.Toggle(on))
	})
}

func knobRow() rt.Node {
	return rt.WithState(func() float64 { return 0 }, func(v rt.State[float64], c *rt.Context) rt.Node {
		return rt.HStack(widget.Text("pan"), widget.Knob(v))
	})
}

func itemList(l rt.State[list], c *rt.Context) rt.Node {
	rows := rt.List(l.Get(c).items, func(it item) int { return it.id }, func(it item) rt.Node {
		return rt.HStack(widget.Text(it.name), widget.ButtonAction("x", removeItem{it.id}))
	})
	return rt.Handle(rows, func(c *rt.Context, a removeItem) rt.Action {
		m := l.Mut(c)
		for i, it := range m.items {
			if it.id == a.id {
				m.items = append(m.items[:i:i], m.items[i+1:]...)
				break
			}
		}
		return nil
	})
}
