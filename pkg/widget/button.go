package widget

import (
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// Button shows label on a filled background and calls f when tapped.
func Button(label string, f func(c *rt.Context)) rt.Node {
	return rt.Tap(buttonFace(label), f)
}

// ButtonAction is like Button, but emits a when tapped.
func ButtonAction(label string, a rt.Action) rt.Node {
	return rt.TapAction(buttonFace(label), a)
}

func buttonFace(label string) rt.Node {
	return themed(func(th ui.Theme, c *rt.Context) rt.Node {
		return rt.Background(
			rt.PaddingXY(StyledText(label, ui.Style{Foreground: th.Text, Bold: true}), 1, 0),
			Rectangle(th.Control))
	})
}
