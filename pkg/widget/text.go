package widget

import (
	"strings"

	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

// Text shows s in the text color of the theme. Newlines start new lines.
func Text(s string) rt.Node {
	return themed(func(th ui.Theme, c *rt.Context) rt.Node {
		return StyledText(s, ui.Style{Foreground: th.Text})
	})
}

// StyledText shows s with the given style.
func StyledText(s string, st ui.Style) rt.Node {
	return &text{lines: strings.Split(s, "\n"), style: st}
}

type text struct {
	rt.Leaf
	lines []string
	style ui.Style
}

func (n *text) size() layout.Size {
	w := 0
	for _, line := range n.lines {
		w = max(w, paint.TextWidth(line))
	}
	return layout.Sz(float64(w), float64(len(n.lines)))
}

func (n *text) Draw(p *ident.Path, c *rt.Context) *paint.Scene {
	s := paint.NewScene()
	for i, line := range n.lines {
		s.Text(layout.Pt(0, float64(i)), line, n.style)
	}
	return s
}

func (n *text) Layout(p *ident.Path, c *rt.Context, _ layout.Size) layout.Size {
	size := n.size()
	c.SetRect(*p, size.Rect())
	return size
}

func (n *text) HitTest(p *ident.Path, pt layout.Point, c *rt.Context) (ident.NodeID, bool) {
	return c.HitRect(*p, pt)
}

func (n *text) GC(p *ident.Path, c *rt.Context, live ident.Set) { live.Add(c.ID(*p)) }
