// Package widget contains leaf views built on the runtime in package rt.
//
// Sizes are in terminal cells. Colors come from the ui.Theme found in the
// view environment, falling back to ui.DefaultTheme.
package widget

import (
	"golang.org/x/exp/constraints"

	"src.retk.dev/pkg/rt"
	"src.retk.dev/pkg/ui"
)

func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// themed builds a node from the current theme.
func themed(body func(th ui.Theme, c *rt.Context) rt.Node) rt.Node {
	return rt.WithEnv(ui.DefaultTheme, body)
}

// WithTheme makes th the theme of the widgets in child.
func WithTheme(child rt.Node, th ui.Theme) rt.Node { return rt.SetEnv(child, th) }
