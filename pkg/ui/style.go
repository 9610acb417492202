// Package ui contains the vocabulary shared between views and backends: keys,
// colors and text styles.
package ui

import (
	"strings"
)

// Style specifies how something (mostly a string) shall be displayed.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underlined bool
	Blink      bool
	Inverse    bool
}

// SGR returns SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string

	addIf := func(b bool, code string) {
		if b {
			sgr = append(sgr, code)
		}
	}
	addIf(s.Bold, "1")
	addIf(s.Dim, "2")
	addIf(s.Italic, "3")
	addIf(s.Underlined, "4")
	addIf(s.Blink, "5")
	addIf(s.Inverse, "7")
	if s.Foreground != nil {
		sgr = append(sgr, s.Foreground.fgSGR())
	}
	if s.Background != nil {
		sgr = append(sgr, s.Background.bgSGR())
	}

	return strings.Join(sgr, ";")
}

// Fg returns a copy of s with the foreground set to c.
func (s Style) Fg(c Color) Style {
	s.Foreground = c
	return s
}

// Bg returns a copy of s with the background set to c.
func (s Style) Bg(c Color) Style {
	s.Background = c
	return s
}

// Theme holds the colors used by the built-in widgets. It is looked up from
// the view environment.
type Theme struct {
	Text       Color
	Control    Color
	Highlight  Color
	Background Color
	Thumb      Color
}

// DefaultTheme is used when no Theme has been set.
func DefaultTheme() Theme {
	return Theme{
		Text:       White,
		Control:    BrightBlack,
		Highlight:  Blue,
		Background: Black,
		Thumb:      BrightCyan,
	}
}
