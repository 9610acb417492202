package layout

// HAlign is a horizontal alignment.
type HAlign int

const (
	Leading HAlign = iota
	Center
	Trailing
)

// VAlign is a vertical alignment.
type VAlign int

const (
	Top VAlign = iota
	Middle
	Bottom
)

// AlignH returns the offset that moves child horizontally into parent
// according to a, centering it vertically.
func AlignH(child, parent Rect, a HAlign) Vec {
	return Align(child, parent, a, Middle)
}

// AlignV returns the offset that moves child vertically into parent according
// to a, centering it horizontally.
func AlignV(child, parent Rect, a VAlign) Vec {
	return Align(child, parent, Center, a)
}

// Align returns the offset that moves child into parent according to h and v.
func Align(child, parent Rect, h HAlign, v VAlign) Vec {
	c := child.Center().To(parent.Center())
	var off Vec
	switch h {
	case Leading:
		off.X = parent.Min.X - child.Min.X
	case Trailing:
		off.X = parent.Max.X - child.Max.X
	default:
		off.X = c.X
	}
	switch v {
	case Top:
		off.Y = parent.Min.Y - child.Min.Y
	case Bottom:
		off.Y = parent.Max.Y - child.Max.Y
	default:
		off.Y = c.Y
	}
	return off
}
