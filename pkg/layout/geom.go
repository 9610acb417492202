// Package layout contains geometry types and the bookkeeping that lets a view
// tree skip layout work between frames: a cache of per-path boxes and a
// tracker of which state each stateful subtree's layout read.
//
// Coordinates are y-down: the origin is the top-left corner.
package layout

import "fmt"

// Point is a position.
type Point struct{ X, Y float64 }

// Vec is a displacement.
type Vec struct{ X, Y float64 }

// Size is a width and a height.
type Size struct{ W, H float64 }

// Rect is an axis-aligned rectangle with inclusive Min and exclusive Max.
type Rect struct{ Min, Max Point }

func Pt(x, y float64) Point { return Point{x, y} }
func V(x, y float64) Vec { return Vec{x, y} }
func Sz(w, h float64) Size { return Size{w, h} }

// Add translates p by v.
func (p Point) Add(v Vec) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Sub translates p by -v.
func (p Point) Sub(v Vec) Point { return Point{p.X - v.X, p.Y - v.Y} }

// To returns the displacement from p to q.
func (p Point) To(q Point) Vec { return Vec{q.X - p.X, q.Y - p.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Shrink returns s reduced by dw and dh, never going below zero.
func (s Size) Shrink(dw, dh float64) Size {
	return Size{max(s.W-dw, 0), max(s.H-dh, 0)}
}

// Grow returns s enlarged by dw and dh.
func (s Size) Grow(dw, dh float64) Size { return Size{s.W + dw, s.H + dh} }

// Rect returns the rectangle of size s at the origin.
func (s Size) Rect() Rect { return Rect{Max: Point{s.W, s.H}} }

func (s Size) String() string { return fmt.Sprintf("%gx%g", s.W, s.H) }

// RectAt returns the rectangle of size s with its top-left corner at p.
func RectAt(p Point, s Size) Rect {
	return Rect{p, Point{p.X + s.W, p.Y + s.H}}
}

// RectAround returns the rectangle of size s centered at p.
func RectAround(p Point, s Size) Rect {
	return RectAt(Point{p.X - s.W/2, p.Y - s.H/2}, s)
}

func (r Rect) Width() float64 { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Size { return Size{r.Width(), r.Height()} }

func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p is in r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Translate moves r by v.
func (r Rect) Translate(v Vec) Rect { return Rect{r.Min.Add(v), r.Max.Add(v)} }

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Point{r.Min.X + d, r.Min.Y + d}, Point{r.Max.X - d, r.Max.Y - d}}
}

// Intersect returns the largest rectangle contained in both r and s. The
// result may be empty.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Point{max(r.Min.X, s.Min.X), max(r.Min.Y, s.Min.Y)},
		Point{min(r.Max.X, s.Max.X), min(r.Max.Y, s.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

func (r Rect) String() string { return fmt.Sprintf("%v-%v", r.Min, r.Max) }
