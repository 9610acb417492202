package rt

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/paint"
	"src.retk.dev/pkg/testutil"
	"src.retk.dev/pkg/tt"
	"src.retk.dev/pkg/ui"
)

// box is a fixed-size leaf that is hit anywhere inside its rectangle.
type box struct {
	Leaf
	size    layout.Size
	layouts *int
}

func rect(w, h float64) *box { return &box{size: layout.Sz(w, h)} }

func countedRect(w, h float64, layouts *int) *box {
	return &box{size: layout.Sz(w, h), layouts: layouts}
}

func (b *box) Draw(p *ident.Path, c *Context) *paint.Scene {
	s := paint.NewScene()
	s.FillRect(c.Box(*p).Rect, ui.Red)
	return s
}

func (b *box) Layout(p *ident.Path, c *Context, _ layout.Size) layout.Size {
	if b.layouts != nil {
		*b.layouts++
	}
	c.SetRect(*p, b.size.Rect())
	return b.size
}

func (b *box) HitTest(p *ident.Path, pt layout.Point, c *Context) (ident.NodeID, bool) {
	return c.HitRect(*p, pt)
}

func (b *box) GC(p *ident.Path, c *Context, live ident.Set) { live.Add(c.ID(*p)) }

func fill(x0, y0, x1, y1 float64) paint.Op {
	return paint.FillRect{Rect: layout.Rect{Min: layout.Pt(x0, y0), Max: layout.Pt(x1, y1)}, Color: ui.Red}
}

func tapAt(c *Context, root Node, x, y float64) {
	c.Process(root, TouchBegin{0, layout.Pt(x, y)})
	c.Process(root, TouchEnd{0, layout.Pt(x, y)})
}

func TestTranslate(t *testing.T) {
	tt.Test(t, tt.Fn("Translate", Translate), tt.Table{
		tt.Args(TouchBegin{1, layout.Pt(1, 1)}, layout.V(2, 3)).
			Rets(TouchBegin{1, layout.Pt(3, 4)}),
		tt.Args(TouchMove{0, layout.Pt(0, 0), layout.V(1, 1)}, layout.V(1, 0)).
			Rets(TouchMove{0, layout.Pt(1, 0), layout.V(1, 1)}),
		tt.Args(TouchEnd{2, layout.Pt(5, 5)}, layout.V(-5, -5)).
			Rets(TouchEnd{2, layout.Pt(0, 0)}),
		tt.Args(KeyDown{ui.K('a')}, layout.V(2, 3)).Rets(KeyDown{ui.K('a')}),
	})
}

func TestIdentity_StableAcrossPasses(t *testing.T) {
	view := func() Node { return HStack(rect(10, 10), rect(10, 10)) }
	c := NewContext()
	size := layout.Sz(20, 10)

	c.Render(view(), size)
	left, _ := c.HitTest(view(), layout.Pt(5, 5))
	right, _ := c.HitTest(view(), layout.Pt(15, 5))
	if left == right || left == ident.None {
		t.Fatalf("siblings got ids %v and %v", left, right)
	}

	c.Render(view(), size)
	left2, _ := c.HitTest(view(), layout.Pt(5, 5))
	right2, _ := c.HitTest(view(), layout.Pt(15, 5))
	if left2 != left || right2 != right {
		t.Errorf("ids changed across passes: %v %v -> %v %v", left, right, left2, right2)
	}
}

func TestIdentity_ListFollowsKeys(t *testing.T) {
	view := func(items []string) Node {
		return List(items, func(s string) string { return s },
			func(string) Node { return rect(10, 10) })
	}
	c := NewContext()
	size := layout.Sz(10, 20)

	c.Render(view([]string{"a", "b"}), size)
	a, _ := c.HitTest(view([]string{"a", "b"}), layout.Pt(5, 5))

	c.Render(view([]string{"b", "a"}), size)
	moved, _ := c.HitTest(view([]string{"b", "a"}), layout.Pt(5, 15))
	if moved != a {
		t.Errorf("id of item a = %v after reordering, want %v", moved, a)
	}
}

func TestIdentity_AnyDistinguishesTypes(t *testing.T) {
	c := NewContext()
	size := layout.Sz(10, 10)
	c.Render(Any(rect(10, 10)), size)
	id1, _ := c.HitTest(Any(rect(10, 10)), layout.Pt(5, 5))
	inner := Any(Padding(rect(10, 10), 0))
	c.Render(inner, size)
	id2, _ := c.HitTest(inner, layout.Pt(5, 5))
	if id1 == id2 {
		t.Errorf("nodes of different types share id %v", id1)
	}
}

func TestHList(t *testing.T) {
	c := NewContext()
	items := []int{7, 3}
	view := func() Node {
		return HList(items, func(i int) int { return i }, func(i int) Node { return rect(float64(i), 2) })
	}
	s := c.Render(view(), layout.Sz(100, 100))
	want := []paint.Op{fill(0, 0, 7, 2), fill(7, 0, 10, 2)}
	if diff := cmp.Diff(want, s.Ops); diff != "" {
		t.Errorf("scene (-want +got):\n%s", diff)
	}
	id, _ := c.HitTest(view(), layout.Pt(8, 1))
	if want := c.ID(ident.Path{0, ident.KeySelector(3)}); id != want {
		t.Errorf("HitTest = %v, want %v", id, want)
	}
}

func TestZList(t *testing.T) {
	c := NewContext()
	var hits []string
	view := func() Node {
		return ZList([]string{"a", "b"}, func(s string) string { return s }, func(s string) Node {
			return Tap(rect(5, 5), func(*Context) { hits = append(hits, s) })
		})
	}
	c.Render(view(), layout.Sz(10, 10))
	tapAt(c, view(), 1, 1)
	if diff := cmp.Diff([]string{"b"}, hits); diff != "" {
		t.Errorf("hits (-want +got):\n%s", diff)
	}
}

func TestStateAt(t *testing.T) {
	c := NewContext()
	root := WithState(func() string { return "x" }, func(State[string], *Context) Node { return rect(1, 1) })
	c.Render(root, layout.Sz(1, 1))
	s := StateAt[string](c.ID(ident.Root()))
	if got := s.Get(c); got != "x" {
		t.Errorf("Get = %q, want x", got)
	}
	s.Set(c, "y")
	if !c.Dirty() || s.Get(c) != "y" {
		t.Errorf("Set didn't store and dirty the state")
	}
}

func TestVStack_Layout(t *testing.T) {
	c := NewContext()
	s := c.Render(VStack(rect(10, 5), rect(20, 5)), layout.Sz(100, 100))
	want := []paint.Op{fill(5, 0, 15, 5), fill(0, 5, 20, 10)}
	if diff := cmp.Diff(want, s.Ops); diff != "" {
		t.Errorf("scene (-want +got):\n%s", diff)
	}
	if got := c.Box(ident.Root()).Rect.Size(); got != layout.Sz(20, 10) {
		t.Errorf("stack size = %v, want 20x10", got)
	}
}

func TestHStack_FlexibleChildrenTakeRest(t *testing.T) {
	c := NewContext()
	root := HStack(rect(10, 4), Spacer(), rect(10, 2))
	c.Render(root, layout.Sz(100, 10))
	offsets := []layout.Vec{}
	for i := 0; i < 3; i++ {
		offsets = append(offsets, c.Box(ident.Path{0, uint64(i)}).Offset)
	}
	want := []layout.Vec{layout.V(0, 0), layout.V(10, 2), layout.V(90, 1)}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
}

func TestZStack_TakesFullSize(t *testing.T) {
	c := NewContext()
	root := ZStack(rect(10, 10), rect(20, 5))
	s := c.Render(root, layout.Sz(100, 100))
	want := []paint.Op{fill(0, 0, 10, 10), fill(0, 0, 20, 5)}
	if diff := cmp.Diff(want, s.Ops); diff != "" {
		t.Errorf("scene (-want +got):\n%s", diff)
	}
	if got := c.Box(ident.Root()).Rect; got != layout.Sz(100, 100).Rect() {
		t.Errorf("ZStack rect = %v, want 100x100", got)
	}
	for i := 0; i < 2; i++ {
		if off := c.Box(ident.Path{0, uint64(i)}).Offset; !off.IsZero() {
			t.Errorf("offset of child %d = %v, want zero", i, off)
		}
	}
}

func TestEmptyStack(t *testing.T) {
	c := NewContext()
	s := c.Render(HStack(), layout.Sz(10, 10))
	if s.Len() != 0 {
		t.Errorf("empty stack drew %d ops", s.Len())
	}
}

func TestLayout_Idempotent(t *testing.T) {
	view := func() Node {
		return VStack(
			WithState(func() int { return 0 }, func(State[int], *Context) Node { return rect(10, 5) }),
			Padding(HStack(rect(3, 3), rect(4, 4)), 1))
	}
	c := NewContext()
	size := layout.Sz(50, 50)
	first := c.Render(view(), size)
	stats := c.Stats()
	second := c.Render(view(), size)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second render differs (-first +second):\n%s", diff)
	}
	if c.Stats() != stats {
		t.Errorf("stats changed from %v to %v", stats, c.Stats())
	}
}

func TestPaddingAndOffset(t *testing.T) {
	c := NewContext()
	root := Padding(rect(10, 10), 2)
	s := c.Render(root, layout.Sz(100, 100))
	if diff := cmp.Diff([]paint.Op{fill(2, 2, 12, 12)}, s.Ops); diff != "" {
		t.Errorf("scene (-want +got):\n%s", diff)
	}
	if got := c.Box(ident.Root()).Rect; !got.Empty() {
		// padding itself stores nothing
		t.Errorf("padding stored box %v", got)
	}
	if _, ok := c.HitTest(root, layout.Pt(1, 1)); ok {
		t.Errorf("hit inside padding")
	}
	if _, ok := c.HitTest(root, layout.Pt(3, 3)); !ok {
		t.Errorf("no hit inside child")
	}

	moved := Offset(rect(10, 10), layout.V(5, 0))
	c.Render(moved, layout.Sz(100, 100))
	if _, ok := c.HitTest(moved, layout.Pt(12, 5)); !ok {
		t.Errorf("no hit inside offset child")
	}
	if _, ok := c.HitTest(moved, layout.Pt(2, 5)); ok {
		t.Errorf("hit at original position of offset child")
	}
}

func TestSizedAndBackground(t *testing.T) {
	c := NewContext()
	root := Background(Sized(Empty(), layout.Sz(6, 3)), Canvas(
		func(c *Context, r layout.Rect) *paint.Scene {
			s := paint.NewScene()
			s.FillRect(r, ui.Red)
			return s
		}))
	s := c.Render(root, layout.Sz(100, 100))
	if diff := cmp.Diff([]paint.Op{fill(0, 0, 6, 3)}, s.Ops); diff != "" {
		t.Errorf("scene (-want +got):\n%s", diff)
	}
	if _, ok := c.HitTest(root, layout.Pt(5, 2)); !ok {
		t.Errorf("background not hit")
	}
}

func TestTitleAndFullscreen(t *testing.T) {
	c := NewContext()
	if c.WindowTitle() != "retk" || c.Fullscreen() {
		t.Fatalf("unexpected defaults %q %v", c.WindowTitle(), c.Fullscreen())
	}
	c.Render(Title(Fullscreen(rect(1, 1)), "hello"), layout.Sz(10, 10))
	if c.WindowTitle() != "hello" || !c.Fullscreen() {
		t.Errorf("got title %q, fullscreen %v", c.WindowTitle(), c.Fullscreen())
	}
}

type leaky struct{ Leaf }

func (leaky) Draw(p *ident.Path, _ *Context) *paint.Scene {
	p.Push(1)
	return nil
}

func (leaky) Layout(*ident.Path, *Context, layout.Size) layout.Size { return layout.Size{} }

func TestPathImbalancePanics(t *testing.T) {
	c := NewContext()
	r := testutil.Recover(func() { c.Render(leaky{}, layout.Sz(1, 1)) })
	if r != ErrPathImbalance {
		t.Errorf("got panic %v, want ErrPathImbalance", r)
	}
}
