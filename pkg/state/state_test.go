package state

import (
	"errors"
	"reflect"
	"testing"

	"src.retk.dev/pkg/ident"
)

func TestInit_OnlyIfAbsent(t *testing.T) {
	s := NewStore()
	calls := 0
	factory := func() int { calls++; return 10 }
	Init(s, 1, factory)
	Init(s, 1, factory)
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
	if v, err := Get[int](s, 1); v != 10 || err != nil {
		t.Errorf("Get = %v, %v; want 10, nil", v, err)
	}
	if s.IsDirty(1) || s.Dirty() {
		t.Errorf("Init marked state dirty")
	}
}

func TestMut_MarksDirty(t *testing.T) {
	s := NewStore()
	Init(s, 1, func() int { return 0 })
	Init(s, 2, func() int { return 0 })
	p, err := Mut[int](s, 1)
	if err != nil {
		t.Fatal(err)
	}
	*p = 5
	if !s.IsDirty(1) || !s.Dirty() {
		t.Errorf("Mut didn't mark dirty")
	}
	if s.IsDirty(2) {
		t.Errorf("Mut marked an unrelated record dirty")
	}
	if v, _ := Get[int](s, 1); v != 5 {
		t.Errorf("value after Mut = %d, want 5", v)
	}
	s.ClearDirty()
	if s.IsDirty(1) || s.Dirty() {
		t.Errorf("ClearDirty left dirty flags set")
	}
}

func TestMut_PointerStaysValid(t *testing.T) {
	s := NewStore()
	Init(s, 1, func() []string { return nil })
	p, _ := Mut[[]string](s, 1)
	Set(s, 1, []string{"a"})
	*p = append(*p, "b")
	v, _ := Get[[]string](s, 1)
	if !reflect.DeepEqual(v, []string{"a", "b"}) {
		t.Errorf("state = %v, want [a b]", v)
	}
}

func TestSuspend(t *testing.T) {
	s := NewStore()
	Init(s, 1, func() int { return 0 })
	restore := s.Suspend()
	p, _ := Mut[int](s, 1)
	*p = 3
	s.MarkDirty()
	if s.IsDirty(1) || s.Dirty() {
		t.Errorf("dirty set while suspended")
	}
	restore()
	Mut[int](s, 1)
	if !s.IsDirty(1) || !s.Dirty() {
		t.Errorf("dirty not set after restore")
	}
}

func TestErrors(t *testing.T) {
	s := NewStore()
	Init(s, 1, func() int { return 0 })

	_, err := Get[string](s, 1)
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("Get with wrong type returned %v, want *TypeError", err)
	}
	if typeErr.Stored != reflect.TypeOf(0) || typeErr.Wanted != reflect.TypeOf("") {
		t.Errorf("TypeError = %+v", typeErr)
	}
	if _, err := Mut[string](s, 1); !errors.As(err, &typeErr) {
		t.Errorf("Mut with wrong type returned %v, want *TypeError", err)
	}
	if s.Dirty() {
		t.Errorf("failed Mut marked the store dirty")
	}

	_, err = Get[int](s, 2)
	if !errors.Is(err, ErrMissing) {
		t.Errorf("Get of missing state returned %v, want ErrMissing", err)
	}
	if _, err := Mut[int](s, 2); !errors.Is(err, ErrMissing) {
		t.Errorf("Mut of missing state returned %v, want ErrMissing", err)
	}
}

func TestRetain(t *testing.T) {
	s := NewStore()
	for id := ident.NodeID(1); id <= 4; id++ {
		Init(s, id, func() int { return int(id) })
	}
	s.Retain(ident.NewSet(2, 4))
	if s.Len() != 2 || !s.Has(2) || !s.Has(4) || s.Has(1) {
		t.Errorf("Retain left %d records", s.Len())
	}
	Init(s, 1, func() int { return 100 })
	if v, _ := Get[int](s, 1); v != 100 {
		t.Errorf("reinitialized state = %d, want 100", v)
	}
}

func TestSet_ReplacesType(t *testing.T) {
	s := NewStore()
	Init(s, 1, func() int { return 1 })
	Set(s, 1, "x")
	if v, err := Get[string](s, 1); v != "x" || err != nil {
		t.Errorf("Get = %q, %v; want x, nil", v, err)
	}
}
