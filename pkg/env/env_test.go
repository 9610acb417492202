package env

import (
	"testing"
)

type theme struct{ dark bool }
type fontSize int

func TestSetRestore_Nested(t *testing.T) {
	s := NewStore()

	prev1, had1 := Set(s, theme{dark: true})
	if had1 {
		t.Errorf("first Set reported a previous value")
	}
	prev2, had2 := Set(s, theme{dark: false})
	if !had2 || prev2 != (theme{dark: true}) {
		t.Errorf("second Set returned %v, %v", prev2, had2)
	}
	if v, _ := Lookup[theme](s); v.dark {
		t.Errorf("inner value not visible")
	}
	Restore(s, prev2, had2)
	if v, _ := Lookup[theme](s); !v.dark {
		t.Errorf("outer value not restored")
	}
	Restore(s, prev1, had1)
	if _, ok := Lookup[theme](s); ok {
		t.Errorf("value still present after restoring to empty")
	}
}

func TestTypesAreIndependent(t *testing.T) {
	s := NewStore()
	Set(s, fontSize(12))
	Set(s, 12)
	if v, _ := Lookup[fontSize](s); v != 12 {
		t.Errorf("fontSize = %v, want 12", v)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestInit(t *testing.T) {
	s := NewStore()
	calls := 0
	factory := func() fontSize { calls++; return 14 }
	if v := Init(s, factory); v != 14 {
		t.Errorf("Init = %v, want 14", v)
	}
	Set(s, fontSize(20))
	if v := Init(s, factory); v != 20 {
		t.Errorf("Init = %v, want 20", v)
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}
