// Package env implements the environment of a view tree: a set of values
// keyed by their type, visible to every node below the point where they are
// set.
//
// The store itself is flat. Scoping comes from the view tree: a node that
// sets a value calls Set before visiting its child and Restore afterwards.
package env

import (
	"reflect"
)

// Store maps types to values. The zero value is not usable; use NewStore.
type Store struct {
	values map[reflect.Type]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[reflect.Type]any)}
}

func typeOf[S any]() reflect.Type { return reflect.TypeOf((*S)(nil)).Elem() }

// Set makes v the current value for S. It returns the previous value and
// whether there was one, for use with Restore.
func Set[S any](s *Store, v S) (prev S, had bool) {
	t := typeOf[S]()
	if old, ok := s.values[t]; ok {
		prev, had = old.(S), true
	}
	s.values[t] = v
	return prev, had
}

// Restore undoes a Set, given what it returned.
func Restore[S any](s *Store, prev S, had bool) {
	if had {
		s.values[typeOf[S]()] = prev
	} else {
		delete(s.values, typeOf[S]())
	}
}

// Lookup returns the current value for S.
func Lookup[S any](s *Store) (S, bool) {
	v, ok := s.values[typeOf[S]()]
	if !ok {
		var zero S
		return zero, false
	}
	return v.(S), true
}

// Init returns the current value for S, first storing the value produced by
// factory if there is none.
func Init[S any](s *Store, factory func() S) S {
	t := typeOf[S]()
	if v, ok := s.values[t]; ok {
		return v.(S)
	}
	v := factory()
	s.values[t] = v
	return v
}

// Len returns the number of types with a value.
func (s *Store) Len() int { return len(s.values) }
