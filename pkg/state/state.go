// Package state stores the per-node state of a view tree.
//
// Values are stored type-erased and keyed by ident.NodeID. Each record
// carries a dirty flag that is set whenever the value is obtained for
// mutation; the store also keeps a global dirty flag that tells the frame
// loop that some state changed since the last clear.
package state

import (
	"errors"
	"fmt"
	"reflect"

	"src.retk.dev/pkg/ident"
)

// ErrMissing is wrapped by MissingError.
var ErrMissing = errors.New("no state")

// TypeError is returned when state is accessed with a type other than the one
// it was stored with.
type TypeError struct {
	ID     ident.NodeID
	Stored reflect.Type
	Wanted reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("state of %v has type %v, accessed as %v", e.ID, e.Stored, e.Wanted)
}

// MissingError is returned when state is accessed for a node that has none.
type MissingError struct {
	ID ident.NodeID
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMissing, e.ID)
}

func (e *MissingError) Unwrap() error { return ErrMissing }

// Each record holds a *S, so that pointers returned by Mut stay valid for as
// long as the record lives.
type record struct {
	ptr   any
	dirty bool
}

// Store maps NodeIDs to state records. The zero value is not usable; use
// NewStore.
type Store struct {
	records   map[ident.NodeID]*record
	dirty     bool
	suspended int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[ident.NodeID]*record)}
}

// Init inserts the value produced by factory if id has no state yet. The
// factory is not called otherwise.
func Init[S any](s *Store, id ident.NodeID, factory func() S) {
	if _, ok := s.records[id]; ok {
		return
	}
	p := new(S)
	*p = factory()
	s.records[id] = &record{ptr: p}
}

// Set replaces the state of id with v without marking anything dirty. If id
// already has state of another type, it is replaced along with its type.
func Set[S any](s *Store, id ident.NodeID, v S) {
	if r, ok := s.records[id]; ok {
		if p, ok := r.ptr.(*S); ok {
			*p = v
			return
		}
	}
	p := new(S)
	*p = v
	s.records[id] = &record{ptr: p}
}

// Get returns the state of id.
func Get[S any](s *Store, id ident.NodeID) (S, error) {
	p, _, err := lookup[S](s, id)
	if err != nil {
		var zero S
		return zero, err
	}
	return *p, nil
}

// Mut returns a pointer through which the state of id can be modified. The
// record and the store are marked dirty, unless dirty tracking is suspended.
func Mut[S any](s *Store, id ident.NodeID) (*S, error) {
	p, r, err := lookup[S](s, id)
	if err != nil {
		return nil, err
	}
	if s.suspended == 0 {
		r.dirty = true
		s.dirty = true
	}
	return p, nil
}

func lookup[S any](s *Store, id ident.NodeID) (*S, *record, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, nil, &MissingError{id}
	}
	p, ok := r.ptr.(*S)
	if !ok {
		return nil, nil, &TypeError{
			ID:     id,
			Stored: reflect.TypeOf(r.ptr).Elem(),
			Wanted: reflect.TypeOf(p).Elem(),
		}
	}
	return p, r, nil
}

// Has reports whether id has state.
func (s *Store) Has(id ident.NodeID) bool {
	_, ok := s.records[id]
	return ok
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// IsDirty reports whether the state of id was mutated since the last
// ClearDirty. Nodes without state are never dirty.
func (s *Store) IsDirty(id ident.NodeID) bool {
	r, ok := s.records[id]
	return ok && r.dirty
}

// Dirty reports whether any state was mutated since the last ClearDirty.
func (s *Store) Dirty() bool { return s.dirty }

// MarkDirty sets the global dirty flag without touching any record. It is
// used for changes outside the store that still need a relayout, like focus
// moving. It is a no-op while dirty tracking is suspended.
func (s *Store) MarkDirty() {
	if s.suspended == 0 {
		s.dirty = true
	}
}

// ClearDirty clears the global dirty flag and the dirty flag of every record.
func (s *Store) ClearDirty() {
	s.dirty = false
	for _, r := range s.records {
		r.dirty = false
	}
}

// Suspend stops Mut from setting dirty flags until the returned function is
// called. Calls may nest.
func (s *Store) Suspend() (restore func()) {
	s.suspended++
	return func() { s.suspended-- }
}

// Retain drops every record whose id is not in live.
func (s *Store) Retain(live ident.Set) {
	for id := range s.records {
		if !live.Has(id) {
			delete(s.records, id)
		}
	}
}
