// Package ident assigns stable identities to nodes of a view tree.
//
// A node is addressed by its Path, the sequence of child selectors leading to
// it from the root. The tree is rebuilt from scratch on every pass, so the
// Path is the only thing that survives between passes; an Allocator interns
// each distinct Path into a NodeID the first time it is seen, and hands out
// the same NodeID every time the Path recurs.
package ident

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NodeID identifies a node across passes.
type NodeID uint64

// None is the NodeID that never identifies a node. It is used for empty touch
// slots and for "nothing focused".
const None NodeID = 0

func (id NodeID) String() string {
	if id == None {
		return "none"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Path is a sequence of child selectors from the root to a node.
type Path []uint64

// Root returns the path of the root node.
func Root() Path { return Path{0} }

// Push appends a selector.
func (p *Path) Push(sel uint64) { *p = append(*p, sel) }

// Pop removes the last selector. It panics on an empty path.
func (p *Path) Pop() { *p = (*p)[:len(*p)-1] }

// Clone returns a copy of the path that doesn't share storage with p.
func (p Path) Clone() Path { return slices.Clone(p) }

// Key returns a string encoding of the path suitable as a map key.
func (p Path) Key() string {
	var sb strings.Builder
	sb.Grow(8 * len(p))
	var buf [8]byte
	for _, sel := range p {
		binary.BigEndian.PutUint64(buf[:], sel)
		sb.Write(buf[:])
	}
	return sb.String()
}

// ParseKey is the inverse of Path.Key.
func ParseKey(key string) (Path, error) {
	if len(key)%8 != 0 {
		return nil, fmt.Errorf("bad path key length %d", len(key))
	}
	p := make(Path, len(key)/8)
	for i := range p {
		p[i] = binary.BigEndian.Uint64([]byte(key[8*i : 8*i+8]))
	}
	return p, nil
}

func (p Path) String() string {
	var sb strings.Builder
	for i, sel := range p {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(strconv.FormatUint(sel, 16))
	}
	return sb.String()
}

// Allocator interns paths into NodeIDs. The zero value is not usable; use
// NewAllocator.
//
// Entries are never removed: a path seen once keeps its NodeID for the
// lifetime of the Allocator, so an id is never reused for a different path.
type Allocator struct {
	ids  map[string]NodeID
	next NodeID
}

// NewAllocator returns an empty Allocator. The first NodeID it hands out is 1.
func NewAllocator() *Allocator {
	return &Allocator{ids: make(map[string]NodeID), next: 1}
}

// Register returns the NodeID for the path, allocating the next one if the
// path hasn't been seen before.
func (a *Allocator) Register(p Path) NodeID {
	key := p.Key()
	if id, ok := a.ids[key]; ok {
		return id
	}
	id := a.next
	a.ids[key] = id
	a.next++
	return id
}

// Lookup returns the NodeID for the path without allocating.
func (a *Allocator) Lookup(p Path) (NodeID, bool) {
	id, ok := a.ids[p.Key()]
	return id, ok
}

// LookupKey is like Lookup, but takes a key produced by Path.Key.
func (a *Allocator) LookupKey(key string) (NodeID, bool) {
	id, ok := a.ids[key]
	return id, ok
}

// Len returns the number of interned paths.
func (a *Allocator) Len() int { return len(a.ids) }

// Set is a set of NodeIDs.
type Set map[NodeID]struct{}

// NewSet returns a Set containing the given ids.
func NewSet(ids ...NodeID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s Set) Add(id NodeID) { s[id] = struct{}{} }

func (s Set) Has(id NodeID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members of the set in ascending order.
func (s Set) Sorted() []NodeID {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}
