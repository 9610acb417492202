package layout

import (
	"golang.org/x/exp/slices"

	"src.retk.dev/pkg/ident"
)

// Deps tracks, for each stateful node, the ids whose state its last layout
// read. It also keeps the stack of stateful nodes currently being laid out,
// since a subtree's layout depends on the state of every stateful ancestor.
type Deps struct {
	deps  map[ident.NodeID][]ident.NodeID
	stack []ident.NodeID
}

// NewDeps returns an empty tracker.
func NewDeps() *Deps {
	return &Deps{deps: make(map[ident.NodeID][]ident.NodeID)}
}

// Lookup returns the recorded dependencies of id.
func (d *Deps) Lookup(id ident.NodeID) ([]ident.NodeID, bool) {
	deps, ok := d.deps[id]
	return deps, ok
}

// Record replaces the dependencies of id.
func (d *Deps) Record(id ident.NodeID, deps []ident.NodeID) { d.deps[id] = deps }

// Clear forgets all dependencies, forcing every stateful node to lay out
// again.
func (d *Deps) Clear() {
	for id := range d.deps {
		delete(d.deps, id)
	}
}

// Push marks id as being laid out.
func (d *Deps) Push(id ident.NodeID) { d.stack = append(d.stack, id) }

// Pop undoes the last Push.
func (d *Deps) Pop() { d.stack = d.stack[:len(d.stack)-1] }

// Scope returns a copy of the ids currently being laid out, outermost first.
func (d *Deps) Scope() []ident.NodeID { return slices.Clone(d.stack) }

// Depth returns the number of ids currently being laid out.
func (d *Deps) Depth() int { return len(d.stack) }

// AnyDirty reports whether id has recorded dependencies and at least one of
// them is dirty according to isDirty. The second return value is false when
// nothing is recorded for id.
func (d *Deps) AnyDirty(id ident.NodeID, isDirty func(ident.NodeID) bool) (dirty, recorded bool) {
	deps, ok := d.deps[id]
	if !ok {
		return false, false
	}
	for _, dep := range deps {
		if isDirty(dep) {
			return true, true
		}
	}
	return false, true
}

// Retain drops the records of ids not in live, and removes ids not in live
// from the remaining records.
func (d *Deps) Retain(live ident.Set) {
	for id, deps := range d.deps {
		if !live.Has(id) {
			delete(d.deps, id)
			continue
		}
		kept := deps[:0]
		for _, dep := range deps {
			if live.Has(dep) {
				kept = append(kept, dep)
			}
		}
		d.deps[id] = kept
	}
}

// Len returns the number of stateful nodes with recorded dependencies.
func (d *Deps) Len() int { return len(d.deps) }
