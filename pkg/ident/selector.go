package ident

import (
	"fmt"
	"reflect"
)

// Selectors are 64-bit DJB hashes, the same scheme used for hash maps
// elsewhere, widened to 64 bits to make collisions between sibling keys
// unlikely.

const djbInit uint64 = 5381

func djbCombine(acc, h uint64) uint64 { return acc<<5 + acc + h }

func hashString(s string) uint64 {
	h := djbInit
	for i := 0; i < len(s); i++ {
		h = djbCombine(h, uint64(s[i]))
	}
	return h
}

// Hasher can be implemented by list keys that want to control their own
// selector.
type Hasher interface {
	Hash() uint64
}

// IndexSelector returns the selector of the i-th child of an ordered
// container.
func IndexSelector(i int) uint64 { return uint64(i) }

// KeySelector returns the selector of a child of a keyed collection.
func KeySelector(k any) uint64 {
	switch k := k.(type) {
	case Hasher:
		return djbCombine(djbInit, k.Hash())
	case string:
		return djbCombine(hashString(k), 's')
	case int:
		return djbCombine(djbCombine(djbInit, uint64(k)), 'i')
	case int64:
		return djbCombine(djbCombine(djbInit, uint64(k)), 'i')
	case int32:
		return djbCombine(djbCombine(djbInit, uint64(k)), 'i')
	case uint:
		return djbCombine(djbCombine(djbInit, uint64(k)), 'u')
	case uint64:
		return djbCombine(djbCombine(djbInit, k), 'u')
	case uint32:
		return djbCombine(djbCombine(djbInit, uint64(k)), 'u')
	default:
		return hashString(fmt.Sprintf("%#v", k))
	}
}

// TypeSelector returns the selector of a child addressed by its dynamic type.
// Replacing the value with one of another type yields a different selector.
func TypeSelector(v any) uint64 {
	t := reflect.TypeOf(v)
	if t == nil {
		return hashString("<nil>")
	}
	return hashString(t.PkgPath() + "\x00" + t.String())
}
