// Package layout computes storage requirements for Go types.
//
// A slot allocated for a value must be at least Info.Size bytes and
// start at an address that is a multiple of Info.Align. Zero-sized
// types report Size 0 and never need a backing slot.
//
// This package is internal to membox.
package layout

import (
	"reflect"
	"unsafe"
)

// Info describes the storage requirement for one value of a type.
type Info struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout for type T.
func Of[T any]() Info {
	var v T
	return Info{
		Size:  unsafe.Sizeof(v),
		Align: unsafe.Alignof(v),
	}
}

// Zero reports whether values of this layout occupy no storage.
func (i Info) Zero() bool {
	return i.Size == 0
}

// AlignTo rounds offset up to the next multiple of align.
// align must be a power of two; align 0 leaves offset unchanged.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Padded returns the slab size needed to carve an aligned slot of
// layout i out of an allocation with no alignment guarantee, and
// whether the computation overflowed.
func (i Info) Padded() (uintptr, bool) {
	if i.Align == 0 {
		return i.Size, true
	}
	total := i.Size + i.Align - 1
	if total < i.Size {
		return 0, false
	}
	return total, true
}

// HasPointers reports whether values of typ contain any pointer the
// garbage collector would need to scan. Storage for such values must
// be GC-typed; an untyped byte slab would hide the pointers from the
// collector.
func HasPointers(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typ.Len() > 0 && HasPointers(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if HasPointers(typ.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, UnsafePointer, String, Slice, Map, Chan, Func, Interface
		return true
	}
}
