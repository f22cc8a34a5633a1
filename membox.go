package membox

import (
	"reflect"
	"unsafe"
)

// Allocator hands out raw slots, each sized and aligned for exactly one
// value of a given type.
//
// Alloc returns a zeroed slot for one value of typ. The type is the
// layout: it fixes the slot's size, its alignment, and — for
// implementations that allocate GC-visible storage — the pointer map
// the collector scans. Free releases a slot obtained from Alloc; typ
// must be the same type the slot was allocated with.
//
// Allocators must never be asked for zero-size slots; callers
// special-case zero-sized payloads before reaching the allocator.
type Allocator interface {
	Alloc(typ reflect.Type) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer, typ reflect.Type)
}

// Stats is optionally implemented by allocators that keep accounting.
type Stats interface {
	// Live returns the number of outstanding (allocated, not yet freed) slots.
	Live() int

	// AllocatedBytes returns the total bytes handed out over the
	// allocator's lifetime, including slots already freed.
	AllocatedBytes() uint64
}
