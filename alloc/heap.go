package alloc

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/membox/errors"
)

// Heap allocates GC-typed slots on the Go heap.
//
// Each slot is created with the slot type's own layout, so the
// collector sees any pointers the payload holds and keeps their
// referents alive for as long as the slot itself is reachable. Free is
// accounting-only; wrap a Heap in Tracking to enforce the exactly-once
// free contract.
type Heap struct{}

var defaultHeap = &Heap{}

// Default returns the shared Heap instance.
func Default() *Heap {
	return defaultHeap
}

// Alloc returns a zeroed slot for one value of typ.
// typ must have non-zero size; zero-sized payloads never reach the allocator.
func (*Heap) Alloc(typ reflect.Type) (unsafe.Pointer, error) {
	if typ == nil {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "nil slot type")
	}
	if typ.Size() == 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "zero-size allocation request")
	}
	return reflect.New(typ).UnsafePointer(), nil
}

// Free releases a slot. The Go runtime reclaims the storage once the
// pointer becomes unreachable, so this is a no-op.
func (*Heap) Free(ptr unsafe.Pointer, typ reflect.Type) {}
