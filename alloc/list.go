package alloc

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/wippyai/membox"
)

// Allocation records one slot for later batch freeing.
type Allocation struct {
	Ptr unsafe.Pointer
	Typ reflect.Type
}

// AllocationList collects slots so a caller assembling a multi-step
// structure can free everything it allocated on an error path.
type AllocationList struct {
	allocations []Allocation
}

var allocationListPool = sync.Pool{
	New: func() any {
		return &AllocationList{allocations: make([]Allocation, 0, 8)}
	},
}

// NewAllocationList returns a pooled, empty list.
func NewAllocationList() *AllocationList {
	return allocationListPool.Get().(*AllocationList)
}

const maxPooledAllocationCapacity = 128

// Release returns to pool. Must call after FreeAll(); list invalid after Release.
func (al *AllocationList) Release() {
	// Only pool small lists to prevent memory bloat
	if cap(al.allocations) > maxPooledAllocationCapacity {
		return
	}
	al.Reset()
	allocationListPool.Put(al)
}

// FreeAllAndRelease frees every recorded slot and returns the list to the pool.
func (al *AllocationList) FreeAllAndRelease(allocator membox.Allocator) {
	al.FreeAll(allocator)
	al.Release()
}

// Add records a slot.
func (al *AllocationList) Add(ptr unsafe.Pointer, typ reflect.Type) {
	al.allocations = append(al.allocations, Allocation{
		Ptr: ptr,
		Typ: typ,
	})
}

// FreeAll frees every recorded slot on allocator and clears the list,
// so a second FreeAll cannot free the same slot twice.
func (al *AllocationList) FreeAll(allocator membox.Allocator) {
	if allocator == nil {
		return
	}
	for _, a := range al.allocations {
		if a.Ptr != nil {
			allocator.Free(a.Ptr, a.Typ)
		}
	}
	al.Reset()
}

// Reset clears the list without freeing.
func (al *AllocationList) Reset() {
	al.allocations = al.allocations[:0]
}

// Count returns the number of recorded slots.
func (al *AllocationList) Count() int {
	return len(al.allocations)
}
