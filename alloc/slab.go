package alloc

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/membox/errors"
	"github.com/wippyai/membox/internal/layout"
)

// Slab allocates slots inside untyped byte slabs, aligning manually.
//
// The collector does not scan slab memory, so Slab refuses types that
// contain pointers; use Heap for those. Slab exists for payloads where
// the backing memory must stay opaque: pooled scratch values, fixed
// binary records, and similar pointer-free data.
type Slab struct{}

// Alloc returns a zeroed slot for one value of typ, carved out of a
// fresh byte slab on the requested alignment boundary. The returned
// pointer keeps the whole slab reachable.
func (*Slab) Alloc(typ reflect.Type) (unsafe.Pointer, error) {
	if typ == nil {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "nil slot type")
	}
	info := layout.Info{Size: typ.Size(), Align: uintptr(typ.Align())}
	if info.Zero() {
		return nil, errors.InvalidInput(errors.PhaseAlloc, "zero-size allocation request")
	}
	if layout.HasPointers(typ) {
		return nil, errors.New(errors.PhaseAlloc, errors.KindInvalidInput).
			Op("Alloc").
			Layout(info.Size, info.Align).
			Detail("type %s contains pointers, slab memory is not scanned", typ).
			Build()
	}
	total, ok := info.Padded()
	if !ok {
		return nil, errors.Overflow(info.Size, info.Align)
	}

	slab := make([]byte, total)
	base := unsafe.Pointer(unsafe.SliceData(slab))
	// Alignment arithmetic only; the final pointer is derived from base,
	// never reconstructed from a uintptr.
	off := layout.AlignTo(uintptr(base), info.Align) - uintptr(base)
	return unsafe.Add(base, off), nil
}

// Free releases a slot. The Go runtime reclaims the backing slab once
// the pointer becomes unreachable, so this is a no-op.
func (*Slab) Free(ptr unsafe.Pointer, typ reflect.Type) {}
