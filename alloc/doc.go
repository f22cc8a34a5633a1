// Package alloc provides Allocator implementations for membox.
//
// # Allocators
//
// Heap is the default allocator. It creates GC-typed slots on the Go
// heap, so the collector can see any pointers the payload holds:
//
//	a := alloc.Default()
//	ptr, err := a.Alloc(reflect.TypeOf((*uint64)(nil)).Elem())
//	a.Free(ptr, reflect.TypeOf((*uint64)(nil)).Elem())
//
// Slab carves slots out of untyped byte slabs with manual alignment.
// It refuses pointer-bearing types, since slab memory is not scanned
// by the collector.
//
// Tracking wraps another allocator with lifetime accounting. It detects
// double frees and frees of pointers it never handed out, and exposes
// counters for tests and diagnostics:
//
//	tr := alloc.NewTracking(alloc.Default())
//	ptr, _ := tr.Alloc(typ)
//	tr.Free(ptr, typ)
//	tr.Live()  // 0
//
// Limited wraps another allocator with a byte budget and reports
// exhaustion once the budget is spent:
//
//	lim := alloc.NewLimited(alloc.Default(), 1024)
//
// # Observers
//
// Register observers on a Tracking allocator to watch slot lifecycle
// events:
//
//	tr.Subscribe(alloc.ObserverFunc(func(e alloc.Event) {
//	    log.Printf("%v slot %p (%d bytes)", e.Type, e.Ptr, e.Size)
//	}))
//
// # Memory Management
//
// Freeing a slot is accounting-only: the Go runtime reclaims the
// backing storage once no pointer into it remains reachable. The
// exactly-once free contract still holds — Tracking treats a second
// Free of the same slot as a contract violation and panics with a
// structured *errors.Error.
package alloc
