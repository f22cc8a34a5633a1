// Package membox provides a single-value heap container and the
// allocator seam beneath it.
//
// A Box[T] owns exactly one heap slot holding one value of type T. The
// slot is allocated at construction and released exactly once — by
// moving the value out or by dropping the box — with the payload's own
// cleanup chained in on the drop path.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	membox/              Root package with the core Allocator interface
//	├── box/             Box[T] single-value container
//	├── alloc/           Allocator implementations: Heap, Slab, Tracking, Limited
//	├── errors/          Structured error types for debugging
//	└── internal/layout/ Size, alignment and pointer-map calculations
//
// # Quick Start
//
// Put a value on the heap and take it back:
//
//	b := box.New(42)
//	fmt.Println(*b.Ref()) // 42
//	v := b.Into()         // slot freed, b consumed
//
// Payloads that own resources implement box.Dropper and are cleaned up
// when the box is dropped:
//
//	f := box.New(openFile())
//	defer f.Drop()
//
// # Ownership Model
//
// Boxes are single-owner and single-threaded: a box provides no
// internal synchronization, and at most one goroutine may use it at a
// time. Into and Drop consume the box; any later access is a caller
// bug and panics with a structured *errors.Error rather than returning
// a recoverable error.
//
// # Allocators
//
// Construction goes through the Allocator interface. alloc.Heap (the
// default) creates GC-typed slots; alloc.Slab carves pointer-free
// slots out of untyped byte slabs; alloc.Tracking layers accounting
// and double-free detection over any allocator; alloc.Limited adds a
// byte budget. Zero-sized payloads never reach an allocator at all.
package membox
