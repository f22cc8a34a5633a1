// Package box provides a single-value heap container with exclusive
// ownership and exactly-once release.
//
// A Box[T] owns one heap slot sized and aligned for exactly one T. The
// slot is allocated at construction, stays valid and initialized for
// the box's whole lifetime, and is released exactly once — either by
// moving the value out or by dropping the box.
//
// # Lifecycle
//
// A box has two states: live and consumed. Construction produces a
// live box; Into and Drop both consume it. There is no way back from
// consumed, and every accessor except String panics on a consumed box:
//
//	b := box.New(42)
//	v := b.Into() // v == 42, slot freed
//	b.Value()     // panics: use after consume
//
// Go has no move semantics, so the consumed state is tracked with a
// one-shot marker rather than enforced at compile time. Violations are
// caller bugs and panic with a structured *errors.Error; they are
// never returned as recoverable errors.
//
// # Reading and writing
//
//	b := box.New(1)
//	b.Set(2)
//	*b.Ref() += 3
//	b.Value() // 5
//
// # Ownership transfer and cleanup
//
// Into moves the payload out: the slot is freed, the payload's Drop is
// NOT run, and the caller owns whatever resources the value holds.
// Drop is the opposite exit: the payload's Drop runs first (when the
// payload implements Dropper), then the slot is freed:
//
//	f := box.New(openFile())
//	defer f.Drop() // closes the file, then frees the slot
//
// # Zero-sized payloads
//
// A box of a zero-sized type never touches the allocator. Its slot
// address is a shared sentinel that carries no storage, and neither
// construction nor consumption performs any allocator call.
//
// # Allocators
//
// New uses the process-wide default allocator. NewIn accepts any
// membox.Allocator, which is how tests verify the exactly-once free
// contract:
//
//	tr := alloc.NewTracking(alloc.Default())
//	b := box.NewIn(tr, 42)
//	b.Drop()
//	tr.Live() // 0
//
// Allocation failure during construction is fatal (panic): mirroring
// single-object allocation primitives in systems languages, there is
// no recoverable path for failing to allocate one value.
package box
