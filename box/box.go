package box

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/wippyai/membox"
	"github.com/wippyai/membox/alloc"
	"github.com/wippyai/membox/errors"
)

// Dropper is optionally implemented by payloads that own further
// resources. Drop runs when the box is dropped, never when the payload
// is moved out with Into.
type Dropper interface {
	Drop()
}

// zeroSentinel backs every zero-sized payload. It provides a stable
// non-nil slot address; no memory access ever goes through it.
var zeroSentinel byte

// Box owns a single heap slot holding exactly one value of type T.
//
// A live box guarantees its slot holds an initialized T. The slot is
// released exactly once, by Into or by Drop, whichever happens first;
// the box is consumed afterwards and any further access panics. A box
// is not safe for concurrent use.
type Box[T any] struct {
	ptr   unsafe.Pointer
	alloc membox.Allocator
	typ   reflect.Type
	live  bool
}

// New places value on the heap using the default allocator.
func New[T any](value T) *Box[T] {
	return NewIn(alloc.Default(), value)
}

// NewIn places value in a slot obtained from a. Zero-sized payloads
// never touch the allocator; their slot address is a shared sentinel.
//
// Allocation failure is fatal: there is no meaningful fallback for a
// single-value allocation, so NewIn panics with the structured error
// instead of returning it.
func NewIn[T any](a membox.Allocator, value T) *Box[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	b := &Box[T]{alloc: a, typ: typ, live: true}

	if typ.Size() == 0 {
		b.ptr = unsafe.Pointer(&zeroSentinel)
		return b
	}

	ptr, err := a.Alloc(typ)
	if err != nil {
		panic(allocFatal(typ, err))
	}
	*(*T)(ptr) = value
	b.ptr = ptr
	return b
}

// Ref returns a pointer to the owned value, valid until the box is
// consumed. The caller must hold exclusive access to the box while
// mutating through it.
func (b *Box[T]) Ref() *T {
	return b.slot("Ref")
}

// Value returns a copy of the owned value.
func (b *Box[T]) Value() T {
	return *b.slot("Value")
}

// Set overwrites the owned value in place.
func (b *Box[T]) Set(value T) {
	*b.slot("Set") = value
}

// Into moves the owned value out and releases the slot, consuming the
// box. The payload's Drop does not run; ownership of the value and any
// resources it holds transfers to the caller.
func (b *Box[T]) Into() T {
	value := *b.slot("Into")
	b.release()
	return value
}

// Drop runs the payload's own cleanup if it implements Dropper, then
// releases the slot and consumes the box.
func (b *Box[T]) Drop() {
	p := b.slot("Drop")
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
	b.release()
}

// Clone produces an independently-owned box on the same allocator.
// Payloads implementing Clone() T are deep-cloned; all others are
// copied by value.
func (b *Box[T]) Clone() *Box[T] {
	value := *b.slot("Clone")
	if c, ok := any(value).(interface{ Clone() T }); ok {
		value = c.Clone()
	}
	return NewIn(b.alloc, value)
}

// Consumed reports whether the box has been unwrapped or dropped.
func (b *Box[T]) Consumed() bool {
	return !b.live
}

// String renders the box for diagnostics. A consumed box renders
// without panicking.
func (b *Box[T]) String() string {
	if !b.live {
		return "Box(<consumed>)"
	}
	return fmt.Sprintf("Box(%v)", *(*T)(b.ptr))
}

// slot returns the live slot or panics with a use-after-consume
// violation naming op.
func (b *Box[T]) slot(op string) *T {
	if !b.live {
		panic(errors.UseAfterConsume(op))
	}
	return (*T)(b.ptr)
}

// release frees the slot exactly once and marks the box consumed.
// Callers check liveness first via slot.
func (b *Box[T]) release() {
	ptr := b.ptr
	b.ptr = nil
	b.live = false

	if b.typ.Size() == 0 {
		// sentinel slot, nothing was allocated
		return
	}
	b.alloc.Free(ptr, b.typ)
}

func allocFatal(typ reflect.Type, err error) *errors.Error {
	var merr *errors.Error
	if stderrors.As(err, &merr) {
		return merr
	}
	return errors.Exhausted(typ.Size(), uintptr(typ.Align()), err)
}
