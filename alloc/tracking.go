package alloc

import (
	"reflect"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/membox"
	"github.com/wippyai/membox/errors"
)

// Event types for slot lifecycle notifications.
type EventType uint8

const (
	EventAlloc EventType = iota
	EventFree
)

// String returns a human-readable representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventAlloc:
		return "alloc"
	case EventFree:
		return "free"
	default:
		return "unknown"
	}
}

// Event represents a slot lifecycle event.
type Event struct {
	Ptr   unsafe.Pointer
	Typ   reflect.Type
	Size  uintptr
	Align uintptr
	Type  EventType
}

// Observer receives notifications about slot lifecycle events.
type Observer interface {
	OnAllocEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnAllocEvent(e Event) { f(e) }

// Tracking wraps an Allocator with lifetime accounting.
//
// Every live slot is recorded with the type it was allocated for.
// Freeing a slot twice, freeing a pointer this allocator never handed
// out, or freeing with a different type than recorded are contract
// violations and panic with a structured *errors.Error.
type Tracking struct {
	inner     membox.Allocator
	live      map[unsafe.Pointer]reflect.Type
	observers []Observer
	mu        sync.Mutex
	obsMu     sync.RWMutex
	allocs    uint64
	frees     uint64
	bytes     uint64
}

// NewTracking wraps inner with accounting.
func NewTracking(inner membox.Allocator) *Tracking {
	return &Tracking{
		inner: inner,
		live:  make(map[unsafe.Pointer]reflect.Type),
	}
}

// Alloc allocates from the inner allocator and records the slot.
func (t *Tracking) Alloc(typ reflect.Type) (unsafe.Pointer, error) {
	ptr, err := t.inner.Alloc(typ)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.live[ptr] = typ
	t.allocs++
	t.bytes += uint64(typ.Size())
	t.mu.Unlock()

	Logger().Debug("slot allocated",
		zap.Stringer("type", typ),
		zap.Uint64("size", uint64(typ.Size())))

	t.notify(EventAlloc, ptr, typ)
	return ptr, nil
}

// Free checks the slot against the recorded type, removes it, and
// frees it on the inner allocator. Contract violations panic.
func (t *Tracking) Free(ptr unsafe.Pointer, typ reflect.Type) {
	size, align := slotLayout(typ)

	t.mu.Lock()
	recorded, ok := t.live[ptr]
	if !ok {
		t.mu.Unlock()
		panic(errors.ForeignFree(size, align))
	}
	if recorded != typ {
		t.mu.Unlock()
		panic(errors.SizeMismatch("Free", size, align))
	}
	delete(t.live, ptr)
	t.frees++
	t.mu.Unlock()

	t.inner.Free(ptr, typ)

	Logger().Debug("slot freed",
		zap.Stringer("type", typ),
		zap.Uint64("size", uint64(size)))

	t.notify(EventFree, ptr, typ)
}

// Live returns the number of outstanding slots.
func (t *Tracking) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// AllocatedBytes returns the total bytes handed out over the
// allocator's lifetime, including slots already freed.
func (t *Tracking) AllocatedBytes() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bytes
}

// Allocs returns the total number of allocations.
func (t *Tracking) Allocs() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Frees returns the total number of frees.
func (t *Tracking) Frees() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// Subscribe adds an observer for slot lifecycle events.
func (t *Tracking) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer previously passed to Subscribe.
// Observers registered as ObserverFunc cannot be removed.
func (t *Tracking) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Tracking) notify(kind EventType, ptr unsafe.Pointer, typ reflect.Type) {
	size, align := slotLayout(typ)
	e := Event{Type: kind, Ptr: ptr, Typ: typ, Size: size, Align: align}

	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnAllocEvent(e)
	}
}

func slotLayout(typ reflect.Type) (size, align uintptr) {
	if typ == nil {
		return 0, 0
	}
	return typ.Size(), uintptr(typ.Align())
}
