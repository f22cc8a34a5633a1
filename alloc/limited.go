package alloc

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/wippyai/membox"
	"github.com/wippyai/membox/errors"
)

// Limited wraps an Allocator with a byte budget. Once outstanding
// allocations would exceed the budget, Alloc reports exhaustion.
// Freeing a slot returns its bytes to the budget.
type Limited struct {
	inner  membox.Allocator
	mu     sync.Mutex
	budget uintptr
	used   uintptr
}

// NewLimited wraps inner with a budget of limit bytes.
func NewLimited(inner membox.Allocator, limit uintptr) *Limited {
	return &Limited{inner: inner, budget: limit}
}

// Alloc allocates from the inner allocator if the budget allows.
func (l *Limited) Alloc(typ reflect.Type) (unsafe.Pointer, error) {
	size, align := slotLayout(typ)

	l.mu.Lock()
	if size > l.budget-l.used {
		spent := l.used
		l.mu.Unlock()
		return nil, errors.New(errors.PhaseAlloc, errors.KindExhausted).
			Op("Alloc").
			Layout(size, align).
			Detail("%d of %d budget bytes in use", spent, l.budget).
			Build()
	}
	l.used += size
	l.mu.Unlock()

	ptr, err := l.inner.Alloc(typ)
	if err != nil {
		l.mu.Lock()
		l.used -= size
		l.mu.Unlock()
		return nil, err
	}
	return ptr, nil
}

// Free frees on the inner allocator and returns the slot's bytes to the budget.
func (l *Limited) Free(ptr unsafe.Pointer, typ reflect.Type) {
	l.inner.Free(ptr, typ)

	size, _ := slotLayout(typ)
	l.mu.Lock()
	if size > l.used {
		l.used = 0
	} else {
		l.used -= size
	}
	l.mu.Unlock()
}

// Used returns the bytes currently counted against the budget.
func (l *Limited) Used() uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used
}
