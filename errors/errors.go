package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the container lifecycle the error occurred
type Phase string

const (
	PhaseAlloc Phase = "alloc" // raw slot allocation/deallocation
	PhaseBox   Phase = "box"   // container operations
)

// Kind categorizes the error
type Kind string

const (
	KindExhausted       Kind = "exhausted"         // allocator cannot satisfy the request
	KindDoubleFree      Kind = "double_free"       // slot freed more than once
	KindForeignFree     Kind = "foreign_free"      // freed pointer was never allocated here
	KindUseAfterConsume Kind = "use_after_consume" // box observed after unwrap or drop
	KindSizeMismatch    Kind = "size_mismatch"     // free size/align differs from alloc
	KindOverflow        Kind = "overflow"          // layout computation overflowed
	KindInvalidInput    Kind = "invalid_input"
)

// Error is the structured error type used throughout membox
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
	Size   uintptr
	Align  uintptr
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Size != 0 || e.Align != 0 {
		fmt.Fprintf(&b, " (size %d, align %d)", e.Size, e.Align)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation that raised the error
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Layout sets the slot size and alignment context
func (b *Builder) Layout(size, align uintptr) *Builder {
	b.err.Size = size
	b.err.Align = align
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Exhausted creates an allocation exhaustion error
func Exhausted(size, align uintptr, cause error) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindExhausted,
		Size:   size,
		Align:  align,
		Detail: fmt.Sprintf("cannot allocate %d bytes", size),
		Cause:  cause,
	}
}

// DoubleFree creates a double-free contract violation
func DoubleFree(size, align uintptr) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindDoubleFree,
		Size:   size,
		Align:  align,
		Detail: "slot already freed",
	}
}

// ForeignFree creates a free-of-unknown-pointer contract violation
func ForeignFree(size, align uintptr) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindForeignFree,
		Size:   size,
		Align:  align,
		Detail: "pointer was not allocated by this allocator",
	}
}

// UseAfterConsume creates a use-after-consume contract violation
func UseAfterConsume(op string) *Error {
	return &Error{
		Phase:  PhaseBox,
		Kind:   KindUseAfterConsume,
		Op:     op,
		Detail: "box was already unwrapped or dropped",
	}
}

// SizeMismatch creates a free-with-wrong-layout contract violation
func SizeMismatch(op string, size, align uintptr) *Error {
	return &Error{
		Phase: PhaseAlloc,
		Kind:  KindSizeMismatch,
		Op:    op,
		Size:  size,
		Align: align,
	}
}

// Overflow creates a layout overflow error
func Overflow(size, align uintptr) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindOverflow,
		Size:   size,
		Align:  align,
		Detail: "padded slot size overflows uintptr",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
