package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindExhausted,
				Op:     "Alloc",
				Size:   64,
				Align:  8,
				Detail: "budget spent",
			},
			contains: []string{"[alloc]", "exhausted", "Alloc", "size 64", "align 8", "budget spent"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseBox,
				Kind:  KindUseAfterConsume,
			},
			contains: []string{"[box]", "use_after_consume"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindExhausted,
				Detail: "cannot allocate",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[alloc]", "exhausted", "cannot allocate", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseAlloc,
		Kind:  KindExhausted,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through Unwrap")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseBox, Kind: KindUseAfterConsume, Op: "Into"}
	b := &Error{Phase: PhaseBox, Kind: KindUseAfterConsume}
	c := &Error{Phase: PhaseAlloc, Kind: KindDoubleFree}

	if !errors.Is(a, b) {
		t.Error("errors with same phase/kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different phase/kind should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("oom")
	err := New(PhaseAlloc, KindExhausted).
		Op("Alloc").
		Layout(128, 16).
		Detail("budget of %d bytes spent", 1024).
		Cause(cause).
		Build()

	if err.Phase != PhaseAlloc || err.Kind != KindExhausted {
		t.Fatalf("wrong phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Size != 128 || err.Align != 16 {
		t.Errorf("wrong layout: size %d, align %d", err.Size, err.Align)
	}
	if err.Detail != "budget of 1024 bytes spent" {
		t.Errorf("wrong detail: %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("wrong cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := Exhausted(32, 8, nil); err.Kind != KindExhausted || err.Size != 32 {
		t.Errorf("Exhausted: %v", err)
	}
	if err := DoubleFree(8, 8); err.Kind != KindDoubleFree {
		t.Errorf("DoubleFree: %v", err)
	}
	if err := ForeignFree(8, 8); err.Kind != KindForeignFree {
		t.Errorf("ForeignFree: %v", err)
	}
	if err := UseAfterConsume("Ref"); err.Kind != KindUseAfterConsume || err.Op != "Ref" {
		t.Errorf("UseAfterConsume: %v", err)
	}
	if err := Overflow(^uintptr(0), 8); err.Kind != KindOverflow {
		t.Errorf("Overflow: %v", err)
	}
}
