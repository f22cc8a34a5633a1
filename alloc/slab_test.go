package alloc

import (
	"errors"
	"reflect"
	"testing"

	memerrors "github.com/wippyai/membox/errors"
)

func TestSlab_Alignment(t *testing.T) {
	s := &Slab{}

	types := []reflect.Type{
		reflect.TypeOf((*uint8)(nil)).Elem(),
		reflect.TypeOf((*uint16)(nil)).Elem(),
		reflect.TypeOf((*uint32)(nil)).Elem(),
		reflect.TypeOf((*uint64)(nil)).Elem(),
		reflect.TypeOf((*[3]uint64)(nil)).Elem(),
	}

	for _, typ := range types {
		ptr, err := s.Alloc(typ)
		if err != nil {
			t.Fatalf("Alloc(%s): %v", typ, err)
		}
		if uintptr(ptr)%uintptr(typ.Align()) != 0 {
			t.Errorf("%s: pointer %p not aligned to %d", typ, ptr, typ.Align())
		}
		s.Free(ptr, typ)
	}
}

func TestSlab_ReadWrite(t *testing.T) {
	s := &Slab{}
	typ := reflect.TypeOf((*uint32)(nil)).Elem()

	ptr, err := s.Alloc(typ)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if got := *(*uint32)(ptr); got != 0 {
		t.Fatalf("slot not zeroed: %#x", got)
	}
	*(*uint32)(ptr) = 0xfeedface
	if got := *(*uint32)(ptr); got != 0xfeedface {
		t.Errorf("read back %#x", got)
	}
	s.Free(ptr, typ)
}

func TestSlab_RefusesPointerTypes(t *testing.T) {
	s := &Slab{}

	types := []reflect.Type{
		reflect.TypeOf((**int)(nil)).Elem(),
		reflect.TypeOf((*string)(nil)).Elem(),
		reflect.TypeOf((*[]byte)(nil)).Elem(),
		reflect.TypeOf((*map[string]int)(nil)).Elem(),
		reflect.TypeOf((*struct{ S string })(nil)).Elem(),
	}

	for _, typ := range types {
		_, err := s.Alloc(typ)
		if err == nil {
			t.Errorf("%s: expected rejection", typ)
			continue
		}
		if !errors.Is(err, &memerrors.Error{Phase: memerrors.PhaseAlloc, Kind: memerrors.KindInvalidInput}) {
			t.Errorf("%s: wrong error: %v", typ, err)
		}
	}
}

func TestSlab_AcceptsPointerFreeStructs(t *testing.T) {
	s := &Slab{}
	type record struct {
		ID    uint64
		Flags uint32
		Tag   [8]byte
	}
	typ := reflect.TypeOf((*record)(nil)).Elem()

	ptr, err := s.Alloc(typ)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	r := (*record)(ptr)
	r.ID = 7
	r.Tag = [8]byte{'s', 'l', 'a', 'b'}
	if r.ID != 7 || r.Tag[0] != 's' {
		t.Error("struct slot did not hold writes")
	}
	s.Free(ptr, typ)
}

func TestSlab_ZeroSizeRejected(t *testing.T) {
	s := &Slab{}

	if _, err := s.Alloc(reflect.TypeOf((*struct{})(nil)).Elem()); err == nil {
		t.Fatal("expected error for zero-size request")
	}
}
