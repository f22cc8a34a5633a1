package layout

import (
	"reflect"
	"testing"
	"unsafe"
)

func TestOfPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		info  Info
		size  uintptr
		align uintptr
	}{
		{"bool", Of[bool](), 1, 1},
		{"uint8", Of[uint8](), 1, 1},
		{"int16", Of[int16](), 2, 2},
		{"int32", Of[int32](), 4, 4},
		{"int64", Of[int64](), 8, 8},
		{"float32", Of[float32](), 4, 4},
		{"float64", Of[float64](), 8, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.info.Size != tc.size {
				t.Errorf("size: got %d, want %d", tc.info.Size, tc.size)
			}
			if tc.info.Align != tc.align {
				t.Errorf("align: got %d, want %d", tc.info.Align, tc.align)
			}
		})
	}
}

func TestOfStruct(t *testing.T) {
	type padded struct {
		a uint8
		b uint64
	}

	info := Of[padded]()
	var v padded
	if info.Size != unsafe.Sizeof(v) {
		t.Errorf("size: got %d, want %d", info.Size, unsafe.Sizeof(v))
	}
	if info.Align != unsafe.Alignof(v) {
		t.Errorf("align: got %d, want %d", info.Align, unsafe.Alignof(v))
	}
	// a at 0, b at 8, trailing padding keeps size a multiple of align
	if info.Size%info.Align != 0 {
		t.Errorf("size %d not a multiple of align %d", info.Size, info.Align)
	}
}

func TestOfZeroSized(t *testing.T) {
	if info := Of[struct{}](); !info.Zero() {
		t.Errorf("struct{}: expected zero-size, got %+v", info)
	}
	if info := Of[[0]uint64](); !info.Zero() {
		t.Errorf("[0]uint64: expected zero-size, got %+v", info)
	}
	if info := Of[int](); info.Zero() {
		t.Error("int reported as zero-size")
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset uintptr
		align  uintptr
		want   uintptr
	}{
		{0, 1, 0},
		{0, 8, 0},
		{1, 1, 1},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{9, 8, 16},
		{7, 0, 7},
	}

	for _, tc := range tests {
		if got := AlignTo(tc.offset, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d): got %d, want %d", tc.offset, tc.align, got, tc.want)
		}
	}
}

func TestPadded(t *testing.T) {
	info := Info{Size: 8, Align: 8}
	total, ok := info.Padded()
	if !ok {
		t.Fatal("unexpected overflow")
	}
	if total != 15 {
		t.Errorf("got %d, want 15", total)
	}

	huge := Info{Size: ^uintptr(0), Align: 8}
	if _, ok := huge.Padded(); ok {
		t.Error("expected overflow for max-size layout")
	}
}

func TestHasPointers(t *testing.T) {
	type flat struct {
		A uint64
		B [4]byte
	}
	type nested struct {
		F flat
		S string
	}

	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeOf((*int)(nil)).Elem(), false},
		{"float64", reflect.TypeOf((*float64)(nil)).Elem(), false},
		{"flat struct", reflect.TypeOf((*flat)(nil)).Elem(), false},
		{"byte array", reflect.TypeOf((*[16]byte)(nil)).Elem(), false},
		{"zero-len ptr array", reflect.TypeOf((*[0]*int)(nil)).Elem(), false},
		{"pointer", reflect.TypeOf((**int)(nil)).Elem(), true},
		{"string", reflect.TypeOf((*string)(nil)).Elem(), true},
		{"slice", reflect.TypeOf((*[]int)(nil)).Elem(), true},
		{"map", reflect.TypeOf((*map[int]int)(nil)).Elem(), true},
		{"nested struct", reflect.TypeOf((*nested)(nil)).Elem(), true},
		{"ptr array", reflect.TypeOf((*[2]*int)(nil)).Elem(), true},
		{"interface", reflect.TypeOf((*any)(nil)).Elem(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPointers(tc.typ); got != tc.want {
				t.Errorf("HasPointers(%s): got %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}
