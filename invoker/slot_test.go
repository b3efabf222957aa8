package invoker

import (
	"testing"
	"unsafe"
)

func TestPackBitPatterns(t *testing.T) {
	tests := []struct {
		name string
		got  Slot
		want Slot
	}{
		{name: "bool true", got: Pack(true), want: 1},
		{name: "bool false", got: Pack(false), want: 0},
		{name: "int8 -1 zero extends", got: Pack(int8(-1)), want: 0xFF},
		{name: "int16 -2 zero extends", got: Pack(int16(-2)), want: 0xFFFE},
		{name: "int32 -1 zero extends", got: Pack(int32(-1)), want: 0x00000000FFFFFFFF},
		{name: "int32 positive", got: Pack(int32(7)), want: 7},
		{name: "int64 -1 fills the slot", got: Pack(int64(-1)), want: 0xFFFFFFFFFFFFFFFF},
		{name: "uint8", got: Pack(uint8(0xAB)), want: 0xAB},
		{name: "uint16", got: Pack(uint16(0xABCD)), want: 0xABCD},
		{name: "uint32", got: Pack(uint32(0xDEADBEEF)), want: 0xDEADBEEF},
		{name: "uint64", got: Pack(uint64(0x123456789ABCDEF0)), want: 0x123456789ABCDEF0},
		{name: "float32 one", got: Pack(float32(1.0)), want: 0x3F800000},
		{name: "float32 2.5", got: Pack(float32(2.5)), want: 0x40200000},
		{name: "float32 negative zero", got: Pack(negZero32()), want: 0x80000000},
		{name: "float64 one", got: Pack(float64(1.0)), want: 0x3FF0000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("slot = 0x%016X, want 0x%016X", uint64(tt.got), uint64(tt.want))
			}
		})
	}
}

func negZero32() float32 {
	z := float32(0)
	return -z
}

func TestPackInt(t *testing.T) {
	if got, want := Pack(-1), Slot(^uint(0)); got != want {
		t.Errorf("Pack(int(-1)) = 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
}

func TestPackNamedTypes(t *testing.T) {
	type entityHandle int32
	type toggled bool
	type heading float32

	if got, want := Pack(entityHandle(-1)), Slot(0x00000000FFFFFFFF); got != want {
		t.Errorf("named int32 slot = 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
	if got := Pack(toggled(true)); got != 1 {
		t.Errorf("named bool slot = 0x%016X, want 1", uint64(got))
	}
	if got, want := Pack(heading(1.0)), Slot(0x3F800000); got != want {
		t.Errorf("named float32 slot = 0x%016X, want 0x%016X", uint64(got), uint64(want))
	}
}

func TestPtr(t *testing.T) {
	x := uint64(7)
	s := Ptr(&x)
	if uintptr(s) != uintptr(unsafe.Pointer(&x)) {
		t.Errorf("Ptr slot = 0x%X, want the address of x", uint64(s))
	}

	if got := Addr(0xCAFE); got != 0xCAFE {
		t.Errorf("Addr slot = 0x%X, want 0xCAFE", uint64(got))
	}
}

func TestPackValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Slot
	}{
		{name: "int32", in: int32(-1), want: 0x00000000FFFFFFFF},
		{name: "uint16", in: uint16(0xABCD), want: 0xABCD},
		{name: "bool", in: true, want: 1},
		{name: "float32", in: float32(2.5), want: 0x40200000},
		{name: "float64", in: 1.0, want: 0x3FF0000000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PackValue(tt.in)
			if err != nil {
				t.Fatalf("PackValue(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("slot = 0x%016X, want 0x%016X", uint64(got), uint64(tt.want))
			}
		})
	}

	x := int32(5)
	got, err := PackValue(&x)
	if err != nil {
		t.Fatalf("PackValue pointer: %v", err)
	}
	if uintptr(got) != uintptr(unsafe.Pointer(&x)) {
		t.Errorf("pointer slot = 0x%X, want address of x", uint64(got))
	}
}

func TestPackValueRejectsOversized(t *testing.T) {
	for _, v := range []any{nil, "text", []int32{1}, struct{ a, b uint64 }{}, complex64(1)} {
		if _, err := PackValue(v); err == nil {
			t.Errorf("PackValue(%T) should fail", v)
		}
	}
}
