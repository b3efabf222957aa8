package bindings

import (
	"math"
	"testing"
	"unsafe"

	"github.com/playday3008/scripthook-go/invoker"
)

func TestVector3Layout(t *testing.T) {
	var v Vector3
	if size := unsafe.Sizeof(v); size != 24 {
		t.Errorf("Sizeof(Vector3) = %d, want 24", size)
	}
	if off := unsafe.Offsetof(v.X); off != 0 {
		t.Errorf("Offsetof(X) = %d, want 0", off)
	}
	if off := unsafe.Offsetof(v.Y); off != 8 {
		t.Errorf("Offsetof(Y) = %d, want 8", off)
	}
	if off := unsafe.Offsetof(v.Z); off != 16 {
		t.Errorf("Offsetof(Z) = %d, want 16", off)
	}
}

func TestVec3(t *testing.T) {
	v := Vec3(1.5, -2, 0.25)
	if v.X != 1.5 || v.Y != -2 || v.Z != 0.25 {
		t.Errorf("Vec3 = %v", v)
	}
	if s := v.String(); s != "(1.5, -2, 0.25)" {
		t.Errorf("String() = %q", s)
	}
}

// vecCaller plays a native whose result area holds a coordinate triple
// in the game's padded layout.
type vecCaller struct {
	slots [3]uint64
}

func (c *vecCaller) NativeInit(uint64) error   { return nil }
func (c *vecCaller) NativePush64(uint64) error { return nil }
func (c *vecCaller) NativeCall() (*uint64, error) {
	return &c.slots[0], nil
}

func TestVector3ReadsFromResultSlots(t *testing.T) {
	c := &vecCaller{}
	c.slots[0] = uint64(math.Float32bits(12.5))
	c.slots[1] = uint64(math.Float32bits(-3))
	c.slots[2] = uint64(math.Float32bits(800.25))

	v, err := invoker.Invoke[Vector3](c, 0x3FEF770D40960D5A) // GET_ENTITY_COORDS
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if v.X != 12.5 || v.Y != -3 || v.Z != 800.25 {
		t.Errorf("vector = %v, want (12.5, -3, 800.25)", v)
	}
}
