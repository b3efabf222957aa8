package invoker

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/playday3008/scripthook-go/errors"
)

// Slot is one 64-bit argument cell of a native call frame. Values are
// stored by bit pattern, zero-extended to the full cell.
type Slot uint64

// Packable admits exactly the value types whose storage fits one slot.
// The constraint is the compile-time size proof: a wider type does not
// instantiate.
type Packable interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// Pack stores v's bit pattern in a slot, zero-extending the unused high
// bits. Signed values keep their two's-complement bits unwidened, so
// Pack(int32(-1)) is 0x00000000FFFFFFFF, and floats contribute their
// IEEE-754 bits.
func Pack[T Packable](v T) Slot {
	switch v := any(v).(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int8:
		return Slot(uint8(v))
	case int16:
		return Slot(uint16(v))
	case int32:
		return Slot(uint32(v))
	case int64:
		return Slot(uint64(v))
	case int:
		return Slot(uint(v))
	case uint8:
		return Slot(v)
	case uint16:
		return Slot(v)
	case uint32:
		return Slot(v)
	case uint64:
		return Slot(v)
	case uint:
		return Slot(v)
	case uintptr:
		return Slot(v)
	case float32:
		return Slot(math.Float32bits(v))
	case float64:
		return Slot(math.Float64bits(v))
	}
	// Named types reach here; same packing through reflection.
	return packReflect(reflect.ValueOf(v))
}

// Ptr stores the address of p. The pointee must stay reachable until the
// frame executes; the native side may write through it.
func Ptr[P any](p *P) Slot {
	return Slot(uintptr(unsafe.Pointer(p)))
}

// Addr stores a raw address produced elsewhere, such as a resolved
// export or a registered callback.
func Addr(a uintptr) Slot {
	return Slot(a)
}

// PackValue is the dynamic form of Pack for callers that learn the type
// at run time. Values that do not fit a slot are rejected instead of
// being truncated.
func PackValue(v any) (Slot, error) {
	if v == nil {
		return 0, errors.InvalidInput(errors.PhaseInvoke, "cannot pack nil")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return packReflect(rv), nil
	case reflect.Pointer, reflect.UnsafePointer:
		return Slot(rv.Pointer()), nil
	default:
		return 0, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
			Value(v).
			Detail("%T does not fit a 64-bit argument slot", v).
			Build()
	}
}

func packReflect(v reflect.Value) Slot {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return packSigned(v.Int(), v.Type().Size())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return Slot(v.Uint())
	case reflect.Float32:
		return Slot(math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		return Slot(math.Float64bits(v.Float()))
	}
	return 0
}

// packSigned truncates the sign extension reflect.Value.Int performs
// back to the value's own width before widening with zeros.
func packSigned(x int64, size uintptr) Slot {
	switch size {
	case 1:
		return Slot(uint8(x))
	case 2:
		return Slot(uint16(x))
	case 4:
		return Slot(uint32(x))
	default:
		return Slot(uint64(x))
	}
}
