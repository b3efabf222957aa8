package invoker

import (
	"errors"
	"fmt"
	"testing"

	sherrors "github.com/playday3008/scripthook-go/errors"
	"github.com/playday3008/scripthook-go/joaat"
)

// mockCaller records the frame protocol and serves a canned result slot.
type mockCaller struct {
	ops      []string
	hash     uint64
	pushed   []uint64
	result   uint64
	initErr  error
	pushErr  error
	callErr  error
	nilSlot  bool
	dispatch func(m *mockCaller)
}

func (m *mockCaller) NativeInit(hash uint64) error {
	if m.initErr != nil {
		return m.initErr
	}
	m.ops = append(m.ops, "init")
	m.hash = hash
	m.pushed = m.pushed[:0]
	return nil
}

func (m *mockCaller) NativePush64(val uint64) error {
	if m.pushErr != nil {
		return m.pushErr
	}
	m.ops = append(m.ops, "push")
	m.pushed = append(m.pushed, val)
	return nil
}

func (m *mockCaller) NativeCall() (*uint64, error) {
	if m.callErr != nil {
		return nil, m.callErr
	}
	m.ops = append(m.ops, "call")
	if m.nilSlot {
		return nil, nil
	}
	if m.dispatch != nil {
		m.dispatch(m)
	}
	return &m.result, nil
}

func TestInvokeFrameOrder(t *testing.T) {
	m := &mockCaller{result: 99}
	got, err := Invoke[uint64](m, 0xABCD, Pack(int32(1)), Pack(int32(2)))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != 99 {
		t.Errorf("result = %d, want 99", got)
	}
	if m.hash != 0xABCD {
		t.Errorf("hash = 0x%X, want 0xABCD", m.hash)
	}

	wantOps := []string{"init", "push", "push", "call"}
	if len(m.ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", m.ops, wantOps)
	}
	for i := range wantOps {
		if m.ops[i] != wantOps[i] {
			t.Fatalf("ops = %v, want %v", m.ops, wantOps)
		}
	}
	if len(m.pushed) != 2 || m.pushed[0] != 1 || m.pushed[1] != 2 {
		t.Errorf("pushed = %v, want [1 2]", m.pushed)
	}
}

func TestInvokeTooManyArgs(t *testing.T) {
	m := &mockCaller{}
	args := make([]Slot, MaxArgs+1)

	_, err := Invoke[uint64](m, 1, args...)
	if !errors.Is(err, &sherrors.Error{Phase: sherrors.PhaseInvoke, Kind: sherrors.KindTooManyArgs}) {
		t.Fatalf("error = %v, want too_many_args", err)
	}
	if len(m.ops) != 0 {
		t.Errorf("ops = %v, want no frame activity before the limit check", m.ops)
	}
}

func TestInvokeMaxArgsExactlyAllowed(t *testing.T) {
	m := &mockCaller{}
	args := make([]Slot, MaxArgs)

	if _, err := Invoke[uint64](m, 1, args...); err != nil {
		t.Fatalf("Invoke with %d args: %v", MaxArgs, err)
	}
	if len(m.pushed) != MaxArgs {
		t.Errorf("pushed %d slots, want %d", len(m.pushed), MaxArgs)
	}
}

func TestInvokeResultReinterpretation(t *testing.T) {
	t.Run("int32 negative", func(t *testing.T) {
		m := &mockCaller{result: 0x00000000FFFFFFFF}
		got, err := Invoke[int32](m, 1)
		if err != nil {
			t.Fatalf("Invoke: %v", err)
		}
		if got != -1 {
			t.Errorf("result = %d, want -1", got)
		}
	})

	t.Run("float32", func(t *testing.T) {
		m := &mockCaller{result: 0x3F800000}
		got, err := Invoke[float32](m, 1)
		if err != nil {
			t.Fatalf("Invoke: %v", err)
		}
		if got != 1.0 {
			t.Errorf("result = %v, want 1.0", got)
		}
	})

	t.Run("bool", func(t *testing.T) {
		m := &mockCaller{result: 1}
		got, err := Invoke[bool](m, 1)
		if err != nil {
			t.Fatalf("Invoke: %v", err)
		}
		if !got {
			t.Error("result = false, want true")
		}

		m.result = 0
		got, err = Invoke[bool](m, 1)
		if err != nil {
			t.Fatalf("Invoke: %v", err)
		}
		if got {
			t.Error("result = true, want false")
		}
	})
}

func TestInvokeErrorPropagation(t *testing.T) {
	t.Run("init", func(t *testing.T) {
		boom := fmt.Errorf("init failed")
		m := &mockCaller{initErr: boom}
		_, err := Invoke[uint64](m, 1, Pack(int32(1)))
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want the init error", err)
		}
		if len(m.pushed) != 0 {
			t.Errorf("pushed %v after failed init", m.pushed)
		}
	})

	t.Run("push aborts without rollback", func(t *testing.T) {
		boom := fmt.Errorf("push failed")
		m := &mockCaller{pushErr: boom}
		_, err := Invoke[uint64](m, 1, Pack(int32(1)), Pack(int32(2)))
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want the push error", err)
		}
		// The opened frame stays with the hook; no compensating calls.
		if len(m.ops) != 1 || m.ops[0] != "init" {
			t.Errorf("ops = %v, want only the init", m.ops)
		}
	})

	t.Run("call", func(t *testing.T) {
		boom := fmt.Errorf("call failed")
		m := &mockCaller{callErr: boom}
		_, err := Invoke[uint64](m, 1)
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want the call error", err)
		}
	})
}

func TestInvokeNilResultSlot(t *testing.T) {
	m := &mockCaller{nilSlot: true}
	_, err := Invoke[uint64](m, 0xFEED)
	if !errors.Is(err, &sherrors.Error{Phase: sherrors.PhaseInvoke, Kind: sherrors.KindNilResult}) {
		t.Fatalf("error = %v, want nil_result", err)
	}
}

func TestCallDiscardsResult(t *testing.T) {
	m := &mockCaller{result: 123}
	if err := Call(m, 1, Pack(int32(9))); err != nil {
		t.Fatalf("Call: %v", err)
	}
	if len(m.pushed) != 1 || m.pushed[0] != 9 {
		t.Errorf("pushed = %v, want [9]", m.pushed)
	}
}

// Exercises the documented end-to-end shape: a command that adds two
// signed arguments, addressed by a runtime hash.
func TestInvokeAddCommand(t *testing.T) {
	addHash := joaat.String64("ADD_TWO_INTS")

	m := &mockCaller{}
	m.dispatch = func(m *mockCaller) {
		if m.hash != addHash || len(m.pushed) != 2 {
			m.result = 0
			return
		}
		sum := int32(uint32(m.pushed[0])) + int32(uint32(m.pushed[1]))
		m.result = uint64(uint32(sum))
	}

	got, err := Invoke[int32](m, addHash, Pack(int32(2)), Pack(int32(3)))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != 5 {
		t.Errorf("result = %d, want 5", got)
	}

	got, err = Invoke[int32](m, addHash, Pack(int32(-7)), Pack(int32(3)))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if got != -4 {
		t.Errorf("result = %d, want -4", got)
	}
}
