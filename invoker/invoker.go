package invoker

import (
	"unsafe"

	"github.com/playday3008/scripthook-go/errors"
)

// MaxArgs is the hook runtime's per-frame argument limit.
const MaxArgs = 25

// Caller issues the three native frame primitives. *resolver.Resolver
// implements it; tests substitute recording mocks.
type Caller interface {
	NativeInit(hash uint64) error
	NativePush64(val uint64) error
	NativeCall() (*uint64, error)
}

// Invoke executes the native command identified by hash and reinterprets
// the result slot's bits as R. Argument count is checked against MaxArgs
// before anything reaches the native layer; past that point failures
// abort the frame where they happen, without rollback.
//
// R is the caller's declaration of the command's result ABI. Results
// wider than one slot (vectors) read the hook's result buffer beyond the
// first slot, which the hook guarantees for its own result types.
func Invoke[R any](c Caller, hash uint64, args ...Slot) (R, error) {
	var zero R

	if len(args) > MaxArgs {
		return zero, errors.TooManyArgs(len(args), MaxArgs)
	}

	if err := c.NativeInit(hash); err != nil {
		return zero, err
	}
	for _, a := range args {
		if err := c.NativePush64(uint64(a)); err != nil {
			return zero, err
		}
	}

	p, err := c.NativeCall()
	if err != nil {
		return zero, err
	}
	if p == nil {
		return zero, errors.NilResult(hash)
	}

	return *(*R)(unsafe.Pointer(p)), nil
}

// Call is Invoke for commands whose result is discarded.
func Call(c Caller, hash uint64, args ...Slot) error {
	_, err := Invoke[uint64](c, hash, args...)
	return err
}
