package resolver

// Mangled exports of the native call frame primitives. These strings are
// interop contracts with the hook library and must match its export table
// byte for byte.
const (
	SymNativeInit   = "?nativeInit@@YAX_K@Z"
	SymNativePush64 = "?nativePush64@@YAX_K@Z"
	SymNativeCall   = "?nativeCall@@YAPEA_KXZ"
)

// NativeInit opens a native call frame for the command hash, discarding
// any frame left unterminated by an earlier caller.
func (r *Resolver) NativeInit(hash uint64) error {
	if r.fnNativeInit == nil {
		if err := r.Bind(SymNativeInit, &r.fnNativeInit); err != nil {
			return err
		}
	}
	r.fnNativeInit(hash)
	return nil
}

// NativePush64 appends one 64-bit argument slot to the open frame.
func (r *Resolver) NativePush64(val uint64) error {
	if r.fnNativePush64 == nil {
		if err := r.Bind(SymNativePush64, &r.fnNativePush64); err != nil {
			return err
		}
	}
	r.fnNativePush64(val)
	return nil
}

// NativeCall executes the open frame and returns the hook's result slot.
// The pointee is owned by the hook runtime and stays valid until the next
// frame executes.
func (r *Resolver) NativeCall() (*uint64, error) {
	if r.fnNativeCall == nil {
		if err := r.Bind(SymNativeCall, &r.fnNativeCall); err != nil {
			return nil, err
		}
	}
	return r.fnNativeCall(), nil
}
