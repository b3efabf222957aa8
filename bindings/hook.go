package bindings

import (
	"github.com/playday3008/scripthook-go/invoker"
	"github.com/playday3008/scripthook-go/resolver"
)

// Binder resolves an export by its mangled name and binds it to the
// function variable fnptr points at. *resolver.Resolver implements it.
type Binder interface {
	Bind(name string, fnptr any) error
}

var (
	_ Binder         = (*resolver.Resolver)(nil)
	_ invoker.Caller = (*resolver.Resolver)(nil)
)

// Hook is the typed surface over the SDK exports. Each export binds
// lazily on first use and stays bound for the life of the Hook.
//
// All methods belong to the script thread; see the package comment for
// the callback contract.
type Hook struct {
	b Binder

	fnScriptWait                     func(uint32)
	fnScriptRegister                 func(uintptr, uintptr)
	fnScriptRegisterAdditionalThread func(uintptr, uintptr)
	fnScriptUnregister               func(uintptr)

	fnGetGlobalPtr               func(int32) *uint64
	fnGetScriptHandleBaseAddress func(int32) *byte

	fnWorldGetAllVehicles func(*int32, int32) int32
	fnWorldGetAllPeds     func(*int32, int32) int32
	fnWorldGetAllObjects  func(*int32, int32) int32
	fnWorldGetAllPickups  func(*int32, int32) int32

	fnCreateTexture func(string) int32
	fnDrawTexture   func(int32, int32, int32, int32,
		float32, float32, float32, float32, float32, float32,
		float32, float32, float32, float32, float32, float32)

	fnPresentCallbackRegister   func(uintptr)
	fnPresentCallbackUnregister func(uintptr)
	fnKeyboardHandlerRegister   func(uintptr)
	fnKeyboardHandlerUnregister func(uintptr)

	fnGetGameVersion func() int32
}

// NewHook returns a Hook that binds exports through b. Pass the
// *resolver.Resolver that owns the host library.
func NewHook(b Binder) *Hook {
	return &Hook{b: b}
}
