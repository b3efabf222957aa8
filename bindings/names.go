package bindings

import (
	"github.com/playday3008/scripthook-go/errors"
	"github.com/playday3008/scripthook-go/resolver"
)

// Mangled names of the SDK exports this package binds. The hook library
// is built by MSVC without extern "C", so the decorated names are the
// stable lookup keys; they encode the exact signatures the typed
// bindings assume.
const (
	SymScriptWait                     = "?scriptWait@@YAXK@Z"
	SymScriptRegister                 = "?scriptRegister@@YAXPEAUHINSTANCE__@@P6AXXZ@Z"
	SymScriptRegisterAdditionalThread = "?scriptRegisterAdditionalThread@@YAXPEAUHINSTANCE__@@P6AXXZ@Z"
	SymScriptUnregister               = "?scriptUnregister@@YAXPEAUHINSTANCE__@@@Z"

	SymGetGlobalPtr               = "?getGlobalPtr@@YAPEA_KH@Z"
	SymGetScriptHandleBaseAddress = "?getScriptHandleBaseAddress@@YAPEAEH@Z"

	SymWorldGetAllVehicles = "?worldGetAllVehicles@@YAHPEAHH@Z"
	SymWorldGetAllPeds     = "?worldGetAllPeds@@YAHPEAHH@Z"
	SymWorldGetAllObjects  = "?worldGetAllObjects@@YAHPEAHH@Z"
	SymWorldGetAllPickups  = "?worldGetAllPickups@@YAHPEAHH@Z"

	SymCreateTexture = "?createTexture@@YAHPEBD@Z"
	SymDrawTexture   = "?drawTexture@@YAXHHHHMMMMMMMMMMMM@Z"

	SymPresentCallbackRegister   = "?presentCallbackRegister@@YAXP6AXPEAX@Z@Z"
	SymPresentCallbackUnregister = "?presentCallbackUnregister@@YAXP6AXPEAX@Z@Z"
	SymKeyboardHandlerRegister   = "?keyboardHandlerRegister@@YAXP6AXKGEHHHH@Z@Z"
	SymKeyboardHandlerUnregister = "?keyboardHandlerUnregister@@YAXP6AXKGEHHHH@Z@Z"

	SymGetGameVersion = "?getGameVersion@@YA?AW4eGameVersion@@XZ"
)

// Export is one catalog entry: the mangled lookup key and the plain
// identifier it decorates.
type Export struct {
	Symbol string
	Name   string
}

// Catalog lists every export the bridge knows, the resolver's frame
// primitives included.
func Catalog() []Export {
	syms := []string{
		resolver.SymNativeInit,
		resolver.SymNativePush64,
		resolver.SymNativeCall,
		SymScriptWait,
		SymScriptRegister,
		SymScriptRegisterAdditionalThread,
		SymScriptUnregister,
		SymGetGlobalPtr,
		SymGetScriptHandleBaseAddress,
		SymWorldGetAllVehicles,
		SymWorldGetAllPeds,
		SymWorldGetAllObjects,
		SymWorldGetAllPickups,
		SymCreateTexture,
		SymDrawTexture,
		SymPresentCallbackRegister,
		SymPresentCallbackUnregister,
		SymKeyboardHandlerRegister,
		SymKeyboardHandlerUnregister,
		SymGetGameVersion,
	}

	out := make([]Export, len(syms))
	for i, s := range syms {
		out[i] = Export{Symbol: s, Name: errors.Demangle(s)}
	}
	return out
}
