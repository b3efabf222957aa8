package bindings

import (
	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/playday3008/scripthook-go/errors"
)

// ScriptMain is a script entry point. The hook runtime calls it on the
// script thread after the game finishes loading; it normally never
// returns, looping on Wait between frames.
type ScriptMain func()

// ScriptRegister hands main to the hook runtime as the script for the
// given module. The module handle is the script DLL's own HMODULE, which
// the hook uses as the registration key.
func (h *Hook) ScriptRegister(module uintptr, main ScriptMain) error {
	if main == nil {
		return errors.InvalidInput(errors.PhaseInvoke, "script main must not be nil")
	}
	if h.fnScriptRegister == nil {
		if err := h.b.Bind(SymScriptRegister, &h.fnScriptRegister); err != nil {
			return err
		}
	}

	// Callbacks need a word-sized result on every platform; the hook
	// calls the entry as void and ignores it.
	entry := purego.NewCallback(func() uintptr {
		main()
		return 0
	})
	h.fnScriptRegister(module, entry)

	Logger().Info("script registered", zap.Uintptr("module", module))
	return nil
}

// ScriptRegisterAdditionalThread attaches another entry point to an
// already registered module. The hook runs it on its own script thread.
func (h *Hook) ScriptRegisterAdditionalThread(module uintptr, main ScriptMain) error {
	if main == nil {
		return errors.InvalidInput(errors.PhaseInvoke, "script main must not be nil")
	}
	if h.fnScriptRegisterAdditionalThread == nil {
		if err := h.b.Bind(SymScriptRegisterAdditionalThread, &h.fnScriptRegisterAdditionalThread); err != nil {
			return err
		}
	}

	entry := purego.NewCallback(func() uintptr {
		main()
		return 0
	})
	h.fnScriptRegisterAdditionalThread(module, entry)

	Logger().Info("additional script thread registered", zap.Uintptr("module", module))
	return nil
}

// ScriptUnregister removes every entry point registered for the module.
// Call it when the script DLL unloads.
func (h *Hook) ScriptUnregister(module uintptr) error {
	if h.fnScriptUnregister == nil {
		if err := h.b.Bind(SymScriptUnregister, &h.fnScriptUnregister); err != nil {
			return err
		}
	}

	h.fnScriptUnregister(module)

	Logger().Info("script unregistered", zap.Uintptr("module", module))
	return nil
}

// Wait yields the script thread back to the game for at least ms
// milliseconds. Every script loop must call it once per iteration; a
// script that never yields stalls the game.
func (h *Hook) Wait(ms uint32) error {
	if h.fnScriptWait == nil {
		if err := h.b.Bind(SymScriptWait, &h.fnScriptWait); err != nil {
			return err
		}
	}

	h.fnScriptWait(ms)
	return nil
}
