package bindings

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/playday3008/scripthook-go/errors"
)

// PresentCallback runs inside the game's present path, once per frame,
// with the DXGI swap chain. It executes on the render thread: it must
// not issue native calls or touch Hook methods.
type PresentCallback func(swapChain unsafe.Pointer)

// PresentHandle identifies one present registration. Unregistering
// requires the handle returned at registration because the hook keys
// callbacks by their trampoline address.
type PresentHandle struct {
	raw uintptr
}

// KeyboardHandler receives raw keyboard events from the game's input
// path. Flags follow the WM_KEYDOWN/WM_KEYUP lParam layout: repeats and
// scanCode from the message, isExtended for extended keys, isWithAlt for
// the context code, wasDownBefore for the previous key state, isUpNow
// for key release. It must not issue native calls.
type KeyboardHandler func(key uint32, repeats uint16, scanCode uint8, isExtended, isWithAlt, wasDownBefore, isUpNow bool)

// KeyboardHandle identifies one keyboard registration.
type KeyboardHandle struct {
	raw uintptr
}

// PresentCallbackRegister installs cb on the game's present path and
// returns the handle needed to remove it.
func (h *Hook) PresentCallbackRegister(cb PresentCallback) (PresentHandle, error) {
	if cb == nil {
		return PresentHandle{}, errors.InvalidInput(errors.PhaseInvoke, "present callback must not be nil")
	}
	if h.fnPresentCallbackRegister == nil {
		if err := h.b.Bind(SymPresentCallbackRegister, &h.fnPresentCallbackRegister); err != nil {
			return PresentHandle{}, err
		}
	}

	// Word-sized result per the callback ABI; the hook calls this as
	// void.
	raw := purego.NewCallback(func(swapChain uintptr) uintptr {
		cb(*(*unsafe.Pointer)(unsafe.Pointer(&swapChain)))
		return 0
	})
	h.fnPresentCallbackRegister(raw)

	Logger().Debug("present callback registered", zap.Uintptr("handle", raw))
	return PresentHandle{raw: raw}, nil
}

// PresentCallbackUnregister detaches a previously registered present
// callback. The trampoline itself stays allocated; see the package
// comment on callback lifetime.
func (h *Hook) PresentCallbackUnregister(handle PresentHandle) error {
	if handle.raw == 0 {
		return errors.InvalidInput(errors.PhaseInvoke, "zero present handle")
	}
	if h.fnPresentCallbackUnregister == nil {
		if err := h.b.Bind(SymPresentCallbackUnregister, &h.fnPresentCallbackUnregister); err != nil {
			return err
		}
	}

	h.fnPresentCallbackUnregister(handle.raw)

	Logger().Debug("present callback unregistered", zap.Uintptr("handle", handle.raw))
	return nil
}

// KeyboardHandlerRegister installs handler on the game's input path and
// returns the handle needed to remove it.
func (h *Hook) KeyboardHandlerRegister(handler KeyboardHandler) (KeyboardHandle, error) {
	if handler == nil {
		return KeyboardHandle{}, errors.InvalidInput(errors.PhaseInvoke, "keyboard handler must not be nil")
	}
	if h.fnKeyboardHandlerRegister == nil {
		if err := h.b.Bind(SymKeyboardHandlerRegister, &h.fnKeyboardHandlerRegister); err != nil {
			return KeyboardHandle{}, err
		}
	}

	raw := purego.NewCallback(func(key, repeats, scanCode, isExtended, isWithAlt, wasDownBefore, isUpNow uintptr) uintptr {
		handler(uint32(key), uint16(repeats), uint8(scanCode),
			isExtended != 0, isWithAlt != 0, wasDownBefore != 0, isUpNow != 0)
		return 0
	})
	h.fnKeyboardHandlerRegister(raw)

	Logger().Debug("keyboard handler registered", zap.Uintptr("handle", raw))
	return KeyboardHandle{raw: raw}, nil
}

// KeyboardHandlerUnregister detaches a previously registered keyboard
// handler.
func (h *Hook) KeyboardHandlerUnregister(handle KeyboardHandle) error {
	if handle.raw == 0 {
		return errors.InvalidInput(errors.PhaseInvoke, "zero keyboard handle")
	}
	if h.fnKeyboardHandlerUnregister == nil {
		if err := h.b.Bind(SymKeyboardHandlerUnregister, &h.fnKeyboardHandlerUnregister); err != nil {
			return err
		}
	}

	h.fnKeyboardHandlerUnregister(handle.raw)

	Logger().Debug("keyboard handler unregistered", zap.Uintptr("handle", handle.raw))
	return nil
}
