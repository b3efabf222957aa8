package bindings

// GlobalPtr returns a pointer to one script global cell. The cell lives
// in game memory and stays valid for the session; reads and writes
// through it are raw and unchecked.
func (h *Hook) GlobalPtr(globalID int32) (*uint64, error) {
	if h.fnGetGlobalPtr == nil {
		if err := h.b.Bind(SymGetGlobalPtr, &h.fnGetGlobalPtr); err != nil {
			return nil, err
		}
	}
	return h.fnGetGlobalPtr(globalID), nil
}

// ScriptHandleBaseAddress returns the base of the game object behind a
// script handle, or nil when the handle is stale. The pointer is only
// good until the entity despawns.
func (h *Hook) ScriptHandleBaseAddress(handle int32) (*byte, error) {
	if h.fnGetScriptHandleBaseAddress == nil {
		if err := h.b.Bind(SymGetScriptHandleBaseAddress, &h.fnGetScriptHandleBaseAddress); err != nil {
			return nil, err
		}
	}
	return h.fnGetScriptHandleBaseAddress(handle), nil
}
