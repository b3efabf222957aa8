package bindings

// worldPool runs one pool snapshot export against the caller's buffer.
// The export writes at most len(out) handles and returns how many it
// wrote.
func (h *Hook) worldPool(fn *func(*int32, int32) int32, sym string, out []int32) (int, error) {
	if *fn == nil {
		if err := h.b.Bind(sym, fn); err != nil {
			return 0, err
		}
	}
	if len(out) == 0 {
		return 0, nil
	}

	n := (*fn)(&out[0], int32(len(out)))
	return int(n), nil
}

// WorldGetAllVehicles snapshots the vehicle pool into out and returns
// the number of handles written. A full buffer means the pool may hold
// more; retry with a larger one.
func (h *Hook) WorldGetAllVehicles(out []int32) (int, error) {
	return h.worldPool(&h.fnWorldGetAllVehicles, SymWorldGetAllVehicles, out)
}

// WorldGetAllPeds snapshots the ped pool into out.
func (h *Hook) WorldGetAllPeds(out []int32) (int, error) {
	return h.worldPool(&h.fnWorldGetAllPeds, SymWorldGetAllPeds, out)
}

// WorldGetAllObjects snapshots the object pool into out.
func (h *Hook) WorldGetAllObjects(out []int32) (int, error) {
	return h.worldPool(&h.fnWorldGetAllObjects, SymWorldGetAllObjects, out)
}

// WorldGetAllPickups snapshots the pickup pool into out.
func (h *Hook) WorldGetAllPickups(out []int32) (int, error) {
	return h.worldPool(&h.fnWorldGetAllPickups, SymWorldGetAllPickups, out)
}
