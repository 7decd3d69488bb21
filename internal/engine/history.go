package engine

// snapshot captures the whole document state before a mutation. The
// reference document is small enough that full copies beat delta tracking.
type snapshot struct {
	blocks []Block
	sel    Selection
}

type record struct {
	label string
	state snapshot
}

// history is an undo/redo stack of pre-mutation snapshots. Saves with the
// same non-empty label coalesce into one record until the group is closed
// or a differently-labeled save arrives; the coalesced record keeps the
// state from before the first save so the whole group undoes in one step.
type history struct {
	undo  []record
	redo  []record
	open  string
	limit int
}

const defaultHistoryLimit = 100

func newHistory() *history {
	return &history{limit: defaultHistoryLimit}
}

// save records pre, the state before the mutation about to be applied.
func (h *history) save(label string, pre snapshot) {
	h.redo = h.redo[:0]
	if label != "" && h.open == label && len(h.undo) > 0 {
		return
	}
	h.undo = append(h.undo, record{label: label, state: pre})
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.open = label
}

// closeGroup seals the current coalescing group.
func (h *history) closeGroup() {
	h.open = ""
}

// undoTo pops the newest undo record, pushing cur onto the redo stack.
func (h *history) undoTo(cur snapshot) (snapshot, bool) {
	if len(h.undo) == 0 {
		return snapshot{}, false
	}
	r := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, record{label: r.label, state: cur})
	h.open = ""
	return r.state, true
}

// redoTo pops the newest redo record, pushing cur back onto the undo stack.
func (h *history) redoTo(cur snapshot) (snapshot, bool) {
	if len(h.redo) == 0 {
		return snapshot{}, false
	}
	r := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, record{label: r.label, state: cur})
	h.open = ""
	return r.state, true
}

func (h *history) canUndo() bool { return len(h.undo) > 0 }

func (h *history) canRedo() bool { return len(h.redo) > 0 }
