package history

// BeginGroup makes the following changes one undo unit, up to EndGroup.
// Groups do not nest: a second BeginGroup is ignored.
func (h *History) BeginGroup() {
	if !h.grouping {
		h.grouping, h.open = true, nil
	}
}

// EndGroup closes the open group. A group with no changes leaves no trace.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	u := h.open
	h.grouping, h.open = false, nil
	if len(u) > 0 {
		h.push(u)
	}
}

func (h *History) IsGrouping() bool { return h.grouping }
