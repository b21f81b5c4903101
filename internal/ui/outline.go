package ui

import "github.com/karvel/docmd/internal/markdown"

// outlineNav is the "on this page" panel. It starts idle (no heading
// focused) and becomes focused on a heading id only through an explicit
// activation; scrolling the content never changes the focused heading.
type outlineNav struct {
	entries   []markdown.HeadingEntry
	cursor    int
	focusedID string
}

// setEntries replaces the outline for a newly loaded document and resets
// the panel to idle.
func (o *outlineNav) setEntries(entries []markdown.HeadingEntry) {
	o.entries = entries
	o.cursor = 0
	o.focusedID = ""
}

func (o *outlineNav) moveCursor(delta int) {
	o.cursor = clamp(o.cursor+delta, 0, max(0, len(o.entries)-1))
}

// activate focuses the outline entry under the cursor and resolves it to a
// rendered line through anchors. When the id resolves, the target line is
// returned and the entry becomes the focused heading. When it does not
// (heading absent from the render, or a duplicate id resolved elsewhere),
// activate is a silent no-op: no scroll target, no state change.
func (o *outlineNav) activate(anchors map[string]int) (line int, ok bool) {
	if o.cursor >= len(o.entries) {
		return 0, false
	}
	entry := o.entries[o.cursor]
	line, ok = anchors[entry.ID]
	if !ok {
		return 0, false
	}
	o.focusedID = entry.ID
	return line, true
}
