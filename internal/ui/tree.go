package ui

import (
	"strings"

	"github.com/karvel/docmd/internal/docfs"
)

// treeNode is one row of the sidebar: a docfs entry plus its display state.
type treeNode struct {
	entry    docfs.Entry
	depth    int
	expanded bool
	children []*treeNode
}

func (n *treeNode) isFolder() bool {
	return n.entry.Type == docfs.TypeFolder
}

// treeModel is the sidebar file tree: the full node forest plus the
// currently visible (expanded, filtered) rows.
type treeModel struct {
	roots   []*treeNode
	visible []*treeNode
	cursor  int
	offset  int
	filter  string
}

func newTree(entries []docfs.Entry) *treeModel {
	t := &treeModel{roots: buildNodes(entries, 0)}
	// Top-level folders start open so the tree is not a wall of closed
	// directories.
	for _, n := range t.roots {
		n.expanded = true
	}
	t.rebuild()
	return t
}

func buildNodes(entries []docfs.Entry, depth int) []*treeNode {
	nodes := make([]*treeNode, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, &treeNode{
			entry:    e,
			depth:    depth,
			children: buildNodes(e.Children, depth+1),
		})
	}
	return nodes
}

// setFilter applies a case-insensitive name filter and rebuilds the rows.
func (t *treeModel) setFilter(filter string) {
	t.filter = strings.ToLower(strings.TrimSpace(filter))
	t.cursor = 0
	t.offset = 0
	t.rebuild()
}

// rebuild recomputes the visible rows. Without a filter, collapsed folders
// hide their subtrees. With one, matching nodes and the folders leading to
// them are shown with every folder forced open.
func (t *treeModel) rebuild() {
	t.visible = t.visible[:0]
	for _, n := range t.roots {
		t.appendVisible(n)
	}
	t.cursor = clamp(t.cursor, 0, max(0, len(t.visible)-1))
}

func (t *treeModel) appendVisible(n *treeNode) {
	if t.filter != "" {
		if !t.matchesFilter(n) {
			return
		}
		t.visible = append(t.visible, n)
		for _, c := range n.children {
			t.appendVisible(c)
		}
		return
	}

	t.visible = append(t.visible, n)
	if n.isFolder() && n.expanded {
		for _, c := range n.children {
			t.appendVisible(c)
		}
	}
}

// matchesFilter reports whether the node's name matches or any descendant's
// does, so folders on the path to a match stay visible.
func (t *treeModel) matchesFilter(n *treeNode) bool {
	if strings.Contains(strings.ToLower(n.entry.Name), t.filter) {
		return true
	}
	for _, c := range n.children {
		if t.matchesFilter(c) {
			return true
		}
	}
	return false
}

// current returns the row under the cursor, or nil when the tree is empty.
func (t *treeModel) current() *treeNode {
	if t.cursor < 0 || t.cursor >= len(t.visible) {
		return nil
	}
	return t.visible[t.cursor]
}

// toggle flips the folder under the cursor. Files are not affected.
func (t *treeModel) toggle() {
	if n := t.current(); n != nil && n.isFolder() {
		n.expanded = !n.expanded
		t.rebuild()
	}
}

func (t *treeModel) moveCursor(delta int) {
	t.cursor = clamp(t.cursor+delta, 0, max(0, len(t.visible)-1))
}

// selectPath moves the cursor to the row with the given entry path,
// expanding ancestors as needed. It reports whether the path was found.
func (t *treeModel) selectPath(path string) bool {
	if !t.expandTo(t.roots, path) {
		return false
	}
	t.rebuild()
	for i, n := range t.visible {
		if n.entry.Path == path {
			t.cursor = i
			return true
		}
	}
	return false
}

func (t *treeModel) expandTo(nodes []*treeNode, path string) bool {
	for _, n := range nodes {
		if n.entry.Path == path {
			return true
		}
		if n.isFolder() && strings.HasPrefix(path, n.entry.Path+"/") {
			if t.expandTo(n.children, path) {
				n.expanded = true
				return true
			}
		}
	}
	return false
}
