package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/karvel/docmd/internal/config"
	"github.com/karvel/docmd/internal/docfs"
	"github.com/karvel/docmd/internal/markdown"
)

// pane identifies which panel owns keyboard focus.
type pane int

const (
	paneTree pane = iota
	paneContent
	paneOutline
)

const (
	headerRows = 2 // breadcrumb + divider
	footerRows = 1
)

// ============================================================================
// Messages
// ============================================================================

// treeLoadedMsg carries the result of a directory listing fetch.
type treeLoadedMsg struct {
	entries []docfs.Entry
	err     error
}

// docLoadedMsg carries the result of a file content fetch. seq ties the
// response to the request that issued it: a response whose seq is not the
// model's current one belongs to a navigation the user has already left
// and is discarded instead of applied.
type docLoadedMsg struct {
	seq  int
	path string
	doc  docfs.Document
	err  error
}

// fileChangedMsg reports a filesystem event on some watched path.
type fileChangedMsg struct {
	path string
}

// editorFinishedMsg is sent when an external editor session ends.
type editorFinishedMsg struct {
	err error
}

// ============================================================================
// Model
// ============================================================================

// Model is the top-level Bubble Tea model: tree sidebar, content viewport,
// outline panel, breadcrumb header and footer help.
type Model struct {
	root    *docfs.Root
	watcher *fileWatcher

	width  int
	height int
	focus  pane

	tree        *treeModel
	filterInput textinput.Model
	filtering   bool

	content      viewport.Model
	contentReady bool

	outline outlineNav
	anchors map[string]int

	currentPath string // slash-relative path of the open document
	currentAbs  string
	docText     string
	docModTime  time.Time
	docSize     int64

	loadSeq     int
	loadingPath string // non-empty while a fetch is in flight
	statusErr   string

	quitting bool
}

// NewModel builds the initial model. initialPath, when non-empty, is opened
// as soon as the program starts.
func NewModel(root *docfs.Root, watcher *fileWatcher, initialPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "filter files..."
	ti.CharLimit = 128

	m := Model{
		root:        root,
		watcher:     watcher,
		filterInput: ti,
		anchors:     map[string]int{},
	}
	if initialPath != "" {
		// Init runs on a copy of the model, so the sequence for the
		// startup fetch has to be assigned here.
		m.loadSeq = 1
		m.loadingPath = initialPath
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTreeCmd()}
	if m.loadingPath != "" {
		cmds = append(cmds, m.loadDocCmd(m.loadSeq, m.loadingPath))
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// ============================================================================
// Commands
// ============================================================================

func (m Model) loadTreeCmd() tea.Cmd {
	root := m.root
	return func() tea.Msg {
		entries, err := root.List("")
		return treeLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) loadDocCmd(seq int, path string) tea.Cmd {
	root := m.root
	return func() tea.Msg {
		doc, err := root.Read(path)
		return docLoadedMsg{seq: seq, path: path, doc: doc, err: err}
	}
}

// waitForChange blocks on the watcher until the next filesystem event.
// Update re-issues it after every message so the subscription stays alive.
func waitForChange(w *fileWatcher) tea.Cmd {
	return func() tea.Msg {
		path, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

func (m *Model) openDoc(path string) tea.Cmd {
	m.loadSeq++
	m.loadingPath = path
	m.statusErr = ""
	return m.loadDocCmd(m.loadSeq, path)
}

// ============================================================================
// Update
// ============================================================================

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		if msg.err != nil {
			m.statusErr = classifyErr(msg.err)
			return m, nil
		}
		m.tree = newTree(msg.entries)
		if m.currentPath != "" {
			m.tree.selectPath(m.currentPath)
		}
		return m, nil

	case docLoadedMsg:
		return m.handleDocLoaded(msg)

	case fileChangedMsg:
		var cmd tea.Cmd
		if m.watcher != nil {
			cmd = waitForChange(m.watcher)
		}
		if config.GetWatch() && msg.path == m.currentAbs && m.currentPath != "" && m.loadingPath == "" {
			reload := m.openDoc(m.currentPath)
			return m, tea.Batch(cmd, reload)
		}
		return m, cmd

	case editorFinishedMsg:
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			return m, nil
		}
		if m.currentPath != "" {
			cmd := m.openDoc(m.currentPath)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.filtering {
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	cw := m.contentWidth()
	ch := m.paneHeight()
	if !m.contentReady {
		m.content = viewport.New(cw, ch)
		m.contentReady = true
	} else {
		m.content.Width = cw
		m.content.Height = ch
	}
	m.filterInput.Width = max(8, m.sidebarWidth()-4)

	if m.docText != "" {
		m.renderContent(true)
	}
}

func (m Model) handleDocLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	// A stale response from a navigation the user already abandoned must
	// never overwrite the current view.
	if msg.seq != m.loadSeq {
		return m, nil
	}
	m.loadingPath = ""

	if msg.err != nil {
		m.statusErr = classifyErr(msg.err)
		return m, nil
	}

	m.currentPath = msg.path
	m.docText = msg.doc.Text
	m.docModTime = msg.doc.ModTime
	m.docSize = msg.doc.Size
	m.statusErr = ""

	keepOffset := false
	if abs, err := m.root.Abs(msg.path); err == nil {
		// Same file reloaded (watcher or editor round trip): keep the
		// reading position.
		keepOffset = abs == m.currentAbs
		m.currentAbs = abs
		if m.watcher != nil {
			_ = m.watcher.Watch(abs)
		}
	}

	m.outline.setEntries(markdown.ExtractHeadings(m.docText))
	m.renderContent(keepOffset)
	if m.tree != nil {
		m.tree.selectPath(msg.path)
	}
	return m, nil
}

// renderContent runs the scanner and block renderer over the current
// document at the current width and installs the result in the viewport.
func (m *Model) renderContent(keepOffset bool) {
	if !m.contentReady {
		return
	}
	offset := m.content.YOffset
	lines, anchors := renderBlocks(markdown.Scan(m.docText), m.content.Width, styles)
	m.anchors = anchors
	m.content.SetContent(strings.Join(lines, "\n"))
	if keepOffset {
		m.content.SetYOffset(offset)
	} else {
		m.content.GotoTop()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m, nil
	case "T":
		config.SetDark(!config.GetDark())
		RefreshStyles()
		if m.docText != "" {
			m.renderContent(true)
		}
		return m, nil
	case "e":
		return m, m.editCurrentCmd()
	case "r":
		cmds := []tea.Cmd{m.loadTreeCmd()}
		if m.currentPath != "" {
			cmds = append(cmds, m.openDoc(m.currentPath))
		}
		return m, tea.Batch(cmds...)
	}

	switch m.focus {
	case paneTree:
		return m.handleTreeKey(msg)
	case paneOutline:
		return m.handleOutlineKey(msg)
	default:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.SetValue("")
		if m.tree != nil {
			m.tree.setFilter("")
		}
		return m, nil
	case "enter":
		m.filtering = false
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	prev := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.tree != nil && m.filterInput.Value() != prev {
		m.tree.setFilter(m.filterInput.Value())
	}
	return m, cmd
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tree == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "k", "ctrl+p":
		m.tree.moveCursor(-1)
	case "down", "j", "ctrl+n":
		m.tree.moveCursor(1)
	case "pgup":
		m.tree.moveCursor(-10)
	case "pgdown":
		m.tree.moveCursor(10)
	case "home":
		m.tree.moveCursor(-len(m.tree.visible))
	case "end":
		m.tree.moveCursor(len(m.tree.visible))
	case "/":
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case "enter", " ":
		n := m.tree.current()
		if n == nil {
			return m, nil
		}
		if n.isFolder() {
			m.tree.toggle()
			return m, nil
		}
		if n.entry.Path != m.currentPath {
			cmd := m.openDoc(n.entry.Path)
			return m, cmd
		}
		m.focus = paneContent
	}
	return m, nil
}

func (m Model) handleOutlineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "ctrl+p":
		m.outline.moveCursor(-1)
	case "down", "j", "ctrl+n":
		m.outline.moveCursor(1)
	case "enter":
		// Scroll-into-view: top-align the heading. Missing anchors are a
		// silent no-op.
		if line, ok := m.outline.activate(m.anchors); ok {
			m.content.SetYOffset(line)
		}
	}
	return m, nil
}

func (m Model) editCurrentCmd() tea.Cmd {
	if m.currentAbs == "" {
		return nil
	}
	editor := config.GetEditor()
	if editor == "" {
		return func() tea.Msg {
			return editorFinishedMsg{err: errors.New("no editor configured (set editor in docmd.yaml or $EDITOR)")}
		}
	}
	cmd := exec.Command(editor, m.currentAbs)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// ============================================================================
// View
// ============================================================================

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || !m.contentReady {
		return styles.Loading.Render("loading...")
	}

	ph := m.paneHeight()
	sidebar := frame(m.renderSidebar(ph), m.sidebarWidth(), ph)
	contentPane := frame(m.renderContentPane(), m.contentWidth(), ph)

	panes := []string{sidebar, m.verticalBar(ph), contentPane}
	if m.outlineVisible() {
		panes = append(panes, m.verticalBar(ph), frame(m.renderOutline(ph), m.outlineWidth(), ph))
	}

	var b strings.Builder
	b.WriteString(m.renderBreadcrumb())
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", m.width)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// frame renders s as an exact width x height block.
func frame(s string, width, height int) string {
	return lipgloss.NewStyle().Width(width).Height(height).MaxWidth(width).MaxHeight(height).Render(s)
}

func (m Model) verticalBar(height int) string {
	bar := strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
	return styles.Divider.Render(bar)
}

func (m Model) paneHeight() int {
	return max(3, m.height-headerRows-footerRows)
}

func (m Model) sidebarWidth() int {
	return clamp(config.GetSidebarWidth(), 16, max(16, m.width/3))
}

func (m Model) outlineWidth() int {
	return clamp(config.GetOutlineWidth(), 14, max(14, m.width/4))
}

func (m Model) outlineVisible() bool {
	return m.width >= 80
}

func (m Model) contentWidth() int {
	w := m.width - m.sidebarWidth() - 1
	if m.outlineVisible() {
		w -= m.outlineWidth() + 1
	}
	return max(20, w)
}

// renderBreadcrumb shows the navigation trail to the open document on the
// left and fetch status or file metadata on the right.
func (m Model) renderBreadcrumb() string {
	sep := styles.BreadcrumbSep.Render(" ❯ ")

	crumbs := []string{styles.Breadcrumb.Render("docs")}
	if m.currentPath != "" {
		for _, part := range strings.Split(m.currentPath, "/") {
			crumbs = append(crumbs, styles.Breadcrumb.Render(part))
		}
	}
	left := strings.Join(crumbs, sep)

	var right string
	switch {
	case m.loadingPath != "":
		right = styles.Loading.Render("loading " + m.loadingPath + "...")
	case m.statusErr != "":
		right = styles.ErrorText.Render(m.statusErr)
	case m.currentPath != "":
		right = styles.Dim.Render(fmt.Sprintf("%s · %d bytes", m.docModTime.Format("2006-01-02 15:04"), m.docSize))
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) renderSidebar(height int) string {
	b := &strings.Builder{}

	title := "FILES"
	if m.focus == paneTree {
		b.WriteString(styles.FocusedTitle.Render(title))
	} else {
		b.WriteString(styles.PaneTitle.Render(title))
	}
	b.WriteString("\n")
	rows := height - 1

	if m.filtering || m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
		rows--
	}

	if m.tree == nil {
		b.WriteString(styles.Loading.Render("loading..."))
		return b.String()
	}
	if len(m.tree.visible) == 0 {
		b.WriteString(styles.Dim.Render("no markdown files"))
		return b.String()
	}

	start, end := scrollWindow(m.tree.cursor, len(m.tree.visible), rows, &m.tree.offset)
	for i := start; i < end; i++ {
		b.WriteString(m.renderTreeRow(m.tree.visible[i], i == m.tree.cursor))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderTreeRow(n *treeNode, underCursor bool) string {
	indent := strings.Repeat("  ", n.depth)

	var icon string
	style := styles.TreeFile
	switch {
	case n.isFolder() && n.expanded:
		icon, style = "▾ ", styles.TreeFolder
	case n.isFolder():
		icon, style = "▸ ", styles.TreeFolder
	default:
		icon = "  "
	}

	avail := m.sidebarWidth() - len(indent) - 4
	name := runewidth.Truncate(n.entry.Name, max(4, avail), "…")

	row := indent + icon + name
	if n.entry.Path == m.currentPath && !n.isFolder() {
		row = styles.Selected.Render(style.Render(row))
	} else {
		row = style.Render(row)
	}
	if underCursor && m.focus == paneTree {
		return styles.TreeCursor.Render("▶ ") + row
	}
	return "  " + row
}

func (m Model) renderContentPane() string {
	switch {
	case m.statusErr != "" && m.docText == "":
		return styles.ErrorText.Render(m.statusErr)
	case m.loadingPath != "" && m.docText == "":
		return styles.Loading.Render("loading " + m.loadingPath + "...")
	case m.docText == "":
		return styles.Dim.Render("select a file to read")
	}
	return m.content.View()
}

func (m Model) renderOutline(height int) string {
	b := &strings.Builder{}

	title := "ON THIS PAGE"
	if m.focus == paneOutline {
		b.WriteString(styles.FocusedTitle.Render(title))
	} else {
		b.WriteString(styles.PaneTitle.Render(title))
	}
	b.WriteString("\n")

	if len(m.outline.entries) == 0 {
		b.WriteString(styles.Dim.Render("no headings"))
		return b.String()
	}

	rows := height - 1
	start := max(0, min(m.outline.cursor-rows/2, len(m.outline.entries)-rows))
	end := min(len(m.outline.entries), start+rows)

	for i := start; i < end; i++ {
		entry := m.outline.entries[i]
		indent := strings.Repeat("  ", entry.Level-1)
		avail := m.outlineWidth() - len(indent) - 4
		text := runewidth.Truncate(entry.Text, max(4, avail), "…")

		style := styles.OutlineEntry
		if entry.ID == m.outline.focusedID && entry.ID != "" {
			style = styles.OutlineActive
		}

		row := indent + style.Render(text)
		if i == m.outline.cursor && m.focus == paneOutline {
			b.WriteString(styles.TreeCursor.Render("▶ ") + row)
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderFooter() string {
	var help string
	switch {
	case m.filtering:
		help = "enter apply • esc clear"
	case m.focus == paneTree:
		help = "↑↓ move • enter open • / filter • tab panel • T theme • q quit"
	case m.focus == paneOutline:
		help = "↑↓ move • enter jump • tab panel • T theme • q quit"
	default:
		help = "↑↓ scroll • e edit • r reload • tab panel • T theme • q quit"
	}
	return styles.Footer.Render(" " + help)
}

// ============================================================================
// Helpers
// ============================================================================

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if height <= 0 {
		return 0, 0
	}
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}

// classifyErr maps collaborator failures onto user-facing messages.
func classifyErr(err error) string {
	switch {
	case errors.Is(err, docfs.ErrNotFound):
		return "not found"
	case errors.Is(err, docfs.ErrOutsideRoot):
		return "path escapes the documentation root"
	case errors.Is(err, docfs.ErrNotMarkdown):
		return "not a markdown file"
	default:
		return err.Error()
	}
}
