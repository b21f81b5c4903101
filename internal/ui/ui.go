package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/karvel/docmd/internal/config"
	"github.com/karvel/docmd/internal/docfs"
)

// Run starts the interactive browser over the given documentation root.
// initialPath, when non-empty, is a root-relative markdown file opened at
// startup.
func Run(root *docfs.Root, initialPath string) error {
	RefreshStyles()

	var watcher *fileWatcher
	if config.GetWatch() {
		w, err := newFileWatcher()
		if err != nil {
			log.Warn("file watching disabled", "err", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(NewModel(root, watcher, initialPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
