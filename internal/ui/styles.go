package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/karvel/docmd/internal/config"
)

// StyleManager encapsulates all TUI styles for one color scheme
type StyleManager struct {
	// Markdown block styles
	H1         lipgloss.Style
	H2         lipgloss.Style
	H3         lipgloss.Style
	H4         lipgloss.Style
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	InlineCode lipgloss.Style
	CodeBlock  lipgloss.Style
	CodeLang   lipgloss.Style
	Blockquote lipgloss.Style
	Bullet     lipgloss.Style
	Rule       lipgloss.Style

	// Chrome styles
	Breadcrumb    lipgloss.Style
	BreadcrumbSep lipgloss.Style
	Divider       lipgloss.Style
	Footer        lipgloss.Style
	Dim           lipgloss.Style
	ErrorText     lipgloss.Style
	Loading       lipgloss.Style
	PaneTitle     lipgloss.Style
	FocusedTitle  lipgloss.Style

	// Sidebar tree styles
	TreeFolder lipgloss.Style
	TreeFile   lipgloss.Style
	TreeCursor lipgloss.Style
	Selected   lipgloss.Style

	// Outline styles
	OutlineEntry  lipgloss.Style
	OutlineActive lipgloss.Style
}

// DarkStyles returns the dark color scheme
func DarkStyles() *StyleManager {
	return &StyleManager{
		H1:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		H2:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		H3:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		H4:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("179")),
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		InlineCode: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
		CodeBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("234")),
		CodeLang:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Blockquote: lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
		Bullet:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Breadcrumb:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		BreadcrumbSep: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ErrorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Loading:       lipgloss.NewStyle().Foreground(lipgloss.Color("179")).Italic(true),
		PaneTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		FocusedTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),

		TreeFolder: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		TreeFile:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TreeCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("236")),

		OutlineEntry:  lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		OutlineActive: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
	}
}

// LightStyles returns the light color scheme
func LightStyles() *StyleManager {
	return &StyleManager{
		H1:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161")),
		H2:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		H3:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		H4:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("94")),
		Bold:       lipgloss.NewStyle().Bold(true),
		Italic:     lipgloss.NewStyle().Italic(true),
		InlineCode: lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Background(lipgloss.Color("254")),
		CodeBlock:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")),
		CodeLang:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Blockquote: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Bullet:     lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		Breadcrumb:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		BreadcrumbSep: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Divider:       lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ErrorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		Loading:       lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Italic(true),
		PaneTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		FocusedTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),

		TreeFolder: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		TreeFile:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		TreeCursor: lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("253")),

		OutlineEntry:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		OutlineActive: lipgloss.NewStyle().Foreground(lipgloss.Color("161")).Bold(true),
	}
}

// Global style manager instance
var styles = DarkStyles()

// RefreshStyles swaps the global styles to match the stored preference
func RefreshStyles() {
	if config.GetDark() {
		styles = DarkStyles()
	} else {
		styles = LightStyles()
	}
}
