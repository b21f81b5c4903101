package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/karvel/docmd/internal/markdown"
)

// renderBlocks converts a scanned block sequence into styled terminal lines
// and records the rendered line of each outline-level heading under its
// anchor id. With duplicate ids the first rendered heading wins, so outline
// activation lands on the first occurrence.
func renderBlocks(nodes []markdown.BlockNode, width int, st *StyleManager) ([]string, map[string]int) {
	if width < 8 {
		width = 8
	}

	var lines []string
	anchors := make(map[string]int)

	for _, node := range nodes {
		switch t := node.(type) {
		case markdown.Heading:
			if t.Level <= 3 {
				id := markdown.HeadingID(t.Text)
				if _, seen := anchors[id]; !seen {
					anchors[id] = len(lines)
				}
			}
			lines = append(lines, headingStyle(t.Level, st).Render(runewidth.Truncate(t.Text, width, "…")))

		case markdown.Paragraph:
			lines = append(lines, wrapStyled(renderSpans(t.Spans, st), width)...)

		case markdown.Blockquote:
			quoted := st.Blockquote.Render("│ ") + renderSpans(t.Spans, st)
			lines = append(lines, wrapStyled(quoted, width)...)

		case markdown.ListItem:
			marker := "• "
			if t.Ordered {
				marker = "· "
			}
			item := strings.Repeat(" ", t.Indent) + st.Bullet.Render(marker) + renderSpans(t.Spans, st)
			lines = append(lines, wrapStyled(item, width)...)

		case markdown.HorizontalRule:
			lines = append(lines, st.Rule.Render(strings.Repeat("─", width)))

		case markdown.CodeBlock:
			if t.Language != "" {
				lines = append(lines, st.CodeLang.Render(" "+t.Language))
			}
			for _, cl := range codeLines(t.Content) {
				padded := " " + runewidth.Truncate(cl, width-2, "…")
				lines = append(lines, st.CodeBlock.Render(padded+strings.Repeat(" ", max(0, width-runewidth.StringWidth(padded)))))
			}

		case markdown.BlankSpacer:
			lines = append(lines, "")
		}
	}

	return lines, anchors
}

// renderSpans styles an inline span sequence into one string.
func renderSpans(spans []markdown.InlineSpan, st *StyleManager) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case markdown.SpanBold:
			b.WriteString(st.Bold.Render(span.Text))
		case markdown.SpanItalic:
			b.WriteString(st.Italic.Render(span.Text))
		case markdown.SpanCode:
			b.WriteString(st.InlineCode.Render(span.Text))
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

func headingStyle(level int, st *StyleManager) lipgloss.Style {
	switch level {
	case 1:
		return st.H1
	case 2:
		return st.H2
	case 3:
		return st.H3
	default:
		return st.H4
	}
}

// wrapStyled word-wraps an already-styled string to width, ANSI-aware.
func wrapStyled(s string, width int) []string {
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	return strings.Split(wrapped, "\n")
}

// codeLines splits fence content for display. An empty fence still renders
// one empty code row rather than disappearing.
func codeLines(content string) []string {
	return strings.Split(content, "\n")
}

// RenderDocument runs the full pipeline on one document and returns styled
// text, for non-interactive rendering to stdout.
func RenderDocument(text string, width int) string {
	lines, _ := renderBlocks(markdown.Scan(text), width, styles)
	return strings.Join(lines, "\n")
}
