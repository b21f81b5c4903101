package markdown

import (
	"regexp"
	"strings"
)

var (
	headingPrefixes = []string{"# ", "## ", "### ", "#### "}
	orderedMarkerRe = regexp.MustCompile(`^([ \t]*)\d+\. `)
)

// scanState is the mutable state threaded through one Scan pass. codeLines
// and codeLang are only meaningful while inCodeBlock is true; both are
// cleared on every fence close. Fences do not nest, so at most one code
// block is open at a time.
type scanState struct {
	inCodeBlock bool
	codeLines   []string
	codeLang    string
}

// Scan converts a full document into an ordered sequence of block nodes in
// a single forward pass over its lines. Scan is pure: it holds no state
// across calls and the same document always yields the same sequence.
//
// Malformed input never fails the scan. A fence that is opened but never
// closed silently absorbs every remaining line and emits no CodeBlock.
func Scan(doc string) []BlockNode {
	lines := strings.Split(doc, "\n")
	// A trailing newline produces a final empty line that has no source
	// counterpart; drop it so it does not render as an extra spacer.
	if n := len(lines); n > 0 && lines[n-1] == "" && strings.HasSuffix(doc, "\n") {
		lines = lines[:n-1]
	}

	var st scanState
	nodes := make([]BlockNode, 0, len(lines))

	for _, line := range lines {
		if node, ok := scanLine(&st, line); ok {
			nodes = append(nodes, node)
		}
	}

	return nodes
}

// scanLine classifies a single line against the scanner state and returns
// the node it produces, if any. Classification order matters: the first
// matching rule wins.
func scanLine(st *scanState, line string) (BlockNode, bool) {
	trimmed := strings.TrimSpace(line)

	// Fence markers toggle the code block state regardless of anything
	// else on the line.
	if strings.HasPrefix(trimmed, "```") {
		if st.inCodeBlock {
			node := CodeBlock{
				Language: st.codeLang,
				Content:  strings.Join(st.codeLines, "\n"),
			}
			st.inCodeBlock = false
			st.codeLines = nil
			st.codeLang = ""
			return node, true
		}
		st.inCodeBlock = true
		st.codeLines = nil
		st.codeLang = strings.ToLower(strings.TrimSpace(trimmed[3:]))
		return nil, false
	}

	if st.inCodeBlock {
		st.codeLines = append(st.codeLines, line)
		return nil, false
	}

	for i, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix) {
			return Heading{Level: i + 1, Text: line[len(prefix):]}, true
		}
	}

	if strings.HasPrefix(line, "> ") {
		return Blockquote{Spans: FormatInline(line[2:])}, true
	}

	if indent, rest, ok := matchUnorderedItem(line); ok {
		return ListItem{Ordered: false, Indent: indent, Spans: FormatInline(rest)}, true
	}

	if m := orderedMarkerRe.FindStringSubmatch(line); m != nil {
		rest := line[len(m[0]):]
		return ListItem{Ordered: true, Indent: len(m[1]), Spans: FormatInline(rest)}, true
	}

	if isHorizontalRule(trimmed) {
		return HorizontalRule{}, true
	}

	if trimmed == "" {
		return BlankSpacer{}, true
	}

	return Paragraph{Spans: FormatInline(line)}, true
}

// matchUnorderedItem matches a single -, * or + marker followed by a space,
// after any leading whitespace. The returned indent is the character offset
// of the marker in the raw line.
func matchUnorderedItem(line string) (indent int, rest string, ok bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i+1 >= len(line) {
		return 0, "", false
	}
	switch line[i] {
	case '-', '*', '+':
		if line[i+1] == ' ' {
			return i, line[i+2:], true
		}
	}
	return 0, "", false
}

// isHorizontalRule reports whether a trimmed line is three or more of the
// same rule character.
func isHorizontalRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '*' && c != '-' && c != '_' {
		return false
	}
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] != c {
			return false
		}
	}
	return true
}
