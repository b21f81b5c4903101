package markdown

import (
	"reflect"
	"testing"
)

func TestScanHeadings(t *testing.T) {
	nodes := Scan("# Title\n## Sub\n### Detail\n#### Note\n")

	want := []BlockNode{
		Heading{Level: 1, Text: "Title"},
		Heading{Level: 2, Text: "Sub"},
		Heading{Level: 3, Text: "Detail"},
		Heading{Level: 4, Text: "Note"},
	}

	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("Scan headings = %#v, want %#v", nodes, want)
	}
}

func TestScanFenceRoundTrip(t *testing.T) {
	nodes := Scan("```Go\nfunc main() {\n\tprintln(\"hi\")\n}\n```\n")

	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d: %#v", len(nodes), nodes)
	}

	cb, ok := nodes[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected CodeBlock, got %T", nodes[0])
	}
	if cb.Language != "go" {
		t.Errorf("language = %q, want %q", cb.Language, "go")
	}
	if want := "func main() {\n\tprintln(\"hi\")\n}"; cb.Content != want {
		t.Errorf("content = %q, want %q", cb.Content, want)
	}
}

func TestScanUnterminatedFence(t *testing.T) {
	nodes := Scan("```js\nconst a = 1;\n")

	// An open fence swallows the rest of the document: no CodeBlock and no
	// nodes for the absorbed lines.
	if len(nodes) != 0 {
		t.Errorf("expected no nodes, got %#v", nodes)
	}
}

func TestScanFenceResetsBetweenBlocks(t *testing.T) {
	nodes := Scan("```py\na\n```\n```\nb\n```\n")

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d: %#v", len(nodes), nodes)
	}

	first := nodes[0].(CodeBlock)
	if first.Language != "py" || first.Content != "a" {
		t.Errorf("first block = %+v", first)
	}

	// The second fence has no language tag and must not inherit "py".
	second := nodes[1].(CodeBlock)
	if second.Language != "" || second.Content != "b" {
		t.Errorf("second block = %+v", second)
	}
}

func TestScanListIndentation(t *testing.T) {
	nodes := Scan("  - item a\n    - item b\n")

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d: %#v", len(nodes), nodes)
	}

	for i, wantIndent := range []int{2, 4} {
		item, ok := nodes[i].(ListItem)
		if !ok {
			t.Fatalf("node %d: expected ListItem, got %T", i, nodes[i])
		}
		if item.Ordered {
			t.Errorf("node %d: expected unordered item", i)
		}
		if item.Indent != wantIndent {
			t.Errorf("node %d: indent = %d, want %d", i, item.Indent, wantIndent)
		}
	}
}

func TestScanLineClassification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want BlockNode
	}{
		{
			name: "blockquote",
			line: "> quoted text",
			want: Blockquote{Spans: []InlineSpan{{Kind: SpanPlain, Text: "quoted text"}}},
		},
		{
			name: "ordered item",
			line: "1. first",
			want: ListItem{Ordered: true, Indent: 0, Spans: []InlineSpan{{Kind: SpanPlain, Text: "first"}}},
		},
		{
			name: "indented ordered item",
			line: "   12. twelfth",
			want: ListItem{Ordered: true, Indent: 3, Spans: []InlineSpan{{Kind: SpanPlain, Text: "twelfth"}}},
		},
		{
			name: "starred unordered item",
			line: "* starred",
			want: ListItem{Ordered: false, Indent: 0, Spans: []InlineSpan{{Kind: SpanPlain, Text: "starred"}}},
		},
		{
			name: "plus unordered item",
			line: "+ plussed",
			want: ListItem{Ordered: false, Indent: 0, Spans: []InlineSpan{{Kind: SpanPlain, Text: "plussed"}}},
		},
		{
			name: "dash rule",
			line: "---",
			want: HorizontalRule{},
		},
		{
			name: "underscore rule with padding",
			line: "   _____   ",
			want: HorizontalRule{},
		},
		{
			name: "two dashes are a paragraph",
			line: "--",
			want: Paragraph{Spans: []InlineSpan{{Kind: SpanPlain, Text: "--"}}},
		},
		{
			// The lone * is an unmatched delimiter: it stays literal but
			// splits the text into separate plain spans.
			name: "mixed rule chars are a paragraph",
			line: "-*-",
			want: Paragraph{Spans: []InlineSpan{
				{Kind: SpanPlain, Text: "-"},
				{Kind: SpanPlain, Text: "*"},
				{Kind: SpanPlain, Text: "-"},
			}},
		},
		{
			name: "blank line",
			line: "",
			want: BlankSpacer{},
		},
		{
			name: "whitespace only line",
			line: "   \t",
			want: BlankSpacer{},
		},
		{
			name: "five hashes are a paragraph",
			line: "##### deep",
			want: Paragraph{Spans: []InlineSpan{{Kind: SpanPlain, Text: "##### deep"}}},
		},
		{
			name: "hash without space is a paragraph",
			line: "#nospace",
			want: Paragraph{Spans: []InlineSpan{{Kind: SpanPlain, Text: "#nospace"}}},
		},
		{
			name: "dash without space is a paragraph",
			line: "-nospace",
			want: Paragraph{Spans: []InlineSpan{{Kind: SpanPlain, Text: "-nospace"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := Scan(tt.line)
			if len(nodes) != 1 {
				t.Fatalf("expected 1 node, got %d: %#v", len(nodes), nodes)
			}
			if !reflect.DeepEqual(nodes[0], tt.want) {
				t.Errorf("Scan(%q) = %#v, want %#v", tt.line, nodes[0], tt.want)
			}
		})
	}
}

func TestScanHeadingTextIsNotInlineFormatted(t *testing.T) {
	nodes := Scan("# Title with **markers**")

	h, ok := nodes[0].(Heading)
	if !ok {
		t.Fatalf("expected Heading, got %T", nodes[0])
	}
	if h.Text != "Title with **markers**" {
		t.Errorf("heading text = %q", h.Text)
	}
}

func TestScanConsecutiveBlankLines(t *testing.T) {
	nodes := Scan("a\n\n\nb\n")

	want := []BlockKind{KindParagraph, KindBlankSpacer, KindBlankSpacer, KindParagraph}
	if len(nodes) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %#v", len(want), len(nodes), nodes)
	}
	for i, k := range want {
		if Kind(nodes[i]) != k {
			t.Errorf("node %d: kind = %v, want %v", i, Kind(nodes[i]), k)
		}
	}
}

func TestScanIdempotent(t *testing.T) {
	doc := "# Title\n\nSome *text* here.\n\n```sh\nls -la\n```\n\n> note\n\n- one\n- two\n\n---\n"

	first := Scan(doc)
	second := Scan(doc)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Scan is not idempotent:\nfirst  = %#v\nsecond = %#v", first, second)
	}
}

func TestScanFenceMarkersInsideCodeClose(t *testing.T) {
	// A fence marker line inside an open block closes it even when the
	// marker carries trailing text.
	nodes := Scan("```sh\necho hi\n``` trailing\nafter\n")

	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d: %#v", len(nodes), nodes)
	}
	cb := nodes[0].(CodeBlock)
	if cb.Content != "echo hi" {
		t.Errorf("content = %q", cb.Content)
	}
	if _, ok := nodes[1].(Paragraph); !ok {
		t.Errorf("expected trailing paragraph, got %T", nodes[1])
	}
}
