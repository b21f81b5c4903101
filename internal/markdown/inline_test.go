package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []InlineSpan
	}{
		{
			name: "plain text",
			text: "just words",
			want: []InlineSpan{{SpanPlain, "just words"}},
		},
		{
			name: "mixed code bold italic",
			text: "Use `x` and **bold** and *italic*.",
			want: []InlineSpan{
				{SpanPlain, "Use "},
				{SpanCode, "x"},
				{SpanPlain, " and "},
				{SpanBold, "bold"},
				{SpanPlain, " and "},
				{SpanItalic, "italic"},
				{SpanPlain, "."},
			},
		},
		{
			name: "code swallows emphasis markers",
			text: "run `a **b** c` now",
			want: []InlineSpan{
				{SpanPlain, "run "},
				{SpanCode, "a **b** c"},
				{SpanPlain, " now"},
			},
		},
		{
			name: "bold swallows italic markers",
			text: "**bold *and* more**",
			want: []InlineSpan{{SpanBold, "bold *and* more"}},
		},
		{
			name: "unmatched backtick is literal",
			text: "Use `x and go",
			want: []InlineSpan{
				{SpanPlain, "Use "},
				{SpanPlain, "`"},
				{SpanPlain, "x and go"},
			},
		},
		{
			name: "unmatched double star is literal",
			text: "a ** b",
			want: []InlineSpan{
				{SpanPlain, "a "},
				{SpanPlain, "**"},
				{SpanPlain, " b"},
			},
		},
		{
			name: "unmatched single star is literal",
			text: "2 * 3",
			want: []InlineSpan{
				{SpanPlain, "2 "},
				{SpanPlain, "*"},
				{SpanPlain, " 3"},
			},
		},
		{
			name: "bold after unmatched backtick still resolves",
			text: "odd ` then **strong**",
			want: []InlineSpan{
				{SpanPlain, "odd "},
				{SpanPlain, "`"},
				{SpanPlain, " then "},
				{SpanBold, "strong"},
			},
		},
		{
			name: "leading delimiters",
			text: "*start* of line",
			want: []InlineSpan{
				{SpanItalic, "start"},
				{SpanPlain, " of line"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "adjacent pairs",
			text: "`a``b`",
			want: []InlineSpan{
				{SpanCode, "a"},
				{SpanCode, "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatInline(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatInline(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

// Matched delimiter pairs are consumed; everything else must survive the
// formatter byte for byte.
func TestFormatInlineLossless(t *testing.T) {
	tests := []string{
		"no markers at all",
		"tabs\tand  spaces   kept",
		"stray ` backtick",
		"stray * star and ** stars",
		"unicode: żółć → ok",
	}

	for _, text := range tests {
		var b strings.Builder
		for _, span := range FormatInline(text) {
			b.WriteString(span.Text)
		}
		if b.String() != text {
			t.Errorf("FormatInline(%q) lost characters: rebuilt %q", text, b.String())
		}
	}
}

func TestFormatInlineCoversFormattedText(t *testing.T) {
	text := "Use `x` and **bold** and *italic*."
	want := "Use x and bold and italic."

	var b strings.Builder
	for _, span := range FormatInline(text) {
		b.WriteString(span.Text)
	}
	if b.String() != want {
		t.Errorf("rebuilt %q, want %q", b.String(), want)
	}
}
